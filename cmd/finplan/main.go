package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rgehrsitz/finplan/internal/calculation"
	"github.com/rgehrsitz/finplan/internal/config"
	"github.com/rgehrsitz/finplan/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Build information. Populated at build-time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app carries state shared by every subcommand of one invocation
type app struct {
	debug      bool
	configPath string

	settings config.Settings
	logger   *zap.Logger
}

// engine builds a plan engine from the loaded settings
func (a *app) engine() (*calculation.PlanEngine, error) {
	assumptions, err := a.settings.Assumptions()
	if err != nil {
		return nil, err
	}
	pe, err := calculation.NewPlanEngineWithAssumptions(assumptions)
	if err != nil {
		return nil, err
	}
	pe.SetLogger(a.logger.Sugar())
	return pe, nil
}

// loadProfile reads a profile from the named file, or stdin for "-" or no argument
func (a *app) loadProfile(cmd *cobra.Command, args []string) (*domain.UserProfile, string, error) {
	parser := config.NewInputParser()
	if len(args) == 0 || args[0] == "-" {
		profile, err := parser.LoadFromReader(cmd.InOrStdin())
		return profile, "stdin", err
	}
	profile, err := parser.LoadFromFile(args[0])
	return profile, args[0], err
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "finplan",
		Short: "Personal financial plan calculator",
		Long: `A command-line tool that turns a short financial profile into a plan:
an emergency fund target, a monthly investment amount, a projected retirement
corpus and a timeline for each financial goal.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings(a.configPath)
			if err != nil {
				return err
			}
			a.settings = settings

			zapConfig := zap.NewProductionConfig()
			zapConfig.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if a.debug || settings.General.Debug {
				zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := zapConfig.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			a.logger.Debug("settings loaded", zap.String("path", settingsLabel(a.configPath)))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Settings file (default $XDG_CONFIG_HOME/finplan/config.toml)")

	rootCmd.AddCommand(
		newPlanCmd(a),
		newValidateCmd(a),
		newCompareCmd(a),
		newChatCmd(a),
		newConfigCmd(a),
		versionCmd(),
	)
	return rootCmd
}

func settingsLabel(path string) string {
	if path == "" {
		return config.SettingsPath()
	}
	return path
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "finplan %s (commit %s, built %s)\n", version, commit, date)
			if goVersion := buildGoVersion(); goVersion != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "go: %s\n", goVersion)
			}
		},
	}
}

func buildGoVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.GoVersion
	}
	return ""
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
