package main

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/finplan/internal/config"
	"github.com/rgehrsitz/finplan/internal/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newPlanCmd(a *app) *cobra.Command {
	var (
		format string
		save   bool
	)

	cmd := &cobra.Command{
		Use:   "plan [profile-file]",
		Short: "Compute a financial plan from a profile",
		Long: `Compute a financial plan from a YAML (or JSON) profile. Reads stdin when
no file is given or the file is "-".

Examples:
  finplan plan profile.yaml
  finplan plan profile.yaml --format json
  cat profile.yaml | finplan plan --format csv --save`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") && a.settings.General.DefaultFormat != "" {
				format = a.settings.General.DefaultFormat
			}

			engine, err := a.engine()
			if err != nil {
				return err
			}
			formatter := output.GetFormatterByName(format, engine.Assumptions.CurrencySymbol)
			if formatter == nil {
				return fmt.Errorf("unknown format %q (available: %s; aliases: %s)", format,
					strings.Join(output.AvailableFormatterNames(), ", "),
					strings.Join(output.AvailableFormatAliases(), ", "))
			}

			profile, source, err := a.loadProfile(cmd, args)
			if err != nil {
				return err
			}
			a.logger.Debug("computing plan", zap.String("profile", source), zap.String("format", formatter.Name()))

			plan := engine.ComputePlan(*profile)

			if save {
				filename, err := output.WriteFormatted(formatter, &plan, formatter.Name())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Plan written to %s\n", filename)
				return nil
			}

			data, err := formatter.Format(&plan)
			if err != nil {
				return fmt.Errorf("failed to format plan: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "console", "Output format (console, json, yaml, csv)")
	cmd.Flags().BoolVar(&save, "save", false, "Write the plan to a timestamped file instead of stdout")
	return cmd
}

func newValidateCmd(a *app) *cobra.Command {
	var normalize bool

	cmd := &cobra.Command{
		Use:   "validate [profile-file]",
		Short: "Validate a profile file",
		Long: `Validate a profile file. With --normalize the cleaned profile (lower-case
risk tolerance, marital status and goal tags) is printed as YAML instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, _, err := a.loadProfile(cmd, args)
			if err != nil {
				return err
			}
			if normalize {
				return config.WriteProfile(cmd.OutOrStdout(), profile)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Profile %s is valid\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&normalize, "normalize", false, "Print the normalized profile as YAML")
	return cmd
}
