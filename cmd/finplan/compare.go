package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rgehrsitz/finplan/internal/compare"
	"github.com/rgehrsitz/finplan/internal/config"
	"github.com/rgehrsitz/finplan/internal/domain"
	"github.com/rgehrsitz/finplan/internal/transform"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCompareCmd(a *app) *cobra.Command {
	var (
		templates     string
		transforms    []string
		against       []string
		baseName      string
		format        string
		compact       bool
		listTemplates bool
	)

	cmd := &cobra.Command{
		Use:   "compare [profile-file]",
		Short: "Compare a profile against alternative strategies",
		Long: `Compare the plan for a profile against alternatives built from
templates, transform specs or other profile files.

Examples:
  # Built-in templates
  finplan compare profile.yaml --templates conservative,aggressive,save_25pct_more

  # Ad-hoc transforms (each spec is one alternative)
  finplan compare profile.yaml --transform adjust_savings:amount=5000 --transform set_risk:tier=aggressive

  # Other profiles
  finplan compare profile.yaml --against spouse.yaml --format csv

  # List templates
  finplan compare --list-templates`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := a.engine()
			if err != nil {
				return err
			}
			compareEngine := compare.NewCompareEngine(engine)

			if listTemplates {
				fmt.Fprint(cmd.OutOrStdout(), transform.GetTemplateHelp(compareEngine.TemplateRegistry))
				return nil
			}

			templateNames := transform.ParseTemplateList(templates)
			if len(templateNames) == 0 && len(transforms) == 0 && len(against) == 0 {
				return fmt.Errorf("nothing to compare: use --templates, --transform or --against (see --list-templates)")
			}
			if len(against) > 0 && (len(templateNames) > 0 || len(transforms) > 0) {
				return fmt.Errorf("--against cannot be combined with --templates or --transform")
			}

			profile, source, err := a.loadProfile(cmd, args)
			if err != nil {
				return err
			}
			a.logger.Debug("comparing plans",
				zap.String("profile", source),
				zap.Strings("templates", templateNames),
				zap.Strings("transforms", transforms),
				zap.Strings("against", against))

			var compSet *compare.ComparisonSet
			if len(against) > 0 {
				if baseName == "" {
					baseName = "base"
				}
				alternatives, order, err := loadAlternatives(against)
				if err != nil {
					return err
				}
				compSet, err = compareEngine.CompareProfiles(cmd.Context(), baseName, profile, alternatives, order)
				if err != nil {
					return err
				}
				compSet.ProfilePath = source
			} else {
				compSet, err = compareEngine.Compare(cmd.Context(), profile, compare.CompareOptions{
					BaseScenarioName: baseName,
					Templates:        templateNames,
					Transforms:       transforms,
					ProfilePath:      source,
				})
				if err != nil {
					return err
				}
			}

			out, err := formatComparison(compSet, format, compact)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&templates, "templates", "", "Comma-separated list of templates to compare")
	cmd.Flags().StringArrayVar(&transforms, "transform", nil, "Transform spec to compare (repeatable, format: name:key=value,...)")
	cmd.Flags().StringArrayVar(&against, "against", nil, "Profile file to compare against (repeatable)")
	cmd.Flags().StringVar(&baseName, "base", "", "Label for the base plan (default \"base\")")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, json, csv)")
	cmd.Flags().BoolVar(&compact, "compact", false, "One-line summary (table format only)")
	cmd.Flags().BoolVar(&listTemplates, "list-templates", false, "List available templates and exit")
	return cmd
}

func loadAlternatives(paths []string) (map[string]*domain.UserProfile, []string, error) {
	parser := config.NewInputParser()
	alternatives := make(map[string]*domain.UserProfile, len(paths))
	order := make([]string, 0, len(paths))
	for _, path := range paths {
		profile, err := parser.LoadFromFile(path)
		if err != nil {
			return nil, nil, err
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if _, dup := alternatives[name]; dup {
			name = path
		}
		alternatives[name] = profile
		order = append(order, name)
	}
	return alternatives, order, nil
}

func formatComparison(compSet *compare.ComparisonSet, format string, compact bool) (string, error) {
	switch format {
	case "table", "console":
		tf := &compare.TableFormatter{}
		if compact {
			return tf.FormatCompact(compSet) + "\n", nil
		}
		return tf.Format(compSet), nil
	case "json":
		return (&compare.JSONFormatter{Pretty: true}).Format(compSet)
	case "csv":
		return (&compare.CSVFormatter{}).Format(compSet)
	default:
		return "", fmt.Errorf("unknown format %q (available: table, json, csv)", format)
	}
}
