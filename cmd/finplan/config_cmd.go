package main

import (
	"fmt"
	"sort"

	"github.com/rgehrsitz/finplan/internal/config"
	"github.com/rgehrsitz/finplan/internal/domain"
	"github.com/rgehrsitz/finplan/internal/output"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the settings file",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective settings and planning assumptions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			assumptions, err := a.settings.Assumptions()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			path := settingsLabel(a.configPath)

			fmt.Fprintf(w, "  Config file: %s\n", path)
			if config.SettingsExist(a.configPath) {
				fmt.Fprintln(w, "  Status: loaded")
			} else {
				fmt.Fprintln(w, "  Status: using defaults (no config file)")
			}
			fmt.Fprintln(w)

			fmt.Fprintln(w, "  [General]")
			fmt.Fprintf(w, "    Default format:  %s\n", a.settings.General.DefaultFormat)
			fmt.Fprintf(w, "    Currency symbol: %s\n", assumptions.CurrencySymbol)
			fmt.Fprintf(w, "    Debug:           %v\n", a.settings.General.Debug)
			fmt.Fprintln(w)

			fmt.Fprintln(w, "  [Assumptions]")
			fmt.Fprintf(w, "    Expense ratio:         %s\n", output.FormatPercentage(assumptions.ExpenseRatio))
			fmt.Fprintf(w, "    Emergency fund months: %s\n", assumptions.EmergencyFundMonths.String())
			fmt.Fprintf(w, "    Retirement age:        %d\n", assumptions.RetirementAge)
			fmt.Fprintf(w, "    Default age:           %d\n", assumptions.DefaultAge)
			for _, risk := range domain.RiskTolerances {
				fmt.Fprintf(w, "    Return, %-14s %s\n", string(risk)+":", output.FormatPercentage(assumptions.ReturnRate(risk)))
			}
			fmt.Fprintln(w)

			fmt.Fprintln(w, "  [Goal amounts]")
			goals := make([]string, 0, len(assumptions.GoalAmounts))
			for goal := range assumptions.GoalAmounts {
				goals = append(goals, goal)
			}
			sort.Strings(goals)
			for _, goal := range goals {
				fmt.Fprintf(w, "    %-20s %s\n", goal, output.FormatGrouped(assumptions.GoalAmounts[goal], assumptions.CurrencySymbol))
			}
			fmt.Fprintf(w, "    %-20s %s\n", "(other)", output.FormatGrouped(assumptions.DefaultGoalAmount, assumptions.CurrencySymbol))
			fmt.Fprintln(w)

			fmt.Fprintln(w, "  Run `finplan config init` to create a settings file.")
			return nil
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a settings file with the default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := settingsLabel(a.configPath)
			if config.SettingsExist(a.configPath) && !force {
				return fmt.Errorf("settings file %s already exists (use --force to overwrite)", path)
			}
			if err := config.SaveSettings(a.configPath, config.DefaultSettings()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Settings written to %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing settings file")

	configCmd.AddCommand(showCmd, initCmd)
	return configCmd
}
