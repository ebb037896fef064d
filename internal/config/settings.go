package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rgehrsitz/finplan/internal/domain"
	"github.com/shopspring/decimal"
)

// Settings holds finplan preferences read from config.toml.
type Settings struct {
	General   GeneralSettings     `toml:"general"`
	Overrides AssumptionOverrides `toml:"assumptions"`
}

// GeneralSettings holds output preferences.
type GeneralSettings struct {
	DefaultFormat  string `toml:"default_format"`
	CurrencySymbol string `toml:"currency_symbol,omitempty"`
	Debug          bool   `toml:"debug"`
}

// AssumptionOverrides replaces individual planning heuristics. Unset fields
// keep the shipped defaults.
type AssumptionOverrides struct {
	ExpenseRatio        *float64           `toml:"expense_ratio,omitempty"`
	EmergencyFundMonths *float64           `toml:"emergency_fund_months,omitempty"`
	RetirementAge       *int               `toml:"retirement_age,omitempty"`
	DefaultAge          *int               `toml:"default_age,omitempty"`
	DefaultGoalAmount   *float64           `toml:"default_goal_amount,omitempty"`
	ReturnRates         map[string]float64 `toml:"return_rates,omitempty"`
	GoalAmounts         map[string]float64 `toml:"goal_amounts,omitempty"`
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	return Settings{
		General: GeneralSettings{
			DefaultFormat: "console",
		},
	}
}

// SettingsDir returns the XDG-compliant config directory.
func SettingsDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "finplan")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "finplan")
}

// SettingsPath returns the full path to the default settings file.
func SettingsPath() string {
	return filepath.Join(SettingsDir(), "config.toml")
}

// LoadSettings reads the settings file at path, or the default location when
// path is empty. A missing file yields the defaults.
func LoadSettings(path string) (Settings, error) {
	if path == "" {
		path = SettingsPath()
	}
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("reading settings: %w", err)
	}

	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing settings: %w", err)
	}

	if _, err := s.Assumptions(); err != nil {
		return s, fmt.Errorf("invalid settings %s: %w", path, err)
	}

	return s, nil
}

// SaveSettings writes the settings to path, or the default location when
// path is empty.
func SaveSettings(path string, s Settings) error {
	if path == "" {
		path = SettingsPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating settings file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(s)
}

// SettingsExist returns true if a settings file exists at path (or the
// default location).
func SettingsExist(path string) bool {
	if path == "" {
		path = SettingsPath()
	}
	_, err := os.Stat(path)
	return err == nil
}

// Assumptions merges the overrides into the default assumptions and
// validates the result.
func (s Settings) Assumptions() (domain.PlanAssumptions, error) {
	a := domain.DefaultAssumptions()
	o := s.Overrides

	if o.ExpenseRatio != nil {
		a.ExpenseRatio = decimal.NewFromFloat(*o.ExpenseRatio)
	}
	if o.EmergencyFundMonths != nil {
		a.EmergencyFundMonths = decimal.NewFromFloat(*o.EmergencyFundMonths)
	}
	if o.RetirementAge != nil {
		a.RetirementAge = *o.RetirementAge
	}
	if o.DefaultAge != nil {
		a.DefaultAge = *o.DefaultAge
	}
	if o.DefaultGoalAmount != nil {
		a.DefaultGoalAmount = decimal.NewFromFloat(*o.DefaultGoalAmount)
	}
	for tier, rate := range o.ReturnRates {
		risk, ok := domain.ParseRiskTolerance(tier)
		if !ok {
			return a, fmt.Errorf("return_rates: unknown risk tolerance %q", tier)
		}
		a.ReturnRates[risk] = decimal.NewFromFloat(rate)
	}
	// goal tags in profiles are matched lower case
	for goal, amount := range o.GoalAmounts {
		key := strings.ToLower(strings.TrimSpace(goal))
		if key == "" {
			return a, fmt.Errorf("goal_amounts: empty goal name")
		}
		a.GoalAmounts[key] = decimal.NewFromFloat(amount)
	}
	if s.General.CurrencySymbol != "" {
		a.CurrencySymbol = s.General.CurrencySymbol
	}

	if err := a.Validate(); err != nil {
		return a, err
	}
	return a, nil
}
