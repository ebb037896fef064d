package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rgehrsitz/finplan/internal/calculation"
	"github.com/rgehrsitz/finplan/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "finplan"), SettingsDir())
	assert.Equal(t, filepath.Join("/tmp/xdg", "finplan", "config.toml"), SettingsPath())
}

func TestLoadSettings_MissingFileGivesDefaults(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "missing.toml"))

	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoadSettings_DefaultLocation(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	assert.False(t, SettingsExist(""))

	s := DefaultSettings()
	s.General.Debug = true
	require.NoError(t, SaveSettings("", s))
	assert.True(t, SettingsExist(""))

	loaded, err := LoadSettings("")
	require.NoError(t, err)
	assert.True(t, loaded.General.Debug)
}

func TestLoadSettings_Overrides(t *testing.T) {
	path := writeFile(t, "config.toml", `
[general]
default_format = "json"
currency_symbol = "$"

[assumptions]
expense_ratio = 0.6
retirement_age = 65

[assumptions.return_rates]
Moderate = 0.09

[assumptions.goal_amounts]
home = 7500000
wedding = 1500000
`)

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "json", s.General.DefaultFormat)

	a, err := s.Assumptions()
	require.NoError(t, err)
	assert.True(t, a.ExpenseRatio.Equal(decimal.NewFromFloat(0.6)))
	assert.Equal(t, 65, a.RetirementAge)
	assert.Equal(t, 30, a.DefaultAge, "unset overrides keep defaults")
	assert.True(t, a.ReturnRates[domain.RiskModerate].Equal(decimal.NewFromFloat(0.09)))
	assert.True(t, a.ReturnRates[domain.RiskAggressive].Equal(decimal.NewFromFloat(0.12)))
	assert.True(t, a.GoalAmounts["home"].Equal(decimal.NewFromInt(7_500_000)))
	assert.True(t, a.GoalAmounts["wedding"].Equal(decimal.NewFromInt(1_500_000)))
	assert.Equal(t, "$", a.CurrencySymbol)
}

func TestLoadSettings_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad toml", "[general\n", "parsing settings"},
		{"unknown tier", "[assumptions.return_rates]\nreckless = 0.3\n", "unknown risk tolerance"},
		{"ratio out of range", "[assumptions]\nexpense_ratio = 1.5\n", "expense ratio"},
		{"bad retirement age", "[assumptions]\nretirement_age = 0\n", "invalid settings"},
		{"blank goal name", "[assumptions.goal_amounts]\n\" \" = 100\n", "empty goal name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSettings(writeFile(t, "config.toml", tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadSettings_Unreadable(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadSettings(dir)
	assert.Error(t, err, "a directory is not a readable settings file")
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	ratio := 0.65
	s := DefaultSettings()
	s.Overrides.ExpenseRatio = &ratio
	s.Overrides.ReturnRates = map[string]float64{"aggressive": 0.14}

	require.NoError(t, SaveSettings(path, s))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
}

func TestSettings_AssumptionsDefault(t *testing.T) {
	a, err := DefaultSettings().Assumptions()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAssumptions().RetirementAge, a.RetirementAge)
	assert.Equal(t, "₹", a.CurrencySymbol)
}

func TestSettings_AssumptionsNormalizeGoalNames(t *testing.T) {
	s := DefaultSettings()
	s.Overrides.GoalAmounts = map[string]float64{" Home ": 9_000_000, "Debt Clearance": 250_000}

	a, err := s.Assumptions()
	require.NoError(t, err)
	assert.True(t, a.GoalAmounts["home"].Equal(decimal.NewFromInt(9_000_000)))
	assert.True(t, a.GoalAmounts["debt clearance"].Equal(decimal.NewFromInt(250_000)))
	assert.NotContains(t, a.GoalAmounts, " Home ")

	profile := domain.UserProfile{
		MonthlySavingCapacity: domain.DecimalPtr(decimal.NewFromInt(25_000)),
		Goals:                 []string{"home"},
	}
	engine, err := calculation.NewPlanEngineWithAssumptions(a)
	require.NoError(t, err)
	plan := engine.ComputePlan(profile)
	assert.Equal(t, 30, plan.GoalTimelines[0].Years)
}
