package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rgehrsitz/finplan/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validProfileYAML = `
age: 30
monthly_income: 100000
monthly_saving_capacity: 20000
risk_tolerance: Moderate
goals:
  - retirement
  - Home
has_term_insurance: false
has_medical_insurance: true
location: Mumbai
marital_status: married
emergency_fund_months: 0
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser, "Should create input parser")
}

func TestInputParser_LoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()

	profile, err := parser.LoadFromFile("nonexistent.yaml")

	assert.Error(t, err, "Should error for nonexistent file")
	assert.Nil(t, profile, "Should return nil profile")
	assert.Contains(t, err.Error(), "failed to read file", "Should have specific error message")
}

func TestInputParser_LoadFromFile_InvalidYAML(t *testing.T) {
	invalidFile := writeFile(t, "invalid.yaml", "invalid: yaml: content: [unclosed")

	profile, err := NewInputParser().LoadFromFile(invalidFile)

	assert.Error(t, err, "Should error for invalid YAML")
	assert.Nil(t, profile, "Should return nil profile")
	assert.Contains(t, err.Error(), "failed to parse YAML", "Should have specific error message")
}

func TestInputParser_LoadFromFile_ValidYAML(t *testing.T) {
	validFile := writeFile(t, "valid.yaml", validProfileYAML)

	profile, err := NewInputParser().LoadFromFile(validFile)

	require.NoError(t, err)
	require.NotNil(t, profile.Age)
	assert.Equal(t, 30, *profile.Age)
	assert.True(t, profile.MonthlyIncome.Equal(decimal.NewFromInt(100000)))
	assert.True(t, profile.MonthlySavingCapacity.Equal(decimal.NewFromInt(20000)))
	assert.Equal(t, domain.RiskModerate, profile.RiskTolerance, "risk tolerance is normalized")
	assert.Equal(t, []string{"retirement", "home"}, profile.Goals, "goals are lower cased")
	assert.True(t, profile.HasMedicalInsurance)
	assert.Equal(t, domain.MaritalMarried, profile.MaritalStatus)
	assert.True(t, profile.EmergencyFundMonths.IsZero())
	assert.Nil(t, profile.CurrentSavings)
}

func TestInputParser_Parse_JSON(t *testing.T) {
	profile, err := NewInputParser().Parse([]byte(`{"age": 45, "monthly_income": 250000.50, "goals": ["travel"]}`))

	require.NoError(t, err)
	assert.Equal(t, 45, *profile.Age)
	assert.True(t, profile.MonthlyIncome.Equal(decimal.RequireFromString("250000.5")))
	assert.Equal(t, []string{"travel"}, profile.Goals)
}

func TestInputParser_Parse_Empty(t *testing.T) {
	profile, err := NewInputParser().Parse(nil)

	require.NoError(t, err)
	assert.Equal(t, domain.UserProfile{}, *profile)
}

func TestInputParser_Parse_UnknownField(t *testing.T) {
	_, err := NewInputParser().Parse([]byte("monthly_incme: 5000\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestInputParser_LoadFromReader(t *testing.T) {
	profile, err := NewInputParser().LoadFromReader(strings.NewReader("age: 52\n"))

	require.NoError(t, err)
	assert.Equal(t, 52, *profile.Age)
}

func TestInputParser_ValidateProfile(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"negative age", "age: -1", "age must be between"},
		{"too old", "age: 121", "age must be between"},
		{"unknown risk", "risk_tolerance: reckless", "unknown risk tolerance"},
		{"unknown marital status", "marital_status: complicated", "unknown marital status"},
		{"negative income", "monthly_income: -5", "monthly income cannot be negative"},
		{"negative savings capacity", "monthly_saving_capacity: -1", "monthly saving capacity cannot be negative"},
		{"negative investments", "existing_investments: -1", "existing investments cannot be negative"},
		{"empty goal", "goals: [home, '  ']", "goal 1 is empty"},
		{"age zero is allowed", "age: 0", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInputParser().Parse([]byte(tt.yaml))
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Contains(t, err.Error(), "profile validation failed")
		})
	}
}

func TestInputParser_ValidateProfile_Nil(t *testing.T) {
	assert.Error(t, NewInputParser().ValidateProfile(nil))
}

func TestInputParser_NormalizesMaritalStatus(t *testing.T) {
	profile, err := NewInputParser().Parse([]byte("marital_status: Married\n"))
	require.NoError(t, err)
	assert.Equal(t, domain.MaritalMarried, profile.MaritalStatus)
}

func TestWriteProfile_RoundTrip(t *testing.T) {
	parser := NewInputParser()
	original, err := parser.Parse([]byte(validProfileYAML))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteProfile(&buf, original))

	decoded, err := parser.Parse(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, *original.Age, *decoded.Age)
	assert.True(t, original.MonthlyIncome.Equal(*decoded.MonthlyIncome))
	assert.Equal(t, original.Goals, decoded.Goals)
	assert.Equal(t, original.RiskTolerance, decoded.RiskTolerance)
}
