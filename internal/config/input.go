package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rgehrsitz/finplan/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const maxAge = 120

// InputParser handles parsing of profile files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a profile from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.UserProfile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	return ip.Parse(data)
}

// LoadFromReader loads a profile from r, e.g. standard input
func (ip *InputParser) LoadFromReader(r io.Reader) (*domain.UserProfile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	return ip.Parse(data)
}

// Parse decodes and validates a profile document. Unknown keys are rejected so
// typos do not silently fall back to defaults.
func (ip *InputParser) Parse(data []byte) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&profile); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateProfile(&profile); err != nil {
		return nil, fmt.Errorf("profile validation failed: %w", err)
	}

	return &profile, nil
}

// ValidateProfile checks a profile for values the engine cannot interpret.
// Risk tolerance, marital status and goal tags are normalized to lower case.
func (ip *InputParser) ValidateProfile(profile *domain.UserProfile) error {
	if profile == nil {
		return fmt.Errorf("profile is required")
	}

	if profile.Age != nil && (*profile.Age < 0 || *profile.Age > maxAge) {
		return fmt.Errorf("age must be between 0 and %d, got %d", maxAge, *profile.Age)
	}

	if profile.RiskTolerance != "" {
		risk, ok := domain.ParseRiskTolerance(string(profile.RiskTolerance))
		if !ok {
			return fmt.Errorf("unknown risk tolerance %q, expected conservative, moderate or aggressive", profile.RiskTolerance)
		}
		profile.RiskTolerance = risk
	}

	if profile.MaritalStatus != "" {
		if err := ip.validateMaritalStatus(profile.MaritalStatus); err != nil {
			return err
		}
		profile.MaritalStatus = domain.MaritalStatus(strings.ToLower(string(profile.MaritalStatus)))
	}

	amounts := []struct {
		name  string
		value *decimal.Decimal
	}{
		{"monthly income", profile.MonthlyIncome},
		{"monthly saving capacity", profile.MonthlySavingCapacity},
		{"current savings", profile.CurrentSavings},
		{"existing investments", profile.ExistingInvestments},
		{"emergency fund months", profile.EmergencyFundMonths},
	}
	for _, a := range amounts {
		if a.value != nil && a.value.IsNegative() {
			return fmt.Errorf("%s cannot be negative", a.name)
		}
	}

	for i, goal := range profile.Goals {
		goal = strings.ToLower(strings.TrimSpace(goal))
		if goal == "" {
			return fmt.Errorf("goal %d is empty", i)
		}
		profile.Goals[i] = goal
	}

	return nil
}

func (ip *InputParser) validateMaritalStatus(status domain.MaritalStatus) error {
	switch domain.MaritalStatus(strings.ToLower(string(status))) {
	case domain.MaritalSingle, domain.MaritalMarried, domain.MaritalDivorced, domain.MaritalWidowed:
		return nil
	default:
		return fmt.Errorf("unknown marital status %q", status)
	}
}

// WriteProfile encodes a profile as YAML
func WriteProfile(w io.Writer, profile *domain.UserProfile) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(profile); err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	return enc.Close()
}
