package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RiskTolerance selects the nominal annual return assumed for invested savings
type RiskTolerance string

const (
	RiskConservative RiskTolerance = "conservative"
	RiskModerate     RiskTolerance = "moderate"
	RiskAggressive   RiskTolerance = "aggressive"
)

// RiskTolerances lists the recognized tiers from most to least cautious
var RiskTolerances = []RiskTolerance{RiskConservative, RiskModerate, RiskAggressive}

// ParseRiskTolerance maps free text onto a tier. The second result is false
// when the text does not name a known tier.
func ParseRiskTolerance(s string) (RiskTolerance, bool) {
	switch RiskTolerance(strings.ToLower(strings.TrimSpace(s))) {
	case RiskConservative:
		return RiskConservative, true
	case RiskModerate:
		return RiskModerate, true
	case RiskAggressive:
		return RiskAggressive, true
	default:
		return "", false
	}
}

// IsValid reports whether r is one of the recognized tiers
func (r RiskTolerance) IsValid() bool {
	_, ok := ParseRiskTolerance(string(r))
	return ok
}

// Normalize returns the tier, falling back to moderate when empty or unrecognized
func (r RiskTolerance) Normalize() RiskTolerance {
	if t, ok := ParseRiskTolerance(string(r)); ok {
		return t
	}
	return RiskModerate
}

// MaritalStatus is collected by the questionnaire but not used by the projection
type MaritalStatus string

const (
	MaritalSingle   MaritalStatus = "single"
	MaritalMarried  MaritalStatus = "married"
	MaritalDivorced MaritalStatus = "divorced"
	MaritalWidowed  MaritalStatus = "widowed"
)

// Goal tags understood by the default goal amount table. Any other tag is
// accepted and priced at the default goal amount.
const (
	GoalRetirement    = "retirement"
	GoalHome          = "home"
	GoalEducation     = "education"
	GoalTravel        = "travel"
	GoalBusiness      = "business"
	GoalEmergencyFund = "emergency fund"
	GoalDebtClearance = "debt clearance"
)

// KnownGoals lists the goal tags offered to users, in questionnaire order
var KnownGoals = []string{
	GoalRetirement,
	GoalHome,
	GoalEducation,
	GoalTravel,
	GoalEmergencyFund,
	GoalDebtClearance,
	GoalBusiness,
}

// IsKnownGoal reports whether tag is one of KnownGoals
func IsKnownGoal(tag string) bool {
	for _, g := range KnownGoals {
		if g == tag {
			return true
		}
	}
	return false
}

// UserProfile is the set of financial facts a plan is computed from.
// Pointer fields are optional; the engine substitutes defaults for nil values.
type UserProfile struct {
	Age                   *int             `yaml:"age,omitempty" json:"age,omitempty"`
	MonthlyIncome         *decimal.Decimal `yaml:"monthly_income,omitempty" json:"monthly_income,omitempty"`
	MonthlySavingCapacity *decimal.Decimal `yaml:"monthly_saving_capacity,omitempty" json:"monthly_saving_capacity,omitempty"`
	RiskTolerance         RiskTolerance    `yaml:"risk_tolerance,omitempty" json:"risk_tolerance,omitempty"`
	Goals                 []string         `yaml:"goals,omitempty" json:"goals,omitempty"`
	HasTermInsurance      bool             `yaml:"has_term_insurance" json:"has_term_insurance"`
	HasMedicalInsurance   bool             `yaml:"has_medical_insurance" json:"has_medical_insurance"`

	// Collected for context, not consumed by the projection
	Location            string           `yaml:"location,omitempty" json:"location,omitempty"`
	MaritalStatus       MaritalStatus    `yaml:"marital_status,omitempty" json:"marital_status,omitempty"`
	CurrentSavings      *decimal.Decimal `yaml:"current_savings,omitempty" json:"current_savings,omitempty"`
	ExistingInvestments *decimal.Decimal `yaml:"existing_investments,omitempty" json:"existing_investments,omitempty"`
	EmergencyFundMonths *decimal.Decimal `yaml:"emergency_fund_months,omitempty" json:"emergency_fund_months,omitempty"`
}

// DeepCopy returns a copy that shares no pointers or slices with p
func (p *UserProfile) DeepCopy() *UserProfile {
	if p == nil {
		return nil
	}
	c := *p
	if p.Age != nil {
		age := *p.Age
		c.Age = &age
	}
	c.MonthlyIncome = copyDecimal(p.MonthlyIncome)
	c.MonthlySavingCapacity = copyDecimal(p.MonthlySavingCapacity)
	c.CurrentSavings = copyDecimal(p.CurrentSavings)
	c.ExistingInvestments = copyDecimal(p.ExistingInvestments)
	c.EmergencyFundMonths = copyDecimal(p.EmergencyFundMonths)
	if p.Goals != nil {
		c.Goals = append([]string(nil), p.Goals...)
	}
	return &c
}

func copyDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}

// IntPtr is a small helper for building profiles in code
func IntPtr(v int) *int { return &v }

// DecimalPtr is a small helper for building profiles in code
func DecimalPtr(d decimal.Decimal) *decimal.Decimal { return &d }
