package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PlanAssumptions holds the heuristics behind a projection. None of these are
// derived from real spending or market data; DefaultAssumptions returns the
// values the product ships with.
type PlanAssumptions struct {
	ExpenseRatio        decimal.Decimal                   `yaml:"expense_ratio" json:"expense_ratio"`
	EmergencyFundMonths decimal.Decimal                   `yaml:"emergency_fund_months" json:"emergency_fund_months"`
	RetirementAge       int                               `yaml:"retirement_age" json:"retirement_age"`
	DefaultAge          int                               `yaml:"default_age" json:"default_age"`
	ReturnRates         map[RiskTolerance]decimal.Decimal `yaml:"return_rates" json:"return_rates"`
	GoalAmounts         map[string]decimal.Decimal        `yaml:"goal_amounts" json:"goal_amounts"`
	DefaultGoalAmount   decimal.Decimal                   `yaml:"default_goal_amount" json:"default_goal_amount"`
	CurrencySymbol      string                            `yaml:"currency_symbol" json:"currency_symbol"`
}

// DefaultAssumptions returns a fresh copy of the shipped heuristics.
// Emergency fund and retirement goals are priced from the plan itself and so
// have no entry in GoalAmounts.
func DefaultAssumptions() PlanAssumptions {
	return PlanAssumptions{
		ExpenseRatio:        decimal.NewFromFloat(0.7),
		EmergencyFundMonths: decimal.NewFromInt(6),
		RetirementAge:       60,
		DefaultAge:          30,
		ReturnRates: map[RiskTolerance]decimal.Decimal{
			RiskConservative: decimal.NewFromFloat(0.08),
			RiskModerate:     decimal.NewFromFloat(0.10),
			RiskAggressive:   decimal.NewFromFloat(0.12),
		},
		GoalAmounts: map[string]decimal.Decimal{
			GoalHome:          decimal.NewFromInt(5_000_000),
			GoalEducation:     decimal.NewFromInt(2_000_000),
			GoalTravel:        decimal.NewFromInt(500_000),
			GoalBusiness:      decimal.NewFromInt(3_000_000),
			GoalDebtClearance: decimal.NewFromInt(1_000_000),
		},
		DefaultGoalAmount: decimal.NewFromInt(1_000_000),
		CurrencySymbol:    "₹",
	}
}

// Clone returns a copy whose maps can be modified independently
func (a PlanAssumptions) Clone() PlanAssumptions {
	c := a
	c.ReturnRates = make(map[RiskTolerance]decimal.Decimal, len(a.ReturnRates))
	for k, v := range a.ReturnRates {
		c.ReturnRates[k] = v
	}
	c.GoalAmounts = make(map[string]decimal.Decimal, len(a.GoalAmounts))
	for k, v := range a.GoalAmounts {
		c.GoalAmounts[k] = v
	}
	return c
}

// ReturnRate returns the annual rate for a tier after normalization
func (a PlanAssumptions) ReturnRate(r RiskTolerance) decimal.Decimal {
	return a.ReturnRates[r.Normalize()]
}

// Validate checks that the assumptions describe a usable model
func (a PlanAssumptions) Validate() error {
	if a.ExpenseRatio.LessThan(decimal.Zero) || a.ExpenseRatio.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("expense ratio must be between 0 and 1, got %s", a.ExpenseRatio.String())
	}
	if a.EmergencyFundMonths.LessThan(decimal.Zero) {
		return fmt.Errorf("emergency fund months cannot be negative, got %s", a.EmergencyFundMonths.String())
	}
	if a.RetirementAge <= 0 || a.RetirementAge > 120 {
		return fmt.Errorf("retirement age must be between 1 and 120, got %d", a.RetirementAge)
	}
	if a.DefaultAge <= 0 || a.DefaultAge > 120 {
		return fmt.Errorf("default age must be between 1 and 120, got %d", a.DefaultAge)
	}
	for _, tier := range RiskTolerances {
		rate, ok := a.ReturnRates[tier]
		if !ok {
			return fmt.Errorf("missing return rate for %s risk tolerance", tier)
		}
		if rate.LessThan(decimal.Zero) || rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("return rate for %s must be between 0 and 1, got %s", tier, rate.String())
		}
	}
	for goal, amount := range a.GoalAmounts {
		if amount.LessThan(decimal.Zero) {
			return fmt.Errorf("goal amount for %q cannot be negative", goal)
		}
	}
	if a.DefaultGoalAmount.LessThan(decimal.Zero) {
		return fmt.Errorf("default goal amount cannot be negative")
	}
	return nil
}
