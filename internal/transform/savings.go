package transform

import (
	"fmt"

	"github.com/rgehrsitz/finplan/internal/domain"
	"github.com/shopspring/decimal"
)

func monthlySavings(p *domain.UserProfile) decimal.Decimal {
	if p.MonthlySavingCapacity == nil {
		return decimal.Zero
	}
	return *p.MonthlySavingCapacity
}

// SetSavings sets the monthly saving capacity to an absolute amount.
type SetSavings struct {
	Amount decimal.Decimal
}

func (ss *SetSavings) Name() string {
	return "set_savings"
}

func (ss *SetSavings) Description() string {
	return fmt.Sprintf("Save %s per month", ss.Amount.StringFixed(0))
}

func (ss *SetSavings) Validate(base *domain.UserProfile) error {
	if ss.Amount.IsNegative() {
		return NewTransformError(ss.Name(), "validate", fmt.Sprintf("amount must be non-negative, got %s", ss.Amount), nil)
	}
	return requireBase(ss.Name(), base)
}

func (ss *SetSavings) Apply(base *domain.UserProfile) (*domain.UserProfile, error) {
	modified := base.DeepCopy()
	modified.MonthlySavingCapacity = domain.DecimalPtr(ss.Amount)
	return modified, nil
}

// AdjustSavings adds a delta to the monthly saving capacity. The result may
// not go below zero.
type AdjustSavings struct {
	Delta decimal.Decimal
}

func (as *AdjustSavings) Name() string {
	return "adjust_savings"
}

func (as *AdjustSavings) Description() string {
	if as.Delta.IsNegative() {
		return fmt.Sprintf("Save %s less per month", as.Delta.Neg().StringFixed(0))
	}
	return fmt.Sprintf("Save %s more per month", as.Delta.StringFixed(0))
}

func (as *AdjustSavings) Validate(base *domain.UserProfile) error {
	if err := requireBase(as.Name(), base); err != nil {
		return err
	}
	if monthlySavings(base).Add(as.Delta).IsNegative() {
		return NewTransformError(as.Name(), "validate",
			fmt.Sprintf("adjustment %s would make monthly savings negative", as.Delta), nil)
	}
	return nil
}

func (as *AdjustSavings) Apply(base *domain.UserProfile) (*domain.UserProfile, error) {
	modified := base.DeepCopy()
	modified.MonthlySavingCapacity = domain.DecimalPtr(monthlySavings(base).Add(as.Delta))
	return modified, nil
}

// ScaleSavings changes the monthly saving capacity by a fraction (0.10 saves
// ten percent more, -0.10 ten percent less).
type ScaleSavings struct {
	Fraction decimal.Decimal
}

func (ss *ScaleSavings) Name() string {
	return "scale_savings"
}

func (ss *ScaleSavings) Description() string {
	pct := ss.Fraction.Abs().Mul(decimal.NewFromInt(100)).StringFixed(0)
	if ss.Fraction.IsNegative() {
		return fmt.Sprintf("Save %s%% less per month", pct)
	}
	return fmt.Sprintf("Save %s%% more per month", pct)
}

func (ss *ScaleSavings) Validate(base *domain.UserProfile) error {
	if ss.Fraction.LessThan(decimal.NewFromInt(-1)) {
		return NewTransformError(ss.Name(), "validate", fmt.Sprintf("fraction must be at least -1, got %s", ss.Fraction), nil)
	}
	return requireBase(ss.Name(), base)
}

func (ss *ScaleSavings) Apply(base *domain.UserProfile) (*domain.UserProfile, error) {
	modified := base.DeepCopy()
	scaled := monthlySavings(base).Mul(decimal.NewFromInt(1).Add(ss.Fraction))
	modified.MonthlySavingCapacity = domain.DecimalPtr(scaled)
	return modified, nil
}
