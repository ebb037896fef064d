package calculation

import (
	"fmt"

	"github.com/rgehrsitz/finplan/internal/domain"
	"github.com/shopspring/decimal"
)

// PlanEngine turns user profiles into financial plans. It holds no mutable
// state once constructed and is safe for concurrent use.
type PlanEngine struct {
	Assumptions domain.PlanAssumptions
	Logger      Logger
}

// NewPlanEngine creates an engine using the default assumptions
func NewPlanEngine() *PlanEngine {
	return &PlanEngine{
		Assumptions: domain.DefaultAssumptions(),
		Logger:      NopLogger{},
	}
}

// NewPlanEngineWithAssumptions creates an engine with caller supplied assumptions
func NewPlanEngineWithAssumptions(assumptions domain.PlanAssumptions) (*PlanEngine, error) {
	if err := assumptions.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plan assumptions: %w", err)
	}
	return &PlanEngine{
		Assumptions: assumptions.Clone(),
		Logger:      NopLogger{},
	}, nil
}

// SetLogger sets the logger; nil installs a no-op logger
func (pe *PlanEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// ComputePlan projects a profile using the default assumptions
func ComputePlan(profile domain.UserProfile) domain.FinancialPlan {
	return NewPlanEngine().ComputePlan(profile)
}

// ComputePlan projects a profile into a plan. Missing fields take defaults and
// out-of-range values flow through the formulas unchanged; it never fails.
func (pe *PlanEngine) ComputePlan(profile domain.UserProfile) domain.FinancialPlan {
	a := pe.Assumptions
	income := valueOrZero(profile.MonthlyIncome)
	monthly := valueOrZero(profile.MonthlySavingCapacity)
	age := a.DefaultAge
	if profile.Age != nil && *profile.Age != 0 {
		age = *profile.Age
	}
	risk := profile.RiskTolerance.Normalize()

	monthlyExpenses := income.Mul(a.ExpenseRatio)
	emergencyFund := monthlyExpenses.Mul(a.EmergencyFundMonths)

	years := YearsToRetirement(age, a.RetirementAge)
	annualReturn := a.ReturnRate(risk)
	monthlyReturn := MonthlyRate(annualReturn)
	totalMonths := years * MonthsPerYear
	corpus := FutureValueOfAnnuity(monthly, monthlyReturn, totalMonths)

	pe.Logger.Debugf("plan inputs: age=%d horizon=%dy risk=%s annual_return=%s monthly=%s",
		age, years, risk, annualReturn.String(), monthly.String())
	pe.Logger.Debugf("plan results: emergency_fund=%s corpus=%s",
		emergencyFund.StringFixed(2), corpus.StringFixed(2))

	return domain.FinancialPlan{
		EmergencyFundTarget: emergencyFund,
		MonthlyInvestment:   monthly,
		RetirementCorpus:    corpus,
		RetirementAge:       a.RetirementAge,
		GoalTimelines:       pe.buildGoalTimelines(profile.Goals, monthly, emergencyFund, corpus),
		Recommendations:     pe.buildRecommendations(profile, risk, emergencyFund, monthly),
	}
}

func valueOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
