package domain

import "github.com/shopspring/decimal"

// UnreachableYears marks a goal that can never be funded because nothing is
// being saved toward it.
const UnreachableYears = -1

// GoalTimeline is the target amount for one declared goal and the whole number
// of years of saving needed to reach it
type GoalTimeline struct {
	Goal   string          `yaml:"goal" json:"goal"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
	Years  int             `yaml:"years" json:"years"`
}

// IsReachable reports whether Years holds a real duration
func (g GoalTimeline) IsReachable() bool {
	return g.Years != UnreachableYears
}

// FinancialPlan is the result of projecting a UserProfile
type FinancialPlan struct {
	EmergencyFundTarget decimal.Decimal `yaml:"emergency_fund_target" json:"emergency_fund_target"`
	MonthlyInvestment   decimal.Decimal `yaml:"monthly_investment" json:"monthly_investment"`
	RetirementCorpus    decimal.Decimal `yaml:"retirement_corpus" json:"retirement_corpus"`
	RetirementAge       int             `yaml:"retirement_age" json:"retirement_age"`
	GoalTimelines       []GoalTimeline  `yaml:"goal_timelines" json:"goal_timelines"`
	Recommendations     []string        `yaml:"recommendations" json:"recommendations"`
}

// Timeline returns the first timeline for goal, if any
func (p *FinancialPlan) Timeline(goal string) (GoalTimeline, bool) {
	for _, g := range p.GoalTimelines {
		if g.Goal == goal {
			return g, true
		}
	}
	return GoalTimeline{}, false
}
