package calculation

import (
	"github.com/rgehrsitz/finplan/internal/domain"
	"github.com/shopspring/decimal"
)

// YearsToGoal returns how many whole years of saving monthlyContribution it
// takes to accumulate amount, ignoring growth. Without a positive contribution
// every goal is unreachable; with one, goals priced at zero or less take zero
// years.
func YearsToGoal(amount, monthlyContribution decimal.Decimal) int {
	annual := monthlyContribution.Mul(twelve)
	if annual.LessThanOrEqual(decimal.Zero) {
		return domain.UnreachableYears
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	return int(amount.Div(annual).Ceil().IntPart())
}

// goalAmount prices a goal tag. Emergency fund and retirement goals take their
// targets from the plan being built.
func (pe *PlanEngine) goalAmount(goal string, emergencyFund, corpus decimal.Decimal) decimal.Decimal {
	switch goal {
	case domain.GoalEmergencyFund:
		return emergencyFund
	case domain.GoalRetirement:
		return corpus
	}
	if amount, ok := pe.Assumptions.GoalAmounts[goal]; ok {
		return amount
	}
	return pe.Assumptions.DefaultGoalAmount
}

// buildGoalTimelines yields one timeline per goal in input order
func (pe *PlanEngine) buildGoalTimelines(goals []string, monthly, emergencyFund, corpus decimal.Decimal) []domain.GoalTimeline {
	timelines := make([]domain.GoalTimeline, 0, len(goals))
	for _, goal := range goals {
		amount := pe.goalAmount(goal, emergencyFund, corpus)
		timelines = append(timelines, domain.GoalTimeline{
			Goal:   goal,
			Amount: amount,
			Years:  YearsToGoal(amount, monthly),
		})
	}
	return timelines
}
