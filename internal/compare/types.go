package compare

import (
	"fmt"

	"github.com/rgehrsitz/finplan/internal/domain"
	"github.com/rgehrsitz/finplan/internal/output"
	"github.com/shopspring/decimal"
)

// GoalDelta compares one goal's timeline against the base plan. YearsSaved
// is positive when the goal is reached sooner and is only set when both
// timelines are reachable.
type GoalDelta struct {
	Goal       string `json:"goal"`
	BaseYears  int    `json:"baseYears"`
	Years      int    `json:"years"`
	YearsSaved int    `json:"yearsSaved"`
}

// Change describes the delta for display
func (g GoalDelta) Change() string {
	baseOK := g.BaseYears != domain.UnreachableYears
	altOK := g.Years != domain.UnreachableYears
	switch {
	case !baseOK && altOK:
		return "now reachable"
	case baseOK && !altOK:
		return "no longer reachable"
	case !baseOK && !altOK:
		return "not reachable"
	case g.YearsSaved > 0:
		return fmt.Sprintf("%d years sooner", g.YearsSaved)
	case g.YearsSaved < 0:
		return fmt.Sprintf("%d years later", -g.YearsSaved)
	default:
		return "no change"
	}
}

// ComparisonResult represents a single plan comparison with calculated metrics
type ComparisonResult struct {
	ScenarioName string               `json:"scenarioName"`
	Description  string               `json:"description"`
	Plan         domain.FinancialPlan `json:"plan"`

	// Profile specifics for display
	RiskTolerance domain.RiskTolerance `json:"riskTolerance"`
	StartAge      int                  `json:"startAge"`

	// Key Metrics
	MonthlyInvestment decimal.Decimal `json:"monthlyInvestment"`
	RetirementCorpus  decimal.Decimal `json:"retirementCorpus"`
	ReachableGoals    int             `json:"reachableGoals"`

	// Comparison to Base
	CorpusDiffFromBase decimal.Decimal `json:"corpusDiffFromBase"`
	CorpusPctFromBase  decimal.Decimal `json:"corpusPctFromBase"`
	TotalYearsSaved    int             `json:"totalYearsSaved"`
	GoalDeltas         []GoalDelta     `json:"goalDeltas,omitempty"`
}

// ComparisonSet represents a collection of plan comparisons
type ComparisonSet struct {
	BaseScenarioName   string             `json:"baseScenarioName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	ProfilePath        string             `json:"profilePath,omitempty"`
	CurrencySymbol     string             `json:"currencySymbol"`
}

// MetricsCalculator extracts key metrics from plans
type MetricsCalculator struct {
	DefaultAge int
}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{DefaultAge: domain.DefaultAssumptions().DefaultAge}
}

// CalculateMetrics computes all comparison metrics for a profile and its plan
func (mc *MetricsCalculator) CalculateMetrics(name string, profile *domain.UserProfile, plan domain.FinancialPlan) ComparisonResult {
	result := ComparisonResult{
		ScenarioName:      name,
		Plan:              plan,
		RiskTolerance:     profile.RiskTolerance.Normalize(),
		StartAge:          mc.DefaultAge,
		MonthlyInvestment: plan.MonthlyInvestment,
		RetirementCorpus:  plan.RetirementCorpus,
	}
	if profile.Age != nil && *profile.Age != 0 {
		result.StartAge = *profile.Age
	}

	for _, g := range plan.GoalTimelines {
		if g.IsReachable() {
			result.ReachableGoals++
		}
	}

	return result
}

// CalculateComparison computes comparison metrics between a plan and a base.
// Goals are matched by position; goals only the alternative has are skipped.
func (mc *MetricsCalculator) CalculateComparison(alt, base ComparisonResult) ComparisonResult {
	alt.CorpusDiffFromBase = alt.RetirementCorpus.Sub(base.RetirementCorpus)

	if !base.RetirementCorpus.IsZero() {
		alt.CorpusPctFromBase = alt.CorpusDiffFromBase.
			Div(base.RetirementCorpus).
			Mul(decimal.NewFromInt(100))
	}

	alt.GoalDeltas = nil
	alt.TotalYearsSaved = 0
	baseGoals := base.Plan.GoalTimelines
	for i, g := range alt.Plan.GoalTimelines {
		if i >= len(baseGoals) || baseGoals[i].Goal != g.Goal {
			continue
		}
		delta := GoalDelta{Goal: g.Goal, BaseYears: baseGoals[i].Years, Years: g.Years}
		if baseGoals[i].IsReachable() && g.IsReachable() {
			delta.YearsSaved = baseGoals[i].Years - g.Years
			alt.TotalYearsSaved += delta.YearsSaved
		}
		alt.GoalDeltas = append(alt.GoalDeltas, delta)
	}

	return alt
}

// GenerateRecommendations creates recommendations based on comparison results
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if len(compSet.AlternativeResults) == 0 || compSet.BaseResult == nil {
		return recommendations
	}
	base := compSet.BaseResult

	// Find best plan by retirement corpus
	bestCorpus := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.RetirementCorpus.GreaterThan(bestCorpus.RetirementCorpus) {
			bestCorpus = alt
		}
	}

	if bestCorpus != base {
		diff := bestCorpus.RetirementCorpus.Sub(base.RetirementCorpus)
		recommendations = append(recommendations,
			"Largest Corpus: "+bestCorpus.ScenarioName+" builds "+
				output.FormatAmount(diff, compSet.CurrencySymbol)+" more by retirement")
	}

	// Find the plan that reaches goals soonest overall
	fastest := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.TotalYearsSaved > fastest.TotalYearsSaved {
			fastest = alt
		}
	}

	if fastest != base {
		recommendations = append(recommendations,
			fmt.Sprintf("Fastest Goals: %s reaches your goals %d years sooner in total",
				fastest.ScenarioName, fastest.TotalYearsSaved))
	}

	// Find plans that unlock goals the base cannot reach
	for _, alt := range compSet.AlternativeResults {
		if alt.ReachableGoals > base.ReachableGoals {
			recommendations = append(recommendations,
				fmt.Sprintf("More Goals: %s makes %d more goals reachable",
					alt.ScenarioName, alt.ReachableGoals-base.ReachableGoals))
		}
	}

	return recommendations
}
