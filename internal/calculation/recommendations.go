package calculation

import (
	"fmt"

	"github.com/rgehrsitz/finplan/internal/domain"
	"github.com/rgehrsitz/finplan/internal/output"
	"github.com/shopspring/decimal"
)

// Fixed recommendation text
const (
	RecTermInsurance    = "Get term life insurance of 10-15x annual income"
	RecMedicalInsurance = "Get comprehensive health insurance"
	RecReviewAnnually   = "Review and rebalance portfolio annually"
)

// AllocationAdvice is the asset mix suggested for each risk tier
var AllocationAdvice = map[domain.RiskTolerance]string{
	domain.RiskAggressive:   "Consider equity mutual funds for higher returns",
	domain.RiskModerate:     "Mix of equity and debt funds",
	domain.RiskConservative: "Focus on debt funds and FDs",
}

// buildRecommendations returns the advice lines for a plan in display order
func (pe *PlanEngine) buildRecommendations(profile domain.UserProfile, risk domain.RiskTolerance, emergencyFund, monthly decimal.Decimal) []string {
	symbol := pe.Assumptions.CurrencySymbol

	candidates := []string{
		fmt.Sprintf("Build emergency fund of %s (%s months expenses)",
			output.FormatGrouped(emergencyFund, symbol), pe.Assumptions.EmergencyFundMonths.String()),
		conditional(!profile.HasTermInsurance, RecTermInsurance),
		conditional(!profile.HasMedicalInsurance, RecMedicalInsurance),
		fmt.Sprintf("Invest %s monthly for retirement", output.FormatGrouped(monthly, symbol)),
		AllocationAdvice[risk],
		RecReviewAnnually,
	}

	recs := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c != "" {
			recs = append(recs, c)
		}
	}
	return recs
}

func conditional(include bool, text string) string {
	if include {
		return text
	}
	return ""
}
