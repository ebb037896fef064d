package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/finplan/internal/domain"
)

// ConsoleFormatter renders a human readable plan summary
type ConsoleFormatter struct {
	Symbol string
}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(plan *domain.FinancialPlan) ([]byte, error) {
	if plan == nil {
		return nil, ErrNilPlan
	}
	var b bytes.Buffer
	line := strings.Repeat("=", 60)

	fmt.Fprintln(&b, line)
	fmt.Fprintln(&b, "YOUR PERSONALIZED FINANCIAL PLAN")
	fmt.Fprintln(&b, line)
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Emergency Fund:      %s\n", FormatAmount(plan.EmergencyFundTarget, c.Symbol))
	fmt.Fprintf(&b, "Monthly Investment:  %s\n", FormatAmount(plan.MonthlyInvestment, c.Symbol))
	fmt.Fprintf(&b, "Retirement Corpus:   %s (by age %d)\n", FormatAmount(plan.RetirementCorpus, c.Symbol), plan.RetirementAge)
	fmt.Fprintln(&b)

	if len(plan.GoalTimelines) > 0 {
		fmt.Fprintln(&b, "GOAL TIMELINES")
		fmt.Fprintln(&b, strings.Repeat("-", 60))
		for _, g := range plan.GoalTimelines {
			fmt.Fprintf(&b, "  %-20s %16s  %s\n", g.Goal, FormatAmount(g.Amount, c.Symbol), FormatYears(g.Years))
		}
		fmt.Fprintln(&b)
	}

	fmt.Fprintln(&b, "RECOMMENDATIONS")
	fmt.Fprintln(&b, strings.Repeat("-", 60))
	for i, r := range plan.Recommendations {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, r)
	}
	return b.Bytes(), nil
}
