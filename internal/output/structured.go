package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"

	"github.com/rgehrsitz/finplan/internal/domain"
	"gopkg.in/yaml.v3"
)

// JSONFormatter renders the plan as JSON; decimals are encoded as strings
type JSONFormatter struct {
	Pretty bool
}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(plan *domain.FinancialPlan) ([]byte, error) {
	if plan == nil {
		return nil, ErrNilPlan
	}
	if j.Pretty {
		return json.MarshalIndent(plan, "", "  ")
	}
	return json.Marshal(plan)
}

// YAMLFormatter renders the plan as YAML
type YAMLFormatter struct{}

func (YAMLFormatter) Name() string { return "yaml" }

func (YAMLFormatter) Format(plan *domain.FinancialPlan) ([]byte, error) {
	if plan == nil {
		return nil, ErrNilPlan
	}
	return yaml.Marshal(yamlPlan(plan))
}

// yamlPlan rounds amounts to cents for the printed document
func yamlPlan(plan *domain.FinancialPlan) map[string]any {
	goals := make([]map[string]any, 0, len(plan.GoalTimelines))
	for _, g := range plan.GoalTimelines {
		goals = append(goals, map[string]any{
			"goal":   g.Goal,
			"amount": g.Amount.StringFixed(2),
			"years":  g.Years,
		})
	}
	return map[string]any{
		"emergency_fund_target": plan.EmergencyFundTarget.StringFixed(2),
		"monthly_investment":    plan.MonthlyInvestment.StringFixed(2),
		"retirement_corpus":     plan.RetirementCorpus.StringFixed(2),
		"retirement_age":        plan.RetirementAge,
		"goal_timelines":        goals,
		"recommendations":       plan.Recommendations,
	}
}

// CSVFormatter writes one row per plan figure followed by one row per goal
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(plan *domain.FinancialPlan) ([]byte, error) {
	if plan == nil {
		return nil, ErrNilPlan
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	rows := [][]string{
		{"Item", "Amount", "Years"},
		{"Emergency Fund Target", plan.EmergencyFundTarget.StringFixed(2), ""},
		{"Monthly Investment", plan.MonthlyInvestment.StringFixed(2), ""},
		{"Retirement Corpus", plan.RetirementCorpus.StringFixed(2), ""},
	}
	for _, g := range plan.GoalTimelines {
		years := "unreachable"
		if g.IsReachable() {
			years = strconv.Itoa(g.Years)
		}
		rows = append(rows, []string{"Goal: " + g.Goal, g.Amount.StringFixed(2), years})
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
