package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Plan",
		"Type",
		"Risk Tolerance",
		"Start Age",
		"Monthly Investment",
		"Retirement Corpus",
		"Reachable Goals",
		"Corpus Diff from Base",
		"Corpus % Change",
		"Total Years Saved",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if compSet.BaseResult != nil {
		if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
			return "", err
		}
	}

	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&compSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, planType string) []string {
	return []string{
		result.ScenarioName,
		planType,
		string(result.RiskTolerance),
		strconv.Itoa(result.StartAge),
		result.MonthlyInvestment.StringFixed(2),
		result.RetirementCorpus.StringFixed(2),
		strconv.Itoa(result.ReachableGoals),
		result.CorpusDiffFromBase.StringFixed(2),
		result.CorpusPctFromBase.StringFixed(2),
		strconv.Itoa(result.TotalYearsSaved),
	}
}
