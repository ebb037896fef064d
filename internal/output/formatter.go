package output

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/rgehrsitz/finplan/internal/domain"
)

// ErrNilPlan is returned by formatters given no plan
var ErrNilPlan = errors.New("plan is nil")

// Formatter renders a plan in one output format
type Formatter interface {
	Name() string
	Format(plan *domain.FinancialPlan) ([]byte, error)
}

// FormatterFunc adapts a function to the Formatter interface
type FormatterFunc struct {
	ID string
	F  func(plan *domain.FinancialPlan) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(plan *domain.FinancialPlan) ([]byte, error) { return f.F(plan) }

// formatAliases maps alternate names onto canonical formatter names
var formatAliases = map[string]string{
	"text": "console",
	"txt":  "console",
	"yml":  "yaml",
}

// GetFormatterByName returns the formatter for name (or an alias), or nil if unknown.
// symbol is used where amounts are rendered for people rather than machines.
func GetFormatterByName(name, symbol string) Formatter {
	if canonical, ok := formatAliases[name]; ok {
		name = canonical
	}
	switch name {
	case "console":
		return ConsoleFormatter{Symbol: symbol}
	case "json":
		return JSONFormatter{Pretty: true}
	case "yaml":
		return YAMLFormatter{}
	case "csv":
		return CSVFormatter{}
	default:
		return nil
	}
}

// AvailableFormatterNames lists the canonical formatter names
func AvailableFormatterNames() []string {
	return []string{"console", "json", "yaml", "csv"}
}

// AvailableFormatAliases lists accepted aliases in sorted order
func AvailableFormatAliases() []string {
	aliases := make([]string, 0, len(formatAliases))
	for alias := range formatAliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}

// WriteFormatted writes a formatted plan to a timestamped file in the working
// directory and returns its name
func WriteFormatted(f Formatter, plan *domain.FinancialPlan, ext string) (string, error) {
	data, err := f.Format(plan)
	if err != nil {
		return "", fmt.Errorf("failed to format plan: %w", err)
	}
	filename := fmt.Sprintf("financial_plan_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}
