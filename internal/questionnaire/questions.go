// Package questionnaire collects a domain.UserProfile one answer at a time.
// A Flow walks an ordered list of questions, validating and parsing each
// answer into the profile field the question targets.
package questionnaire

import "github.com/rgehrsitz/finplan/internal/domain"

// Kind determines how an answer is parsed
type Kind int

const (
	KindNumber Kind = iota
	KindText
	KindOption
	KindBoolean
	KindMultiple
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindOption:
		return "option"
	case KindBoolean:
		return "boolean"
	case KindMultiple:
		return "multiple"
	default:
		return "unknown"
	}
}

// Field names a UserProfile field a question fills in
type Field string

const (
	FieldAge                   Field = "age"
	FieldLocation              Field = "location"
	FieldMaritalStatus         Field = "marital_status"
	FieldMonthlyIncome         Field = "monthly_income"
	FieldCurrentSavings        Field = "current_savings"
	FieldExistingInvestments   Field = "existing_investments"
	FieldMonthlySavingCapacity Field = "monthly_saving_capacity"
	FieldEmergencyFundMonths   Field = "emergency_fund_months"
	FieldHasTermInsurance      Field = "has_term_insurance"
	FieldHasMedicalInsurance   Field = "has_medical_insurance"
	FieldGoals                 Field = "goals"
	FieldRiskTolerance         Field = "risk_tolerance"
)

// Question is one step of the flow
type Question struct {
	ID      string
	Prompt  string
	Field   Field
	Kind    Kind
	Options []string
}

// DefaultQuestions returns the standard planning questionnaire
func DefaultQuestions() []Question {
	risk := make([]string, 0, len(domain.RiskTolerances))
	for _, r := range domain.RiskTolerances {
		risk = append(risk, string(r))
	}

	return []Question{
		{
			ID:     "age",
			Prompt: "Great! Let's start by understanding your current situation. What's your age?",
			Field:  FieldAge,
			Kind:   KindNumber,
		},
		{
			ID:     "location",
			Prompt: "Which city/country are you based in? This helps me understand cost of living and investment options.",
			Field:  FieldLocation,
			Kind:   KindText,
		},
		{
			ID:     "marital",
			Prompt: "What's your marital status? (single/married/divorced/widowed)",
			Field:  FieldMaritalStatus,
			Kind:   KindOption,
			Options: []string{
				string(domain.MaritalSingle),
				string(domain.MaritalMarried),
				string(domain.MaritalDivorced),
				string(domain.MaritalWidowed),
			},
		},
		{
			ID:     "income",
			Prompt: "What's your current monthly income after taxes?",
			Field:  FieldMonthlyIncome,
			Kind:   KindNumber,
		},
		{
			ID:     "savings",
			Prompt: "How much do you currently have in savings?",
			Field:  FieldCurrentSavings,
			Kind:   KindNumber,
		},
		{
			ID:     "investments",
			Prompt: "What's the current value of your existing investments (stocks, mutual funds, etc.)?",
			Field:  FieldExistingInvestments,
			Kind:   KindNumber,
		},
		{
			ID:     "capacity",
			Prompt: "How much can you comfortably save/invest every month?",
			Field:  FieldMonthlySavingCapacity,
			Kind:   KindNumber,
		},
		{
			ID:     "emergency",
			Prompt: "Do you have an emergency fund? If yes, how many months of expenses does it cover? (Enter 0 if no emergency fund)",
			Field:  FieldEmergencyFundMonths,
			Kind:   KindNumber,
		},
		{
			ID:     "term",
			Prompt: "Do you have term life insurance? (yes/no)",
			Field:  FieldHasTermInsurance,
			Kind:   KindBoolean,
		},
		{
			ID:     "medical",
			Prompt: "Do you have medical/health insurance? (yes/no)",
			Field:  FieldHasMedicalInsurance,
			Kind:   KindBoolean,
		},
		{
			ID:      "goals",
			Prompt:  "What are your main financial goals? You can mention multiple goals like: retirement, home, education, travel, emergency fund, debt clearance, business",
			Field:   FieldGoals,
			Kind:    KindMultiple,
			Options: append([]string(nil), domain.KnownGoals...),
		},
		{
			ID:      "risk",
			Prompt:  "What's your risk tolerance for investments? (conservative/moderate/aggressive)",
			Field:   FieldRiskTolerance,
			Kind:    KindOption,
			Options: risk,
		},
	}
}
