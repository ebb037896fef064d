package questionnaire

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/rgehrsitz/finplan/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	// ErrEmptyAnswer is returned for blank answers; the flow stays on the current question
	ErrEmptyAnswer = errors.New("answer is empty")
	// ErrInvalidOption is returned when an option answer is not one of the offered options
	ErrInvalidOption = errors.New("answer is not one of the options")
	// ErrFlowComplete is returned when answering after the last question
	ErrFlowComplete = errors.New("questionnaire is already complete")
)

// AnswerError describes a rejected answer
type AnswerError struct {
	QuestionID string
	Input      string
	Err        error
}

func (e *AnswerError) Error() string {
	return fmt.Sprintf("question %s: %q: %v", e.QuestionID, e.Input, e.Err)
}

func (e *AnswerError) Unwrap() error {
	return e.Err
}

// Flow accumulates a profile by asking questions in order. A Flow is not safe
// for concurrent use.
type Flow struct {
	questions []Question
	index     int
	profile   domain.UserProfile
	answers   map[string]string
}

// NewFlow creates a flow over questions; nil means DefaultQuestions
func NewFlow(questions []Question) *Flow {
	if questions == nil {
		questions = DefaultQuestions()
	}
	return &Flow{
		questions: questions,
		answers:   make(map[string]string, len(questions)),
	}
}

// Current returns the question awaiting an answer; false once the flow is done
func (f *Flow) Current() (Question, bool) {
	if f.Done() {
		return Question{}, false
	}
	return f.questions[f.index], true
}

// Done reports whether every question has been answered
func (f *Flow) Done() bool {
	return f.index >= len(f.questions)
}

// Progress returns how many questions have been answered out of the total
func (f *Flow) Progress() (answered, total int) {
	return f.index, len(f.questions)
}

// Answer parses input for the current question and advances. On error the
// flow does not move and the profile is unchanged.
func (f *Flow) Answer(input string) error {
	q, ok := f.Current()
	if !ok {
		return ErrFlowComplete
	}
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return &AnswerError{QuestionID: q.ID, Input: input, Err: ErrEmptyAnswer}
	}
	if err := apply(&f.profile, q, trimmed); err != nil {
		return &AnswerError{QuestionID: q.ID, Input: input, Err: err}
	}
	f.answers[q.ID] = trimmed
	f.index++
	return nil
}

// Back returns to the previous question. The earlier answer stays in the
// profile until it is answered again.
func (f *Flow) Back() bool {
	if f.index == 0 {
		return false
	}
	f.index--
	return true
}

// Reset discards all answers and returns to the first question
func (f *Flow) Reset() {
	f.index = 0
	f.profile = domain.UserProfile{}
	f.answers = make(map[string]string, len(f.questions))
}

// RawAnswer returns the accepted text for a question id
func (f *Flow) RawAnswer(questionID string) (string, bool) {
	a, ok := f.answers[questionID]
	return a, ok
}

// Profile returns a copy of the profile accumulated so far
func (f *Flow) Profile() domain.UserProfile {
	return *f.profile.DeepCopy()
}

// apply parses answer according to q and stores it in p
func apply(p *domain.UserProfile, q Question, answer string) error {
	switch q.Kind {
	case KindNumber:
		return setNumber(p, q.Field, answer)
	case KindText:
		return setText(p, q.Field, answer)
	case KindOption:
		option, err := matchOption(q.Options, answer)
		if err != nil {
			return err
		}
		return setText(p, q.Field, option)
	case KindBoolean:
		return setBool(p, q.Field, ParseYes(answer))
	case KindMultiple:
		if q.Field != FieldGoals {
			return fmt.Errorf("field %s does not take multiple answers", q.Field)
		}
		p.Goals = ParseGoals(answer)
		return nil
	default:
		return fmt.Errorf("unsupported question kind %s", q.Kind)
	}
}

func setNumber(p *domain.UserProfile, field Field, answer string) error {
	if field == FieldAge {
		// an unreadable age is left unset so the engine default applies
		age, ok := parseLeadingNumber(answer)
		if ok {
			v := int(age.IntPart())
			p.Age = &v
		} else {
			p.Age = nil
		}
		return nil
	}

	v, _ := parseLeadingNumber(answer)
	switch field {
	case FieldMonthlyIncome:
		p.MonthlyIncome = &v
	case FieldCurrentSavings:
		p.CurrentSavings = &v
	case FieldExistingInvestments:
		p.ExistingInvestments = &v
	case FieldMonthlySavingCapacity:
		p.MonthlySavingCapacity = &v
	case FieldEmergencyFundMonths:
		p.EmergencyFundMonths = &v
	default:
		return fmt.Errorf("field %s is not numeric", field)
	}
	return nil
}

func setText(p *domain.UserProfile, field Field, answer string) error {
	switch field {
	case FieldLocation:
		p.Location = answer
	case FieldMaritalStatus:
		p.MaritalStatus = domain.MaritalStatus(answer)
	case FieldRiskTolerance:
		p.RiskTolerance = domain.RiskTolerance(answer)
	default:
		return fmt.Errorf("field %s is not textual", field)
	}
	return nil
}

func setBool(p *domain.UserProfile, field Field, v bool) error {
	switch field {
	case FieldHasTermInsurance:
		p.HasTermInsurance = v
	case FieldHasMedicalInsurance:
		p.HasMedicalInsurance = v
	default:
		return fmt.Errorf("field %s is not a yes/no field", field)
	}
	return nil
}

func matchOption(options []string, answer string) (string, error) {
	lower := strings.ToLower(answer)
	for _, o := range options {
		if strings.ToLower(o) == lower {
			return o, nil
		}
	}
	return "", fmt.Errorf("%w: expected one of %s", ErrInvalidOption, strings.Join(options, ", "))
}

// leadingNumber matches a decimal number at the start of an answer, allowing
// thousands separators ("1,20,000" or "120,000.50")
var leadingNumber = regexp.MustCompile(`^[+-]?(\d[\d,]*)?(\.\d+)?`)

// ParseNumber reads the number an answer starts with, or zero when it does
// not start with one
func ParseNumber(answer string) decimal.Decimal {
	v, _ := parseLeadingNumber(answer)
	return v
}

func parseLeadingNumber(answer string) (decimal.Decimal, bool) {
	m := leadingNumber.FindString(strings.TrimSpace(answer))
	m = strings.ReplaceAll(m, ",", "")
	if m == "" || m == "+" || m == "-" {
		return decimal.Zero, false
	}
	v, err := decimal.NewFromString(m)
	if err != nil {
		return decimal.Zero, false
	}
	return v, true
}

// ParseYes reports whether an answer contains "yes" in any case
func ParseYes(answer string) bool {
	return strings.Contains(strings.ToLower(answer), "yes")
}

var goalSeparators = regexp.MustCompile(`[,;\s]+`)

// ParseGoals splits free text into goal tags, keeping input order and
// duplicates. Two-word tags such as "emergency fund" are recognized when
// their words are adjacent.
func ParseGoals(answer string) []string {
	tokens := goalSeparators.Split(strings.ToLower(strings.TrimSpace(answer)), -1)
	words := tokens[:0]
	for _, t := range tokens {
		if t != "" && t != "and" {
			words = append(words, t)
		}
	}

	goals := make([]string, 0, len(words))
	for i := 0; i < len(words); i++ {
		if i+1 < len(words) {
			pair := words[i] + " " + words[i+1]
			if domain.IsKnownGoal(pair) {
				goals = append(goals, pair)
				i++
				continue
			}
		}
		goals = append(goals, words[i])
	}
	return goals
}

// AnswerValue returns strconv-friendly text for a numeric profile field; used
// by front ends that prefill inputs
func AnswerValue(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}

// FormatAge renders an optional age for display
func FormatAge(age *int) string {
	if age == nil {
		return ""
	}
	return strconv.Itoa(*age)
}
