package tui

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/rgehrsitz/finplan/internal/domain"
	"github.com/rgehrsitz/finplan/internal/questionnaire"
)

// answers holds the values bound to the form fields, keyed by question id
type answers struct {
	text  map[string]*string
	flags map[string]*bool
	multi map[string]*[]string
}

// newAnswers prepares a value for every question, prefilled from profile when
// one is given
func newAnswers(questions []questionnaire.Question, profile *domain.UserProfile) *answers {
	a := &answers{
		text:  make(map[string]*string),
		flags: make(map[string]*bool),
		multi: make(map[string]*[]string),
	}
	for _, q := range questions {
		switch q.Kind {
		case questionnaire.KindBoolean:
			v := profile != nil && prefillFlag(profile, q.Field)
			a.flags[q.ID] = &v
		case questionnaire.KindMultiple:
			var v []string
			if profile != nil {
				for _, g := range profile.Goals {
					if slices.Contains(q.Options, g) {
						v = append(v, g)
					}
				}
			}
			a.multi[q.ID] = &v
		default:
			v := ""
			if profile != nil {
				v = prefillText(profile, q.Field)
			}
			a.text[q.ID] = &v
		}
	}
	return a
}

func prefillText(p *domain.UserProfile, field questionnaire.Field) string {
	switch field {
	case questionnaire.FieldAge:
		return questionnaire.FormatAge(p.Age)
	case questionnaire.FieldLocation:
		return p.Location
	case questionnaire.FieldMaritalStatus:
		return string(p.MaritalStatus)
	case questionnaire.FieldMonthlyIncome:
		return questionnaire.AnswerValue(p.MonthlyIncome)
	case questionnaire.FieldCurrentSavings:
		return questionnaire.AnswerValue(p.CurrentSavings)
	case questionnaire.FieldExistingInvestments:
		return questionnaire.AnswerValue(p.ExistingInvestments)
	case questionnaire.FieldMonthlySavingCapacity:
		return questionnaire.AnswerValue(p.MonthlySavingCapacity)
	case questionnaire.FieldEmergencyFundMonths:
		return questionnaire.AnswerValue(p.EmergencyFundMonths)
	case questionnaire.FieldRiskTolerance:
		if p.RiskTolerance == "" {
			return ""
		}
		return string(p.RiskTolerance.Normalize())
	}
	return ""
}

func prefillFlag(p *domain.UserProfile, field questionnaire.Field) bool {
	switch field {
	case questionnaire.FieldHasTermInsurance:
		return p.HasTermInsurance
	case questionnaire.FieldHasMedicalInsurance:
		return p.HasMedicalInsurance
	}
	return false
}

// raw renders the bound value for q as the text a user would have typed
func (a *answers) raw(q questionnaire.Question) string {
	switch q.Kind {
	case questionnaire.KindBoolean:
		if *a.flags[q.ID] {
			return "yes"
		}
		return "no"
	case questionnaire.KindMultiple:
		return strings.Join(*a.multi[q.ID], ", ")
	default:
		return *a.text[q.ID]
	}
}

// Profile replays the answers through a questionnaire flow
func (a *answers) Profile(questions []questionnaire.Question) (domain.UserProfile, error) {
	flow := questionnaire.NewFlow(questions)
	for _, q := range questions {
		if err := flow.Answer(a.raw(q)); err != nil {
			return domain.UserProfile{}, fmt.Errorf("question %s: %w", q.ID, err)
		}
	}
	return flow.Profile(), nil
}

func requireText(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("an answer is required")
	}
	return nil
}

// newForm builds one form page per question
func newForm(questions []questionnaire.Question, a *answers) *huh.Form {
	groups := make([]*huh.Group, 0, len(questions))
	for _, q := range questions {
		var field huh.Field
		switch q.Kind {
		case questionnaire.KindOption:
			field = huh.NewSelect[string]().
				Key(q.ID).
				Title(q.Prompt).
				Options(huh.NewOptions(q.Options...)...).
				Value(a.text[q.ID])
		case questionnaire.KindBoolean:
			field = huh.NewConfirm().
				Key(q.ID).
				Title(q.Prompt).
				Affirmative("Yes").
				Negative("No").
				Value(a.flags[q.ID])
		case questionnaire.KindMultiple:
			field = huh.NewMultiSelect[string]().
				Key(q.ID).
				Title(q.Prompt).
				Options(huh.NewOptions(q.Options...)...).
				Value(a.multi[q.ID]).
				Validate(func(goals []string) error {
					if len(goals) == 0 {
						return errors.New("pick at least one goal")
					}
					return nil
				})
		default:
			input := huh.NewInput().
				Key(q.ID).
				Title(q.Prompt).
				Value(a.text[q.ID]).
				Validate(requireText)
			if q.Kind == questionnaire.KindNumber {
				input = input.Placeholder("0")
			}
			field = input
		}
		groups = append(groups, huh.NewGroup(field))
	}

	return huh.NewForm(groups...).
		WithShowHelp(true).
		WithTheme(huh.ThemeCharm())
}
