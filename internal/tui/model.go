// Package tui implements the interactive planner: a questionnaire form that
// produces a plan, with scenes for the plan itself and for alternative
// strategies.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/rgehrsitz/finplan/internal/calculation"
	"github.com/rgehrsitz/finplan/internal/compare"
	"github.com/rgehrsitz/finplan/internal/domain"
	"github.com/rgehrsitz/finplan/internal/questionnaire"
	"github.com/rgehrsitz/finplan/internal/tui/scenes"
)

// DefaultTemplates are the strategies shown on the compare scene
var DefaultTemplates = []string{"conservative", "aggressive", "save_10pct_more", "save_25pct_more", "start_5yr_later"}

// Options configures a Model
type Options struct {
	Engine    *calculation.PlanEngine // nil uses the default assumptions
	Prefill   *domain.UserProfile     // optional answers to start from
	Templates []string                // nil uses DefaultTemplates
}

// Model represents the entire application state
type Model struct {
	scene  Scene
	width  int
	height int

	questions []questionnaire.Question
	answers   *answers
	form      *huh.Form

	engine        *calculation.PlanEngine
	compareEngine *compare.CompareEngine
	templates     []string

	resultsModel *scenes.ResultsModel
	compareModel *scenes.CompareModel
	profile      *domain.UserProfile

	keys keyMap
	help help.Model

	err     error
	loading bool
}

// NewModel creates a new application model
func NewModel(opts Options) Model {
	engine := opts.Engine
	if engine == nil {
		engine = calculation.NewPlanEngine()
	}
	templates := opts.Templates
	if templates == nil {
		templates = DefaultTemplates
	}

	questions := questionnaire.DefaultQuestions()
	a := newAnswers(questions, opts.Prefill)

	return Model{
		scene:         SceneQuestionnaire,
		width:         80,
		height:        24,
		questions:     questions,
		answers:       a,
		form:          newForm(questions, a),
		engine:        engine,
		compareEngine: compare.NewCompareEngine(engine),
		templates:     templates,
		resultsModel:  scenes.NewResultsModel(),
		compareModel:  scenes.NewCompareModel(),
		keys:          defaultKeyMap(),
		help:          help.New(),
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

// computePlanCmd replays the answers into a profile, computes its plan and
// compares it with the configured templates
func computePlanCmd(
	engine *calculation.PlanEngine,
	compareEngine *compare.CompareEngine,
	templates []string,
	questions []questionnaire.Question,
	a *answers,
) tea.Cmd {
	return func() tea.Msg {
		profile, err := a.Profile(questions)
		if err != nil {
			return PlanComputedMsg{Err: err}
		}

		plan := engine.ComputePlan(profile)

		comparison, err := compareEngine.Compare(context.Background(), &profile, compare.CompareOptions{
			BaseScenarioName: "your plan",
			Templates:        templates,
		})
		if err != nil {
			return PlanComputedMsg{Profile: profile, Plan: plan, Err: err}
		}

		return PlanComputedMsg{
			Profile:    profile,
			Plan:       plan,
			Comparison: comparison,
		}
	}
}
