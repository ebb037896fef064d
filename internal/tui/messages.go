package tui

import (
	"github.com/rgehrsitz/finplan/internal/compare"
	"github.com/rgehrsitz/finplan/internal/domain"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneQuestionnaire Scene = iota
	SceneResults
	SceneCompare
)

func (s Scene) String() string {
	switch s {
	case SceneQuestionnaire:
		return "Questionnaire"
	case SceneResults:
		return "Results"
	case SceneCompare:
		return "Compare"
	default:
		return "Unknown"
	}
}

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// PlanComputedMsg carries the plan and comparison for a finished questionnaire
type PlanComputedMsg struct {
	Profile    domain.UserProfile
	Plan       domain.FinancialPlan
	Comparison *compare.ComparisonSet
	Err        error
}
