package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// chromeHeight is the space taken by the title and status bars
const chromeHeight = 6

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resultsModel.SetSize(msg.Width, msg.Height-chromeHeight)
		m.compareModel.SetSize(msg.Width, msg.Height-chromeHeight)
		if m.form != nil {
			m.form = m.form.WithWidth(min(msg.Width-4, 100))
		}
		return m, nil

	case NavigateMsg:
		m.scene = msg.Scene
		return m, nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case PlanComputedMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m.restartForm()
		}
		m.err = nil
		profile := msg.Profile
		m.profile = &profile
		m.resultsModel.SetPlan(msg.Profile, msg.Plan, m.engine.Assumptions.CurrencySymbol)
		m.compareModel.SetComparison(msg.Comparison)
		m.scene = SceneResults
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.scene == SceneQuestionnaire {
			return m.updateForm(msg)
		}
		return m.handleKeyPress(msg)
	}

	// Forward everything else (cursor blinks, etc.) to the form
	if m.scene == SceneQuestionnaire && m.form != nil {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form == nil || m.loading {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.loading = true
		return m, computePlanCmd(m.engine, m.compareEngine, m.templates, m.questions, m.answers)
	case huh.StateAborted:
		if m.profile != nil {
			// back to the plan we already have
			m.scene = SceneResults
			return m, nil
		}
		return m, tea.Quit
	}

	return m, cmd
}

// restartForm builds a fresh form seeded with the current answers
func (m Model) restartForm() (tea.Model, tea.Cmd) {
	m.form = newForm(m.questions, m.answers)
	if m.width > 0 {
		m.form = m.form.WithWidth(min(m.width-4, 100))
	}
	m.scene = SceneQuestionnaire
	return m, m.form.Init()
}

// handleKeyPress processes keyboard input outside the questionnaire
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Results):
		return m, func() tea.Msg { return NavigateMsg{Scene: SceneResults} }

	case key.Matches(msg, m.keys.Compare):
		return m, func() tea.Msg { return NavigateMsg{Scene: SceneCompare} }

	case key.Matches(msg, m.keys.NewPlan):
		return m.restartForm()
	}

	return m.updateCurrentScene(msg)
}

// updateCurrentScene delegates updates to the current scene's model
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.scene {
	case SceneResults:
		m.resultsModel, cmd = m.resultsModel.Update(msg)
	case SceneCompare:
		m.compareModel, cmd = m.compareModel.Update(msg)
	}
	return m, cmd
}
