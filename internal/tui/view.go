package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/finplan/internal/tui/tuistyles"
)

// View renders the current state of the application
func (m Model) View() string {
	var content string
	switch {
	case m.loading:
		content = tuistyles.InfoStyle.Render("Building your plan...")
	case m.scene == SceneQuestionnaire:
		content = m.form.View()
	case m.scene == SceneResults:
		content = m.resultsModel.View()
	case m.scene == SceneCompare:
		content = m.compareModel.View()
	default:
		content = "Unknown scene"
	}

	if m.err != nil {
		content = lipgloss.JoinVertical(lipgloss.Left,
			tuistyles.ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)),
			"",
			content,
		)
	}

	return tuistyles.AppStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		"",
		content,
		"",
		m.renderStatusBar(),
	))
}

// renderTitleBar renders the application title and breadcrumb
func (m Model) renderTitleBar() string {
	title := tuistyles.TitleStyle.Render("finplan - Financial Independence Planner")

	breadcrumb := m.scene.String()
	if m.scene == SceneQuestionnaire {
		breadcrumb = fmt.Sprintf("%s (%d questions)", breadcrumb, len(m.questions))
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, tuistyles.SubtitleStyle.Render(breadcrumb))
}

// renderStatusBar renders the key help; the form shows its own while it is open
func (m Model) renderStatusBar() string {
	if m.scene == SceneQuestionnaire {
		return ""
	}
	return tuistyles.StatusBarStyle.Render(m.help.View(m.keys))
}
