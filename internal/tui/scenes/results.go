package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/finplan/internal/domain"
	"github.com/rgehrsitz/finplan/internal/output"
	"github.com/rgehrsitz/finplan/internal/tui/components"
	"github.com/rgehrsitz/finplan/internal/tui/tuistyles"
)

// ResultsModel shows a computed plan
type ResultsModel struct {
	profile domain.UserProfile
	plan    *domain.FinancialPlan
	symbol  string
	goals   table.Model
	width   int
	height  int
}

// NewResultsModel creates a new results scene model
func NewResultsModel() *ResultsModel {
	return &ResultsModel{goals: components.NewGoalTable(nil, "", 3)}
}

// SetPlan replaces the plan on display
func (m *ResultsModel) SetPlan(profile domain.UserProfile, plan domain.FinancialPlan, symbol string) {
	m.profile = profile
	m.plan = &plan
	m.symbol = symbol
	m.goals = components.NewGoalTable(plan.GoalTimelines, symbol, m.tableHeight())
}

// Plan returns the plan on display, if any
func (m *ResultsModel) Plan() (domain.FinancialPlan, bool) {
	if m.plan == nil {
		return domain.FinancialPlan{}, false
	}
	return *m.plan, true
}

// SetSize updates the scene dimensions
func (m *ResultsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.goals.SetHeight(m.tableHeight())
}

// tableHeight includes the two header lines
func (m *ResultsModel) tableHeight() int {
	rows := 1
	if m.plan != nil {
		rows = max(len(m.plan.GoalTimelines), 1)
	}
	// cards and recommendations take roughly half the screen
	if limit := m.height/2 - 2; limit > 1 && rows > limit {
		rows = limit
	}
	return rows + 2
}

// Update scrolls the goal table
func (m *ResultsModel) Update(msg tea.Msg) (*ResultsModel, tea.Cmd) {
	var cmd tea.Cmd
	m.goals, cmd = m.goals.Update(msg)
	return m, cmd
}

// View renders the results scene
func (m *ResultsModel) View() string {
	if m.plan == nil {
		return tuistyles.InfoStyle.Render("No plan yet. Answer the questionnaire first.")
	}

	sections := []string{
		m.renderHeader(),
		"",
		m.renderMetrics(),
		tuistyles.SectionStyle.Render("Goal Timelines"),
	}
	if len(m.plan.GoalTimelines) == 0 {
		sections = append(sections, tuistyles.SubtitleStyle.Render("No goals selected"))
	} else {
		sections = append(sections, m.goals.View())
	}

	if len(m.plan.Recommendations) > 0 {
		sections = append(sections, tuistyles.SectionStyle.Render("Recommendations"))
		for _, r := range m.plan.Recommendations {
			sections = append(sections, "• "+r)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *ResultsModel) renderHeader() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(tuistyles.ColorPrimary).
		Render("Your Financial Plan")

	var facts []string
	if m.profile.Age != nil && *m.profile.Age > 0 {
		facts = append(facts, fmt.Sprintf("age %d", *m.profile.Age))
	}
	facts = append(facts, string(m.profile.RiskTolerance.Normalize())+" risk")
	if m.profile.Location != "" {
		facts = append(facts, m.profile.Location)
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, tuistyles.SubtitleStyle.Render(strings.Join(facts, " · ")))
}

func (m *ResultsModel) renderMetrics() string {
	reachable := 0
	for _, g := range m.plan.GoalTimelines {
		if g.IsReachable() {
			reachable++
		}
	}

	cards := []*components.MetricCard{
		components.NewMetricCard("Emergency Fund", output.FormatAmount(m.plan.EmergencyFundTarget, m.symbol)).
			WithDescription("target to keep liquid"),
		components.NewMetricCard("Monthly Investment", output.FormatAmount(m.plan.MonthlyInvestment, m.symbol)).
			WithDescription("towards your goals"),
		components.NewMetricCard("Retirement Corpus", output.FormatAmount(m.plan.RetirementCorpus, m.symbol)).
			WithDescription(fmt.Sprintf("by age %d", m.plan.RetirementAge)),
		components.NewMetricCard("Goals", fmt.Sprintf("%d of %d", reachable, len(m.plan.GoalTimelines))).
			WithDescription("reachable by saving"),
	}

	columns := 4
	if m.width > 0 && m.width < 4*28 {
		columns = 2
	}
	return components.MetricGrid(cards, columns)
}
