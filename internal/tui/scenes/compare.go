package scenes

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/finplan/internal/compare"
	"github.com/rgehrsitz/finplan/internal/output"
	"github.com/rgehrsitz/finplan/internal/tui/components"
	"github.com/rgehrsitz/finplan/internal/tui/tuistyles"
)

// CompareModel lists alternative strategies next to the base plan
type CompareModel struct {
	set    *compare.ComparisonSet
	cursor int
	width  int
	height int
}

// NewCompareModel creates a new compare scene model
func NewCompareModel() *CompareModel {
	return &CompareModel{}
}

// SetComparison stores the comparison to display
func (m *CompareModel) SetComparison(set *compare.ComparisonSet) {
	m.set = set
	m.cursor = 0
}

// SetSize updates the model dimensions
func (m *CompareModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Cursor returns the index of the selected alternative
func (m *CompareModel) Cursor() int {
	return m.cursor
}

// Update moves the selection
func (m *CompareModel) Update(msg tea.Msg) (*CompareModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.set == nil {
		return m, nil
	}

	last := len(m.set.AlternativeResults) - 1
	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k"))):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j"))):
		if m.cursor < last {
			m.cursor++
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("g", "home"))):
		m.cursor = 0
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("G", "end"))):
		m.cursor = max(last, 0)
	}
	return m, nil
}

// View renders the comparison scene
func (m *CompareModel) View() string {
	if m.set == nil || m.set.BaseResult == nil {
		return tuistyles.InfoStyle.Render("No comparison yet. Answer the questionnaire first.")
	}

	symbol := m.set.CurrencySymbol
	base := m.set.BaseResult

	title := lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary).Render("Compare Strategies")
	baseLine := tuistyles.SubtitleStyle.Render(fmt.Sprintf("Your plan: %s corpus, %d/%d goals reachable",
		output.FormatAmount(base.RetirementCorpus, symbol), base.ReachableGoals, len(base.Plan.GoalTimelines)))

	cards := make([]*components.ScenarioCard, 0, len(m.set.AlternativeResults))
	for _, alt := range m.set.AlternativeResults {
		cards = append(cards, alternativeCard(alt, symbol))
	}

	list := components.ScenarioListCompact(cards, m.cursor)
	body := list
	if len(cards) > 0 {
		detailWidth := 48
		if m.width > 0 {
			detailWidth = min(max(m.width-lipgloss.Width(list)-8, 36), 60)
		}
		detail := cards[m.cursor].SetSelected(true).WithWidth(detailWidth).Render()
		body = lipgloss.JoinHorizontal(lipgloss.Top, lipgloss.NewStyle().MarginRight(2).Render(list), detail)
	}

	sections := []string{title, baseLine, "", body}
	if len(m.set.Recommendations) > 0 {
		sections = append(sections, tuistyles.SectionStyle.Render("Recommendations"))
		for _, r := range m.set.Recommendations {
			sections = append(sections, "• "+r)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func alternativeCard(alt compare.ComparisonResult, symbol string) *components.ScenarioCard {
	change := "no change"
	if !alt.CorpusDiffFromBase.IsZero() {
		sign := ""
		if alt.CorpusDiffFromBase.IsPositive() {
			sign = "+"
		}
		change = fmt.Sprintf("%s%s (%s%%)", sign, output.FormatAmount(alt.CorpusDiffFromBase, symbol), alt.CorpusPctFromBase.StringFixed(1))
	}

	card := components.NewScenarioCard(alt.ScenarioName).
		WithDescription(alt.Description).
		AddHighlight("Corpus change: " + change).
		AddHighlight("Retirement corpus: " + output.FormatAmount(alt.RetirementCorpus, symbol)).
		AddHighlight(fmt.Sprintf("Saving %s/month at %s risk from age %d",
			output.FormatAmount(alt.MonthlyInvestment, symbol), alt.RiskTolerance, alt.StartAge))
	for _, d := range alt.GoalDeltas {
		card.AddHighlight(fmt.Sprintf("%s: %s", d.Goal, d.Change()))
	}
	return card
}
