package components

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rgehrsitz/finplan/internal/domain"
)

func TestMetricCard_Render(t *testing.T) {
	card := NewMetricCard("Corpus", "₹4.5 Cr").
		WithTrend(true, "+₹2.5 Cr").
		WithDescription("by age 60").
		WithWidth(30)

	out := card.Render()

	assert.Equal(t, 30, card.Width)
	assert.Contains(t, out, "Corpus")
	assert.Contains(t, out, "₹4.5 Cr")
	assert.Contains(t, out, "↑ +₹2.5 Cr")
	assert.Contains(t, out, "by age 60")
}

func TestMetricCard_NegativeTrend(t *testing.T) {
	out := NewMetricCard("Corpus", "₹3.0 Cr").WithTrend(false, "-₹1.5 Cr").Render()
	assert.Contains(t, out, "↓ -₹1.5 Cr")
}

func TestMetricGrid(t *testing.T) {
	assert.Empty(t, MetricGrid(nil, 2))

	cards := []*MetricCard{
		NewMetricCard("A", "1"),
		NewMetricCard("B", "2"),
		NewMetricCard("C", "3"),
	}
	twoCols := MetricGrid(cards, 2)
	oneRow := MetricGrid(cards, 3)

	assert.Greater(t, strings.Count(twoCols, "\n"), strings.Count(oneRow, "\n"))
	assert.Equal(t, MetricGrid(cards, 1), MetricGrid(cards, 0), "columns below one mean a single column")
}

func TestGoalRows(t *testing.T) {
	rows := GoalRows([]domain.GoalTimeline{
		{Goal: "home", Amount: decimal.NewFromInt(5_000_000), Years: 21},
		{Goal: "travel", Amount: decimal.NewFromInt(500_000), Years: 1},
		{Goal: "business", Amount: decimal.NewFromInt(3_000_000), Years: domain.UnreachableYears},
	}, "₹")

	assert.Len(t, rows, 3)
	assert.Equal(t, []string{"home", "₹50.0 L", "21 years"}, []string(rows[0]))
	assert.Equal(t, "1 year", rows[1][2])
	assert.Equal(t, "Not reachable", rows[2][2])
}

func TestNewGoalTable(t *testing.T) {
	tbl := NewGoalTable([]domain.GoalTimeline{
		{Goal: "home", Amount: decimal.NewFromInt(5_000_000), Years: 21},
	}, "₹", 4)

	assert.Len(t, tbl.Rows(), 1)
	view := tbl.View()
	assert.Contains(t, view, "Goal")
	assert.Contains(t, view, "home")
}

func TestScenarioCard(t *testing.T) {
	card := NewScenarioCard("aggressive").
		WithDescription("Higher risk").
		AddHighlight("Corpus change: +₹2.5 Cr").
		SetSelected(true).
		WithWidth(40)

	out := card.Render()
	assert.True(t, card.IsSelected)
	assert.Contains(t, out, "aggressive")
	assert.Contains(t, out, "Higher risk")
	assert.Contains(t, out, "• Corpus change")

	assert.Contains(t, card.RenderCompact(), "aggressive")
}

func TestScenarioListCompact(t *testing.T) {
	assert.Contains(t, ScenarioListCompact(nil, 0), "No alternatives")

	list := ScenarioListCompact([]*ScenarioCard{NewScenarioCard("a"), NewScenarioCard("b")}, 1)
	lines := strings.Split(list, "\n")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "  a"))
	assert.True(t, strings.HasPrefix(lines[1], "▸ b"))
}
