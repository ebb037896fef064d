package components

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/rgehrsitz/finplan/internal/domain"
	"github.com/rgehrsitz/finplan/internal/output"
	"github.com/rgehrsitz/finplan/internal/tui/tuistyles"
)

// GoalRows converts goal timelines into table rows
func GoalRows(goals []domain.GoalTimeline, symbol string) []table.Row {
	rows := make([]table.Row, 0, len(goals))
	for _, g := range goals {
		rows = append(rows, table.Row{
			g.Goal,
			output.FormatAmount(g.Amount, symbol),
			output.FormatYears(g.Years),
		})
	}
	return rows
}

// NewGoalTable builds a scrollable table of goal timelines
func NewGoalTable(goals []domain.GoalTimeline, symbol string, height int) table.Model {
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Goal", Width: 20},
			{Title: "Target", Width: 14},
			{Title: "Time to reach", Width: 16},
		}),
		table.WithRows(GoalRows(goals, symbol)),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	styles := table.DefaultStyles()
	styles.Header = tuistyles.TableHeaderStyle
	styles.Selected = tuistyles.TableHighlightStyle
	t.SetStyles(styles)
	return t
}
