package tui

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/sparkline"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rinkside/rinkside/internal/model"
)

const teamCardHeight = 9

// TeamCardWidget is the static bio card at the top of a team detail panel:
// franchise facts, the season record, and a sparkline of points earned over
// the last ten games. It never consumes input.
type TeamCardWidget struct {
	team    model.Team
	row     model.StandingRow
	hasRow  bool
	focused bool
}

func NewTeamCardWidget(team model.Team, row model.StandingRow, hasRow bool) *TeamCardWidget {
	return &TeamCardWidget{team: team, row: row, hasRow: hasRow}
}

func (w *TeamCardWidget) SetFocused(focused bool) { w.focused = focused }

func (w *TeamCardWidget) PreferredHeight() (int, bool) { return teamCardHeight, true }
func (w *TeamCardWidget) PreferredWidth() (int, bool)  { return 0, false }

func (w *TeamCardWidget) HandleKey(tea.KeyMsg) InputResult { return NotHandled() }

func (w *TeamCardWidget) Render(area Rect, skin *Skin) string {
	if area.Empty() {
		return ""
	}
	innerW, innerH := innerSize(area)

	label := lipgloss.NewStyle().Foreground(skin.Dim)
	value := lipgloss.NewStyle().Foreground(skin.Text)

	lines := []string{widgetTitle(skin, w.team.Name)}
	lines = append(lines,
		label.Render("Division   ")+value.Render(fmt.Sprintf("%s (%s)", w.team.Division, w.team.Conference)),
		label.Render("Venue      ")+value.Render(w.team.Venue),
		label.Render("Coach      ")+value.Render(w.team.Coach),
	)

	if w.hasRow {
		record := fmt.Sprintf("%d-%d-%d  %d pts", w.row.Wins, w.row.Losses, w.row.OTLosses, w.row.Points)
		lines = append(lines, label.Render("Record     ")+value.Render(record))
		if spark := formSparkline(w.row.Form, innerW, skin); spark != "" {
			lines = append(lines, label.Render("Last 10    ")+spark)
		}
	}

	frame := widgetFrame(skin, w.focused, area.W, area.H)
	return frame.Render(lipgloss.JoinVertical(lipgloss.Left, clampLines(lines, innerH)...))
}

// formSparkline draws per-game points (0, 1, or 2) as a one-row sparkline.
func formSparkline(form []int, width int, skin *Skin) string {
	if len(form) == 0 || width < len(form)+12 {
		return ""
	}

	sl := sparkline.New(len(form), 1,
		sparkline.WithMaxValue(2),
		sparkline.WithStyle(lipgloss.NewStyle().Foreground(skin.Win)),
	)
	for _, pts := range form {
		sl.Push(float64(pts))
	}
	sl.Draw()
	return sl.View()
}
