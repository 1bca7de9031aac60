package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rinkside/rinkside/internal/model"
)

// StandingsWidget is the standings table. Selecting a row drills into that
// team's detail panel.
type StandingsWidget struct {
	rows    []model.StandingRow
	selIdx  int
	scroll  int
	focused bool
	keys    selectionKeys
}

func NewStandingsWidget(rows []model.StandingRow) *StandingsWidget {
	return &StandingsWidget{rows: rows, keys: defaultSelectionKeys()}
}

// SetRows replaces the table contents, clamping the selection.
func (w *StandingsWidget) SetRows(rows []model.StandingRow) {
	w.rows = rows
	if w.selIdx >= len(rows) {
		w.selIdx = max(0, len(rows)-1)
	}
}

func (w *StandingsWidget) SetFocused(focused bool) { w.focused = focused }

func (w *StandingsWidget) PreferredHeight() (int, bool) { return 0, false }
func (w *StandingsWidget) PreferredWidth() (int, bool)  { return 0, false }

func (w *StandingsWidget) HandleKey(msg tea.KeyMsg) InputResult {
	switch {
	case key.Matches(msg, w.keys.Up):
		if w.selIdx > 0 {
			w.selIdx--
		}
		return Handled()
	case key.Matches(msg, w.keys.Down):
		if w.selIdx < len(w.rows)-1 {
			w.selIdx++
		}
		return Handled()
	case key.Matches(msg, w.keys.Enter):
		if w.selIdx >= 0 && w.selIdx < len(w.rows) {
			return Navigate(ToTeam(w.rows[w.selIdx].Team.Abbrev))
		}
	}
	return NotHandled()
}

func (w *StandingsWidget) Render(area Rect, skin *Skin) string {
	if area.Empty() {
		return ""
	}
	innerW, innerH := innerSize(area)

	header := lipgloss.NewStyle().Foreground(skin.Dim).
		Render(cell(fmt.Sprintf("    %-24s %3s %3s %3s %3s %4s %5s", "Team", "GP", "W", "L", "OT", "PTS", "DIFF"), innerW))
	lines := []string{widgetTitle(skin, "Standings"), header}

	rowCount := max(0, innerH-2)
	w.scroll = clampScroll(w.scroll, w.selIdx, len(w.rows), rowCount)

	normal := lipgloss.NewStyle().Foreground(skin.Text)
	selected := lipgloss.NewStyle().Background(skin.Highlight).Foreground(skin.Text).Bold(true)
	for i := w.scroll; i < len(w.rows) && i < w.scroll+rowCount; i++ {
		row := w.rows[i]
		diff := row.GoalsFor - row.GoalsAgainst
		line := cell(fmt.Sprintf("%2d. %-24s %3d %3d %3d %3d %4d %+5d",
			i+1, row.Team.Name, row.GamesPlayed, row.Wins, row.Losses, row.OTLosses, row.Points, diff), innerW)
		if i == w.selIdx && w.focused {
			line = selected.Render(line)
		} else {
			line = normal.Render(line)
		}
		lines = append(lines, line)
	}

	frame := widgetFrame(skin, w.focused, area.W, area.H)
	return frame.Render(lipgloss.JoinVertical(lipgloss.Left, clampLines(lines, innerH)...))
}
