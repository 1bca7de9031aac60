package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rinkside/rinkside/internal/model"
)

// ScoreboardWidget lists today's games. Selecting a game drills into the
// home team.
type ScoreboardWidget struct {
	games   []model.Game
	selIdx  int
	scroll  int
	focused bool
	keys    selectionKeys
}

func NewScoreboardWidget(games []model.Game) *ScoreboardWidget {
	return &ScoreboardWidget{games: games, keys: defaultSelectionKeys()}
}

func (w *ScoreboardWidget) SetFocused(focused bool) { w.focused = focused }

func (w *ScoreboardWidget) PreferredHeight() (int, bool) { return 0, false }
func (w *ScoreboardWidget) PreferredWidth() (int, bool)  { return 0, false }

func (w *ScoreboardWidget) HandleKey(msg tea.KeyMsg) InputResult {
	switch {
	case key.Matches(msg, w.keys.Up):
		if w.selIdx > 0 {
			w.selIdx--
		}
		return Handled()
	case key.Matches(msg, w.keys.Down):
		if w.selIdx < len(w.games)-1 {
			w.selIdx++
		}
		return Handled()
	case key.Matches(msg, w.keys.Enter):
		if w.selIdx >= 0 && w.selIdx < len(w.games) {
			return Navigate(ToTeam(w.games[w.selIdx].Home))
		}
	}
	return NotHandled()
}

func (w *ScoreboardWidget) Render(area Rect, skin *Skin) string {
	if area.Empty() {
		return ""
	}
	innerW, innerH := innerSize(area)

	lines := []string{widgetTitle(skin, "Scoreboard")}
	rowCount := max(0, innerH-1)
	w.scroll = clampScroll(w.scroll, w.selIdx, len(w.games), rowCount)

	normal := lipgloss.NewStyle().Foreground(skin.Text)
	selected := lipgloss.NewStyle().Background(skin.Highlight).Foreground(skin.Text).Bold(true)
	for i := w.scroll; i < len(w.games) && i < w.scroll+rowCount; i++ {
		line := cell(formatGameLine(w.games[i]), innerW)
		if i == w.selIdx && w.focused {
			line = selected.Render(line)
		} else {
			line = normal.Render(line)
		}
		lines = append(lines, line)
	}
	if len(w.games) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(skin.Dim).Render("No games today"))
	}

	frame := widgetFrame(skin, w.focused, area.W, area.H)
	return frame.Render(lipgloss.JoinVertical(lipgloss.Left, clampLines(lines, innerH)...))
}

func formatGameLine(g model.Game) string {
	status := ""
	switch g.State {
	case model.GameLive:
		status = fmt.Sprintf("%s %s", g.Period, g.Clock)
	case model.GameFinal:
		status = "Final"
	default:
		status = g.Start
	}
	return fmt.Sprintf("%-3s %2d @ %-3s %2d  %s", g.Away, g.AwayScore, g.Home, g.HomeScore, status)
}

// clampScroll keeps the selection visible within a window of rowCount rows.
func clampScroll(scroll, selIdx, total, rowCount int) int {
	if rowCount <= 0 || total == 0 {
		return 0
	}
	if selIdx < scroll {
		scroll = selIdx
	}
	if selIdx >= scroll+rowCount {
		scroll = selIdx - rowCount + 1
	}
	return max(0, min(scroll, max(0, total-rowCount)))
}
