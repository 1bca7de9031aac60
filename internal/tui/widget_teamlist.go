package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rinkside/rinkside/internal/model"
)

// TeamListWidget is the Teams tab root: every franchise, alphabetical.
// Selecting one drills into its detail panel.
type TeamListWidget struct {
	teams   []model.Team
	selIdx  int
	scroll  int
	focused bool
	keys    selectionKeys
}

func NewTeamListWidget(teams []model.Team) *TeamListWidget {
	return &TeamListWidget{teams: teams, keys: defaultSelectionKeys()}
}

func (w *TeamListWidget) SetFocused(focused bool) { w.focused = focused }

func (w *TeamListWidget) PreferredHeight() (int, bool) { return 0, false }
func (w *TeamListWidget) PreferredWidth() (int, bool)  { return 0, false }

func (w *TeamListWidget) HandleKey(msg tea.KeyMsg) InputResult {
	switch {
	case key.Matches(msg, w.keys.Up):
		if w.selIdx > 0 {
			w.selIdx--
		}
		return Handled()
	case key.Matches(msg, w.keys.Down):
		if w.selIdx < len(w.teams)-1 {
			w.selIdx++
		}
		return Handled()
	case key.Matches(msg, w.keys.Enter):
		if w.selIdx >= 0 && w.selIdx < len(w.teams) {
			return Navigate(ToTeam(w.teams[w.selIdx].Abbrev))
		}
	}
	return NotHandled()
}

func (w *TeamListWidget) Render(area Rect, skin *Skin) string {
	if area.Empty() {
		return ""
	}
	innerW, innerH := innerSize(area)

	lines := []string{widgetTitle(skin, "Teams")}
	rowCount := max(0, innerH-1)
	w.scroll = clampScroll(w.scroll, w.selIdx, len(w.teams), rowCount)

	normal := lipgloss.NewStyle().Foreground(skin.Text)
	selected := lipgloss.NewStyle().Background(skin.Highlight).Foreground(skin.Text).Bold(true)
	for i := w.scroll; i < len(w.teams) && i < w.scroll+rowCount; i++ {
		t := w.teams[i]
		line := cell(fmt.Sprintf(" %-3s  %-26s %s", t.Abbrev, t.Name, t.Division), innerW)
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
