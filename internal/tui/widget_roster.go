package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rinkside/rinkside/internal/model"
)

// RosterWidget lists a team's players. Selecting a player drills into the
// player detail panel. Selection and scroll are exposed so the tab can cache
// them per panel and restore on revisit.
type RosterWidget struct {
	players []model.Player
	selIdx  int
	scroll  int
	focused bool
	keys    selectionKeys
}

func NewRosterWidget(players []model.Player) *RosterWidget {
	return &RosterWidget{players: players, keys: defaultSelectionKeys()}
}

// SelectionState returns the cached-state fields.
func (w *RosterWidget) SelectionState() (selIdx, scroll int) { return w.selIdx, w.scroll }

// RestoreSelection reapplies previously cached selection and scroll,
// clamping both to the current roster.
func (w *RosterWidget) RestoreSelection(selIdx, scroll int) {
	w.selIdx = min(max(0, selIdx), max(0, len(w.players)-1))
	w.scroll = max(0, scroll)
}

func (w *RosterWidget) SetFocused(focused bool) { w.focused = focused }

func (w *RosterWidget) PreferredHeight() (int, bool) { return 0, false }
func (w *RosterWidget) PreferredWidth() (int, bool)  { return 0, false }

func (w *RosterWidget) HandleKey(msg tea.KeyMsg) InputResult {
	switch {
	case key.Matches(msg, w.keys.Up):
		if w.selIdx > 0 {
			w.selIdx--
		}
		return Handled()
	case key.Matches(msg, w.keys.Down):
		if w.selIdx < len(w.players)-1 {
			w.selIdx++
		}
		return Handled()
	case key.Matches(msg, w.keys.Enter):
		if w.selIdx >= 0 && w.selIdx < len(w.players) {
			p := w.players[w.selIdx]
			return Navigate(ToPlayer(p.ID, p.Name))
		}
	}
	return NotHandled()
}

func (w *RosterWidget) Render(area Rect, skin *Skin) string {
	if area.Empty() {
		return ""
	}
	innerW, innerH := innerSize(area)

	header := lipgloss.NewStyle().Foreground(skin.Dim).
		Render(cell(fmt.Sprintf(" %2s  %-22s %2s %3s %3s %3s %3s", "#", "Player", "P", "GP", "G", "A", "PTS"), innerW))
	lines := []string{widgetTitle(skin, "Roster"), header}

	rowCount := max(0, innerH-2)
	w.scroll = clampScroll(w.scroll, w.selIdx, len(w.players), rowCount)

	normal := lipgloss.NewStyle().Foreground(skin.Text)
	selected := lipgloss.NewStyle().Background(skin.Highlight).Foreground(skin.Text).Bold(true)
	for i := w.scroll; i < len(w.players) && i < w.scroll+rowCount; i++ {
		p := w.players[i]
		line := cell(fmt.Sprintf(" %2d  %-22s %2s %3d %3d %3d %3d",
			p.Number, p.Name, p.Position, p.Games, p.Goals, p.Assists, p.Points()), innerW)
		if i == w.selIdx && w.focused {
			line = selected.Render(line)
		} else {
			line = normal.Render(line)
		}
		lines = append(lines, line)
	}
	if len(w.players) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(skin.Dim).Render("No roster data"))
	}

	frame := widgetFrame(skin, w.focused, area.W, area.H)
	return frame.Render(lipgloss.JoinVertical(lipgloss.Left, clampLines(lines, innerH)...))
}
