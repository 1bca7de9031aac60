package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rinkside/rinkside/internal/model"
)

// PlayerCardWidget shows one player's bio and season line in a scrollable
// viewport. Scroll position is exposed for the per-panel state cache.
type PlayerCardWidget struct {
	player  model.Player
	vp      viewport.Model
	focused bool
	up      key.Binding
	down    key.Binding
}

func NewPlayerCardWidget(player model.Player) *PlayerCardWidget {
	return &PlayerCardWidget{
		player: player,
		vp:     viewport.New(0, 0),
		up:     key.NewBinding(key.WithKeys("up", "k")),
		down:   key.NewBinding(key.WithKeys("down", "j")),
	}
}

// ScrollOffset returns the viewport's vertical offset.
func (w *PlayerCardWidget) ScrollOffset() int { return w.vp.YOffset }

// RestoreScroll reapplies a cached scroll offset.
func (w *PlayerCardWidget) RestoreScroll(offset int) { w.vp.SetYOffset(offset) }

func (w *PlayerCardWidget) SetFocused(focused bool) { w.focused = focused }

func (w *PlayerCardWidget) PreferredHeight() (int, bool) { return 0, false }
func (w *PlayerCardWidget) PreferredWidth() (int, bool)  { return 0, false }

func (w *PlayerCardWidget) HandleKey(msg tea.KeyMsg) InputResult {
	switch {
	case key.Matches(msg, w.up):
		w.vp.ScrollUp(1)
		return Handled()
	case key.Matches(msg, w.down):
		w.vp.ScrollDown(1)
		return Handled()
	}
	return NotHandled()
}

func (w *PlayerCardWidget) Render(area Rect, skin *Skin) string {
	if area.Empty() {
		return ""
	}
	innerW, innerH := innerSize(area)

	title := widgetTitle(skin, fmt.Sprintf("#%d %s", w.player.Number, w.player.Name))

	w.vp.Width = innerW
	w.vp.Height = max(0, innerH-1)
	w.vp.SetContent(w.bioContent(skin))

	frame := widgetFrame(skin, w.focused, area.W, area.H)
	return frame.Render(lipgloss.JoinVertical(lipgloss.Left, title, w.vp.View()))
}

func (w *PlayerCardWidget) bioContent(skin *Skin) string {
	label := lipgloss.NewStyle().Foreground(skin.Dim)
	value := lipgloss.NewStyle().Foreground(skin.Text)
	p := w.player

	lines := []string{
		label.Render("Team       ") + value.Render(model.TeamName(p.Team)),
		label.Render("Position   ") + value.Render(p.Position),
		label.Render("Shoots     ") + value.Render(p.Shoots),
		label.Render("Age        ") + value.Render(fmt.Sprintf("%d", p.Age)),
		label.Render("Height     ") + value.Render(p.Height),
		label.Render("Weight     ") + value.Render(fmt.Sprintf("%d lb", p.Weight)),
		"",
		widgetTitle(skin, "Season"),
		label.Render("Games      ") + value.Render(fmt.Sprintf("%d", p.Games)),
		label.Render("Goals      ") + value.Render(fmt.Sprintf("%d", p.Goals)),
		label.Render("Assists    ") + value.Render(fmt.Sprintf("%d", p.Assists)),
		label.Render("Points     ") + value.Render(fmt.Sprintf("%d", p.Points())),
		label.Render("+/-        ") + value.Render(fmt.Sprintf("%+d", p.PlusMin)),
		label.Render("PIM        ") + value.Render(fmt.Sprintf("%d", p.PIM)),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
