package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rinkside/rinkside/internal/model"
)

// ConferenceSelectWidget toggles which conference the standings show. It
// consumes left/right while focused, so the enclosing container's horizontal
// traversal never fires on this row (children have priority).
type ConferenceSelectWidget struct {
	conf    model.Conference
	focused bool
	left    key.Binding
	right   key.Binding
}

func NewConferenceSelectWidget() *ConferenceSelectWidget {
	return &ConferenceSelectWidget{
		conf:  model.Eastern,
		left:  key.NewBinding(key.WithKeys("left", "h")),
		right: key.NewBinding(key.WithKeys("right", "l")),
	}
}

// Conference returns the currently selected conference.
func (w *ConferenceSelectWidget) Conference() model.Conference { return w.conf }

func (w *ConferenceSelectWidget) SetFocused(focused bool) { w.focused = focused }

func (w *ConferenceSelectWidget) PreferredHeight() (int, bool) { return 1, true }
func (w *ConferenceSelectWidget) PreferredWidth() (int, bool)  { return 0, false }

func (w *ConferenceSelectWidget) HandleKey(msg tea.KeyMsg) InputResult {
	if key.Matches(msg, w.left) || key.Matches(msg, w.right) {
		if w.conf == model.Eastern {
			w.conf = model.Western
		} else {
			w.conf = model.Eastern
		}
		return Handled()
	}
	return NotHandled()
}

func (w *ConferenceSelectWidget) Render(area Rect, skin *Skin) string {
	if area.Empty() {
		return ""
	}

	active := lipgloss.NewStyle().Foreground(skin.Accent).Bold(true)
	idle := lipgloss.NewStyle().Foreground(skin.Dim)

	east := idle.Render("Eastern")
	west := idle.Render("Western")
	if w.conf == model.Eastern {
		east = active.Render("Eastern")
	} else {
		west = active.Render("Western")
	}

	marker := "  "
	if w.focused {
		marker = idle.Render("◂▸")
	}
	line := " " + east + idle.Render(" │ ") + west + " " + marker

	return lipgloss.NewStyle().Width(area.W).MaxWidth(area.W).
		Height(area.H).MaxHeight(area.H).Render(line)
}
