package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// PaletteAction is what a chosen palette entry asks the app to do: switch
// tabs, apply a navigation action on the active tab, or both.
type PaletteAction struct {
	TabIdx int // -1 = keep current tab
	Nav    *NavigationAction
}

type paletteEntry struct {
	title  string
	action PaletteAction
}

// Palette is the command palette overlay. While visible it is the topmost
// input target: the app routes every key here before the tabs see anything.
type Palette struct {
	input    textinput.Model
	entries  []paletteEntry
	filtered []int // indices into entries, fuzzy-ranked
	selIdx   int
	visible  bool

	up     key.Binding
	down   key.Binding
	choose key.Binding
	close  key.Binding
}

// NewPalette builds the palette over a fixed command set.
func NewPalette(entries []paletteEntry) *Palette {
	input := textinput.New()
	input.Placeholder = "Type a command or team…"
	input.CharLimit = 80
	input.Prompt = "› "

	return &Palette{
		input:   input,
		entries: entries,
		up:      key.NewBinding(key.WithKeys("up", "ctrl+k")),
		down:    key.NewBinding(key.WithKeys("down", "ctrl+j")),
		choose:  key.NewBinding(key.WithKeys("enter")),
		close:   key.NewBinding(key.WithKeys("esc")),
	}
}

// Visible reports whether the overlay should be drawn this frame.
func (p *Palette) Visible() bool { return p.visible }

// Open resets the query and shows the palette.
func (p *Palette) Open() {
	p.visible = true
	p.selIdx = 0
	p.input.SetValue("")
	p.input.Focus()
	p.refilter()
}

// Close hides the palette.
func (p *Palette) Close() {
	p.visible = false
	p.input.Blur()
}

// HandleKey processes one key while the palette is open. A non-nil choice
// means an entry was confirmed; the palette closes itself on choose and on
// escape.
func (p *Palette) HandleKey(msg tea.KeyMsg) (choice *PaletteAction) {
	switch {
	case key.Matches(msg, p.close):
		p.Close()
		return nil
	case key.Matches(msg, p.choose):
		if p.selIdx >= 0 && p.selIdx < len(p.filtered) {
			action := p.entries[p.filtered[p.selIdx]].action
			p.Close()
			return &action
		}
		p.Close()
		return nil
	case key.Matches(msg, p.up):
		if p.selIdx > 0 {
			p.selIdx--
		}
		return nil
	case key.Matches(msg, p.down):
		if p.selIdx < len(p.filtered)-1 {
			p.selIdx++
		}
		return nil
	}

	p.input, _ = p.input.Update(msg)
	p.refilter()
	return nil
}

// refilter recomputes the fuzzy ranking for the current query. An empty
// query shows every entry in declaration order.
func (p *Palette) refilter() {
	p.selIdx = 0
	query := p.input.Value()

	if query == "" {
		p.filtered = make([]int, len(p.entries))
		for i := range p.entries {
			p.filtered[i] = i
		}
		return
	}

	titles := make([]string, len(p.entries))
	for i, e := range p.entries {
		titles[i] = e.title
	}
	matches := fuzzy.Find(query, titles)
	p.filtered = make([]int, len(matches))
	for i, m := range matches {
		p.filtered[i] = m.Index
	}
}

// Render draws the palette box sized to the overlay rect. The caller
// centers it over the rest of the frame in a second pass.
func (p *Palette) Render(area Rect, skin *Skin) string {
	if area.Empty() {
		return ""
	}
	innerW, innerH := innerSize(area)
	p.input.Width = max(0, innerW-4)

	lines := []string{p.input.View(), ""}
	listRows := max(0, innerH-2)

	normal := lipgloss.NewStyle().Foreground(skin.Text)
	selected := lipgloss.NewStyle().Background(skin.Highlight).Foreground(skin.Accent).Bold(true)
	dim := lipgloss.NewStyle().Foreground(skin.Dim)

	for i := 0; i < len(p.filtered) && i < listRows; i++ {
		title := cell(" "+p.entries[p.filtered[i]].title, innerW)
		if i == p.selIdx {
			lines = append(lines, selected.Render(title))
		} else {
			lines = append(lines, normal.Render(title))
		}
	}
	if len(p.filtered) == 0 {
		lines = append(lines, dim.Render(" No matching commands"))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(skin.Accent).
		Width(max(0, area.W-2)).
		Height(max(0, area.H-2)).
		MaxWidth(area.W).
		MaxHeight(area.H)

	return box.Render(lipgloss.JoinVertical(lipgloss.Left, clampLines(lines, innerH)...))
}
