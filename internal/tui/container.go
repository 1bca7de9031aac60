package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Container composes zero or more Focusable children into one Focusable. It
// owns the currently focused child and routes input: the focused child gets
// first refusal, then the container interprets focus-cycling keys itself.
// An empty container is a valid, inert state.
type Container struct {
	children   []Focusable
	focusIdx   int // -1 = no child holds focus
	wrap       bool
	horizontal bool
	focused    bool
	keys       traversalKeys
}

type traversalKeys struct {
	Next key.Binding
	Prev key.Binding
}

func defaultTraversalKeys() traversalKeys {
	return traversalKeys{
		Next: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next widget")),
		Prev: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev widget")),
	}
}

func horizontalTraversalKeys() traversalKeys {
	return traversalKeys{
		Next: key.NewBinding(key.WithKeys("tab", "right"), key.WithHelp("tab/→", "next widget")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left"), key.WithHelp("shift+tab/←", "prev widget")),
	}
}

// NewContainer builds a container around the given children. Declaration
// order is traversal order. Wrap-around traversal is on by default.
func NewContainer(children ...Focusable) *Container {
	return &Container{
		children: children,
		focusIdx: -1,
		wrap:     true,
		keys:     defaultTraversalKeys(),
	}
}

// AddItem appends a child at the end of the traversal order.
func (c *Container) AddItem(w Focusable) {
	c.children = append(c.children, w)
}

// SetWrap toggles wrap-around traversal. With wrap disabled, moving past an
// edge leaves focus unchanged and the key is reported NotHandled so an
// ancestor can act on it.
func (c *Container) SetWrap(wrap bool) { c.wrap = wrap }

// SetHorizontal lays children out side by side and adds left/right to the
// traversal keys.
func (c *Container) SetHorizontal(horizontal bool) {
	c.horizontal = horizontal
	if horizontal {
		c.keys = horizontalTraversalKeys()
	} else {
		c.keys = defaultTraversalKeys()
	}
}

// Len returns the number of children.
func (c *Container) Len() int { return len(c.children) }

// Child returns the child at index i, or nil when out of range.
func (c *Container) Child(i int) Focusable {
	if i < 0 || i >= len(c.children) {
		return nil
	}
	return c.children[i]
}

// FocusedIndex returns the focused child index, or -1 when none.
func (c *Container) FocusedIndex() int { return c.focusIdx }

// SetFocusedIndex moves focus directly to child i. Out-of-range indices are
// ignored.
func (c *Container) SetFocusedIndex(i int) {
	if i < 0 || i >= len(c.children) || i == c.focusIdx {
		return
	}
	if prev := c.Child(c.focusIdx); prev != nil {
		prev.SetFocused(false)
	}
	c.focusIdx = i
	c.children[i].SetFocused(c.focused)
}

// SetFocused marks the container as owning (or having relinquished) input.
// Gaining focus with children and no remembered position focuses child 0.
// Losing focus keeps the position so it is restored on regain.
func (c *Container) SetFocused(focused bool) {
	c.focused = focused
	if focused && c.focusIdx < 0 && len(c.children) > 0 {
		c.focusIdx = 0
	}
	if child := c.Child(c.focusIdx); child != nil {
		child.SetFocused(focused)
	}
}

// HandleKey delegates to the focused child first; children have priority
// over the container's own traversal keys so a widget's internal arrow or
// tab handling wins. Only a child's NotHandled lets the container interpret
// Tab/Shift-Tab itself.
func (c *Container) HandleKey(msg tea.KeyMsg) InputResult {
	child := c.Child(c.focusIdx)
	if child == nil {
		return NotHandled()
	}

	if res := child.HandleKey(msg); res.Consumed() {
		return res
	}

	switch {
	case key.Matches(msg, c.keys.Next):
		if c.moveFocus(1) {
			return Handled()
		}
	case key.Matches(msg, c.keys.Prev):
		if c.moveFocus(-1) {
			return Handled()
		}
	}
	return NotHandled()
}

// moveFocus shifts focus by delta. Reports false when the move stops at an
// edge with wrap disabled.
func (c *Container) moveFocus(delta int) bool {
	n := len(c.children)
	if n == 0 || c.focusIdx < 0 {
		return false
	}

	next := c.focusIdx + delta
	if next < 0 || next >= n {
		if !c.wrap {
			return false
		}
		next = ((next % n) + n) % n
	}
	if next == c.focusIdx {
		return true
	}

	c.children[c.focusIdx].SetFocused(false)
	c.focusIdx = next
	c.children[next].SetFocused(true)
	return true
}

// Render splits the area among the children and joins their output. Children
// with a preferred size get it, clamped to the area; the rest share the
// remainder evenly, with the last flexible child absorbing rounding.
func (c *Container) Render(area Rect, skin *Skin) string {
	if len(c.children) == 0 || area.W <= 0 || area.H <= 0 {
		return ""
	}

	rects := c.splitArea(area)
	parts := make([]string, len(c.children))
	for i, child := range c.children {
		parts[i] = child.Render(rects[i], skin)
	}

	if c.horizontal {
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (c *Container) splitArea(area Rect) []Rect {
	n := len(c.children)
	rects := make([]Rect, n)

	total := area.H
	hint := func(w Focusable) (int, bool) { return w.PreferredHeight() }
	if c.horizontal {
		total = area.W
		hint = func(w Focusable) (int, bool) { return w.PreferredWidth() }
	}

	sizes := make([]int, n)
	flexible := 0
	remaining := total
	for i, child := range c.children {
		if size, ok := hint(child); ok {
			sizes[i] = min(max(size, 0), remaining)
			remaining -= sizes[i]
		} else {
			sizes[i] = -1
			flexible++
		}
	}
	if flexible > 0 {
		share := remaining / flexible
		last := -1
		for i := range sizes {
			if sizes[i] < 0 {
				sizes[i] = share
				last = i
			}
		}
		// Rounding remainder goes to the last flexible child.
		sizes[last] += remaining - share*flexible
	}

	offset := 0
	for i := range rects {
		if c.horizontal {
			rects[i] = Rect{X: area.X + offset, Y: area.Y, W: sizes[i], H: area.H}
		} else {
			rects[i] = Rect{X: area.X, Y: area.Y + offset, W: area.W, H: sizes[i]}
		}
		offset += sizes[i]
	}
	return rects
}

// PreferredHeight reports the sum of the children's hints when every child
// has one; otherwise the container adapts.
func (c *Container) PreferredHeight() (int, bool) {
	if c.horizontal || len(c.children) == 0 {
		return 0, false
	}
	total := 0
	for _, child := range c.children {
		h, ok := child.PreferredHeight()
		if !ok {
			return 0, false
		}
		total += h
	}
	return total, true
}

// PreferredWidth mirrors PreferredHeight for horizontal containers.
func (c *Container) PreferredWidth() (int, bool) {
	if !c.horizontal || len(c.children) == 0 {
		return 0, false
	}
	total := 0
	for _, child := range c.children {
		w, ok := child.PreferredWidth()
		if !ok {
			return 0, false
		}
		total += w
	}
	return total, true
}
