package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// stubWidget is a minimal Focusable for routing tests. It records focus
// changes and consumes only the keys it is told to.
type stubWidget struct {
	focused bool
	consume map[string]bool
	seen    []string

	prefH   int
	hasPref bool
}

func (s *stubWidget) Render(area Rect, skin *Skin) string { return "" }

func (s *stubWidget) HandleKey(msg tea.KeyMsg) InputResult {
	s.seen = append(s.seen, msg.String())
	if s.consume[msg.String()] {
		return Handled()
	}
	return NotHandled()
}

func (s *stubWidget) SetFocused(focused bool) { s.focused = focused }

func (s *stubWidget) PreferredHeight() (int, bool) { return s.prefH, s.hasPref }
func (s *stubWidget) PreferredWidth() (int, bool)  { return 0, false }

func keyTab() tea.KeyMsg      { return tea.KeyMsg{Type: tea.KeyTab} }
func keyShiftTab() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyShiftTab} }

func TestContainerWrapCyclesBackToStart(t *testing.T) {
	t.Parallel()

	a, b, c := &stubWidget{}, &stubWidget{}, &stubWidget{}
	cont := NewContainer(a, b, c)
	cont.SetFocused(true)

	if cont.FocusedIndex() != 0 {
		t.Fatalf("initial focus = %d, want 0", cont.FocusedIndex())
	}

	for i := 0; i < cont.Len(); i++ {
		if res := cont.HandleKey(keyTab()); !res.Consumed() {
			t.Fatalf("tab press %d not consumed", i)
		}
	}
	if cont.FocusedIndex() != 0 {
		t.Fatalf("after %d tabs focus = %d, want 0", cont.Len(), cont.FocusedIndex())
	}
	if !a.focused || b.focused || c.focused {
		t.Fatalf("focus flags = %v %v %v, want true false false", a.focused, b.focused, c.focused)
	}
}

func TestContainerNoWrapStopsAtEdges(t *testing.T) {
	t.Parallel()

	a, b := &stubWidget{}, &stubWidget{}
	cont := NewContainer(a, b)
	cont.SetWrap(false)
	cont.SetFocused(true)

	// Backward at the first child: focus stays, event propagates.
	if res := cont.HandleKey(keyShiftTab()); res.Consumed() {
		t.Fatal("shift+tab at first child should not be consumed")
	}
	if cont.FocusedIndex() != 0 {
		t.Fatalf("focus moved to %d at the leading edge", cont.FocusedIndex())
	}

	if res := cont.HandleKey(keyTab()); !res.Consumed() {
		t.Fatal("tab to second child should be consumed")
	}
	if res := cont.HandleKey(keyTab()); res.Consumed() {
		t.Fatal("tab at last child should not be consumed")
	}
	if cont.FocusedIndex() != 1 {
		t.Fatalf("focus = %d after trailing-edge tab, want 1", cont.FocusedIndex())
	}
}

func TestContainerChildGetsFirstRefusal(t *testing.T) {
	t.Parallel()

	greedy := &stubWidget{consume: map[string]bool{"tab": true}}
	other := &stubWidget{}
	cont := NewContainer(greedy, other)
	cont.SetFocused(true)

	if res := cont.HandleKey(keyTab()); !res.Consumed() {
		t.Fatal("child-consumed tab should be reported consumed")
	}
	if cont.FocusedIndex() != 0 {
		t.Fatalf("focus = %d, want 0: container must not also act on a consumed key", cont.FocusedIndex())
	}
}

func TestContainerEmptyIsInert(t *testing.T) {
	t.Parallel()

	cont := NewContainer()
	cont.SetFocused(true)

	if res := cont.HandleKey(keyTab()); res.Consumed() {
		t.Fatal("empty container should not consume input")
	}
	if out := cont.Render(Rect{W: 40, H: 10}, DefaultSkin()); out != "" {
		t.Fatalf("empty container rendered %q, want empty", out)
	}
	if cont.FocusedIndex() != -1 {
		t.Fatalf("empty container focus = %d, want -1", cont.FocusedIndex())
	}
}

func TestContainerRemembersFocusAcrossBlur(t *testing.T) {
	t.Parallel()

	a, b := &stubWidget{}, &stubWidget{}
	cont := NewContainer(a, b)
	cont.SetFocused(true)
	cont.HandleKey(keyTab())

	cont.SetFocused(false)
	if a.focused || b.focused {
		t.Fatal("children should be unfocused after container blur")
	}

	cont.SetFocused(true)
	if cont.FocusedIndex() != 1 || !b.focused {
		t.Fatalf("focus = %d (b.focused=%v), want position 1 restored", cont.FocusedIndex(), b.focused)
	}
}

func TestContainerSetFocusedIndexIgnoresOutOfRange(t *testing.T) {
	t.Parallel()

	cont := NewContainer(&stubWidget{}, &stubWidget{})
	cont.SetFocused(true)
	cont.SetFocusedIndex(5)
	cont.SetFocusedIndex(-2)
	if cont.FocusedIndex() != 0 {
		t.Fatalf("focus = %d, want 0", cont.FocusedIndex())
	}
}

func TestContainerSplitHonorsPreferredHeights(t *testing.T) {
	t.Parallel()

	fixed := &stubWidget{prefH: 9, hasPref: true}
	flexA := &stubWidget{}
	flexB := &stubWidget{}
	cont := NewContainer(fixed, flexA, flexB)

	rects := cont.splitArea(Rect{X: 0, Y: 0, W: 100, H: 30})

	if rects[0].H != 9 {
		t.Fatalf("fixed child height = %d, want 9", rects[0].H)
	}
	// 21 remaining rows split between two flexible children; the last one
	// absorbs the rounding row.
	if rects[1].H != 10 || rects[2].H != 11 {
		t.Fatalf("flexible heights = %d, %d, want 10, 11", rects[1].H, rects[2].H)
	}
	if got := rects[0].H + rects[1].H + rects[2].H; got != 30 {
		t.Fatalf("heights sum to %d, want 30", got)
	}
	if rects[1].Y != 9 || rects[2].Y != 19 {
		t.Fatalf("child offsets = %d, %d, want 9, 19", rects[1].Y, rects[2].Y)
	}
}

func TestContainerPreferredHeightSumsWhenAllHinted(t *testing.T) {
	t.Parallel()

	cont := NewContainer(
		&stubWidget{prefH: 3, hasPref: true},
		&stubWidget{prefH: 5, hasPref: true},
	)
	h, ok := cont.PreferredHeight()
	if !ok || h != 8 {
		t.Fatalf("PreferredHeight = %d, %v, want 8, true", h, ok)
	}

	cont.AddItem(&stubWidget{})
	if _, ok := cont.PreferredHeight(); ok {
		t.Fatal("a flexible child should make the container flexible")
	}
}
