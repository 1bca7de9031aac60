package tui

// Panel is the contract a panel descriptor satisfies to live on a
// NavigationContext: a deterministic cache key (the same descriptor always
// yields the same key) and a display label for the breadcrumb trail.
type Panel interface {
	CacheKey() string
	Crumb() string
}

// NavigationContext tracks drill-down depth as a stack of panel descriptors
// and preserves opaque per-panel state across pop/revisit. The cache may
// hold entries for panels no longer on the stack; state is never evicted
// within a session, so revisiting is cheap.
type NavigationContext[P Panel, S any] struct {
	stack []P
	data  map[string]S
}

// NewNavigationContext returns an empty context: at root, empty cache.
func NewNavigationContext[P Panel, S any]() *NavigationContext[P, S] {
	return &NavigationContext[P, S]{data: make(map[string]S)}
}

// Push appends a panel; it becomes the current panel. No depth limit is
// enforced here.
func (n *NavigationContext[P, S]) Push(panel P) {
	n.stack = append(n.stack, panel)
}

// Pop removes and returns the current panel. Popping at root is a no-op
// returning ok=false, never an error.
func (n *NavigationContext[P, S]) Pop() (P, bool) {
	var zero P
	if len(n.stack) == 0 {
		return zero, false
	}
	top := n.stack[len(n.stack)-1]
	n.stack = n.stack[:len(n.stack)-1]
	return top, true
}

// Current returns the top of the stack, or ok=false at root.
func (n *NavigationContext[P, S]) Current() (P, bool) {
	var zero P
	if len(n.stack) == 0 {
		return zero, false
	}
	return n.stack[len(n.stack)-1], true
}

// IsAtRoot reports whether the stack is empty.
func (n *NavigationContext[P, S]) IsAtRoot() bool { return len(n.stack) == 0 }

// Depth returns the stack length.
func (n *NavigationContext[P, S]) Depth() int { return len(n.stack) }

// BreadcrumbTrail returns one label per stack entry, in push order.
func (n *NavigationContext[P, S]) BreadcrumbTrail() []string {
	trail := make([]string, len(n.stack))
	for i, panel := range n.stack {
		trail[i] = panel.Crumb()
	}
	return trail
}

// State returns the cached state for a panel key.
func (n *NavigationContext[P, S]) State(key string) (S, bool) {
	state, ok := n.data[key]
	return state, ok
}

// SetState stores per-panel state under its cache key, replacing any
// previous entry.
func (n *NavigationContext[P, S]) SetState(key string, state S) {
	n.data[key] = state
}
