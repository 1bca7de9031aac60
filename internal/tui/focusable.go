package tui

import tea "github.com/charmbracelet/bubbletea"

// Focusable is the capability contract every interactive widget implements:
// render into a rectangle, accept or relinquish focus, handle one key event,
// and optionally report a natural size.
type Focusable interface {
	// Render draws the widget within area and must not draw outside it.
	// It must not mutate anything observable beyond the widget itself;
	// clamping scroll to the given area is allowed.
	Render(area Rect, skin *Skin) string

	// HandleKey processes one key event. It may mutate widget-local state
	// (selection, scroll) and returns exactly one InputResult.
	HandleKey(msg tea.KeyMsg) InputResult

	// SetFocused updates whether the widget considers itself the active
	// input target. This affects rendering only; routing stays with the
	// enclosing Container.
	SetFocused(focused bool)

	// PreferredHeight reports a fixed natural height, or ok=false when the
	// widget adapts to whatever space it is given. A hint, not a demand.
	PreferredHeight() (h int, ok bool)

	// PreferredWidth is the horizontal counterpart of PreferredHeight.
	PreferredWidth() (w int, ok bool)
}

type resultKind int

const (
	resultNotHandled resultKind = iota
	resultHandled
	resultNavigate
)

// InputResult is the outcome of one HandleKey call: consumed, not consumed,
// or consumed with a requested navigation side effect.
type InputResult struct {
	kind   resultKind
	action NavigationAction
}

// Handled reports the event as consumed with no further action.
func Handled() InputResult { return InputResult{kind: resultHandled} }

// NotHandled asks the caller to keep propagating the event.
func NotHandled() InputResult { return InputResult{kind: resultNotHandled} }

// Navigate reports the event as consumed and requests a navigation action.
func Navigate(action NavigationAction) InputResult {
	return InputResult{kind: resultNavigate, action: action}
}

// Consumed reports whether the event should stop propagating.
func (r InputResult) Consumed() bool { return r.kind != resultNotHandled }

// Navigation returns the requested action, if any.
func (r InputResult) Navigation() (NavigationAction, bool) {
	return r.action, r.kind == resultNavigate
}

// NavKind discriminates NavigationAction variants.
type NavKind int

const (
	// NavPush requests pushing the action's Panel onto the stack.
	NavPush NavKind = iota
	// NavPop requests popping the current panel.
	NavPop
	// NavToTeam asks the application layer to open a team's detail panel.
	NavToTeam
	// NavToPlayer asks the application layer to open a player's detail panel.
	NavToPlayer
)

// NavigationAction describes a requested drill-down transition. Leaf widgets
// produce the domain variants (NavToTeam, NavToPlayer); the application layer
// translates them into concrete stack pushes. The core never interprets
// domain payloads itself.
type NavigationAction struct {
	Kind NavKind

	Panel PanelRef // NavPush

	TeamAbbrev string // NavToTeam

	PlayerID   int    // NavToPlayer
	PlayerName string // NavToPlayer
}

// PushPanel builds a NavPush action.
func PushPanel(panel PanelRef) NavigationAction {
	return NavigationAction{Kind: NavPush, Panel: panel}
}

// PopPanel builds a NavPop action.
func PopPanel() NavigationAction { return NavigationAction{Kind: NavPop} }

// ToTeam builds a NavToTeam action.
func ToTeam(abbrev string) NavigationAction {
	return NavigationAction{Kind: NavToTeam, TeamAbbrev: abbrev}
}

// ToPlayer builds a NavToPlayer action.
func ToPlayer(id int, name string) NavigationAction {
	return NavigationAction{Kind: NavToPlayer, PlayerID: id, PlayerName: name}
}
