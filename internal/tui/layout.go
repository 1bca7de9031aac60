package tui

// Rect is a rectangle in terminal cells.
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether the rect has no drawable area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Fixed chrome heights in rows. The content area gets whatever remains.
const (
	tabBarHeight     = 2
	breadcrumbHeight = 2
	actionBarHeight  = 2
	statusBarHeight  = 2

	overlayWidthPct  = 50
	overlayHeightPct = 40
)

// Chrome flags which optional chrome pieces are present this frame.
type Chrome struct {
	Breadcrumb bool
	ActionBar  bool
	Modal      bool
}

// Areas holds the per-frame chrome rectangles. Absent chrome pieces get a
// zero Rect. Recomputed every frame, never persisted.
type Areas struct {
	TabBar     Rect
	Breadcrumb Rect
	Content    Rect
	ActionBar  Rect
	StatusBar  Rect
	Overlay    Rect
}

// CalculateAreas computes non-overlapping rectangles in the fixed vertical
// order tab bar, breadcrumb, content, action bar, status bar. Content height
// saturates at zero when the terminal is smaller than the fixed chrome. The
// overlay rect is independent of the rest: centered at a fixed percentage of
// the full terminal, populated only when the modal is visible, and rendered
// in a separate pass so it draws on top.
func CalculateAreas(width, height int, chrome Chrome) Areas {
	fixed := tabBarHeight + statusBarHeight
	if chrome.Breadcrumb {
		fixed += breadcrumbHeight
	}
	if chrome.ActionBar {
		fixed += actionBarHeight
	}

	contentHeight := max(0, height-fixed)

	var areas Areas
	y := 0

	areas.TabBar = Rect{X: 0, Y: y, W: width, H: tabBarHeight}
	y += tabBarHeight

	if chrome.Breadcrumb {
		areas.Breadcrumb = Rect{X: 0, Y: y, W: width, H: breadcrumbHeight}
		y += breadcrumbHeight
	}

	areas.Content = Rect{X: 0, Y: y, W: width, H: contentHeight}
	y += contentHeight

	if chrome.ActionBar {
		areas.ActionBar = Rect{X: 0, Y: y, W: width, H: actionBarHeight}
		y += actionBarHeight
	}

	areas.StatusBar = Rect{X: 0, Y: y, W: width, H: statusBarHeight}

	if chrome.Modal {
		ow := width * overlayWidthPct / 100
		oh := height * overlayHeightPct / 100
		areas.Overlay = Rect{
			X: (width - ow) / 2,
			Y: (height - oh) / 2,
			W: ow,
			H: oh,
		}
	}

	return areas
}
