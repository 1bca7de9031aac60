package tui

import "testing"

func TestCalculateAreasMinimalChrome(t *testing.T) {
	t.Parallel()

	areas := CalculateAreas(100, 30, Chrome{})

	if areas.TabBar != (Rect{X: 0, Y: 0, W: 100, H: 2}) {
		t.Fatalf("tab bar = %+v", areas.TabBar)
	}
	if areas.Content != (Rect{X: 0, Y: 2, W: 100, H: 26}) {
		t.Fatalf("content = %+v, want 26 rows starting at y=2", areas.Content)
	}
	if areas.StatusBar != (Rect{X: 0, Y: 28, W: 100, H: 2}) {
		t.Fatalf("status bar = %+v", areas.StatusBar)
	}
	if !areas.Breadcrumb.Empty() || !areas.ActionBar.Empty() || !areas.Overlay.Empty() {
		t.Fatal("absent chrome should yield empty rects")
	}
}

func TestCalculateAreasAllChrome(t *testing.T) {
	t.Parallel()

	areas := CalculateAreas(100, 30, Chrome{Breadcrumb: true, ActionBar: true})

	if areas.Content.H != 22 {
		t.Fatalf("content height = %d, want 22", areas.Content.H)
	}
	if areas.Breadcrumb.Y != 2 || areas.Content.Y != 4 {
		t.Fatalf("breadcrumb y = %d, content y = %d", areas.Breadcrumb.Y, areas.Content.Y)
	}
	if areas.ActionBar.Y != 26 || areas.StatusBar.Y != 28 {
		t.Fatalf("action bar y = %d, status bar y = %d", areas.ActionBar.Y, areas.StatusBar.Y)
	}
}

func TestCalculateAreasHeightsAlwaysSum(t *testing.T) {
	t.Parallel()

	chromes := []Chrome{
		{},
		{Breadcrumb: true},
		{ActionBar: true},
		{Breadcrumb: true, ActionBar: true},
	}
	for _, chrome := range chromes {
		areas := CalculateAreas(80, 24, chrome)
		total := areas.TabBar.H + areas.Breadcrumb.H + areas.Content.H +
			areas.ActionBar.H + areas.StatusBar.H
		if total != 24 {
			t.Fatalf("chrome %+v: heights sum to %d, want 24", chrome, total)
		}
	}
}

func TestCalculateAreasContentSaturatesAtZero(t *testing.T) {
	t.Parallel()

	areas := CalculateAreas(100, 6, Chrome{Breadcrumb: true, ActionBar: true})
	if areas.Content.H != 0 {
		t.Fatalf("content height = %d, want 0 when chrome exceeds terminal", areas.Content.H)
	}
}

func TestCalculateAreasOverlayCentered(t *testing.T) {
	t.Parallel()

	areas := CalculateAreas(100, 50, Chrome{Modal: true})

	want := Rect{X: 25, Y: 15, W: 50, H: 20}
	if areas.Overlay != want {
		t.Fatalf("overlay = %+v, want %+v", areas.Overlay, want)
	}
}

func TestCalculateAreasOverlayOnlyWhenModal(t *testing.T) {
	t.Parallel()

	areas := CalculateAreas(100, 50, Chrome{})
	if !areas.Overlay.Empty() {
		t.Fatalf("overlay = %+v, want empty without a modal", areas.Overlay)
	}
}
