package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func testApp(t *testing.T) *App {
	t.Helper()
	app := NewApp(testProvider(t), DefaultSkin(), true)
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return app
}

func TestAppTabSwitching(t *testing.T) {
	t.Parallel()

	app := testApp(t)
	if app.activeTab != 0 {
		t.Fatalf("initial tab = %d, want 0", app.activeTab)
	}

	app.Update(keyRune(']'))
	if app.activeTab != 1 {
		t.Fatalf("tab after ] = %d, want 1", app.activeTab)
	}
	app.Update(keyRune('['))
	if app.activeTab != 0 {
		t.Fatalf("tab after [ = %d, want 0", app.activeTab)
	}

	app.Update(keyRune('3'))
	if app.activeTab != 2 {
		t.Fatalf("tab after 3 = %d, want 2", app.activeTab)
	}
}

func TestAppQuitKeys(t *testing.T) {
	t.Parallel()

	app := testApp(t)
	if _, cmd := app.Update(keyRune('q')); cmd == nil {
		t.Fatal("q at root should quit")
	}
	if _, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC}); cmd == nil {
		t.Fatal("ctrl+c should always quit")
	}
}

func TestAppPaletteCapturesInput(t *testing.T) {
	t.Parallel()

	app := testApp(t)
	app.Update(keyRune(':'))
	if !app.palette.Visible() {
		t.Fatal("palette did not open")
	}

	// While the palette is open, q edits the query instead of quitting.
	if _, cmd := app.Update(keyRune('q')); cmd != nil {
		t.Fatal("q quit the app while the palette was open")
	}
	if app.palette.input.Value() != "q" {
		t.Fatalf("palette query = %q, want q", app.palette.input.Value())
	}

	app.Update(keyEsc())
	if app.palette.Visible() {
		t.Fatal("escape did not close the palette")
	}
}

func TestAppPaletteActionNavigates(t *testing.T) {
	t.Parallel()

	app := testApp(t)
	app.Update(keyRune(':'))
	for _, r := range "toronto" {
		app.Update(keyRune(r))
	}
	app.Update(keyEnter())

	tab := app.tabs[app.activeTab]
	cur, ok := tab.nav.Current()
	if !ok || cur.TeamAbbrev != "TOR" {
		t.Fatalf("current panel = %+v, %v, want Toronto detail", cur, ok)
	}
}

func TestAppEscapePopsDrilledTab(t *testing.T) {
	t.Parallel()

	app := testApp(t)
	app.Update(keyRune('3'))
	tab := app.tabs[app.activeTab]
	tab.Apply(ToTeam("TOR"))

	app.Update(keyEsc())
	if !tab.nav.IsAtRoot() {
		t.Fatal("escape did not pop the drill-down")
	}
}

func TestAppViewRendersTabBar(t *testing.T) {
	t.Parallel()

	app := testApp(t)
	view := app.View()
	if !strings.Contains(view, "Scores") {
		t.Fatal("view missing the tab bar")
	}
}

func TestAppViewBeforeFirstResize(t *testing.T) {
	t.Parallel()

	app := NewApp(testProvider(t), DefaultSkin(), true)
	if app.View() == "" {
		t.Fatal("zero-size view should still render a placeholder")
	}
}
