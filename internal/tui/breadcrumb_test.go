package tui

import "testing"

func TestBreadcrumbDerivation(t *testing.T) {
	t.Parallel()

	nav := NewNavigationContext[PanelRef, PanelState]()

	trail := Breadcrumb("Teams", "", nav)
	if len(trail) != 1 || trail[0] != "Teams" {
		t.Fatalf("root trail = %v, want [Teams]", trail)
	}

	nav.Push(TeamDetailPanel("TOR", "Toronto Maple Leafs"))
	trail = Breadcrumb("Teams", "", nav)
	want := []string{"Teams", "Toronto Maple Leafs"}
	if len(trail) != 2 || trail[0] != want[0] || trail[1] != want[1] {
		t.Fatalf("trail = %v, want %v", trail, want)
	}

	nav.Push(PlayerDetailPanel(8479318, "Auston Matthews"))
	trail = Breadcrumb("Teams", "", nav)
	if len(trail) != 3 || trail[2] != "Auston Matthews" {
		t.Fatalf("trail = %v, want trailing Auston Matthews", trail)
	}
}

func TestBreadcrumbIncludesSubLabel(t *testing.T) {
	t.Parallel()

	nav := NewNavigationContext[PanelRef, PanelState]()
	trail := Breadcrumb("Standings", "Eastern", nav)
	if len(trail) != 2 || trail[1] != "Eastern" {
		t.Fatalf("trail = %v, want [Standings Eastern]", trail)
	}
}

func TestTruncateLeftKeepsRightmostCells(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"Scores › Toronto", 7, "Toronto"},
		{"abc", 10, "abc"},
		{"abc", 0, ""},
		{"", 5, ""},
	}
	for _, tc := range cases {
		if got := truncateLeft(tc.in, tc.width); got != tc.want {
			t.Errorf("truncateLeft(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}
