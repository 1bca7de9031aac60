package model

import "testing"

func TestTeamName(t *testing.T) {
	t.Parallel()

	if got := TeamName("TOR"); got != "Toronto Maple Leafs" {
		t.Fatalf("TeamName(TOR) = %q", got)
	}
	if got := TeamName("XXX"); got != "XXX" {
		t.Fatalf("unknown abbrev = %q, want the abbrev itself", got)
	}
}

func TestPlayerPoints(t *testing.T) {
	t.Parallel()

	p := Player{Goals: 17, Assists: 14}
	if p.Points() != 31 {
		t.Fatalf("Points = %d, want 31", p.Points())
	}
}
