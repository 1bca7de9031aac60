package data

import (
	"testing"

	"github.com/rinkside/rinkside/internal/model"
)

func TestBundledFixture_Parses(t *testing.T) {
	t.Parallel()

	p, err := NewFixtureProvider()
	if err != nil {
		t.Fatalf("NewFixtureProvider: %v", err)
	}

	if got := len(p.Teams()); got == 0 {
		t.Fatal("bundled fixture has no teams")
	}
	if got := len(p.Scoreboard()); got == 0 {
		t.Fatal("bundled fixture has no games")
	}
}

func TestStandings_FiltersByConference(t *testing.T) {
	t.Parallel()

	p, err := NewFixtureProvider()
	if err != nil {
		t.Fatalf("NewFixtureProvider: %v", err)
	}

	east := p.Standings(model.Eastern)
	if len(east) == 0 {
		t.Fatal("no eastern standings")
	}
	for _, row := range east {
		if row.Team.Conference != model.Eastern {
			t.Fatalf("row %s in eastern standings has conference %q", row.Team.Abbrev, row.Team.Conference)
		}
	}

	// Sorted by points, descending.
	for i := 1; i < len(east); i++ {
		if east[i].Points > east[i-1].Points {
			t.Fatalf("standings not sorted: %d pts after %d pts", east[i].Points, east[i-1].Points)
		}
	}
}

func TestRoster_SortedByScoring(t *testing.T) {
	t.Parallel()

	p, err := NewFixtureProvider()
	if err != nil {
		t.Fatalf("NewFixtureProvider: %v", err)
	}

	roster := p.Roster("TOR")
	if len(roster) < 2 {
		t.Fatalf("TOR roster size = %d, want >= 2", len(roster))
	}
	for i := 1; i < len(roster); i++ {
		if roster[i].Points() > roster[i-1].Points() {
			t.Fatalf("roster not sorted by points at index %d", i)
		}
	}

	if got := p.Roster("ZZZ"); len(got) != 0 {
		t.Fatalf("unknown team roster size = %d, want 0", len(got))
	}
}

func TestPlayer_Lookup(t *testing.T) {
	t.Parallel()

	p, err := NewFixtureProvider()
	if err != nil {
		t.Fatalf("NewFixtureProvider: %v", err)
	}

	pl, ok := p.Player(8479318)
	if !ok {
		t.Fatal("player 8479318 not found")
	}
	if pl.Name != "Auston Matthews" {
		t.Fatalf("player name = %q", pl.Name)
	}

	if _, ok := p.Player(1); ok {
		t.Fatal("unknown player id resolved")
	}
}
