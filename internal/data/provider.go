// Package data implements model.Provider on top of a YAML league snapshot.
// A bundled fixture ships in the binary so the dashboard works offline; a
// snapshot file can be supplied to override it.
package data

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/rinkside/rinkside/internal/model"
)

//go:embed fixture.yml
var bundledFixture []byte

// snapshot is the on-disk shape of a league snapshot.
type snapshot struct {
	Teams     []model.Team              `yaml:"teams"`
	Standings []model.StandingRow       `yaml:"standings"`
	Rosters   map[string][]model.Player `yaml:"rosters"`
	Games     []model.Game              `yaml:"games"`
}

// FixtureProvider serves league data from a parsed snapshot.
type FixtureProvider struct {
	teams     []model.Team
	teamIdx   map[string]model.Team
	standings []model.StandingRow
	rosters   map[string][]model.Player
	players   map[int]model.Player
	games     []model.Game
}

// NewFixtureProvider parses the bundled snapshot.
func NewFixtureProvider() (*FixtureProvider, error) {
	return parseSnapshot(bundledFixture)
}

// LoadFile parses a snapshot from disk.
func LoadFile(path string) (*FixtureProvider, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	return parseSnapshot(raw)
}

func parseSnapshot(raw []byte) (*FixtureProvider, error) {
	var snap snapshot
	if err := yaml.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}

	p := &FixtureProvider{
		teams:     snap.Teams,
		teamIdx:   make(map[string]model.Team, len(snap.Teams)),
		standings: snap.Standings,
		rosters:   snap.Rosters,
		players:   make(map[int]model.Player),
		games:     snap.Games,
	}
	for _, t := range snap.Teams {
		p.teamIdx[t.Abbrev] = t
	}
	for _, roster := range snap.Rosters {
		for _, pl := range roster {
			p.players[pl.ID] = pl
		}
	}
	return p, nil
}

func (p *FixtureProvider) Teams() []model.Team {
	teams := append([]model.Team(nil), p.teams...)
	sort.Slice(teams, func(i, j int) bool { return teams[i].Name < teams[j].Name })
	return teams
}

func (p *FixtureProvider) Team(abbrev string) (model.Team, bool) {
	t, ok := p.teamIdx[abbrev]
	return t, ok
}

// Standings returns the rows for one conference sorted by points, or the
// whole league when conf is empty.
func (p *FixtureProvider) Standings(conf model.Conference) []model.StandingRow {
	rows := make([]model.StandingRow, 0, len(p.standings))
	for _, row := range p.standings {
		if conf == "" || row.Team.Conference == conf {
			rows = append(rows, row)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Points > rows[j].Points })
	return rows
}

// Roster returns a team's players sorted by scoring. Unknown teams yield an
// empty roster, not an error.
func (p *FixtureProvider) Roster(abbrev string) []model.Player {
	roster := append([]model.Player(nil), p.rosters[abbrev]...)
	sort.SliceStable(roster, func(i, j int) bool { return roster[i].Points() > roster[j].Points() })
	return roster
}

func (p *FixtureProvider) Player(id int) (model.Player, bool) {
	pl, ok := p.players[id]
	return pl, ok
}

func (p *FixtureProvider) Scoreboard() []model.Game {
	return append([]model.Game(nil), p.games...)
}
