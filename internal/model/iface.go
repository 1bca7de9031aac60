package model

// Provider provides read-only queries on league data. The TUI treats it as
// an external collaborator: all fetching, caching, and staleness concerns
// live behind this interface.
type Provider interface {
	Teams() []Team
	Team(abbrev string) (Team, bool)
	Standings(conf Conference) []StandingRow
	Roster(abbrev string) []Player
	Player(id int) (Player, bool)
	Scoreboard() []Game
}
