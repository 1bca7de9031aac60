package model

// Conference identifies one of the two league conferences.
type Conference string

const (
	Eastern Conference = "Eastern"
	Western Conference = "Western"
)

// Team represents a franchise.
type Team struct {
	Abbrev     string     `yaml:"abbrev"`
	Name       string     `yaml:"name"`
	Division   string     `yaml:"division"`
	Conference Conference `yaml:"conference"`
	Venue      string     `yaml:"venue"`
	Coach      string     `yaml:"coach"`
}

// StandingRow represents one team's position in the standings.
type StandingRow struct {
	Team         Team  `yaml:"team"`
	GamesPlayed  int   `yaml:"games_played"`
	Wins         int   `yaml:"wins"`
	Losses       int   `yaml:"losses"`
	OTLosses     int   `yaml:"ot_losses"`
	Points       int   `yaml:"points"`
	GoalsFor     int   `yaml:"goals_for"`
	GoalsAgainst int   `yaml:"goals_against"`
	Form         []int `yaml:"form"` // points earned per game, most recent last
}

// Player represents one skater or goalie on a roster.
type Player struct {
	ID       int    `yaml:"id"`
	Name     string `yaml:"name"`
	Team     string `yaml:"team"` // abbrev
	Number   int    `yaml:"number"`
	Position string `yaml:"position"` // C/LW/RW/D/G
	Shoots   string `yaml:"shoots"`
	Age      int    `yaml:"age"`
	Height   string `yaml:"height"`
	Weight   int    `yaml:"weight"`
	Games    int    `yaml:"games"`
	Goals    int    `yaml:"goals"`
	Assists  int    `yaml:"assists"`
	PlusMin  int    `yaml:"plus_minus"`
	PIM      int    `yaml:"pim"`
}

// Points returns the player's scoring total.
func (p Player) Points() int { return p.Goals + p.Assists }

// GameState describes how far along a game is.
type GameState string

const (
	GameScheduled GameState = "scheduled"
	GameLive      GameState = "live"
	GameFinal     GameState = "final"
)

// Game represents one entry on the scoreboard.
type Game struct {
	ID        int       `yaml:"id"`
	Away      string    `yaml:"away"` // abbrev
	Home      string    `yaml:"home"` // abbrev
	AwayScore int       `yaml:"away_score"`
	HomeScore int       `yaml:"home_score"`
	State     GameState `yaml:"state"`
	Period    string    `yaml:"period"` // "1st", "2nd", "3rd", "OT", "SO"
	Clock     string    `yaml:"clock"`  // "12:34", empty when not live
	Start     string    `yaml:"start"`  // local start time for scheduled games
}
