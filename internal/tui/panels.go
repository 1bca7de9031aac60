package tui

import "strconv"

// PanelKind names a drill-down view that can be pushed onto a tab's
// navigation stack.
type PanelKind int

const (
	PanelTeamDetail PanelKind = iota
	PanelPlayerDetail
)

// PanelRef describes one panel instance: the kind plus the parameters it was
// opened with. Display names are resolved at push time so crumbs never need
// a data round trip.
type PanelRef struct {
	Kind PanelKind

	TeamAbbrev string
	TeamName   string

	PlayerID   int
	PlayerName string
}

// TeamDetailPanel builds a team drill-down descriptor.
func TeamDetailPanel(abbrev, name string) PanelRef {
	return PanelRef{Kind: PanelTeamDetail, TeamAbbrev: abbrev, TeamName: name}
}

// PlayerDetailPanel builds a player drill-down descriptor.
func PlayerDetailPanel(id int, name string) PanelRef {
	return PanelRef{Kind: PanelPlayerDetail, PlayerID: id, PlayerName: name}
}

// CacheKey is deterministic per descriptor: opening the same team twice maps
// to the same key regardless of how it was reached.
func (p PanelRef) CacheKey() string {
	switch p.Kind {
	case PanelPlayerDetail:
		return "player/" + strconv.Itoa(p.PlayerID)
	default:
		return "team/" + p.TeamAbbrev
	}
}

// Crumb returns the panel's breadcrumb label.
func (p PanelRef) Crumb() string {
	switch p.Kind {
	case PanelPlayerDetail:
		return p.PlayerName
	default:
		return p.TeamName
	}
}

// PanelState is the per-panel cached state stored on a NavigationContext.
// Each panel kind owns a distinct shape; the closed sum keeps them from
// collapsing into one untyped blob.
type PanelState interface{ panelState() }

// TeamDetailState preserves a team panel across pop/revisit.
type TeamDetailState struct {
	FocusIdx     int // which child of the detail container held focus
	RosterIndex  int
	RosterScroll int
}

func (TeamDetailState) panelState() {}

// PlayerDetailState preserves a player panel across pop/revisit.
type PlayerDetailState struct {
	BioScroll int
}

func (PlayerDetailState) panelState() {}
