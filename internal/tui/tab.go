package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rinkside/rinkside/internal/model"
)

// TabView is one top-level tab: a root container that stays alive for the
// life of the tab (so focus position survives tab switches) plus a
// navigation context for drill-down panels. Drill-down containers are
// rebuilt from the panel-state cache on every push and pop; the cache is
// what makes revisits restore selection and scroll exactly.
type TabView struct {
	id       string
	title    string
	provider model.Provider
	wrap     bool

	root   *Container
	nav    *NavigationContext[PanelRef, PanelState]
	detail *Container // nil at root

	// Handles into the current detail container for state capture.
	roster *RosterWidget
	bio    *PlayerCardWidget

	// Standings tab only.
	confSel   *ConferenceSelectWidget
	standings *StandingsWidget
	lastConf  model.Conference

	back key.Binding
}

func newTabView(id, title string, provider model.Provider, wrap bool) *TabView {
	return &TabView{
		id:       id,
		title:    title,
		provider: provider,
		wrap:     wrap,
		nav:      NewNavigationContext[PanelRef, PanelState](),
		back:     DefaultKeyMap().Back,
	}
}

// NewScoresTab builds the Scores tab around the scoreboard.
func NewScoresTab(provider model.Provider, wrap bool) *TabView {
	t := newTabView("scores", "Scores", provider, wrap)
	t.root = NewContainer(NewScoreboardWidget(provider.Scoreboard()))
	t.root.SetWrap(wrap)
	return t
}

// NewStandingsTab builds the Standings tab: conference selector above the
// standings table.
func NewStandingsTab(provider model.Provider, wrap bool) *TabView {
	t := newTabView("standings", "Standings", provider, wrap)
	t.confSel = NewConferenceSelectWidget()
	t.lastConf = t.confSel.Conference()
	t.standings = NewStandingsWidget(provider.Standings(t.lastConf))
	t.root = NewContainer(t.confSel, t.standings)
	t.root.SetWrap(wrap)
	return t
}

// NewTeamsTab builds the Teams tab around the franchise list.
func NewTeamsTab(provider model.Provider, wrap bool) *TabView {
	t := newTabView("teams", "Teams", provider, wrap)
	t.root = NewContainer(NewTeamListWidget(provider.Teams()))
	t.root.SetWrap(wrap)
	return t
}

func (t *TabView) ID() string    { return t.id }
func (t *TabView) Title() string { return t.title }

// SetFocused routes focus to whichever container is active.
func (t *TabView) SetFocused(focused bool) {
	t.activeContainer().SetFocused(focused)
}

func (t *TabView) activeContainer() *Container {
	if t.detail != nil {
		return t.detail
	}
	return t.root
}

// HandleKey routes one key event through the active container. The focused
// widget gets first refusal; a returned navigation action mutates the stack;
// an unconsumed Escape pops when drilled in. Reports whether the event was
// consumed so the app can try its global keys afterwards.
func (t *TabView) HandleKey(msg tea.KeyMsg) bool {
	res := t.activeContainer().HandleKey(msg)
	if action, ok := res.Navigation(); ok {
		t.Apply(action)
		t.refreshStandings()
		return true
	}
	if res.Consumed() {
		t.refreshStandings()
		return true
	}
	if key.Matches(msg, t.back) && !t.nav.IsAtRoot() {
		t.pop()
		return true
	}
	return false
}

// refreshStandings reloads the table when the conference selector changed.
func (t *TabView) refreshStandings() {
	if t.confSel == nil || t.standings == nil {
		return
	}
	if conf := t.confSel.Conference(); conf != t.lastConf {
		t.lastConf = conf
		t.standings.SetRows(t.provider.Standings(conf))
	}
}

// Apply translates a navigation action into stack operations. Domain
// variants are resolved here: the widgets that produced them never see the
// stack.
func (t *TabView) Apply(action NavigationAction) {
	switch action.Kind {
	case NavToTeam:
		t.push(TeamDetailPanel(action.TeamAbbrev, model.TeamName(action.TeamAbbrev)))
	case NavToPlayer:
		t.push(PlayerDetailPanel(action.PlayerID, action.PlayerName))
	case NavPush:
		t.push(action.Panel)
	case NavPop:
		t.pop()
	}
}

func (t *TabView) push(panel PanelRef) {
	t.saveCurrentPanelState()
	t.nav.Push(panel)
	t.detail = t.buildPanel(panel)
	t.detail.SetFocused(true)
}

func (t *TabView) pop() {
	t.saveCurrentPanelState()
	if _, ok := t.nav.Pop(); !ok {
		return
	}
	if cur, ok := t.nav.Current(); ok {
		t.detail = t.buildPanel(cur)
		t.detail.SetFocused(true)
		return
	}
	t.detail = nil
	t.roster = nil
	t.bio = nil
	t.root.SetFocused(true)
}

// saveCurrentPanelState snapshots the departing panel's widget state into
// the cache under the panel's deterministic key.
func (t *TabView) saveCurrentPanelState() {
	cur, ok := t.nav.Current()
	if !ok || t.detail == nil {
		return
	}
	switch cur.Kind {
	case PanelTeamDetail:
		if t.roster == nil {
			return
		}
		selIdx, scroll := t.roster.SelectionState()
		t.nav.SetState(cur.CacheKey(), TeamDetailState{
			FocusIdx:     max(0, t.detail.FocusedIndex()),
			RosterIndex:  selIdx,
			RosterScroll: scroll,
		})
	case PanelPlayerDetail:
		if t.bio == nil {
			return
		}
		t.nav.SetState(cur.CacheKey(), PlayerDetailState{BioScroll: t.bio.ScrollOffset()})
	}
}

// buildPanel constructs the detail container for a panel, restoring any
// cached state for its key.
func (t *TabView) buildPanel(panel PanelRef) *Container {
	t.roster = nil
	t.bio = nil

	switch panel.Kind {
	case PanelPlayerDetail:
		player, ok := t.provider.Player(panel.PlayerID)
		if !ok {
			player = model.Player{ID: panel.PlayerID, Name: panel.PlayerName}
		}
		t.bio = NewPlayerCardWidget(player)
		if cached, ok := t.nav.State(panel.CacheKey()); ok {
			if st, ok := cached.(PlayerDetailState); ok {
				t.bio.RestoreScroll(st.BioScroll)
			}
		}
		c := NewContainer(t.bio)
		c.SetWrap(t.wrap)
		return c

	default: // PanelTeamDetail
		team, ok := t.provider.Team(panel.TeamAbbrev)
		if !ok {
			team = model.Team{Abbrev: panel.TeamAbbrev, Name: panel.TeamName}
		}
		row, hasRow := t.standingRow(panel.TeamAbbrev)
		card := NewTeamCardWidget(team, row, hasRow)
		t.roster = NewRosterWidget(t.provider.Roster(panel.TeamAbbrev))

		c := NewContainer(card, t.roster)
		c.SetWrap(t.wrap)

		focusIdx := 1 // the roster, not the static card
		if cached, ok := t.nav.State(panel.CacheKey()); ok {
			if st, ok := cached.(TeamDetailState); ok {
				t.roster.RestoreSelection(st.RosterIndex, st.RosterScroll)
				focusIdx = st.FocusIdx
			}
		}
		c.SetFocusedIndex(focusIdx)
		return c
	}
}

func (t *TabView) standingRow(abbrev string) (model.StandingRow, bool) {
	for _, row := range t.provider.Standings("") {
		if row.Team.Abbrev == abbrev {
			return row, true
		}
	}
	return model.StandingRow{}, false
}

// Render draws the active container into the content area.
func (t *TabView) Render(area Rect, skin *Skin) string {
	return t.activeContainer().Render(area, skin)
}

// Trail derives the breadcrumb for this tab: tab title, optional sub-view
// label, then one entry per stack level.
func (t *TabView) Trail() []string {
	return Breadcrumb(t.title, t.subLabel(), t.nav)
}

func (t *TabView) subLabel() string {
	if t.confSel != nil && t.nav.IsAtRoot() {
		return string(t.confSel.Conference())
	}
	return ""
}

// ActionHints returns the contextual hints for the action bar. Empty at
// root; the action bar is only shown while drilled in.
func (t *TabView) ActionHints() []string {
	cur, ok := t.nav.Current()
	if !ok {
		return nil
	}
	switch cur.Kind {
	case PanelPlayerDetail:
		return []string{"esc: back", "↑/↓: scroll"}
	default:
		return []string{"esc: back", "enter: player", "tab: next widget"}
	}
}
