package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rinkside/rinkside/internal/model"
)

// App is the top-level Bubble Tea model. It owns one TabView per tab and
// routes each key event down exactly one path: palette first when open,
// then the active tab's container tree, then the app-level shortcuts. One
// event is fully processed before the next frame is drawn.
type App struct {
	width  int
	height int

	keys     KeyMap
	skin     *Skin
	provider model.Provider

	tabs      []*TabView
	activeTab int

	palette *Palette
}

// NewApp wires the three tabs and the command palette.
func NewApp(provider model.Provider, skin *Skin, wrap bool) *App {
	tabs := []*TabView{
		NewScoresTab(provider, wrap),
		NewStandingsTab(provider, wrap),
		NewTeamsTab(provider, wrap),
	}
	tabs[0].SetFocused(true)

	return &App{
		keys:     DefaultKeyMap(),
		skin:     skin,
		provider: provider,
		tabs:     tabs,
		palette:  NewPalette(paletteEntries(provider)),
	}
}

// paletteEntries builds the fixed command set: tab switches plus one
// "open team" command per franchise.
func paletteEntries(provider model.Provider) []paletteEntry {
	entries := []paletteEntry{
		{title: "Go to Scores", action: PaletteAction{TabIdx: 0}},
		{title: "Go to Standings", action: PaletteAction{TabIdx: 1}},
		{title: "Go to Teams", action: PaletteAction{TabIdx: 2}},
	}
	for _, team := range provider.Teams() {
		nav := ToTeam(team.Abbrev)
		entries = append(entries, paletteEntry{
			title:  "Open team: " + team.Name,
			action: PaletteAction{TabIdx: -1, Nav: &nav},
		})
	}
	return entries
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

// handleKey dispatches one key event. The palette is the topmost input
// target while open; otherwise the active tab's widget tree gets first
// refusal and app shortcuts only see what bubbles all the way up.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.ForceQuit) {
		return a, tea.Quit
	}

	if a.palette.Visible() {
		if choice := a.palette.HandleKey(msg); choice != nil {
			a.applyPaletteAction(*choice)
		}
		return a, nil
	}

	if a.tabs[a.activeTab].HandleKey(msg) {
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Palette):
		a.palette.Open()
	case key.Matches(msg, a.keys.NextTab):
		a.switchTab((a.activeTab + 1) % len(a.tabs))
	case key.Matches(msg, a.keys.PrevTab):
		a.switchTab((a.activeTab - 1 + len(a.tabs)) % len(a.tabs))
	case key.Matches(msg, a.keys.Tab1):
		a.switchTab(0)
	case key.Matches(msg, a.keys.Tab2):
		a.switchTab(1)
	case key.Matches(msg, a.keys.Tab3):
		a.switchTab(2)
	}
	return a, nil
}

// switchTab moves input to another tab. The departing tab keeps its focus
// position and navigation stack; nothing is torn down.
func (a *App) switchTab(idx int) {
	if idx == a.activeTab || idx < 0 || idx >= len(a.tabs) {
		return
	}
	a.tabs[a.activeTab].SetFocused(false)
	a.activeTab = idx
	a.tabs[a.activeTab].SetFocused(true)
}

func (a *App) applyPaletteAction(action PaletteAction) {
	if action.TabIdx >= 0 {
		a.switchTab(action.TabIdx)
	}
	if action.Nav != nil {
		a.tabs[a.activeTab].Apply(*action.Nav)
	}
}

// View renders one frame: chrome rectangles are recomputed from scratch,
// the active tab draws into the content rect, and the palette overlay is
// rendered in a separate pass so it sits on top.
func (a *App) View() string {
	if a.width <= 0 || a.height <= 0 {
		return "Loading rinkside..."
	}

	tab := a.tabs[a.activeTab]
	hints := tab.ActionHints()
	chrome := Chrome{
		Breadcrumb: !tab.nav.IsAtRoot(),
		ActionBar:  len(hints) > 0,
		Modal:      a.palette.Visible(),
	}
	areas := CalculateAreas(a.width, a.height, chrome)

	titles := make([]string, len(a.tabs))
	for i, t := range a.tabs {
		titles[i] = fmt.Sprintf("%d %s", i+1, t.Title())
	}

	sections := []string{renderTabBar(titles, a.activeTab, areas.TabBar, a.skin)}
	if chrome.Breadcrumb {
		sections = append(sections, renderBreadcrumbBar(tab.Trail(), areas.Breadcrumb, a.skin))
	}

	content := lipgloss.NewStyle().
		Width(areas.Content.W).MaxWidth(areas.Content.W).
		Height(areas.Content.H).MaxHeight(areas.Content.H).
		Render(tab.Render(areas.Content, a.skin))
	sections = append(sections, content)

	if chrome.ActionBar {
		sections = append(sections, renderActionBar(hints, areas.ActionBar, a.skin))
	}
	sections = append(sections, renderStatusBar(a.statusLeft(), a.statusCenter(), " rinkside ", areas.StatusBar, a.skin))

	frame := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if chrome.Modal {
		overlay := a.palette.Render(areas.Overlay, a.skin)
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, overlay)
	}
	return frame
}

func (a *App) statusLeft() string {
	tab := a.tabs[a.activeTab]
	trail := tab.Trail()
	if len(trail) == 0 {
		return " [" + tab.Title() + "]"
	}
	return " [" + trail[len(trail)-1] + "]"
}

func (a *App) statusCenter() string {
	if a.width < 80 {
		return "tab: widgets • enter: open • q: quit"
	}
	return "tab: widgets • enter: open • esc: back • [/]: tabs • :: palette • q: quit"
}

// Start runs the dashboard until quit.
func Start(provider model.Provider, skin *Skin, wrap bool) error {
	p := tea.NewProgram(NewApp(provider, skin, wrap), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
