package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// renderTabBar renders the tab titles with the active tab highlighted, plus
// a rule line separating the bar from the content below.
func renderTabBar(titles []string, active int, area Rect, skin *Skin) string {
	if area.Empty() {
		return ""
	}

	activeStyle := lipgloss.NewStyle().Foreground(skin.Accent).Bold(true).Padding(0, 1)
	inactiveStyle := lipgloss.NewStyle().Foreground(skin.Dim).Padding(0, 1)

	parts := make([]string, 0, len(titles))
	for i, title := range titles {
		if i == active {
			parts = append(parts, activeStyle.Render(title))
		} else {
			parts = append(parts, inactiveStyle.Render(title))
		}
	}

	row := lipgloss.NewStyle().Width(area.W).MaxWidth(area.W).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	rule := lipgloss.NewStyle().Foreground(skin.Border).
		Render(strings.Repeat("─", max(0, area.W)))

	return lipgloss.NewStyle().Height(area.H).MaxHeight(area.H).
		Render(lipgloss.JoinVertical(lipgloss.Left, row, rule))
}

// renderActionBar renders contextual key hints above the status bar.
func renderActionBar(hints []string, area Rect, skin *Skin) string {
	if area.Empty() {
		return ""
	}

	rule := lipgloss.NewStyle().Foreground(skin.Border).
		Render(strings.Repeat("─", max(0, area.W)))
	row := lipgloss.NewStyle().Foreground(skin.Dim).Width(area.W).MaxWidth(area.W).
		Render(" " + strings.Join(hints, " • "))

	return lipgloss.NewStyle().Height(area.H).MaxHeight(area.H).
		Render(lipgloss.JoinVertical(lipgloss.Left, rule, row))
}

// renderStatusBar renders the bottom bar: current location on the left,
// key hints in the center, branding on the right. Sections shrink with the
// terminal the way narrow layouts usually do: hints go first, location last.
func renderStatusBar(left, center, right string, area Rect, skin *Skin) string {
	if area.Empty() {
		return ""
	}

	base := lipgloss.NewStyle().Background(skin.Bar).Foreground(skin.Text)

	rule := lipgloss.NewStyle().Foreground(skin.Border).
		Render(strings.Repeat("─", max(0, area.W)))

	w := area.W
	if w < 50 {
		center = ""
	}
	if w < 20 {
		right = ""
	}

	leftW := runewidth.StringWidth(left)
	rightW := runewidth.StringWidth(right)
	centerW := max(0, w-leftW-rightW)

	row := base.Render(left) +
		base.Width(centerW).Align(lipgloss.Center).Render(runewidth.Truncate(center, centerW, "…")) +
		base.Render(right)
	row = lipgloss.NewStyle().MaxWidth(w).Render(row)

	return lipgloss.NewStyle().Height(area.H).MaxHeight(area.H).
		Render(lipgloss.JoinVertical(lipgloss.Left, rule, row))
}
