package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const crumbSeparator = " › "

// Breadcrumb derives the display trail from a tab's static labels and its
// navigation stack: fixed view-name prefix, optional sub-view label, then
// one label per stack entry in push order. Pure derivation; the trail is
// recomputed on every render and never stored.
func Breadcrumb[P Panel, S any](viewName, subLabel string, nav *NavigationContext[P, S]) []string {
	trail := make([]string, 0, 2+nav.Depth())
	if viewName != "" {
		trail = append(trail, viewName)
	}
	if subLabel != "" {
		trail = append(trail, subLabel)
	}
	return append(trail, nav.BreadcrumbTrail()...)
}

// renderBreadcrumbBar renders the trail into the breadcrumb chrome row. The
// last segment is the current location and gets the accent color. Overlong
// trails are truncated from the left so the current location stays visible.
func renderBreadcrumbBar(trail []string, area Rect, skin *Skin) string {
	if area.Empty() {
		return ""
	}

	dimStyle := lipgloss.NewStyle().Foreground(skin.Dim)
	headStyle := lipgloss.NewStyle().Foreground(skin.Accent).Bold(true)

	var plain string
	var styled string
	for i, segment := range trail {
		sep := ""
		if i > 0 {
			sep = crumbSeparator
		}
		plain += sep + segment
		if i == len(trail)-1 {
			styled += dimStyle.Render(sep) + headStyle.Render(segment)
		} else {
			styled += dimStyle.Render(sep + segment)
		}
	}

	if runewidth.StringWidth(plain) > area.W && area.W > 1 {
		styled = dimStyle.Render("…") +
			lipgloss.NewStyle().Render(truncateLeft(plain, area.W-1))
	}

	line := lipgloss.NewStyle().Width(area.W).MaxWidth(area.W).Render(styled)
	rule := dimStyle.Render(strings.Repeat("─", max(0, area.W)))
	return lipgloss.NewStyle().Height(area.H).MaxHeight(area.H).
		Render(lipgloss.JoinVertical(lipgloss.Left, line, rule))
}

// truncateLeft keeps the rightmost cells of s that fit in width.
func truncateLeft(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	for runewidth.StringWidth(string(runes)) > width && len(runes) > 0 {
		runes = runes[1:]
	}
	return string(runes)
}
