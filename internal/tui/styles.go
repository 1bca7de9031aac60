package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// widgetFrame returns the bordered frame style for a widget occupying a
// w×h cell area. The border eats one cell on each side, so the inner box is
// sized down accordingly. Focus is signalled with the accent border.
func widgetFrame(skin *Skin, focused bool, w, h int) lipgloss.Style {
	borderColor := skin.Border
	if focused {
		borderColor = skin.Accent
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		Width(max(0, w-2)).
		Height(max(0, h-2)).
		MaxWidth(w).
		MaxHeight(h)
}

func widgetTitle(skin *Skin, title string) string {
	return lipgloss.NewStyle().Foreground(skin.Accent).Bold(true).Render(title)
}

// innerSize returns the drawable cells inside a widget frame.
func innerSize(area Rect) (w, h int) {
	return max(0, area.W-2), max(0, area.H-2)
}

// cell pads or truncates s to exactly width display cells.
func cell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = runewidth.Truncate(s, width, "…")
	return s + spaces(width-runewidth.StringWidth(s))
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

// clampLines cuts or pads lines to exactly h entries so a widget never draws
// outside its area.
func clampLines(lines []string, h int) []string {
	if h <= 0 {
		return nil
	}
	if len(lines) > h {
		return lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return lines
}
