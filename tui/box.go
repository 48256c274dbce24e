package tui

import "github.com/gdamore/tcell/v2"

// Box draws a single-line border around the region edge.
func (r Region) Box(style tcell.Style) {
	if r.W < 2 || r.H < 2 {
		return
	}
	for x := 1; x < r.W-1; x++ {
		r.SetCell(x, 0, '─', style)
		r.SetCell(x, r.H-1, '─', style)
	}
	for y := 1; y < r.H-1; y++ {
		r.SetCell(0, y, '│', style)
		r.SetCell(r.W-1, y, '│', style)
	}
	r.SetCell(0, 0, '┌', style)
	r.SetCell(r.W-1, 0, '┐', style)
	r.SetCell(0, r.H-1, '└', style)
	r.SetCell(r.W-1, r.H-1, '┘', style)
}

// Card draws a border with an embedded title and returns the inner region.
func (r Region) Card(title string, style tcell.Style) Region {
	r.Box(style)
	if title != "" && r.W > 4 {
		label := " " + Truncate(title, r.W-4) + " "
		r.Text(2, 0, label, style)
	}
	return r.Inset(1)
}

// HLine draws a horizontal line across the region at row y.
func (r Region) HLine(y int, style tcell.Style) {
	for x := 0; x < r.W; x++ {
		r.SetCell(x, y, '─', style)
	}
}

// Truncate truncates a string with an ellipsis if it exceeds maxLen runes.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return "…"
	}
	return string(runes[:maxLen-1]) + "…"
}
