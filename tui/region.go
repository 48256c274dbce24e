// Package tui provides immediate-mode drawing primitives over a tcell
// screen.
//
// Core abstraction is Region, a rectangular area of the screen. All drawing
// is relative to region bounds with automatic clipping; regions nest via
// Sub and layout helpers split them. No widget state is retained except the
// editable FieldState, which the app owns.
package tui

import "github.com/gdamore/tcell/v2"

// Region is a rectangular drawing area on a screen.
type Region struct {
	screen tcell.Screen
	X, Y   int // Absolute origin on the screen
	W, H   int
}

// NewRegion returns a region covering the whole screen.
func NewRegion(screen tcell.Screen) Region {
	w, h := screen.Size()
	return Region{screen: screen, W: w, H: h}
}

// Sub returns a nested region relative to the parent, clipped to its bounds.
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Region{screen: r.screen, X: r.X + x, Y: r.Y + y, W: w, H: h}
}

// Inset shrinks the region by n cells on every side.
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// SetCell draws one rune at region-relative coordinates, clipped.
func (r Region) SetCell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.W || y >= r.H {
		return
	}
	r.screen.SetContent(r.X+x, r.Y+y, ch, nil, style)
}

// Fill paints the whole region with spaces in the given style.
func (r Region) Fill(style tcell.Style) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.screen.SetContent(r.X+x, r.Y+y, ' ', nil, style)
		}
	}
}

// Text draws a string starting at (x, y), clipped to the region.
func (r Region) Text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		if x >= r.W {
			return
		}
		r.SetCell(x, y, ch, style)
		x++
	}
}

// TextCenter draws a string horizontally centered at row y.
func (r Region) TextCenter(y int, s string, style tcell.Style) {
	r.Text((r.W-len([]rune(s)))/2, y, s, style)
}

// TextRight draws a string right-aligned at row y.
func (r Region) TextRight(y int, s string, style tcell.Style) {
	r.Text(r.W-len([]rune(s)), y, s, style)
}
