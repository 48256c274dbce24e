package tui

import "github.com/gdamore/tcell/v2"

// TextFieldOpts configures text field rendering.
type TextFieldOpts struct {
	Prefix  string // Left prompt (e.g., "> ")
	Focused bool   // Show the cursor
	Style   TextFieldStyle
}

// TextFieldStyle defines text field colors.
type TextFieldStyle struct {
	Text   tcell.Style
	Cursor tcell.Style
	Prefix tcell.Style
}

// TextField renders a single-line editable field into row 0 of the region.
// The field state's scroll is adjusted so the cursor stays visible.
func (r Region) TextField(state *FieldState, opts TextFieldOpts) {
	if r.W < 1 || r.H < 1 {
		return
	}

	for x := 0; x < r.W; x++ {
		r.SetCell(x, 0, ' ', opts.Style.Text)
	}

	x := 0
	for _, ch := range opts.Prefix {
		if x >= r.W {
			return
		}
		r.SetCell(x, 0, ch, opts.Style.Prefix)
		x++
	}

	viewportW := r.W - x
	if viewportW < 1 {
		return
	}
	state.AdjustScroll(viewportW)

	for i := 0; i < viewportW; i++ {
		idx := state.Scroll + i
		ch := ' '
		if idx < len(state.Text) {
			ch = state.Text[idx]
		}
		style := opts.Style.Text
		if opts.Focused && idx == state.Cursor {
			style = opts.Style.Cursor
		}
		r.SetCell(x+i, 0, ch, style)
	}
}
