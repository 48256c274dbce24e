package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/Skeletonxf/card-game/board"
	"github.com/Skeletonxf/card-game/tui"
)

// Colors
var (
	styleBg       = tcell.StyleDefault.Background(tcell.NewRGBColor(20, 20, 30)).Foreground(tcell.NewRGBColor(200, 200, 200))
	styleHeader   = tcell.StyleDefault.Background(tcell.NewRGBColor(40, 50, 70)).Foreground(tcell.NewRGBColor(220, 220, 220))
	styleBorder   = styleBg.Foreground(tcell.NewRGBColor(80, 100, 140))
	styleAccent   = styleBg.Foreground(tcell.NewRGBColor(100, 200, 220))
	styleDim      = styleBg.Foreground(tcell.NewRGBColor(100, 100, 100))
	styleGood     = styleBg.Foreground(tcell.NewRGBColor(80, 200, 80))
	styleCell     = styleBg.Foreground(tcell.NewRGBColor(170, 170, 190))
	styleCursor   = tcell.StyleDefault.Background(tcell.NewRGBColor(60, 80, 120)).Foreground(tcell.NewRGBColor(255, 255, 255))
	styleDisabled = styleBg.Foreground(tcell.NewRGBColor(70, 70, 80))
)

const leftPaneW = 38

// Render draws one frame of the whole app.
func (a *App) Render(screen tcell.Screen) {
	a.commit.Enabled = a.name.CanCommit()
	a.commit.Focused = a.focus == focusName

	root := tui.NewRegion(screen)
	root.Fill(styleBg)

	header, body := tui.SplitVFixed(root, 1)
	header.Fill(styleHeader)
	header.Text(1, 0, "card-game prototype", styleHeader)
	header.TextRight(0, fmt.Sprintf("Player: %s ", a.store.SelectUserName()), styleHeader)

	body, status := tui.SplitVFixed(body, body.H-1)
	a.renderStatus(status)

	left, right := tui.SplitHFixed(body, leftPaneW)
	a.renderNamePane(left)
	a.renderBoardPane(right)
}

func (a *App) renderNamePane(r tui.Region) {
	nameArea, rest := tui.SplitVFixed(r, 5)
	a.renderNameEditor(nameArea)
	a.renderActionPane(rest)
}

func (a *App) renderNameEditor(r tui.Region) {
	inner := r.Card("PLAYER NAME", a.paneBorder(focusName))

	fieldStyle := tui.TextFieldStyle{
		Text:   styleBg,
		Cursor: styleCursor,
		Prefix: styleDim,
	}
	fieldRow, buttonRow := tui.SplitVFixed(inner, 1)
	fieldRow.TextField(a.name.Field(), tui.TextFieldOpts{
		Prefix:  "> ",
		Focused: a.focus == focusName,
		Style:   fieldStyle,
	})

	buttonRow.Button(2, 1, a.commit, tui.ButtonStyle{
		Label:    styleBg,
		Focus:    styleCursor,
		Disabled: styleDisabled,
	})
	if !a.commit.Enabled {
		buttonRow.Text(13, 1, "(draft unchanged)", styleDim)
	}
}

func (a *App) renderActionPane(r tui.Region) {
	inner := r.Card("ACTIONS", a.paneBorder(focusActions))

	y := 0
	for i, action := range a.actions {
		if y >= inner.H-2 {
			break
		}
		style := styleBg
		prefix := "  "
		if i == a.cursor && a.focus == focusActions {
			style = styleCursor
			prefix = "» "
		}
		inner.Text(0, y, prefix+tui.Truncate(describeAction(a.pool, a.player, action), inner.W-3), style)
		y++
	}
	if len(a.actions) == 0 {
		inner.Text(0, y, "(no actions available)", styleDim)
		y++
	}

	y = inner.H - 2
	inner.HLine(y, styleBorder)
	summary := fmt.Sprintf("hand %d · field %d · decks %d/%d",
		len(a.player.Hand), len(a.player.Field),
		len(a.player.LeftDeck), len(a.player.RightDeck))
	inner.Text(0, y+1, summary, styleDim)
}

func (a *App) renderBoardPane(r tui.Region) {
	inner := r.Card("FIELD", styleBorder)
	RenderBoard(inner, board.FieldSpec)
}

func (a *App) renderStatus(r tui.Region) {
	r.Fill(styleHeader)
	hint := "Tab switch pane · Enter act · j/k move · d/D draw · Esc quit"
	r.Text(1, 0, a.status, styleGood)
	r.TextRight(0, hint+" ", styleDim)
}

func (a *App) paneBorder(zone focusZone) tcell.Style {
	if a.focus == zone {
		return styleAccent
	}
	return styleBorder
}

// RenderBoard draws every cell of the spec into its grid track. Coordinate
// (r, c) occupies the track at grid lines (r+1, c+1) on a surface divided
// into equal-width tracks, and the cell shows its own coordinate text.
func RenderBoard(r tui.Region, spec board.GridSpec) {
	cols := spec.Columns()
	if cols == 0 {
		return
	}
	cells := board.Layout(spec)

	rows := 0
	for _, cell := range cells {
		if cell.RowLine > rows {
			rows = cell.RowLine
		}
	}
	if rows == 0 {
		return
	}

	// Trim the rounding remainder and center the grid, so every track
	// comes out the same size.
	grid := tui.Center(r, (r.W/cols)*cols, (r.H/rows)*rows)

	for _, cell := range cells {
		x, w := tui.Tracks(grid.W, cols, cell.ColLine-1)
		y, h := tui.Tracks(grid.H, rows, cell.RowLine-1)
		track := grid.Sub(x, y, w, h)
		track.Box(styleDim)
		track.TextCenter(h/2, cell.Label, styleCell)
	}
}
