package tui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

// newTestScreen returns an initialized simulation screen of the given size.
func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("SimulationScreen init failed: %v", err)
	}
	sim.SetSize(w, h)
	t.Cleanup(sim.Fini)
	return sim
}

// screenText renders the simulation screen contents as lines of text.
func screenText(sim tcell.SimulationScreen) []string {
	cells, w, h := sim.GetContents()
	lines := make([]string, h)
	for y := 0; y < h; y++ {
		var b strings.Builder
		for x := 0; x < w; x++ {
			runes := cells[y*w+x].Runes
			if len(runes) == 0 {
				b.WriteRune(' ')
				continue
			}
			b.WriteRune(runes[0])
		}
		lines[y] = b.String()
	}
	return lines
}

func TestTextClipsToRegion(t *testing.T) {
	sim := newTestScreen(t, 10, 3)
	root := NewRegion(sim)

	sub := root.Sub(2, 1, 4, 1)
	sub.Text(0, 0, "overflowing", tcell.StyleDefault)
	sim.Show()

	lines := screenText(sim)
	if lines[1] != "  over    " {
		t.Errorf("Line = %q, want %q", lines[1], "  over    ")
	}
	if strings.TrimSpace(lines[0]) != "" || strings.TrimSpace(lines[2]) != "" {
		t.Error("Text leaked outside the region row")
	}
}

func TestSubClipsNegativeOrigin(t *testing.T) {
	sim := newTestScreen(t, 8, 4)
	root := NewRegion(sim)

	sub := root.Sub(-2, -1, 5, 3)
	if sub.X != 0 || sub.Y != 0 || sub.W != 3 || sub.H != 2 {
		t.Errorf("Clipped region = %+v", sub)
	}
}

func TestCardDrawsBorderAndTitle(t *testing.T) {
	sim := newTestScreen(t, 12, 4)
	root := NewRegion(sim)

	inner := root.Card("HAND", tcell.StyleDefault)
	inner.Text(0, 0, "x", tcell.StyleDefault)
	sim.Show()

	lines := screenText(sim)
	if !strings.Contains(lines[0], " HAND ") {
		t.Errorf("Title row = %q", lines[0])
	}
	if !strings.HasPrefix(lines[0], "┌") || !strings.HasSuffix(lines[0], "┐") {
		t.Errorf("Top border row = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "│") {
		t.Errorf("Left border missing: %q", lines[1])
	}
	// Inner origin is inset by the border.
	if !strings.Contains(lines[1], "x") {
		t.Errorf("Inner content missing: %q", lines[1])
	}
}

func TestCenter(t *testing.T) {
	sim := newTestScreen(t, 20, 10)
	root := NewRegion(sim)

	inner := Center(root, 10, 4)
	if inner.X != 5 || inner.Y != 3 || inner.W != 10 || inner.H != 4 {
		t.Errorf("Centered region = %+v, want 10x4 at (5, 3)", inner)
	}

	// Oversized requests clip to the outer region.
	inner = Center(root, 40, 20)
	if inner.X != 0 || inner.Y != 0 || inner.W != 20 || inner.H != 10 {
		t.Errorf("Oversized center = %+v, want the full region", inner)
	}
}

func TestSplitVFixed(t *testing.T) {
	sim := newTestScreen(t, 10, 10)
	root := NewRegion(sim)

	top, bottom := SplitVFixed(root, 3)
	if top.H != 3 || bottom.H != 7 || bottom.Y != 3 {
		t.Errorf("Split = top %+v, bottom %+v", top, bottom)
	}

	top, bottom = SplitVFixed(root, 42)
	if top.H != 10 || bottom.H != 0 {
		t.Errorf("Oversized split = top %+v, bottom %+v", top, bottom)
	}
}

func TestTracksPartitionExactly(t *testing.T) {
	tests := []struct {
		name   string
		totalW int
		count  int
	}{
		{"Even split", 21, 7},
		{"Remainder to last", 20, 7},
		{"Wide tracks", 70, 7},
		{"Single track", 9, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			covered := 0
			prevEnd := 0
			for i := 0; i < tt.count; i++ {
				x, w := Tracks(tt.totalW, tt.count, i)
				if x != prevEnd {
					t.Errorf("Track %d starts at %d, want %d", i, x, prevEnd)
				}
				covered += w
				prevEnd = x + w
			}
			if covered != tt.totalW {
				t.Errorf("Tracks cover %d cells, want %d", covered, tt.totalW)
			}
		})
	}
}

func TestTextFieldRendersDraftAndCursor(t *testing.T) {
	sim := newTestScreen(t, 12, 1)
	root := NewRegion(sim)

	field := NewFieldState("Bob")
	root.TextField(field, TextFieldOpts{
		Prefix:  "> ",
		Focused: true,
		Style: TextFieldStyle{
			Text:   tcell.StyleDefault,
			Cursor: tcell.StyleDefault.Reverse(true),
			Prefix: tcell.StyleDefault,
		},
	})
	sim.Show()

	lines := screenText(sim)
	if !strings.HasPrefix(lines[0], "> Bob") {
		t.Errorf("Field row = %q", lines[0])
	}
}

func TestButtonStates(t *testing.T) {
	fired := 0
	b := &Button{Label: "Commit", OnActivate: func() { fired++ }}

	if b.Activate() {
		t.Error("Disabled button activated")
	}
	if fired != 0 {
		t.Errorf("Callback fired %d times while disabled", fired)
	}

	b.Enabled = true
	if !b.Activate() {
		t.Error("Enabled button did not activate")
	}
	if fired != 1 {
		t.Errorf("Callback fired %d times, want 1", fired)
	}

	sim := newTestScreen(t, 14, 1)
	root := NewRegion(sim)
	root.Button(0, 0, b, ButtonStyle{
		Label:    tcell.StyleDefault,
		Focus:    tcell.StyleDefault.Bold(true),
		Disabled: tcell.StyleDefault.Dim(true),
	})
	sim.Show()

	lines := screenText(sim)
	if !strings.HasPrefix(lines[0], "[ Commit ]") {
		t.Errorf("Button row = %q", lines[0])
	}
}
