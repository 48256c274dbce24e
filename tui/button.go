package tui

import "github.com/gdamore/tcell/v2"

// Button is a labeled activatable control. The app owns the instance,
// renders it each frame and calls Activate on the key it maps to the
// button. OnActivate never fires while the button is disabled.
type Button struct {
	Label      string
	Enabled    bool
	Focused    bool
	OnActivate func()
}

// Activate invokes the button's callback if it is enabled. Returns whether
// the activation fired.
func (b *Button) Activate() bool {
	if !b.Enabled || b.OnActivate == nil {
		return false
	}
	b.OnActivate()
	return true
}

// ButtonStyle defines button colors per state.
type ButtonStyle struct {
	Label    tcell.Style
	Focus    tcell.Style
	Disabled tcell.Style
}

// Button renders the control at (x, y). Disabled buttons render dimmed so
// the gate is visible before the user tries the key.
func (r Region) Button(x, y int, b *Button, style ButtonStyle) {
	s := style.Label
	switch {
	case !b.Enabled:
		s = style.Disabled
	case b.Focused:
		s = style.Focus
	}
	r.Text(x, y, "[ "+b.Label+" ]", s)
}
