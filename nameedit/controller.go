// Package nameedit stages edits to the shared player name.
//
// The controller keeps a local draft decoupled from the committed value in
// the store. Keystrokes only ever touch the draft; the committed value
// changes through Commit and nowhere else, so partial edits are never
// visible to other consumers of the store.
package nameedit

import (
	"github.com/gdamore/tcell/v2"

	"github.com/Skeletonxf/card-game/state"
	"github.com/Skeletonxf/card-game/tui"
)

// Controller mediates between the editable draft and the committed name.
type Controller struct {
	store     *state.Store
	field     *tui.FieldState
	canCommit bool
}

// NewController creates a controller with its draft seeded from the store's
// committed value. It subscribes to the store so the commit gate is
// re-derived whenever the committed value changes.
func NewController(store *state.Store) *Controller {
	c := &Controller{
		store: store,
		field: tui.NewFieldState(store.SelectUserName()),
	}
	c.refresh()
	store.Subscribe(c.refresh)
	return c
}

// refresh re-derives the commit gate from committed and draft. It is the
// only writer of canCommit.
func (c *Controller) refresh() {
	c.canCommit = c.store.SelectUserName() != c.field.Value()
}

// Activate resets the draft to the committed value.
func (c *Controller) Activate() {
	c.field.SetValue(c.store.SelectUserName())
	c.refresh()
}

// Committed returns the store's committed name.
func (c *Controller) Committed() string {
	return c.store.SelectUserName()
}

// Draft returns the staged, not yet committed name.
func (c *Controller) Draft() string {
	return c.field.Value()
}

// Edit replaces the draft wholesale. The committed value is untouched.
func (c *Controller) Edit(text string) {
	c.field.SetValue(text)
	c.refresh()
}

// HandleKey routes a keystroke into the draft field. Returns true if the
// draft changed.
func (c *Controller) HandleKey(key tcell.Key, r rune, mod tcell.ModMask) bool {
	changed := c.field.HandleKey(key, r, mod)
	if changed {
		c.refresh()
	}
	return changed
}

// CanCommit reports whether draft and committed differ. Commit is gated on
// this, so committing an unchanged draft is unreachable.
func (c *Controller) CanCommit() bool {
	return c.canCommit
}

// Commit promotes the draft into the store. Returns false without touching
// the store when the gate is closed. The store's synchronous notification
// re-derives the gate, which closes because draft and committed now agree.
func (c *Controller) Commit() bool {
	if !c.canCommit {
		return false
	}
	c.store.SetUserName(c.field.Value())
	return true
}

// Field exposes the draft field state for rendering.
func (c *Controller) Field() *tui.FieldState {
	return c.field
}
