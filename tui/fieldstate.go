package tui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// FieldState is the editable rune buffer behind the name field. It is the
// draft side of the editor: every keystroke mutates it and nothing else.
type FieldState struct {
	Text   []rune
	Cursor int // Position before which the cursor sits (0 = before first rune)
	Scroll int // First visible rune index
}

// NewFieldState creates field state seeded with initial text, cursor at end.
func NewFieldState(initial string) *FieldState {
	runes := []rune(initial)
	return &FieldState{Text: runes, Cursor: len(runes)}
}

// Value returns the current text as a string.
func (f *FieldState) Value() string {
	return string(f.Text)
}

// SetValue replaces the text and moves the cursor to the end.
func (f *FieldState) SetValue(s string) {
	f.Text = []rune(s)
	f.Cursor = len(f.Text)
	f.Scroll = 0
}

// Insert adds a rune at the cursor position.
func (f *FieldState) Insert(r rune) {
	f.Text = append(f.Text[:f.Cursor], append([]rune{r}, f.Text[f.Cursor:]...)...)
	f.Cursor++
}

// DeleteBackward removes the rune before the cursor.
func (f *FieldState) DeleteBackward() bool {
	if f.Cursor == 0 {
		return false
	}
	f.Text = append(f.Text[:f.Cursor-1], f.Text[f.Cursor:]...)
	f.Cursor--
	return true
}

// DeleteForward removes the rune at the cursor.
func (f *FieldState) DeleteForward() bool {
	if f.Cursor >= len(f.Text) {
		return false
	}
	f.Text = append(f.Text[:f.Cursor], f.Text[f.Cursor+1:]...)
	return true
}

// DeleteWordBackward removes the word before the cursor.
func (f *FieldState) DeleteWordBackward() bool {
	if f.Cursor == 0 {
		return false
	}
	end := f.Cursor
	for end > 0 && !isWordChar(f.Text[end-1]) {
		end--
	}
	start := end
	for start > 0 && isWordChar(f.Text[start-1]) {
		start--
	}
	if start == f.Cursor {
		start = f.Cursor - 1
	}
	f.Text = append(f.Text[:start], f.Text[f.Cursor:]...)
	f.Cursor = start
	return true
}

// DeleteToStart removes everything before the cursor.
func (f *FieldState) DeleteToStart() bool {
	if f.Cursor == 0 {
		return false
	}
	f.Text = f.Text[f.Cursor:]
	f.Cursor = 0
	f.Scroll = 0
	return true
}

// DeleteToEnd removes everything from the cursor on.
func (f *FieldState) DeleteToEnd() bool {
	if f.Cursor >= len(f.Text) {
		return false
	}
	f.Text = f.Text[:f.Cursor]
	return true
}

// MoveLeft moves the cursor one rune left.
func (f *FieldState) MoveLeft() {
	if f.Cursor > 0 {
		f.Cursor--
	}
}

// MoveRight moves the cursor one rune right.
func (f *FieldState) MoveRight() {
	if f.Cursor < len(f.Text) {
		f.Cursor++
	}
}

// MoveToStart moves the cursor to the beginning.
func (f *FieldState) MoveToStart() {
	f.Cursor = 0
}

// MoveToEnd moves the cursor past the last rune.
func (f *FieldState) MoveToEnd() {
	f.Cursor = len(f.Text)
}

// AdjustScroll keeps the cursor inside a viewport of the given rune width.
func (f *FieldState) AdjustScroll(viewportW int) {
	if viewportW <= 0 {
		return
	}
	if f.Cursor < f.Scroll {
		f.Scroll = f.Cursor
	}
	if f.Cursor >= f.Scroll+viewportW {
		f.Scroll = f.Cursor - viewportW + 1
	}
	if f.Scroll < 0 {
		f.Scroll = 0
	}
}

// HandleKey applies one key event to the field. Returns true if the field
// text or cursor changed.
func (f *FieldState) HandleKey(key tcell.Key, r rune, mod tcell.ModMask) bool {
	switch key {
	case tcell.KeyLeft:
		f.MoveLeft()
		return true
	case tcell.KeyRight:
		f.MoveRight()
		return true
	case tcell.KeyHome, tcell.KeyCtrlA:
		f.MoveToStart()
		return true
	case tcell.KeyEnd, tcell.KeyCtrlE:
		f.MoveToEnd()
		return true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if mod&tcell.ModCtrl != 0 {
			return f.DeleteWordBackward()
		}
		return f.DeleteBackward()
	case tcell.KeyDelete:
		return f.DeleteForward()
	case tcell.KeyCtrlW:
		return f.DeleteWordBackward()
	case tcell.KeyCtrlU:
		return f.DeleteToStart()
	case tcell.KeyCtrlK:
		return f.DeleteToEnd()
	case tcell.KeyRune:
		if r != 0 && unicode.IsPrint(r) {
			f.Insert(r)
			return true
		}
	}
	return false
}
