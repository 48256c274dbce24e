package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestFieldInsertAndDelete(t *testing.T) {
	f := NewFieldState("ab")

	f.Insert('c')
	if got := f.Value(); got != "abc" {
		t.Errorf("Value after insert = %q, want %q", got, "abc")
	}

	if !f.DeleteBackward() {
		t.Error("DeleteBackward returned false with text present")
	}
	if got := f.Value(); got != "ab" {
		t.Errorf("Value after delete = %q, want %q", got, "ab")
	}

	f.MoveToStart()
	if f.DeleteBackward() {
		t.Error("DeleteBackward at start should return false")
	}
	if !f.DeleteForward() {
		t.Error("DeleteForward at start returned false")
	}
	if got := f.Value(); got != "b" {
		t.Errorf("Value after forward delete = %q, want %q", got, "b")
	}
}

func TestFieldInsertMidText(t *testing.T) {
	f := NewFieldState("ac")
	f.MoveLeft()
	f.Insert('b')
	if got := f.Value(); got != "abc" {
		t.Errorf("Value = %q, want %q", got, "abc")
	}
	if f.Cursor != 2 {
		t.Errorf("Cursor = %d, want 2", f.Cursor)
	}
}

func TestFieldDeleteWordBackward(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  string
		moved int // left moves before deleting
	}{
		{"Single word", "alice", "", 0},
		{"Last of two words", "alice bob", "alice ", 0},
		{"Trailing spaces", "alice   ", "", 0},
		{"Mid word", "alice", "ce", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFieldState(tt.text)
			for i := 0; i < tt.moved; i++ {
				f.MoveLeft()
			}
			f.DeleteWordBackward()
			if got := f.Value(); got != tt.want {
				t.Errorf("Value = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFieldHandleKey(t *testing.T) {
	f := NewFieldState("")

	for _, r := range "Bob" {
		if !f.HandleKey(tcell.KeyRune, r, tcell.ModNone) {
			t.Fatalf("Rune %q not handled", r)
		}
	}
	if got := f.Value(); got != "Bob" {
		t.Errorf("Value = %q, want %q", got, "Bob")
	}

	f.HandleKey(tcell.KeyBackspace2, 0, tcell.ModNone)
	if got := f.Value(); got != "Bo" {
		t.Errorf("Value after backspace = %q, want %q", got, "Bo")
	}

	f.HandleKey(tcell.KeyCtrlU, 0, tcell.ModNone)
	if got := f.Value(); got != "" {
		t.Errorf("Value after Ctrl+U = %q, want empty", got)
	}
}

func TestFieldScrollFollowsCursor(t *testing.T) {
	f := NewFieldState("abcdefghij")

	f.AdjustScroll(4)
	// Cursor at 10, viewport 4: first visible rune is 7.
	if f.Scroll != 7 {
		t.Errorf("Scroll = %d, want 7", f.Scroll)
	}

	f.MoveToStart()
	f.AdjustScroll(4)
	if f.Scroll != 0 {
		t.Errorf("Scroll = %d after MoveToStart, want 0", f.Scroll)
	}
}
