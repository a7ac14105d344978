package editor

// SpecialKey identifies a non-character key the editor handles.
type SpecialKey int

// Keys the key editor reacts to. KeyNone marks a plain character event;
// KeyUndo and KeyRedo stand for the Ctrl+Z and Ctrl+Y chords, which the
// terminal layer translates before they reach HandleKey.
const (
	KeyNone SpecialKey = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyBackspace
	KeyDelete
	KeyEscape
	KeyUndo
	KeyRedo
)

// KeyEvent is one input event: a typed character in Rune, or a special key
// when SpecialKey is not KeyNone. Replay scripts produce the same events.
type KeyEvent struct {
	Rune       rune
	SpecialKey SpecialKey
}

// IsSpecial reports whether the event carries a special key instead of a
// character.
func (k KeyEvent) IsSpecial() bool {
	return k.SpecialKey != KeyNone
}

var keyNames = map[string]SpecialKey{
	"up":        KeyArrowUp,
	"down":      KeyArrowDown,
	"left":      KeyArrowLeft,
	"right":     KeyArrowRight,
	"home":      KeyHome,
	"end":       KeyEnd,
	"backspace": KeyBackspace,
	"delete":    KeyDelete,
	"esc":       KeyEscape,
	"undo":      KeyUndo,
	"redo":      KeyRedo,
}

// ParseKeyName returns the special key with the given name, as used in
// replay scripts.
func ParseKeyName(name string) (SpecialKey, bool) {
	k, ok := keyNames[name]
	return k, ok
}
