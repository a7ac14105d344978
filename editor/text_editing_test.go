package editor

import (
	"testing"

	"padbreak/core"
)

func TestEnterCharSolvesKeyByte(t *testing.T) {
	e := newTestEditor(3, 6) // ciphertext 3, offset 11

	e.EnterChar('e')

	key := e.Key()
	if !key[11].Known || key[11].Value != 0x60^'e' {
		t.Errorf("Expected key[11] = %#x, got %+v", 0x60^'e', key[11])
	}
	if x, y := e.Cursor(); x != 4 || y != 6 {
		t.Errorf("Expected cursor to advance to (4,6), got (%d,%d)", x, y)
	}
}

func TestEnterCharRoundTrip(t *testing.T) {
	ciphertexts := []core.Ciphertext{
		{0x13, 0x37, 0xca, 0xfe, 0xba, 0xbe},
		{0x00, 0xff, 0x10},
	}
	full := core.Key{}
	for i := 0; i < 6; i++ {
		full = append(full, core.Known(byte(i*17)))
	}

	for text, c := range ciphertexts {
		for offset := range c {
			e := NewKeyEditor(ciphertexts, full)
			e.SetViewport(Viewport{MaxX: 4, MaxY: 5})
			if !e.MoveToByte(text, offset) {
				t.Fatalf("Byte (%d,%d) not reachable", text, offset)
			}

			e.EnterChar('Q')

			rows := e.DecryptedRows()
			cell := rows[text][offset]
			if cell.Placeholder || cell.Rune != 'Q' {
				t.Errorf("Byte (%d,%d): expected 'Q', got %+v", text, offset, cell)
			}
			if e.Key()[offset].Value != c[offset]^'Q' {
				t.Errorf("Byte (%d,%d): key not solved from ciphertext", text, offset)
			}
		}
	}
}

func TestEnterCharIgnoresCellsWithoutBytes(t *testing.T) {
	tests := []struct {
		name string
		x, y int
	}{
		{"past end of first ciphertext", 3, 1},  // offset 7 of 6 bytes
		{"trailing row of ciphertext 2", 2, 3}, // offset 2 of 1 byte
		{"past last ciphertext", 0, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEditor(tt.x, tt.y)
			e.SetViewport(Viewport{MaxX: 4, MaxY: 15})
			before := e.Key()

			e.EnterChar('x')

			if !e.Key().Equal(before) {
				t.Errorf("Key changed for a cell without a byte")
			}
			if x, y := e.Cursor(); x != tt.x || y != tt.y {
				t.Errorf("Cursor moved to (%d,%d)", x, y)
			}
		})
	}
}

func TestEnterCharGrowsKey(t *testing.T) {
	e := newTestEditor(0, 8) // ciphertext 3, offset 16, key is only 12 long

	e.EnterChar(' ')

	key := e.Key()
	if len(key) != 17 {
		t.Fatalf("Expected key to grow to 17 slots, got %d", len(key))
	}
	if key[16] != core.Known(0x60^' ') {
		t.Errorf("Unexpected key[16]: %+v", key[16])
	}
	for i := 12; i < 16; i++ {
		if key[i].Known {
			t.Errorf("Expected new slot %d to be unknown", i)
		}
	}
}

func TestEnterCharIgnoresWideRunes(t *testing.T) {
	e := newTestEditor(0, 0)
	before := e.Key()

	e.EnterChar('é' + 0x100)

	if !e.Key().Equal(before) {
		t.Errorf("Rune outside the byte range changed the key")
	}
}

func TestDeleteCharUsesRawColumn(t *testing.T) {
	// Cursor maps to ciphertext 3 offset 11 but the cleared slot is the
	// column index.
	e := newTestEditor(3, 6)

	e.DeleteChar(false)

	key := e.Key()
	if key[3].Known {
		t.Errorf("Expected key[3] to be cleared")
	}
	if key[11].Known != testKey()[11].Known {
		t.Errorf("Mapped offset 11 should be untouched")
	}
	if x, _ := e.Cursor(); x != 3 {
		t.Errorf("Delete should not move the cursor, got column %d", x)
	}
}

func TestDeleteChar(t *testing.T) {
	tests := []struct {
		name        string
		x           int
		shiftLeft   bool
		cleared     int
		expectedX   int
		expectClear bool
	}{
		{"backspace", 1, true, 1, 0, true},
		{"delete", 4, false, 4, 4, true},
		{"column zero is kept", 0, true, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEditor(tt.x, 0)

			e.DeleteChar(tt.shiftLeft)

			if e.Key()[tt.cleared].Known == tt.expectClear {
				t.Errorf("Unexpected state of key[%d]: %+v", tt.cleared, e.Key()[tt.cleared])
			}
			if x, _ := e.Cursor(); x != tt.expectedX {
				t.Errorf("Expected column %d, got %d", tt.expectedX, x)
			}
		})
	}
}

func TestDeleteCharPastKeyEnd(t *testing.T) {
	e := NewKeyEditor(testCiphertexts(), core.Key{core.Known(1)})
	e.SetViewport(Viewport{MaxX: 30, MaxY: 9})
	e.cursorX = 20

	e.DeleteChar(true)

	if x, _ := e.Cursor(); x != 19 {
		t.Errorf("Expected cursor to move left to 19, got %d", x)
	}
	if len(e.Key()) != 1 || !e.Key()[0].Known {
		t.Errorf("Key should be untouched")
	}
}

func TestUndoRedoEdits(t *testing.T) {
	e := newTestEditor(0, 0)
	original := e.Key()

	e.EnterChar('a')
	edited := e.Key()

	if !e.Undo() {
		t.Fatalf("Expected undo to succeed")
	}
	if !e.Key().Equal(original) {
		t.Errorf("Undo did not restore the original key")
	}

	if !e.Redo() {
		t.Fatalf("Expected redo to succeed")
	}
	if !e.Key().Equal(edited) {
		t.Errorf("Redo did not restore the edited key")
	}

	if e.Redo() {
		t.Errorf("Nothing left to redo")
	}
}
