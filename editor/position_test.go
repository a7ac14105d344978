package editor

import (
	"testing"

	"padbreak/core"
)

// Five ciphertexts of 6, 3, 1, 17 and 2 bytes. At wrap width 4 they take
// 2, 1, 1, 5 and 1 rows.
func testCiphertexts() []core.Ciphertext {
	lengths := []int{6, 3, 1, 17, 2}
	res := make([]core.Ciphertext, len(lengths))
	for i, n := range lengths {
		c := make(core.Ciphertext, n)
		for j := range c {
			c[j] = 0x60
		}
		res[i] = c
	}
	return res
}

func testKey() core.Key {
	return core.Key{
		core.Known(1), core.Known(2), core.Unknown, core.Known(4),
		core.Known(5), core.Known(6), core.Unknown, core.Known(8),
		core.Known(9), core.Known(10), core.Known(11), core.Unknown,
	}
}

func newTestEditor(x, y int) *KeyEditor {
	e := NewKeyEditor(testCiphertexts(), testKey())
	e.SetViewport(Viewport{MaxX: 4, MaxY: 9})
	e.cursorX, e.cursorY = x, y
	return e
}

func TestMapPosition(t *testing.T) {
	tests := []struct {
		x, y           int
		expectedText   int
		expectedOffset int
	}{
		{0, 0, 0, 0},
		{0, 1, 0, 4},
		{0, 3, 2, 0},
		{1, 4, 3, 1},
		{3, 6, 3, 11},
		{0, 8, 3, 16},
		{1, 9, 4, 1},
	}

	for _, tt := range tests {
		e := newTestEditor(tt.x, tt.y)
		text, offset := e.Position()
		if text != tt.expectedText || offset != tt.expectedOffset {
			t.Errorf("Position at (%d,%d) = (%d,%d), want (%d,%d)",
				tt.x, tt.y, text, offset, tt.expectedText, tt.expectedOffset)
		}
	}
}

func TestMapPositionFallback(t *testing.T) {
	lengths := core.Lengths(testCiphertexts())

	// Rows past the last ciphertext come back as (y, x)
	text, offset := MapPosition(lengths, 4, 2, 12)
	if text != 12 || offset != 2 {
		t.Errorf("Expected fallback (12,2), got (%d,%d)", text, offset)
	}

	// A zero wrap width must not divide by zero
	text, offset = MapPosition(lengths, 0, 1, 3)
	if text != 3 || offset != 1 {
		t.Errorf("Expected fallback (3,1), got (%d,%d)", text, offset)
	}

	text, offset = MapPosition(nil, 4, 1, 0)
	if text != 0 || offset != 1 {
		t.Errorf("Expected fallback (0,1) with no ciphertexts, got (%d,%d)", text, offset)
	}
}

func TestRowsFor(t *testing.T) {
	tests := []struct {
		length, maxX, expected int
	}{
		{0, 4, 1},
		{3, 4, 1},
		{4, 4, 2}, // exact multiple still reserves a trailing row
		{17, 4, 5},
		{10, 1, 11},
	}

	for _, tt := range tests {
		if got := RowsFor(tt.length, tt.maxX); got != tt.expected {
			t.Errorf("RowsFor(%d, %d) = %d, want %d", tt.length, tt.maxX, got, tt.expected)
		}
	}
}

func TestCursorForInvertsMapPosition(t *testing.T) {
	ciphertexts := testCiphertexts()
	lengths := core.Lengths(ciphertexts)

	for text, c := range ciphertexts {
		for offset := range c {
			x, y, ok := CursorFor(lengths, 4, text, offset)
			if !ok {
				t.Fatalf("CursorFor(%d,%d) reported missing byte", text, offset)
			}
			gotText, gotOffset := MapPosition(lengths, 4, x, y)
			if gotText != text || gotOffset != offset {
				t.Errorf("Round trip (%d,%d) -> (%d,%d) -> (%d,%d)",
					text, offset, x, y, gotText, gotOffset)
			}
		}
	}
}

func TestCursorForMissingBytes(t *testing.T) {
	lengths := core.Lengths(testCiphertexts())

	cases := []struct {
		name         string
		maxX         int
		text, offset int
	}{
		{"negative text", 4, -1, 0},
		{"text out of range", 4, 5, 0},
		{"offset past end", 4, 2, 1},
		{"negative offset", 4, 0, -1},
		{"zero width", 0, 0, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, _, ok := CursorFor(lengths, c.maxX, c.text, c.offset); ok {
				t.Errorf("Expected CursorFor to report a missing byte")
			}
		})
	}
}
