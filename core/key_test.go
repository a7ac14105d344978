package core

import (
	"testing"
)

func TestKeyByteZeroValueIsUnknown(t *testing.T) {
	var b KeyByte
	if b.Known {
		t.Errorf("Expected zero KeyByte to be unknown")
	}
	if Known(0x00) == b {
		t.Errorf("Known(0x00) must differ from the unknown slot")
	}
}

func TestKeyByteString(t *testing.T) {
	if got := Known(0x4f).String(); got != "4F" {
		t.Errorf("Known(0x4f).String() = %q, want %q", got, "4F")
	}
	if got := Known(0).String(); got != "00" {
		t.Errorf("Known(0).String() = %q, want %q", got, "00")
	}
	if got := Unknown.String(); got != "??" {
		t.Errorf("Unknown.String() = %q, want %q", got, "??")
	}
}

func TestKeyHex(t *testing.T) {
	tests := []struct {
		name        string
		key         Key
		placeholder string
		expected    string
	}{
		{"empty", Key{}, "_", ""},
		{"all known", Key{Known(0x4f), Known(0x00), Known(0xa1)}, "_", "4F00A1"},
		{"mixed", Key{Known(0x4f), Unknown, Known(0xa1)}, "_", "4F__A1"},
		{"other placeholder", Key{Unknown}, ".", ".."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.key.Hex(tt.placeholder); got != tt.expected {
				t.Errorf("Hex() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestKeyCloneIsIndependent(t *testing.T) {
	original := Key{Known(1), Unknown}
	clone := original.Clone()
	clone[1] = Known(2)

	if original[1].Known {
		t.Errorf("Modifying the clone changed the original")
	}
	if !Key(nil).Clone().Equal(Key{}) {
		t.Errorf("Clone of nil key should be empty")
	}
}

func TestKeyGrow(t *testing.T) {
	k := Key{Known(7)}

	grown := k.Grow(3)
	if len(grown) != 3 {
		t.Fatalf("Expected length 3, got %d", len(grown))
	}
	if grown[0] != Known(7) || grown[1].Known || grown[2].Known {
		t.Errorf("Unexpected slots after Grow: %v", grown)
	}

	if len(grown.Grow(1)) != 3 {
		t.Errorf("Grow must never shorten the key")
	}
}

func TestKnownCountAndLengths(t *testing.T) {
	k := Key{Known(1), Unknown, Known(3), Unknown}
	if k.KnownCount() != 2 {
		t.Errorf("Expected 2 known slots, got %d", k.KnownCount())
	}

	lengths := Lengths([]Ciphertext{{1, 2}, {}, {3}})
	if len(lengths) != 3 || lengths[0] != 2 || lengths[1] != 0 || lengths[2] != 1 {
		t.Errorf("Unexpected lengths: %v", lengths)
	}
}
