// Package core contains the fundamental types shared by the key recovery
// engine, the interactive editor and the exporters.
package core

import (
	"fmt"
	"strings"
)

// Ciphertext is a raw encrypted message. It is never modified after loading.
type Ciphertext []byte

// Lengths returns the length of every ciphertext, in order.
func Lengths(ciphertexts []Ciphertext) []int {
	res := make([]int, len(ciphertexts))
	for i, c := range ciphertexts {
		res[i] = len(c)
	}
	return res
}

// KeyByte is a single key slot. The zero value is an unknown slot, so a
// known 0x00 byte is never confused with a missing one.
type KeyByte struct {
	Value byte
	Known bool
}

// Known returns a known key slot holding b.
func Known(b byte) KeyByte {
	return KeyByte{Value: b, Known: true}
}

// Unknown is the empty key slot.
var Unknown = KeyByte{}

// String returns the slot as two hex digits, or "??" when unknown.
func (k KeyByte) String() string {
	if !k.Known {
		return "??"
	}
	return fmt.Sprintf("%02X", k.Value)
}

// Key is a partially recovered key stream.
type Key []KeyByte

// NewKey returns a key of n unknown slots.
func NewKey(n int) Key {
	if n < 0 {
		n = 0
	}
	return make(Key, n)
}

// Clone returns an independent copy of the key.
func (k Key) Clone() Key {
	if k == nil {
		return Key{}
	}
	res := make(Key, len(k))
	copy(res, k)
	return res
}

// KnownCount returns the number of known slots.
func (k Key) KnownCount() int {
	n := 0
	for _, b := range k {
		if b.Known {
			n++
		}
	}
	return n
}

// Grow extends the key with unknown slots until it is at least n long.
// Existing slots are kept; a key is never shortened.
func (k Key) Grow(n int) Key {
	if n <= len(k) {
		return k
	}
	return append(k, make(Key, n-len(k))...)
}

// Hex renders the key as upper-case hex pairs. Unknown slots are written as
// the placeholder repeated twice so every slot is two cells wide.
func (k Key) Hex(placeholder string) string {
	var sb strings.Builder
	sb.Grow(len(k) * 2)
	for _, b := range k {
		if b.Known {
			fmt.Fprintf(&sb, "%02X", b.Value)
		} else {
			sb.WriteString(placeholder)
			sb.WriteString(placeholder)
		}
	}
	return sb.String()
}

// Equal reports whether two keys have the same slots.
func (k Key) Equal(other Key) bool {
	if len(k) != len(other) {
		return false
	}
	for i := range k {
		if k[i] != other[i] {
			return false
		}
	}
	return true
}
