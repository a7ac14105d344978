package editor

import "padbreak/core"

// KeyHistory manages undo/redo of key edits using a simple slice of
// snapshots.
type KeyHistory struct {
	states  []core.Key
	current int // Current position in history
	max     int // Maximum number of states to keep
}

// NewKeyHistory creates a history keeping at most max states.
func NewKeyHistory(max int) *KeyHistory {
	if max <= 0 {
		max = 50
	}
	return &KeyHistory{
		states:  make([]core.Key, 0, max),
		current: -1,
		max:     max,
	}
}

// SaveState stores a copy of key as the newest state
func (h *KeyHistory) SaveState(key core.Key) {
	// If we're not at the end, truncate everything after current
	if h.current < len(h.states)-1 {
		h.states = h.states[:h.current+1]
	}

	h.states = append(h.states, key.Clone())

	// If we exceed max, remove oldest
	if len(h.states) > h.max {
		h.states = h.states[1:]
	} else {
		h.current++
	}
}

// CanUndo returns true if we can undo
func (h *KeyHistory) CanUndo() bool {
	return h.current > 0
}

// CanRedo returns true if we can redo
func (h *KeyHistory) CanRedo() bool {
	return h.current < len(h.states)-1
}

// Undo goes back one state and returns a copy of it.
func (h *KeyHistory) Undo() (core.Key, bool) {
	if !h.CanUndo() {
		return nil, false
	}
	h.current--
	return h.states[h.current].Clone(), true
}

// Redo goes forward one state and returns a copy of it.
func (h *KeyHistory) Redo() (core.Key, bool) {
	if !h.CanRedo() {
		return nil, false
	}
	h.current++
	return h.states[h.current].Clone(), true
}

// Clear clears all history
func (h *KeyHistory) Clear() {
	h.states = h.states[:0]
	h.current = -1
}

// Stats returns current position and total states
func (h *KeyHistory) Stats() (current, total int) {
	return h.current + 1, len(h.states)
}
