package input

import (
	"errors"
	"fmt"

	"github.com/sohne/vultra/tracelog"
)

// ErrInvalidKey is returned for key codes outside [0, MaxKeys).
var ErrInvalidKey = errors.New("invalid key code")

// CheckKey returns an error wrapping ErrInvalidKey if key is out of range.
func CheckKey(key Key) error {
	if !key.Valid() {
		return fmt.Errorf("key %d: %w", int(key), ErrInvalidKey)
	}
	return nil
}

// Keyboard holds frame-coherent keyboard state.
//
// Platform callbacks feed it through Ingest while events are dispatched and
// NextFrame is called once per frame, before dispatch, to snapshot the
// previous frame. Queries only read the two snapshots, so they return the
// same answer however often they are called between polls. Out-of-range
// keys are dropped on ingest and report false from every query; use
// CheckKey when an explicit error is wanted.
//
// The zero value is ready to use with every key up.
type Keyboard struct {
	current  [MaxKeys]bool
	previous [MaxKeys]bool
	repeated [MaxKeys]bool

	// press events seen since the last NextFrame
	pressedCount int
}

// Ingest applies one platform key event.
func (kb *Keyboard) Ingest(key Key, action Action, mods ModifierKey) {
	if !key.Valid() {
		tracelog.Tracef("INPUT: Dropped %s for out of range key %d", action, int(key))
		return
	}

	switch action {
	case Release:
		kb.current[key] = false
	case Press:
		// counted even when the key is already down
		kb.current[key] = true
		kb.pressedCount++
	case Repeat:
		kb.repeated[key] = true
	}

	// Lock keys follow the OS modifier state, which can change while
	// another window has focus.
	if (key == KeyCapsLock && mods&ModCapsLock != 0) ||
		(key == KeyNumLock && mods&ModNumLock != 0) {
		kb.current[key] = true
	}
}

// NextFrame starts a new accumulation window: the current state becomes
// the previous one, repeats are cleared and the press count is reset.
func (kb *Keyboard) NextFrame() {
	kb.previous = kb.current
	clear(kb.repeated[:])
	kb.pressedCount = 0
}

// IsKeyDown reports whether the key is being held.
func (kb *Keyboard) IsKeyDown(key Key) bool {
	return key.Valid() && kb.current[key]
}

// IsKeyUp reports whether the key is not being held.
func (kb *Keyboard) IsKeyUp(key Key) bool {
	return key.Valid() && !kb.current[key]
}

// IsKeyPressed reports whether the key went down this frame.
func (kb *Keyboard) IsKeyPressed(key Key) bool {
	return key.Valid() && kb.current[key] && !kb.previous[key]
}

// IsKeyReleased reports whether the key went up this frame.
func (kb *Keyboard) IsKeyReleased(key Key) bool {
	return key.Valid() && !kb.current[key] && kb.previous[key]
}

// IsKeyPressedRepeated reports whether the platform sent an auto-repeat
// for the key this frame.
func (kb *Keyboard) IsKeyPressedRepeated(key Key) bool {
	return key.Valid() && kb.repeated[key]
}

// IsAnyKeyPressed reports whether at least one press event arrived this frame.
func (kb *Keyboard) IsAnyKeyPressed() bool {
	return kb.pressedCount > 0
}

// PressedCount returns the number of press events seen this frame.
func (kb *Keyboard) PressedCount() int {
	return kb.pressedCount
}
