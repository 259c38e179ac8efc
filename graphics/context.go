package graphics

import (
	"errors"

	"github.com/sohne/vultra/input"
)

// ErrPlatformUnavailable marks failures of the windowing platform. There is
// no recovery from it inside the frame loop.
var ErrPlatformUnavailable = errors.New("platform unavailable")

// Callbacks are the handlers a Context invokes while dispatching events.
// Nil handlers are skipped.
type Callbacks struct {
	Key    func(key input.Key, action input.Action, mods input.ModifierKey)
	Resize func(width, height int)
	Move   func(x, y int)
}

// Context is the platform side of a window: it owns the OS event queue and
// the close signal.
type Context interface {
	// SetCallbacks replaces the registered event handlers.
	SetCallbacks(cb Callbacks)
	// PollEvents dispatches pending events, calling the handlers
	// synchronously before it returns.
	PollEvents() error
	ShouldClose() bool
	SetShouldClose(value bool)
	GetFramebufferSize() (int, int)
	SetTitle(title string)
	// Time returns seconds since the platform was initialized.
	Time() float64
	Shutdown()
}
