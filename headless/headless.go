// Package headless provides a graphics.Context without a window. Events are
// queued by the caller and delivered on the next PollEvents, which makes it
// the event source for tests and for running the frame loop without a display.
package headless

import (
	"fmt"
	"time"

	"github.com/sohne/vultra/graphics"
	"github.com/sohne/vultra/input"
)

type EventKind int

const (
	KeyEventKind EventKind = iota
	ResizeEventKind
	MoveEventKind
	CloseEventKind
)

// Event is one queued platform event.
type Event struct {
	Kind   EventKind
	Key    input.Key
	Action input.Action
	Mods   input.ModifierKey
	X, Y   int
}

func KeyEvent(key input.Key, action input.Action, mods input.ModifierKey) Event {
	return Event{Kind: KeyEventKind, Key: key, Action: action, Mods: mods}
}

func ResizeEvent(width, height int) Event {
	return Event{Kind: ResizeEventKind, X: width, Y: height}
}

func MoveEvent(x, y int) Event {
	return Event{Kind: MoveEventKind, X: x, Y: y}
}

// CloseEvent raises the platform close signal when dispatched.
func CloseEvent() Event {
	return Event{Kind: CloseEventKind}
}

// Context is an in-memory graphics.Context.
type Context struct {
	callbacks   graphics.Callbacks
	pending     []Event
	shouldClose bool
	width       int
	height      int
	title       string
	now         float64
	start       time.Time // zero unless created by NewRealtime
	polls       int
	err         error
	closed      bool
}

var _ graphics.Context = (*Context)(nil)

// New creates a headless context with the given framebuffer size.
func New(width, height int) *Context {
	return &Context{width: width, height: height}
}

// NewRealtime is like New but its clock also follows the wall clock, for
// running the frame loop without a display.
func NewRealtime(width, height int) *Context {
	return &Context{width: width, height: height, start: time.Now()}
}

// Queue stages events for the next PollEvents.
func (c *Context) Queue(events ...Event) {
	c.pending = append(c.pending, events...)
}

// Fail makes the next PollEvents return err.
func (c *Context) Fail(err error) {
	c.err = err
}

// Advance moves the context clock forward.
func (c *Context) Advance(seconds float64) {
	c.now += seconds
}

// Polls returns how many times PollEvents has run.
func (c *Context) Polls() int { return c.polls }

// Title returns the last title set on the context.
func (c *Context) Title() string { return c.title }

func (c *Context) SetCallbacks(cb graphics.Callbacks) {
	c.callbacks = cb
}

func (c *Context) PollEvents() error {
	if c.closed {
		return fmt.Errorf("headless: poll after shutdown: %w", graphics.ErrPlatformUnavailable)
	}
	if err := c.err; err != nil {
		c.err = nil
		return err
	}
	c.polls++

	events := c.pending
	c.pending = nil
	for _, ev := range events {
		c.dispatch(ev)
	}
	return nil
}

func (c *Context) dispatch(ev Event) {
	switch ev.Kind {
	case KeyEventKind:
		if c.callbacks.Key != nil {
			c.callbacks.Key(ev.Key, ev.Action, ev.Mods)
		}
	case ResizeEventKind:
		if ev.X > 0 && ev.Y > 0 {
			c.width, c.height = ev.X, ev.Y
		}
		if c.callbacks.Resize != nil {
			c.callbacks.Resize(ev.X, ev.Y)
		}
	case MoveEventKind:
		if c.callbacks.Move != nil {
			c.callbacks.Move(ev.X, ev.Y)
		}
	case CloseEventKind:
		c.shouldClose = true
	}
}

func (c *Context) ShouldClose() bool { return c.shouldClose }

func (c *Context) SetShouldClose(value bool) { c.shouldClose = value }

func (c *Context) GetFramebufferSize() (int, int) { return c.width, c.height }

func (c *Context) SetTitle(title string) { c.title = title }

func (c *Context) Time() float64 {
	if c.start.IsZero() {
		return c.now
	}
	return c.now + time.Since(c.start).Seconds()
}

func (c *Context) Shutdown() {
	c.closed = true
	c.pending = nil
}
