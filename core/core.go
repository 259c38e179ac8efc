// Package core holds the application context: window state, timing and
// keyboard input for one window, driven by a graphics.Context.
//
// A Core is owned by the goroutine running the frame loop. Platform
// callbacks run synchronously inside PollInputEvents on that same goroutine,
// so no locking is done.
package core

import (
	"fmt"

	"github.com/sohne/vultra/clock"
	"github.com/sohne/vultra/graphics"
	"github.com/sohne/vultra/input"
	"github.com/sohne/vultra/tracelog"
)

// Config is the initial window configuration.
type Config struct {
	Width     int
	Height    int
	Title     string
	Flags     ConfigFlags
	TargetFPS int
}

// Core is the state of one window.
type Core struct {
	Window   Window
	Keyboard input.Keyboard
	Timing   *clock.Clock

	platform graphics.Context
	renderer graphics.Renderer

	// set by SignalClose, merged into Window.ShouldQuit on the next poll
	closeRequested bool
}

// InitWindow creates a Core bound to platform and registers its event
// handlers. A nil renderer draws nothing.
func InitWindow(cfg Config, platform graphics.Context, renderer graphics.Renderer) (*Core, error) {
	if platform == nil {
		tracelog.Warnf("SYSTEM: Failed to initialize Platform")
		return nil, fmt.Errorf("init window: %w", graphics.ErrPlatformUnavailable)
	}
	if renderer == nil {
		renderer = graphics.NewNullRenderer()
	}

	c := &Core{
		platform: platform,
		renderer: renderer,
		Timing:   clock.New(platform.Time),
	}
	c.Window.Title = DefaultTitle
	if cfg.Title != "" {
		c.Window.Title = cfg.Title
	}
	c.Window.Flags = cfg.Flags
	c.Window.Screen = Dimension{Width: uint(max(cfg.Width, 0)), Height: uint(max(cfg.Height, 0))}
	c.Timing.SetTargetFPS(cfg.TargetFPS)

	tracelog.Infof("Initializing window: %s (%dx%d)", c.Window.Title, c.Window.Screen.Width, c.Window.Screen.Height)

	platform.SetTitle(c.Window.Title)
	platform.SetCallbacks(graphics.Callbacks{
		Key:    c.Keyboard.Ingest,
		Resize: c.onResize,
		Move:   c.onMove,
	})

	// the framebuffer can be larger than the requested size on HiDPI displays
	if w, h := platform.GetFramebufferSize(); w > 0 && h > 0 {
		c.Window.Screen = Dimension{Width: uint(w), Height: uint(h)}
	}

	tracelog.Infof("Window initialized successfully")
	return c, nil
}

// CloseWindow releases the platform window.
func (c *Core) CloseWindow() {
	c.platform.Shutdown()
	tracelog.Infof("Window closed")
}

// Platform returns the graphics.Context the window is bound to.
func (c *Core) Platform() graphics.Context {
	return c.platform
}

func (c *Core) onResize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Window.Screen = Dimension{Width: uint(width), Height: uint(height)}
	tracelog.Infof("Window resized to %dx%d", width, height)
}

func (c *Core) onMove(x, y int) {
	c.Window.PrevPosition = c.Window.Position
	c.Window.Position = Coordinate{X: x, Y: y}
}

// PollInputEvents advances the input state by one frame and dispatches
// pending platform events. It must be called exactly once per frame.
// Errors from the platform wrap graphics.ErrPlatformUnavailable and end
// the frame loop.
func (c *Core) PollInputEvents() error {
	c.Keyboard.NextFrame()

	if err := c.platform.PollEvents(); err != nil {
		return fmt.Errorf("poll events: %w: %w", graphics.ErrPlatformUnavailable, err)
	}

	c.Window.ShouldQuit = c.platform.ShouldClose() || c.closeRequested
	c.platform.SetShouldClose(false)
	c.closeRequested = false
	return nil
}

// SignalClose asks the frame loop to stop. ShouldQuit reports true at once
// and again after the next poll.
func (c *Core) SignalClose() {
	c.closeRequested = true
	c.Window.ShouldQuit = true
}

// ShouldQuit reports whether the window was asked to close.
func (c *Core) ShouldQuit() bool {
	return c.Window.ShouldQuit
}

func (c *Core) SetWindowTitle(title string) {
	c.Window.Title = title
	c.platform.SetTitle(title)
}

func (c *Core) GetScreenWidth() int  { return int(c.Window.Screen.Width) }
func (c *Core) GetScreenHeight() int { return int(c.Window.Screen.Height) }

func (c *Core) GetWindowPosition() Coordinate { return c.Window.Position }

// GetRenderSize returns the framebuffer size reported by the platform.
func (c *Core) GetRenderSize() (int, int) {
	return c.platform.GetFramebufferSize()
}

// SetConfigFlags sets window configuration bits.
func (c *Core) SetConfigFlags(flags ConfigFlags) { c.Window.Flags |= flags }

// ClearConfigFlags clears window configuration bits.
func (c *Core) ClearConfigFlags(flags ConfigFlags) { c.Window.Flags &^= flags }

func (c *Core) IsWindowFlagSet(flag ConfigFlags) bool { return c.Window.Flags&flag != 0 }

func (c *Core) IsWindowResizable() bool { return c.IsWindowFlagSet(FlagWindowResizable) }
