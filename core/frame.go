package core

import (
	"github.com/sohne/vultra/graphics"
	"github.com/sohne/vultra/input"
)

// BeginDrawing starts a frame.
func (c *Core) BeginDrawing() {
	c.Timing.BeginFrame()
	c.renderer.BeginDrawing()
}

// EndDrawing finishes the frame, waits for the target frame time and polls
// input for the next frame.
func (c *Core) EndDrawing() error {
	c.renderer.EndDrawing()
	c.Timing.EndFrame()
	return c.PollInputEvents()
}

func (c *Core) ClearBackground(color graphics.Color) {
	c.renderer.ClearBackground(color)
}

// SetTargetFPS caps the frame rate; values below 1 remove the cap.
func (c *Core) SetTargetFPS(fps int) { c.Timing.SetTargetFPS(fps) }

// GetFrameTime returns the duration of the last frame in seconds.
func (c *Core) GetFrameTime() float32 { return c.Timing.FrameTime() }

func (c *Core) GetFPS() int { return c.Timing.FPS() }

// GetTime returns seconds since the platform was initialized.
func (c *Core) GetTime() float64 { return c.Timing.Time() }

func (c *Core) GetFrameCount() uint64 { return c.Timing.FrameCount() }

// WaitTime blocks for the given number of seconds.
func (c *Core) WaitTime(seconds float64) { c.Timing.Wait(seconds) }

func (c *Core) IsKeyDown(key input.Key) bool     { return c.Keyboard.IsKeyDown(key) }
func (c *Core) IsKeyUp(key input.Key) bool       { return c.Keyboard.IsKeyUp(key) }
func (c *Core) IsKeyPressed(key input.Key) bool  { return c.Keyboard.IsKeyPressed(key) }
func (c *Core) IsKeyReleased(key input.Key) bool { return c.Keyboard.IsKeyReleased(key) }
func (c *Core) IsAnyKeyPressed() bool            { return c.Keyboard.IsAnyKeyPressed() }

func (c *Core) IsKeyPressedRepeated(key input.Key) bool {
	return c.Keyboard.IsKeyPressedRepeated(key)
}
