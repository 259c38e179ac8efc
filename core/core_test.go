package core

import (
	"errors"
	"testing"

	"github.com/sohne/vultra/graphics"
	"github.com/sohne/vultra/headless"
	"github.com/sohne/vultra/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCore(t *testing.T) (*Core, *headless.Context) {
	t.Helper()
	hc := headless.New(640, 480)
	c, err := InitWindow(Config{Width: 640, Height: 480, Title: "test"}, hc, nil)
	require.NoError(t, err)
	return c, hc
}

func TestInitWindow(t *testing.T) {
	c, hc := newCore(t)

	assert.Equal(t, "test", c.Window.Title)
	assert.Equal(t, "test", hc.Title())
	assert.Equal(t, 640, c.GetScreenWidth())
	assert.Equal(t, 480, c.GetScreenHeight())
	assert.False(t, c.ShouldQuit())

	c2, err := InitWindow(Config{Flags: FlagWindowResizable}, headless.New(1, 1), nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultTitle, c2.Window.Title)
	assert.True(t, c2.IsWindowResizable())
}

func TestInitWindowWithoutPlatform(t *testing.T) {
	_, err := InitWindow(Config{}, nil, nil)
	assert.ErrorIs(t, err, graphics.ErrPlatformUnavailable)
}

func TestInitWindowUsesFramebufferSize(t *testing.T) {
	c, err := InitWindow(Config{Width: 640, Height: 480}, headless.New(1280, 960), nil)
	require.NoError(t, err)
	assert.Equal(t, 1280, c.GetScreenWidth())
	assert.Equal(t, 960, c.GetScreenHeight())

	// no framebuffer yet: keep the requested size
	c, err = InitWindow(Config{Width: 640, Height: 480}, headless.New(0, 0), nil)
	require.NoError(t, err)
	assert.Equal(t, 640, c.GetScreenWidth())
	assert.Equal(t, 480, c.GetScreenHeight())
}

func TestPollScenario(t *testing.T) {
	c, hc := newCore(t)

	hc.Queue(headless.KeyEvent(input.KeyA, input.Press, 0))
	require.NoError(t, c.PollInputEvents())
	assert.True(t, c.IsKeyDown(input.KeyA))
	assert.True(t, c.IsKeyPressed(input.KeyA))
	assert.Equal(t, 1, c.Keyboard.PressedCount())
	assert.True(t, c.IsAnyKeyPressed())

	require.NoError(t, c.PollInputEvents())
	assert.True(t, c.IsKeyDown(input.KeyA))
	assert.False(t, c.IsKeyPressed(input.KeyA))
	assert.False(t, c.IsAnyKeyPressed())

	hc.Queue(headless.KeyEvent(input.KeyA, input.Release, 0))
	require.NoError(t, c.PollInputEvents())
	assert.False(t, c.IsKeyDown(input.KeyA))
	assert.True(t, c.IsKeyUp(input.KeyA))
	assert.True(t, c.IsKeyReleased(input.KeyA))

	require.NoError(t, c.PollInputEvents())
	assert.False(t, c.IsKeyReleased(input.KeyA))
}

func TestRepeatClearedOnPoll(t *testing.T) {
	c, hc := newCore(t)

	hc.Queue(
		headless.KeyEvent(input.KeyRight, input.Press, 0),
		headless.KeyEvent(input.KeyRight, input.Repeat, 0),
	)
	require.NoError(t, c.PollInputEvents())
	assert.True(t, c.IsKeyPressedRepeated(input.KeyRight))

	require.NoError(t, c.PollInputEvents())
	assert.False(t, c.IsKeyPressedRepeated(input.KeyRight))
	assert.True(t, c.IsKeyDown(input.KeyRight))
}

func TestPlatformCloseSignalIsConsumed(t *testing.T) {
	c, hc := newCore(t)

	hc.Queue(headless.CloseEvent())
	require.NoError(t, c.PollInputEvents())
	assert.True(t, c.ShouldQuit())
	assert.False(t, hc.ShouldClose(), "platform flag is reset after it is read")

	require.NoError(t, c.PollInputEvents())
	assert.False(t, c.ShouldQuit(), "close does not leak into the next frame")
}

func TestSignalClose(t *testing.T) {
	c, hc := newCore(t)

	hc.Queue(headless.KeyEvent(input.KeyEscape, input.Press, 0))
	require.NoError(t, c.PollInputEvents())
	if c.IsKeyDown(input.KeyEscape) {
		c.SignalClose()
	}
	assert.True(t, c.ShouldQuit())

	require.NoError(t, c.PollInputEvents())
	assert.True(t, c.ShouldQuit(), "request is merged into the polled flag")

	require.NoError(t, c.PollInputEvents())
	assert.False(t, c.ShouldQuit())
}

func TestWindowCallbacks(t *testing.T) {
	c, hc := newCore(t)

	hc.Queue(headless.MoveEvent(100, 50), headless.MoveEvent(120, 60))
	hc.Queue(headless.ResizeEvent(1024, 768))
	require.NoError(t, c.PollInputEvents())

	assert.Equal(t, Coordinate{X: 120, Y: 60}, c.GetWindowPosition())
	assert.Equal(t, Coordinate{X: 100, Y: 50}, c.Window.PrevPosition)
	assert.Equal(t, 1024, c.GetScreenWidth())
	assert.Equal(t, 768, c.GetScreenHeight())

	w, h := c.GetRenderSize()
	assert.Equal(t, 1024, w)
	assert.Equal(t, 768, h)

	// a minimize reports a zero size and is ignored
	hc.Queue(headless.ResizeEvent(0, 0), headless.ResizeEvent(800, 0))
	require.NoError(t, c.PollInputEvents())
	assert.Equal(t, 1024, c.GetScreenWidth())
	assert.Equal(t, 768, c.GetScreenHeight())
}

func TestOutOfRangeEventsIgnored(t *testing.T) {
	c, hc := newCore(t)

	hc.Queue(
		headless.KeyEvent(-1, input.Press, 0),
		headless.KeyEvent(999999, input.Press, 0),
		headless.KeyEvent(input.KeyB, input.Press, 0),
	)
	require.NoError(t, c.PollInputEvents())
	assert.Equal(t, 1, c.Keyboard.PressedCount())
	assert.True(t, c.IsKeyPressed(input.KeyB))
	assert.False(t, c.IsKeyDown(-1))
}

func TestPlatformFailurePropagates(t *testing.T) {
	c, hc := newCore(t)

	lost := errors.New("display lost")
	hc.Fail(lost)
	err := c.PollInputEvents()
	assert.ErrorIs(t, err, graphics.ErrPlatformUnavailable)
	assert.ErrorIs(t, err, lost)

	c.CloseWindow()
	assert.ErrorIs(t, c.PollInputEvents(), graphics.ErrPlatformUnavailable)
}

func TestConfigFlags(t *testing.T) {
	c, _ := newCore(t)

	c.SetConfigFlags(FlagVSyncHint | FlagMSAAHint)
	assert.True(t, c.IsWindowFlagSet(FlagVSyncHint))
	assert.True(t, c.IsWindowFlagSet(FlagMSAAHint))
	assert.False(t, c.IsWindowResizable())

	c.ClearConfigFlags(FlagVSyncHint)
	assert.False(t, c.IsWindowFlagSet(FlagVSyncHint))
	assert.True(t, c.IsWindowFlagSet(FlagMSAAHint))
}

func TestSetWindowTitle(t *testing.T) {
	c, hc := newCore(t)
	c.SetWindowTitle("renamed")
	assert.Equal(t, "renamed", c.Window.Title)
	assert.Equal(t, "renamed", hc.Title())
}

func TestDrawingLoop(t *testing.T) {
	hc := headless.New(320, 240)
	r := graphics.NewNullRenderer()
	c, err := InitWindow(Config{Width: 320, Height: 240, TargetFPS: 60}, hc, r)
	require.NoError(t, err)

	var waited []float64
	c.Timing.SetSleep(func(s float64) {
		waited = append(waited, s)
		hc.Advance(s)
	})

	hc.Queue(headless.KeyEvent(input.KeySpace, input.Press, 0))
	for i := 0; i < 3; i++ {
		c.BeginDrawing()
		c.ClearBackground(graphics.Color{R: 1, A: 1})
		hc.Advance(0.004)
		require.NoError(t, c.EndDrawing())
		if i == 0 {
			assert.True(t, c.IsKeyPressed(input.KeySpace))
		}
	}

	assert.Equal(t, uint64(3), c.GetFrameCount())
	assert.Equal(t, uint64(3), r.Frames)
	assert.Equal(t, graphics.Color{R: 1, A: 1}, r.Background)
	assert.Equal(t, 3, hc.Polls())
	assert.Len(t, waited, 3)
	assert.InDelta(t, 1.0/60, c.GetFrameTime(), 1e-6)
	assert.Equal(t, 60, c.GetFPS())
	assert.InDelta(t, 3.0/60, c.GetTime(), 1e-9)
	assert.False(t, c.IsKeyPressed(input.KeySpace))
}
