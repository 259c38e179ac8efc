package headless

import (
	"errors"
	"testing"

	"github.com/sohne/vultra/graphics"
	"github.com/sohne/vultra/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventsDeliveredOnPoll(t *testing.T) {
	c := New(320, 200)

	var keys []input.Key
	var moves [][2]int
	c.SetCallbacks(graphics.Callbacks{
		Key:  func(key input.Key, action input.Action, mods input.ModifierKey) { keys = append(keys, key) },
		Move: func(x, y int) { moves = append(moves, [2]int{x, y}) },
	})

	c.Queue(KeyEvent(input.KeyA, input.Press, 0), MoveEvent(10, 20), ResizeEvent(800, 600))
	assert.Empty(t, keys, "nothing is delivered before a poll")

	require.NoError(t, c.PollEvents())
	assert.Equal(t, []input.Key{input.KeyA}, keys)
	assert.Equal(t, [][2]int{{10, 20}}, moves)

	w, h := c.GetFramebufferSize()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)

	require.NoError(t, c.PollEvents())
	assert.Len(t, keys, 1, "events are delivered once")
	assert.Equal(t, 2, c.Polls())
}

func TestZeroResizeKeepsFramebuffer(t *testing.T) {
	c := New(320, 200)
	c.Queue(ResizeEvent(0, 200))
	require.NoError(t, c.PollEvents())

	w, h := c.GetFramebufferSize()
	assert.Equal(t, 320, w)
	assert.Equal(t, 200, h)
}

func TestCloseEvent(t *testing.T) {
	c := New(1, 1)
	c.Queue(CloseEvent())
	assert.False(t, c.ShouldClose())

	require.NoError(t, c.PollEvents())
	assert.True(t, c.ShouldClose())

	c.SetShouldClose(false)
	assert.False(t, c.ShouldClose())
}

func TestFailAndShutdown(t *testing.T) {
	c := New(1, 1)
	boom := errors.New("display lost")
	c.Fail(boom)

	assert.ErrorIs(t, c.PollEvents(), boom)
	assert.NoError(t, c.PollEvents(), "failure is reported once")

	c.Shutdown()
	assert.ErrorIs(t, c.PollEvents(), graphics.ErrPlatformUnavailable)
}

func TestRealtimeClock(t *testing.T) {
	c := NewRealtime(1, 1)
	first := c.Time()
	c.Advance(2)
	assert.GreaterOrEqual(t, c.Time(), first+2)

	assert.Zero(t, New(1, 1).Time())
}
