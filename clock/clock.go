package clock

import (
	"math"
	"time"
)

// fpsSamples is the number of frames averaged by FPS.
const fpsSamples = 30

// Clock paces the frame loop and measures frame times.
type Clock struct {
	now   func() float64
	sleep func(seconds float64)

	target   float64 // seconds per frame, 0 means unlimited
	previous float64 // start of the current frame
	frame    float64 // duration of the last complete frame
	frames   uint64

	history [fpsSamples]float64
	index   int
	filled  int
}

// New returns a clock reading time from now, which reports seconds since
// some fixed origin. A nil now uses the wall clock.
func New(now func() float64) *Clock {
	if now == nil {
		start := time.Now()
		now = func() float64 { return time.Since(start).Seconds() }
	}
	c := &Clock{
		now:   now,
		sleep: sleep,
	}
	c.previous = now()
	return c
}

// SetSleep replaces the function used to wait out the remaining frame budget.
func (c *Clock) SetSleep(f func(seconds float64)) {
	c.sleep = f
}

// SetTargetFPS caps the frame rate. Values below 1 remove the cap.
func (c *Clock) SetTargetFPS(fps int) {
	if fps < 1 {
		c.target = 0
		return
	}
	c.target = 1.0 / float64(fps)
}

// TargetFrameTime returns the frame budget in seconds, 0 when uncapped.
func (c *Clock) TargetFrameTime() float64 {
	return c.target
}

// BeginFrame marks the start of a frame.
func (c *Clock) BeginFrame() {
	c.previous = c.now()
}

// EndFrame waits out what is left of the frame budget and records the
// frame duration.
func (c *Clock) EndFrame() {
	current := c.now()
	update := current - c.previous

	if c.target > 0 && update < c.target {
		c.Wait(c.target - update)
		current = c.now()
	}

	c.frame = current - c.previous
	c.previous = current
	c.frames++

	c.history[c.index] = c.frame
	c.index = (c.index + 1) % fpsSamples
	if c.filled < fpsSamples {
		c.filled++
	}
}

// FrameTime returns the duration of the last frame in seconds.
func (c *Clock) FrameTime() float32 {
	return float32(c.frame)
}

// FPS returns the average frame rate over recent frames.
func (c *Clock) FPS() int {
	if c.filled == 0 {
		return 0
	}
	var total float64
	for i := 0; i < c.filled; i++ {
		total += c.history[i]
	}
	avg := total / float64(c.filled)
	if avg <= 0 {
		return 0
	}
	return int(math.Round(1.0 / avg))
}

// Time returns seconds elapsed on the clock's time source.
func (c *Clock) Time() float64 {
	return c.now()
}

// FrameCount returns the number of completed frames.
func (c *Clock) FrameCount() uint64 {
	return c.frames
}

// Wait blocks for the given number of seconds.
func (c *Clock) Wait(seconds float64) {
	if seconds <= 0 {
		return
	}
	c.sleep(seconds)
}

func sleep(seconds float64) {
	time.Sleep(time.Duration(seconds * float64(time.Second)))
}
