// Package clock provides frame pacing and delta timing for game loops.
//
// A Clock is ticked once per frame. Tick returns the seconds elapsed
// since the previous tick and, when a target FPS is set, sleeps first so
// frames never complete faster than the target allows. Most of the wait
// uses time.Sleep; the final stretch spins on the monotonic clock, since
// sleeping alone overshoots by more than a short frame can absorb.
//
//	c := clock.New()
//	c.SetTargetFPS(60)
//	for running {
//		dt := c.Tick()
//		update(dt)
//	}
//
// A Clock is not safe for concurrent use.
package clock

import "time"

// DefaultTargetFPS is the frame cap a new Clock starts with. Set a
// target of 0 for an uncapped clock.
const DefaultTargetFPS = 300

// spinThreshold is how much of the frame wait is busy-spun instead of
// slept. time.Sleep wakes late by up to roughly this much.
const spinThreshold = 1500 * time.Microsecond

// Clock tracks per-frame timing for a single loop.
type Clock struct {
	start       time.Time
	last        time.Time
	targetFrame time.Duration
	delta       time.Duration
	frames      int
	fpsTimer    time.Time
	fps         int
}

// New returns a Clock ticking from now, capped at DefaultTargetFPS.
func New() *Clock {
	now := time.Now()
	c := &Clock{
		start:    now,
		last:     now,
		fpsTimer: now,
	}
	c.SetTargetFPS(DefaultTargetFPS)
	return c
}

// SetTargetFPS caps the frame rate Tick paces to. Zero or negative
// removes the cap.
func (c *Clock) SetTargetFPS(fps int) {
	if fps <= 0 {
		c.targetFrame = 0
		return
	}
	c.targetFrame = time.Second / time.Duration(fps)
}

// Tick ends the current frame and returns its duration in seconds.
// When a target FPS is set and the frame finished early, Tick waits out
// the remainder first, so the returned delta never undershoots the
// target frame time.
func (c *Clock) Tick() float64 {
	now := time.Now()
	elapsed := now.Sub(c.last)

	if c.targetFrame > 0 && elapsed < c.targetFrame {
		wait := c.targetFrame - elapsed
		if wait > spinThreshold {
			time.Sleep(wait - spinThreshold)
		}
		deadline := c.last.Add(c.targetFrame)
		for time.Now().Before(deadline) {
		}
		now = time.Now()
	}

	c.delta = now.Sub(c.last)
	c.last = now

	// FPS is counted over one-second windows.
	c.frames++
	if now.Sub(c.fpsTimer) >= time.Second {
		c.fps = c.frames
		c.frames = 0
		c.fpsTimer = now
	}

	return c.delta.Seconds()
}

// FrameTime returns the duration of the last completed frame in
// seconds, the same value the matching Tick returned.
func (c *Clock) FrameTime() float64 {
	return c.delta.Seconds()
}

// FPS returns the frame count of the last completed one-second window,
// or 0 before the first window completes.
func (c *Clock) FPS() int {
	return c.fps
}

// Time returns the seconds elapsed since the Clock was created.
func (c *Clock) Time() float64 {
	return time.Since(c.start).Seconds()
}
