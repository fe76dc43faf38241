package host

import (
	"time"

	"sketchgl/internal/config"
)

// FrameLimiter paces the frame loop to config.GetFrameRate
type FrameLimiter struct {
	next time.Time
	now  func() time.Time
	wait func(time.Duration)
}

// NewFrameLimiter creates a limiter on the wall clock
func NewFrameLimiter() *FrameLimiter {
	return &FrameLimiter{now: time.Now, wait: spinSleep}
}

// Wait blocks until the next frame is due. Without a cap it returns
// immediately and forgets the schedule.
func (f *FrameLimiter) Wait() {
	limit := config.GetFrameRate()
	if limit <= 0 {
		f.next = time.Time{}
		return
	}
	target := time.Second / time.Duration(limit)

	now := f.now()
	if f.next.IsZero() {
		f.next = now.Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	if remaining := f.next.Sub(now); remaining > 0 {
		f.wait(remaining)
		return
	}

	// More than a frame late after a hitch: resync instead of bursting
	if -f.next.Sub(now) > target {
		f.next = now
	}
}

// spinSleep sleeps most of d and busy-waits the tail for precision
func spinSleep(d time.Duration) {
	deadline := time.Now().Add(d)
	if d > 200*time.Microsecond {
		time.Sleep(d - 200*time.Microsecond)
	}
	for time.Now().Before(deadline) {
	}
}
