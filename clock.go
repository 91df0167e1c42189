package flag3d

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// FrameClock supplies the time in seconds that passed since the previous tick. A Host asks its FrameClock for a delta once per Update().
type FrameClock interface {
	Delta() float64
}

// FixedClock is a FrameClock that assumes every tick lasts exactly 1 / TPS seconds, which is how Ebitengine schedules Update() calls.
// If TPS is 0 or less, Ebitengine's current TPS setting is used.
type FixedClock struct {
	TPS int
}

// Delta returns the length of one tick in seconds.
func (clock FixedClock) Delta() float64 {
	tps := clock.TPS
	if tps <= 0 {
		tps = ebiten.TPS()
	}
	if tps <= 0 {
		// ebiten.SyncWithFPS; Update() runs once per frame, so fall back to the default tick rate.
		tps = ebiten.DefaultTPS
	}
	return 1.0 / float64(tps)
}

// WallClock is a FrameClock that measures the real time that passed between calls to Delta(). The first call returns 0.
// The zero value reads from time.Now().
type WallClock struct {
	now  func() time.Time
	last time.Time
}

// NewWallClock returns a new WallClock reading from time.Now().
func NewWallClock() *WallClock {
	return &WallClock{now: time.Now}
}

// Delta returns the seconds since the previous call to Delta().
func (clock *WallClock) Delta() float64 {

	if clock.now == nil {
		clock.now = time.Now
	}

	now := clock.now()

	if clock.last.IsZero() {
		clock.last = now
		return 0
	}

	dt := now.Sub(clock.last).Seconds()
	clock.last = now

	// WaveAnimator.Step() panics on negative deltas.
	if dt < 0 {
		dt = 0
	}

	return dt

}
