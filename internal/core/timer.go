package core

import "time"

// TimerMode selects whether a Timer stops or wraps when it finishes.
type TimerMode int

const (
	TimerOnce TimerMode = iota
	TimerRepeating
)

// Timer accumulates elapsed time toward a duration.
//
// A repeating timer wraps its elapsed time on completion and reports
// JustFinished for exactly the tick that crossed the boundary. A one-shot
// timer stays finished until Reset.
type Timer struct {
	duration     time.Duration
	elapsed      time.Duration
	mode         TimerMode
	finished     bool
	justFinished bool
}

// NewTimer creates a timer for d in the given mode.
func NewTimer(d time.Duration, mode TimerMode) Timer {
	return Timer{duration: d, mode: mode}
}

// TimerFromSeconds is NewTimer with a float duration in seconds.
func TimerFromSeconds(secs float64, mode TimerMode) Timer {
	return NewTimer(time.Duration(secs*float64(time.Second)), mode)
}

// Tick advances the timer by dt and reports whether it finished during this tick.
func (t *Timer) Tick(dt time.Duration) bool {
	t.justFinished = false
	if t.mode == TimerOnce && t.finished {
		return false
	}

	t.elapsed += dt
	if t.duration <= 0 {
		t.finished = true
		t.justFinished = true
		t.elapsed = 0
		return true
	}
	if t.elapsed < t.duration {
		if t.mode == TimerRepeating {
			t.finished = false
		}
		return false
	}

	t.finished = true
	t.justFinished = true
	if t.mode == TimerRepeating {
		t.elapsed %= t.duration
	} else {
		t.elapsed = t.duration
	}
	return true
}

// Finished reports whether the timer completed on its most recent Tick
// (repeating) or at any point since the last Reset (once).
func (t *Timer) Finished() bool {
	if t.mode == TimerRepeating {
		return t.justFinished
	}
	return t.finished
}

// JustFinished reports whether the last Tick crossed the duration.
func (t *Timer) JustFinished() bool {
	return t.justFinished
}

// Reset clears elapsed time and the finished flags.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.justFinished = false
}

// SetDuration changes the duration without touching elapsed time.
func (t *Timer) SetDuration(d time.Duration) {
	t.duration = d
}

// Duration returns the configured duration.
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Elapsed returns the time accumulated toward the current cycle.
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Fraction returns elapsed/duration in [0, 1].
func (t *Timer) Fraction() float64 {
	if t.duration <= 0 {
		return 1
	}
	return ClampF(float64(t.elapsed)/float64(t.duration), 0, 1)
}
