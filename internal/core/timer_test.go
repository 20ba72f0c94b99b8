package core

import (
	"testing"
	"time"
)

func TestTimerRepeating(t *testing.T) {
	tm := NewTimer(100*time.Millisecond, TimerRepeating)

	if tm.Tick(60 * time.Millisecond) {
		t.Fatal("should not finish before duration")
	}
	if !tm.Tick(60 * time.Millisecond) {
		t.Fatal("should finish when crossing duration")
	}
	if !tm.Finished() {
		t.Error("Finished() should be true on the finishing tick")
	}
	if tm.Elapsed() != 20*time.Millisecond {
		t.Errorf("elapsed should wrap to 20ms, got %v", tm.Elapsed())
	}

	if tm.Tick(10 * time.Millisecond) {
		t.Error("should not finish again immediately")
	}
	if tm.Finished() {
		t.Error("repeating timer should clear Finished() on the next tick")
	}
}

func TestTimerOnce(t *testing.T) {
	tm := TimerFromSeconds(0.5, TimerOnce)

	if !tm.Tick(600 * time.Millisecond) {
		t.Fatal("should finish")
	}
	if tm.Tick(time.Second) {
		t.Error("one-shot timer should only report finishing once")
	}
	if !tm.Finished() {
		t.Error("one-shot timer stays finished")
	}
	if tm.Fraction() != 1 {
		t.Errorf("Fraction() = %f, expected 1", tm.Fraction())
	}

	tm.Reset()
	if tm.Finished() || tm.Elapsed() != 0 {
		t.Error("Reset should clear state")
	}
}

func TestTimerSetDuration(t *testing.T) {
	tm := NewTimer(time.Second, TimerRepeating)
	tm.Tick(400 * time.Millisecond)
	tm.SetDuration(500 * time.Millisecond)

	if tm.Duration() != 500*time.Millisecond {
		t.Fatalf("Duration() = %v", tm.Duration())
	}
	if !tm.Tick(100 * time.Millisecond) {
		t.Error("shortened timer should finish once elapsed reaches the new duration")
	}
}

func TestTimerZeroDuration(t *testing.T) {
	tm := NewTimer(0, TimerRepeating)
	if !tm.Tick(time.Millisecond) {
		t.Error("zero duration timer finishes every tick")
	}
}
