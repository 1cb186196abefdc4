package workout

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRestTimerCountdown(t *testing.T) {
	var timer RestTimer
	timer.Start(3)

	if !timer.Running() || timer.Remaining() != 3 || timer.Total() != 3 {
		t.Fatalf("after Start: running=%v remaining=%d total=%d", timer.Running(), timer.Remaining(), timer.Total())
	}

	if timer.Tick() || timer.Tick() {
		t.Fatal("timer completed too early")
	}
	if timer.Remaining() != 1 {
		t.Errorf("Remaining = %d, want 1", timer.Remaining())
	}
	if !timer.Tick() {
		t.Fatal("third tick should complete the timer")
	}
	if timer.Running() || !timer.Complete() || timer.Remaining() != 0 {
		t.Errorf("after completion: running=%v complete=%v remaining=%d", timer.Running(), timer.Complete(), timer.Remaining())
	}
	if timer.Tick() {
		t.Error("tick on a completed timer reported completion again")
	}
}

func TestRestTimerPauseResume(t *testing.T) {
	var timer RestTimer
	timer.Start(10)
	timer.Tick()
	timer.Pause()
	timer.Tick()

	if timer.Remaining() != 9 {
		t.Errorf("paused timer moved: remaining = %d, want 9", timer.Remaining())
	}

	timer.Resume()
	timer.Tick()
	if timer.Remaining() != 8 {
		t.Errorf("after resume remaining = %d, want 8", timer.Remaining())
	}

	timer.Skip()
	timer.Resume()
	if timer.Running() || !timer.Complete() {
		t.Error("skipped timer resumed")
	}

	timer.Reset(0)
	if timer.Complete() || timer.Running() || timer.Total() != 10 {
		t.Errorf("after Reset(0): complete=%v running=%v total=%d", timer.Complete(), timer.Running(), timer.Total())
	}
	timer.Reset(60)
	if timer.Total() != 60 {
		t.Errorf("after Reset(60): total = %d", timer.Total())
	}
}

func TestRestTimerRun(t *testing.T) {
	var timer RestTimer
	timer.Start(3)

	ticks := make(chan time.Time, 3)
	for i := 0; i < 3; i++ {
		ticks <- time.Now()
	}

	var seen []int
	if err := timer.Run(context.Background(), ticks, func(remaining int) { seen = append(seen, remaining) }); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(seen) != 3 || seen[0] != 2 || seen[2] != 0 {
		t.Errorf("onTick saw %v, want [2 1 0]", seen)
	}
	if !timer.Complete() {
		t.Error("timer not complete after Run")
	}
}

func TestRestTimerRunCancelled(t *testing.T) {
	var timer RestTimer
	timer.Start(30)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := timer.Run(ctx, make(chan time.Time), nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run error = %v, want context.Canceled", err)
	}
	if timer.Running() || timer.Remaining() != 30 {
		t.Errorf("cancelled timer: running=%v remaining=%d", timer.Running(), timer.Remaining())
	}
}
