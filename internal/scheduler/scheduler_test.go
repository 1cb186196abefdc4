package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"
)

type fakeUsers struct {
	ids []string
	err error
}

func (f fakeUsers) ListUserIDs(context.Context) ([]string, error) {
	return f.ids, f.err
}

type call struct {
	userID string
	from   time.Time
	days   int
}

type fakePlanner struct {
	mu    sync.Mutex
	calls []call
	fail  map[string]bool
	done  chan struct{}
}

func (f *fakePlanner) MaterializeAhead(_ context.Context, userID string, from time.Time, days int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{userID, from, days})
	if f.done != nil && len(f.calls) == 1 {
		close(f.done)
	}
	if f.fail[userID] {
		return errors.New("boom")
	}
	return nil
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunOnce(t *testing.T) {
	now := time.Date(2026, 2, 2, 3, 0, 0, 0, time.UTC)
	planner := &fakePlanner{fail: map[string]bool{"u2": true}}
	p := NewPrematerializer(fakeUsers{ids: []string{"u1", "u2", "u3"}}, planner, 7, discard())
	p.now = func() time.Time { return now }

	err := p.RunOnce(context.Background())
	if err == nil {
		t.Fatal("expected the failure of u2 to be reported")
	}

	if len(planner.calls) != 3 {
		t.Fatalf("expected every user to be processed, got %d calls", len(planner.calls))
	}
	for _, c := range planner.calls {
		if !c.from.Equal(now) || c.days != 7 {
			t.Errorf("unexpected call %+v", c)
		}
	}
}

func TestRunOnceListError(t *testing.T) {
	planner := &fakePlanner{}
	p := NewPrematerializer(fakeUsers{err: errors.New("db down")}, planner, 7, discard())

	if err := p.RunOnce(context.Background()); err == nil {
		t.Fatal("expected an error")
	}
	if len(planner.calls) != 0 {
		t.Errorf("expected no calls, got %d", len(planner.calls))
	}
}

func TestRunOnceCanceled(t *testing.T) {
	planner := &fakePlanner{}
	p := NewPrematerializer(fakeUsers{ids: []string{"u1", "u2"}}, planner, 7, discard())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.RunOnce(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if len(planner.calls) != 0 {
		t.Errorf("expected no calls, got %d", len(planner.calls))
	}
}

func TestStart(t *testing.T) {
	planner := &fakePlanner{done: make(chan struct{})}
	p := NewPrematerializer(fakeUsers{ids: []string{"u1"}}, planner, 3, discard())

	if err := p.Start("not a schedule"); err == nil {
		t.Fatal("expected an invalid spec to be rejected")
	}

	if err := p.Start("@every 1s"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer p.Stop(context.Background())

	select {
	case <-planner.done:
	case <-time.After(5 * time.Second):
		t.Fatal("job did not run")
	}
}
