package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pharmashift/internal/usecase/commands"
)

// Sweeper drives the time-based transitions: overdue invitations expire and
// filled shifts whose last session has ended complete.
type Sweeper struct {
	cmds     commands.MaintenanceCommands
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewSweeper(cmds commands.MaintenanceCommands, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Sweeper{cmds: cmds, interval: interval}
}

// Start runs one sweep immediately and then one per interval until Stop.
// Calling Start on a running sweeper is a no-op.
func (s *Sweeper) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.loop(ctx, s.done)
	slog.Info("sweeper started", "interval", s.interval)
}

// Stop cancels the loop and waits for an in-flight sweep, bounded by ctx.
func (s *Sweeper) Stop(ctx context.Context) error {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
		slog.Info("sweeper stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Sweeper) loop(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.RunOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single sweep and logs the outcome.
func (s *Sweeper) RunOnce(ctx context.Context) {
	res, err := s.cmds.Sweep(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		slog.Error("sweep failed", "error", err)
		return
	}
	if res.InvitationsExpired > 0 || res.ShiftsCompleted > 0 {
		slog.Info("sweep finished",
			"invitations_expired", res.InvitationsExpired,
			"shifts_completed", res.ShiftsCompleted)
	}
}
