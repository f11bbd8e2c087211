package simulation

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	golog "github.com/tochemey/goakt/v3/log"
)

type pauseRequest struct {
	paused bool
	done   chan struct{}
}

// Loop is the headless scheduler: it sends one Tick to the board per interval
// until its context is cancelled. It plays the part ebiten's Update plays in
// the windowed shell.
type Loop struct {
	client   *Client
	interval time.Duration
	logger   golog.Logger
	control  chan pauseRequest

	// MaxTicks stops Run after that many ticks, 0 runs until cancellation.
	MaxTicks uint64

	ticks  atomic.Uint64
	paused atomic.Bool
}

func NewLoop(client *Client, tickRate int, logger golog.Logger) *Loop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Loop{
		client:   client,
		interval: time.Second / time.Duration(tickRate),
		logger:   logger,
		control:  make(chan pauseRequest),
	}
}

// Run blocks until ctx is done, MaxTicks is reached or a tick cannot be delivered.
// Cancellation is a normal stop and returns nil.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.logger.Infof("Loop started at %v per tick", l.interval)
	for {
		select {
		case <-ctx.Done():
			l.logger.Infof("Loop stopped after %d ticks", l.ticks.Load())
			return nil
		case req := <-l.control:
			l.paused.Store(req.paused)
			close(req.done)
		case <-ticker.C:
			if l.paused.Load() {
				continue
			}
			if err := l.client.Tick(ctx); err != nil {
				return fmt.Errorf("loop tick %d: %w", l.ticks.Load()+1, err)
			}
			if n := l.ticks.Add(1); l.MaxTicks > 0 && n >= l.MaxTicks {
				l.logger.Infof("Loop reached %d ticks", n)
				return nil
			}
		}
	}
}

// SetPaused suspends or resumes ticking. It returns once the loop goroutine
// has taken the change into account: no tick is sent after SetPaused(ctx, true)
// returns. It waits for a running loop, or for ctx.
func (l *Loop) SetPaused(ctx context.Context, paused bool) error {
	req := pauseRequest{paused: paused, done: make(chan struct{})}
	select {
	case l.control <- req:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-req.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Loop) Paused() bool {
	return l.paused.Load()
}

// Ticks returns the number of ticks sent so far.
func (l *Loop) Ticks() uint64 {
	return l.ticks.Load()
}
