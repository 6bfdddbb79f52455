package app

import (
	"context"
	"log"
	"time"

	"github.com/treetop-tui/treetop/internal/proc"
	"github.com/treetop-tui/treetop/internal/state"
)

const (
	defaultPollInterval = 2 * time.Second
	maxBackoff          = 30 * time.Second
)

// StartPoller launches a background goroutine that refreshes the store at a
// fixed cadence, backing off while the process source keeps failing. It
// returns immediately.
func StartPoller(ctx context.Context, store *state.Store, source proc.Source, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		for {
			refresh(store, source)

			delay := calculateBackoff(store.Snapshot().ConsecutiveFailures, interval)
			select {
			case <-ctx.Done():
				return
			case <-time.After(delay):
			}
		}
	}()
}

func refresh(store *state.Store, source proc.Source) {
	records, err := source.Snapshot()
	if err != nil {
		store.Update(nil, err)
		log.Printf("process poll failed: %v", err)
		return
	}
	store.Update(records, nil)
}

// calculateBackoff doubles the poll interval per consecutive failure, capped
// at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	delay := base
	for i := 0; i < failures; i++ {
		delay *= 2
		if delay >= maxBackoff {
			return maxBackoff
		}
	}
	return delay
}
