package app

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/treetop-tui/treetop/internal/proc"
	"github.com/treetop-tui/treetop/internal/state"
	"github.com/treetop-tui/treetop/internal/ui"
)

// Options configure the treetop application.
type Options struct {
	// Pattern is the initial filter pattern, exactly as an interactively
	// typed one. An empty string means no filter.
	Pattern string
	// DontHideSelf disables the policy of hiding treetop's own process when
	// it is matched only via its command-line arguments.
	DontHideSelf bool
	// PollEvery overrides the refresh interval; zero uses the default.
	PollEvery time.Duration
}

// Run boots the treetop TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	// A pattern typed interactively may be invalid and simply matches
	// nothing, but an invalid pattern argument is a startup error.
	if opts.Pattern != "" {
		if _, err := regexp.Compile(opts.Pattern); err != nil {
			return fmt.Errorf("invalid pattern %q: %w", opts.Pattern, err)
		}
	}

	source := proc.NewSystemSource()
	store := &state.Store{}

	// Populate the store before the UI starts; an unreadable process table
	// at startup is fatal.
	records, err := source.Snapshot()
	if err != nil {
		return fmt.Errorf("read process table: %w", err)
	}
	store.Update(records, nil)

	interval := opts.PollEvery
	if interval <= 0 {
		interval = defaultPollInterval
	}
	StartPoller(ctx, store, source, interval)

	return ui.Run(ui.Options{
		Store:        store,
		Sender:       proc.KillSender{},
		PollTick:     interval,
		Pattern:      opts.Pattern,
		DontHideSelf: opts.DontHideSelf,
		SelfPID:      int32(os.Getpid()),
	})
}
