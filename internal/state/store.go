package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/treetop-tui/treetop/internal/proc"
)

// Snapshot is the latest flat process collection available to the UI,
// together with poll bookkeeping.
type Snapshot struct {
	Records             []*proc.Record
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsStale returns true when the process source has failed for multiple polls
// in a row and the records on display are likely outdated.
func (s Snapshot) IsStale() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates snapshot handoff between the background poller and the
// UI. The zero value is ready to use.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored record collection. When err is non-nil the
// previous records are kept so the UI always has something to show, and the
// failure is recorded for visibility.
func (s *Store) Update(records []*proc.Record, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}
	s.snapshot.Records = cloneRecords(records)
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot. The record slice is
// cloned; the records themselves are fresh per poll and, once published,
// are mutated only by the UI goroutine (match-state recomputation).
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Records = cloneRecords(s.snapshot.Records)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%s", s.snapshot.LastError.Error())
	}
	return snap
}

func cloneRecords(records []*proc.Record) []*proc.Record {
	if records == nil {
		return nil
	}
	out := make([]*proc.Record, len(records))
	copy(out, records)
	return out
}
