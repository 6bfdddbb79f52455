package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/treetop-tui/treetop/internal/proc"
)

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	records := []*proc.Record{{PID: 1, Name: "init"}, {PID: 2, Name: "sshd"}}

	before := time.Now()
	s.Update(records, nil)

	snap := s.Snapshot()
	if len(snap.Records) != 2 || snap.Records[0].PID != 1 {
		t.Fatalf("snapshot records = %#v, want 2 records", snap.Records)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}

	// The returned slice must be independent of the stored one.
	snap.Records[0] = &proc.Record{PID: 999}
	snap2 := s.Snapshot()
	if snap2.Records[0].PID != 1 {
		t.Fatalf("Snapshot should clone the record slice; got pid %d want 1", snap2.Records[0].PID)
	}
}

func TestStore_UpdateErrorKeepsPreviousRecords(t *testing.T) {
	var s Store

	s.Update([]*proc.Record{{PID: 1}}, nil)

	before := time.Now()
	origErr := errors.New("boom")
	s.Update(nil, origErr)

	snap := s.Snapshot()
	if len(snap.Records) != 1 || snap.Records[0].PID != 1 {
		t.Fatalf("records changed on error: got %#v", snap.Records)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone the error instance")
	}
}

func TestStore_ConsecutiveFailuresAndStaleness(t *testing.T) {
	var s Store

	if s.Snapshot().IsStale() {
		t.Fatal("fresh store should not be stale")
	}
	s.Update(nil, errors.New("one"))
	if s.Snapshot().IsStale() {
		t.Fatal("one failure should not be stale yet")
	}
	s.Update(nil, errors.New("two"))
	if !s.Snapshot().IsStale() {
		t.Fatal("two consecutive failures should flag staleness")
	}
	s.Update([]*proc.Record{{PID: 1}}, nil)
	snap := s.Snapshot()
	if snap.IsStale() || snap.ConsecutiveFailures != 0 {
		t.Fatalf("success should reset failures, got %d", snap.ConsecutiveFailures)
	}
}
