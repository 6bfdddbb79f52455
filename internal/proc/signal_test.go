package proc

import (
	"errors"
	"fmt"
	"testing"

	"golang.org/x/sys/unix"
)

func TestIsPermission(t *testing.T) {
	wrapped := fmt.Errorf("send SIGTERM to pid 1: %w", unix.EPERM)
	if !IsPermission(wrapped) {
		t.Fatal("wrapped EPERM should classify as a permission failure")
	}
	if IsPermission(fmt.Errorf("send SIGTERM to pid 1: %w", unix.ESRCH)) {
		t.Fatal("ESRCH is not a permission failure")
	}
	if IsPermission(errors.New("boom")) {
		t.Fatal("arbitrary errors are not permission failures")
	}
	if IsPermission(nil) {
		t.Fatal("nil is not a permission failure")
	}
}

func TestSignalString(t *testing.T) {
	if SignalTerm.String() != "SIGTERM" || SignalKill.String() != "SIGKILL" {
		t.Fatalf("signal names = %q, %q", SignalTerm, SignalKill)
	}
}
