package proc

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Signal is the kind of termination signal the operator can send.
type Signal int

const (
	SignalTerm Signal = iota
	SignalKill
)

func (s Signal) String() string {
	switch s {
	case SignalTerm:
		return "SIGTERM"
	case SignalKill:
		return "SIGKILL"
	default:
		return "unknown signal"
	}
}

// Sender delivers a termination signal to a process. The production
// implementation is KillSender; tests substitute fakes.
type Sender interface {
	Send(pid int32, sig Signal) error
}

// KillSender sends signals through the kill syscall.
type KillSender struct{}

// Send implements Sender.
func (KillSender) Send(pid int32, sig Signal) error {
	var signo unix.Signal
	switch sig {
	case SignalTerm:
		signo = unix.SIGTERM
	case SignalKill:
		signo = unix.SIGKILL
	default:
		return fmt.Errorf("unsupported signal %d", sig)
	}
	if err := unix.Kill(int(pid), signo); err != nil {
		return fmt.Errorf("send %s to pid %d: %w", sig, pid, err)
	}
	return nil
}

// IsPermission reports whether err is the recoverable permission-denied case
// of signal delivery. Any other delivery failure is fatal.
func IsPermission(err error) bool { return errors.Is(err, unix.EPERM) }
