//go:build unix

package ptime

import (
	"os"
	"syscall"
	"testing"
	"time"
)

func TestWatchInterrupts(t *testing.T) {
	resetInterrupted()
	defer resetInterrupted()

	WatchInterrupts()

	// Notify is installed, so the signal is caught rather than killing us.
	if err := syscall.Kill(os.Getpid(), syscall.SIGINT); err != nil {
		t.Fatalf("sending SIGINT to self: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for !Interrupted() {
		if time.Now().After(deadline) {
			t.Fatal("interrupt flag never set")
		}
		time.Sleep(time.Millisecond)
	}
}
