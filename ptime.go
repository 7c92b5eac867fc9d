/*
Package ptime runs a child command and measures its wall-clock, user-CPU and
system-CPU time, plus peak memory where the platform exposes it.

The resource numbers come from a single post-exit snapshot taken by
internal/probe; there is no sampling during execution and no accounting for
grandchildren. You can call this library from the command line with ptime:
go install ptime/cmd/ptime
*/
package ptime

import (
	"os"
	"os/exec"
	"syscall"
	"time"

	"ptime/internal/probe"
)

// Options selects the command to run and how to time it.
type Options struct {
	// Command is the program and its arguments, passed through verbatim.
	Command []string `validate:"required,min=1,dive,required"`

	// Portable skips platform-specific probing and measures wall time only.
	Portable bool
}

// Run executes opts.Command with inherited standard streams, waits for it to
// finish, and returns the timing result. The only error it can return is a
// *SpawnError; once the child has started, a report is owed no matter what.
func Run(opts Options) (*Result, error) {
	cmd := exec.Command(opts.Command[0], opts.Command[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, &SpawnError{Program: opts.Command[0], Err: err}
	}
	pid := cmd.Process.Pid

	// A Wait error beyond a nonzero exit status still leaves ProcessState
	// populated, so the result is assembled from it either way.
	_ = cmd.Wait()
	wall := time.Since(start)

	// Read the flag exactly once, after the wait returns. The child may have
	// exited cleanly moments before the signal was recorded; the interrupt
	// still wins. That race is benign and deliberate.
	wasInterrupted := Interrupted()

	result := &Result{
		Status:   StatusExited,
		WallTime: wall,
	}

	if !opts.Portable {
		// Post-exit snapshot. On POSIX the child is usually reaped by now and
		// the proc record is gone, in which case the probe reports zeros.
		u := probe.Measure(pid)
		result.Usage = Usage{User: u.User, System: u.System, MaxMemoryKiB: u.MaxMemoryKiB}
	}

	if state := cmd.ProcessState; state != nil {
		ws, ok := state.Sys().(syscall.WaitStatus)
		if ok && ws.Signaled() {
			result.Status = StatusSignaled
			result.ExitCode = -1
			result.Signal = ws.Signal().String()
		} else {
			result.ExitCode = state.ExitCode()
		}
	}

	if wasInterrupted {
		result.Interrupted = true
		result.Status = StatusInterrupted
	}

	return result, nil
}
