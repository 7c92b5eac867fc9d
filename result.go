package ptime

import (
	"strconv"
	"time"
)

// Execution outcome classification for a finished child.
const (
	StatusExited      = "exited"
	StatusSignaled    = "signal"
	StatusInterrupted = "interrupted"
)

// Conventional shell exit code for an interrupted run (128 + SIGINT).
const interruptExitCode = 130

// Usage summarises the system resources the child consumed. The zero value
// means the numbers could not be recovered, which is a reportable result
// rather than an error.
type Usage struct {
	// User-mode time and kernel-mode time
	User, System time.Duration

	// Peak memory in KiB, 0 when unknown
	MaxMemoryKiB uint64
}

// Result describes one finished run of a child command.
type Result struct {
	// Status is one of StatusExited, StatusSignaled, StatusInterrupted.
	Status string

	// ExitCode is the child's own exit code, -1 when it has none
	// (terminated by a signal).
	ExitCode int

	// Signal names the terminating signal when Status == StatusSignaled.
	Signal string

	// WallTime spans from just before spawn to just after the exit was
	// observed, so it includes process creation overhead.
	WallTime time.Duration

	Usage Usage

	// Interrupted is set when an interrupt arrived during the run. It forces
	// Status to StatusInterrupted even if the child happened to exit cleanly
	// just before the signal landed.
	Interrupted bool
}

// ExitStatus renders the status field the way time-style reports show it:
// the numeric exit code, "signal", or "interrupted".
func (r *Result) ExitStatus() string {
	switch r.Status {
	case StatusInterrupted, StatusSignaled:
		return r.Status
	default:
		return strconv.Itoa(r.ExitCode)
	}
}

// ProcessExitCode is the code ptime itself exits with: 130 when the run was
// interrupted, the child's own code when it exited, and 1 for a
// signal-terminated child that has no code of its own.
func (r *Result) ProcessExitCode() int {
	switch {
	case r.Interrupted:
		return interruptExitCode
	case r.Status == StatusSignaled:
		return 1
	default:
		return r.ExitCode
	}
}

// CPUPercent is total CPU time over wall time, as a percentage. Zero wall time
// yields zero rather than a division blowup.
func (r *Result) CPUPercent() float64 {
	if r.WallTime <= 0 {
		return 0
	}
	return (r.Usage.User + r.Usage.System).Seconds() / r.WallTime.Seconds() * 100
}
