package ptime

import "fmt"

// SpawnError means the child program could not be started at all: not found,
// not executable, permission denied. It is the only fatal error the controller
// produces; every failure after a successful spawn degrades to zero values.
type SpawnError struct {
	Program string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to execute %q: %v", e.Program, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// OutputError means a report destined for a file could not be written.
type OutputError struct {
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("could not write report to %s: %v", e.Path, e.Err)
}

func (e *OutputError) Unwrap() error { return e.Err }
