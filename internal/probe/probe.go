// Package probe recovers the accumulated CPU time and peak memory of a child
// process after it terminates. Exactly one backend is compiled in per target
// platform. Every backend degrades to the zero Resources instead of returning
// an error: a failed measurement must not spoil the run's report.
package probe

import "time"

// Resources summarises the system resources a process consumed.
type Resources struct {
	// User-mode time and kernel-mode time
	User, System time.Duration

	// Peak memory in KiB, in platform-dependent terms:
	// - Linux: virtual size, an approximation (no true peak survives exit)
	// - Windows: peak working set
	// 0 means the figure could not be recovered.
	MaxMemoryKiB uint64
}
