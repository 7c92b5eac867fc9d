package ptime

import (
	"os"
	"os/signal"
	"sync/atomic"
)

// The interrupt flag is the only state shared with the signal-handling
// context. One writer (the notify goroutine), one reader (Run, once after the
// child exits), so a lone atomic bool is all the synchronisation needed.
var interrupted atomic.Bool

// WatchInterrupts records interrupts delivered while a child runs, without
// acting on them. The child is never killed here: an interactive Ctrl-C
// reaches it through the terminal anyway, and the run must still produce a
// report with whatever timing data it has.
func WatchInterrupts() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	go func() {
		for range sigs {
			interrupted.Store(true)
		}
	}()
}

// Interrupted reports whether an interrupt has arrived.
func Interrupted() bool {
	return interrupted.Load()
}

func resetInterrupted() { interrupted.Store(false) }
