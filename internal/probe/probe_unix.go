//go:build unix

package probe

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tklauser/go-sysconf"
)

// Ticks per second for the utime/stime counters, per sysconf(_SC_CLK_TCK).
// Queried once; 100 is the usual value and the fallback when the query fails.
var clockTicks = func() float64 {
	ticks, err := sysconf.Sysconf(sysconf.SC_CLK_TCK)
	if err != nil || ticks <= 0 {
		return 100
	}
	return float64(ticks)
}()

// Measure reads the accounting fields from /proc/<pid>/stat. Once the child
// has been reaped the record is gone and the read fails; that race is expected
// and yields the zero Resources.
func Measure(pid int) Resources {
	data, err := os.ReadFile(fmt.Sprintf("/proc/%d/stat", pid))
	if err != nil {
		return Resources{}
	}
	return parseStat(string(data))
}

// parseStat extracts utime (field 14), stime (field 15) and vsize (field 23)
// per stat(5) numbering. The comm field can itself contain spaces and
// parentheses, so field counting restarts after the last ')'.
func parseStat(stat string) Resources {
	i := strings.LastIndexByte(stat, ')')
	if i < 0 {
		return Resources{}
	}

	// fields[0] is the state field, field 3 of the record.
	fields := strings.Fields(stat[i+1:])
	if len(fields) < 21 {
		return Resources{}
	}

	utime, err := strconv.ParseUint(fields[11], 10, 64)
	if err != nil {
		return Resources{}
	}
	stime, err := strconv.ParseUint(fields[12], 10, 64)
	if err != nil {
		return Resources{}
	}
	vsize, _ := strconv.ParseUint(fields[20], 10, 64)

	return Resources{
		User:   ticksToDuration(utime),
		System: ticksToDuration(stime),
		// vsize is the virtual size in bytes. It stands in for peak memory
		// because /proc keeps no true peak for us to read.
		MaxMemoryKiB: vsize / 1024,
	}
}

func ticksToDuration(ticks uint64) time.Duration {
	return time.Duration(float64(ticks) / clockTicks * float64(time.Second))
}
