package ptime

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
)

// Report formats supported by Render.
const (
	FormatDefault = "default"
	FormatJSON    = "json"
)

// Report pairs a finished result with the command that produced it and
// renders it for people or machines.
type Report struct {
	Command []string
	Result  *Result
}

// Standard renders the classic three-line time(1) layout: a leading blank
// line, then real/user/sys with tab-separated durations.
func (r *Report) Standard() string {
	return fmt.Sprintf("\nreal\t%s\nuser\t%s\nsys\t%s\n",
		FormatDuration(r.Result.WallTime),
		FormatDuration(r.Result.Usage.User),
		FormatDuration(r.Result.Usage.System))
}

// Verbose renders the labeled long-form report. The memory line only appears
// when a peak memory figure was actually recovered.
func (r *Report) Verbose() string {
	res := r.Result

	var b strings.Builder
	fmt.Fprintf(&b, "\nCommand: %s\n", strings.Join(r.Command, " "))
	fmt.Fprintf(&b, "Exit status: %s\n", res.ExitStatus())
	fmt.Fprintf(&b, "Elapsed (wall clock) time: %s\n", FormatDuration(res.WallTime))
	fmt.Fprintf(&b, "User time: %s\n", FormatDuration(res.Usage.User))
	fmt.Fprintf(&b, "System time: %s\n", FormatDuration(res.Usage.System))
	fmt.Fprintf(&b, "CPU usage: %.1f%%\n", res.CPUPercent())
	if res.Usage.MaxMemoryKiB > 0 {
		fmt.Fprintf(&b, "Maximum memory: %s\n", FormatMemory(res.Usage.MaxMemoryKiB))
	}
	return b.String()
}

type jsonReport struct {
	Command         []string `json:"command"`
	Status          string   `json:"status"`
	ExitCode        int      `json:"exit_code"`
	Signal          string   `json:"signal,omitempty"`
	WallTimeMs      uint64   `json:"wall_time_ms"`
	CPUUserTimeMs   uint64   `json:"cpu_user_time_ms"`
	CPUKernelTimeMs uint64   `json:"cpu_kernel_time_ms"`
	MemoryUsageKiB  uint64   `json:"memory_usage_kib"`
	Interrupted     bool     `json:"interrupted,omitempty"`
}

// JSON renders the report as a single machine-readable object, newline
// terminated.
func (r *Report) JSON() ([]byte, error) {
	res := r.Result
	out, err := json.Marshal(&jsonReport{
		Command:         r.Command,
		Status:          res.Status,
		ExitCode:        res.ExitCode,
		Signal:          res.Signal,
		WallTimeMs:      uint64(res.WallTime.Milliseconds()),
		CPUUserTimeMs:   uint64(res.Usage.User.Milliseconds()),
		CPUKernelTimeMs: uint64(res.Usage.System.Milliseconds()),
		MemoryUsageKiB:  res.Usage.MaxMemoryKiB,
		Interrupted:     res.Interrupted,
	})
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// Render picks the representation for the requested format.
func (r *Report) Render(format string, verbose bool) ([]byte, error) {
	if format == FormatJSON {
		return r.JSON()
	}
	return []byte(lo.Ternary(verbose, r.Verbose(), r.Standard())), nil
}

// Write sends a rendered report to path, or to stderr when path is empty. A
// file that cannot be written is the one fatal output condition.
func Write(text []byte, path string) error {
	if path == "" {
		_, err := os.Stderr.Write(text)
		return err
	}
	if err := os.WriteFile(path, text, 0644); err != nil {
		return &OutputError{Path: path, Err: err}
	}
	return nil
}
