//go:build !unix && !windows

package probe

// Measure has no backend for this platform and reports nothing.
func Measure(pid int) Resources {
	return Resources{}
}
