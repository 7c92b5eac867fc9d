package ptime

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	testCases := []struct {
		input time.Duration
		want  string
	}{
		{input: 0, want: "0.000s"},
		{input: time.Millisecond, want: "0.001s"},
		{input: 1500 * time.Millisecond, want: "1.500s"},
		{input: 59*time.Second + 999*time.Millisecond, want: "59.999s"},

		// Minutes split out at one minute and above
		{input: time.Minute, want: "1m0.000s"},
		{input: 61500 * time.Millisecond, want: "1m1.500s"},
		{input: 3723456 * time.Millisecond, want: "62m3.456s"},
		{input: 2 * time.Hour, want: "120m0.000s"},
	}

	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			if got := FormatDuration(tc.input); got != tc.want {
				t.Errorf("FormatDuration(%v) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestFormatMemory(t *testing.T) {
	testCases := []struct {
		input uint64
		want  string
	}{
		{input: 0, want: "N/A"},
		{input: 1, want: "1KB"},
		{input: 1023, want: "1023KB"},
		{input: 1024, want: "1.0MB"},
		{input: 1536, want: "1.5MB"},
		{input: 10 * 1024, want: "10.0MB"},
		{input: 1024*1024 - 1, want: "1024.0MB"},
		{input: 1024 * 1024, want: "1.0GB"},
		{input: 3 * 1024 * 1024 / 2, want: "1.5GB"},
	}

	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			if got := FormatMemory(tc.input); got != tc.want {
				t.Errorf("FormatMemory(%d) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
