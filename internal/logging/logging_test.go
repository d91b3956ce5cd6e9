package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name           string
		verbose, quiet bool
		want           zerolog.Level
	}{
		{"default", false, false, zerolog.WarnLevel},
		{"verbose", true, false, zerolog.DebugLevel},
		{"quiet", false, true, zerolog.Disabled},
		{"quiet wins", true, true, zerolog.Disabled},
	}
	for _, tc := range tests {
		var buf bytes.Buffer
		logger := New(&buf, tc.verbose, tc.quiet)
		if got := logger.GetLevel(); got != tc.want {
			t.Errorf("%s: level = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestNewWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, true, false)
	logger.Debug().Str("algorithm", "fft").Msg("phase complete")
	out := buf.String()
	if !strings.Contains(out, "phase complete") {
		t.Errorf("output missing message: %q", out)
	}
	if !strings.Contains(out, "fft") {
		t.Errorf("output missing field: %q", out)
	}
}

func TestNopDiscards(t *testing.T) {
	logger := Nop()
	if logger.GetLevel() != zerolog.Disabled {
		t.Errorf("Nop level = %s", logger.GetLevel())
	}
}
