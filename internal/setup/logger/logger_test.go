package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewWithWriter_Level(t *testing.T) {
	tests := []struct {
		level    string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"", zerolog.InfoLevel},
		{"not-a-level", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		l := NewWithWriter(&bytes.Buffer{}, tt.level)
		if l.GetLevel() != tt.expected {
			t.Errorf("NewWithWriter(%q) level = %s; want %s", tt.level, l.GetLevel(), tt.expected)
		}
	}
}

func TestNewWithWriter_Output(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "info")

	l.Debug().Msg("hidden")
	l.Info().Str("puzzle", "2022/day01").Msg("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Debug message should be filtered, got: %s", out)
	}
	if !strings.Contains(out, `"puzzle":"2022/day01"`) {
		t.Errorf("Expected puzzle field in output, got: %s", out)
	}
}
