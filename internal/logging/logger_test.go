package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("log line is not JSON: %q", line)
		}
		out = append(out, m)
	}
	return out
}

func TestZerologAdapterFields(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := NewLogger(&buf, "debug")
	log.Info("derived", String("backend", "big"), Int("roots", 4096), Uint64("order", 12), Float64("seconds", 0.5))
	log.Error("failed", errors.New("closure"), String("stage", "derive"))

	lines := decodeLines(t, &buf)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0]["message"] != "derived" || lines[0]["backend"] != "big" || lines[0]["roots"] != float64(4096) {
		t.Errorf("unexpected info line: %v", lines[0])
	}
	if lines[0]["component"] != "gen-params" {
		t.Errorf("missing component field: %v", lines[0])
	}
	if lines[1]["level"] != "error" || lines[1]["error"] != "closure" {
		t.Errorf("unexpected error line: %v", lines[1])
	}
}

func TestLevelFiltering(t *testing.T) {
	t.Parallel()
	tests := []struct {
		level string
		want  int
	}{
		{"debug", 3},
		{"info", 2},
		{"warn", 1},
		{"bogus", 2},
		{"", 2},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			log := NewLogger(&buf, tt.level)
			log.Debug("d")
			log.Info("i")
			log.Warn("w")
			if got := len(decodeLines(t, &buf)); got != tt.want {
				t.Errorf("level %q emitted %d lines, want %d", tt.level, got, tt.want)
			}
		})
	}
}

func TestValidLevel(t *testing.T) {
	t.Parallel()
	for _, l := range []string{"debug", "INFO", "warn", "error"} {
		if !ValidLevel(l) {
			t.Errorf("ValidLevel(%q) = false", l)
		}
	}
	for _, l := range []string{"", "loud"} {
		if ValidLevel(l) {
			t.Errorf("ValidLevel(%q) = true", l)
		}
	}
}

func TestNopLogger(t *testing.T) {
	t.Parallel()
	log := NewNopLogger()
	log.Info("ignored")
	log.Error("ignored", errors.New("x"))
}
