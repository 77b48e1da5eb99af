package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLevel(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	logger := New(&buf, false)
	logger.Debug("hidden")
	logger.Info("shown", "path", "a.h5")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug record written at info level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "path=a.h5") {
		t.Errorf("info record missing: %q", out)
	}

	buf.Reset()
	New(&buf, true)
	slog.Debug("decoded table")
	if !strings.Contains(buf.String(), "decoded table") {
		t.Errorf("default logger not replaced in debug mode: %q", buf.String())
	}
}
