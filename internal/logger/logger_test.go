package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func captureOutput(t *testing.T, level Level, fn func()) string {
	t.Helper()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(level)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetLevel(LevelWarn)
	})

	fn()
	return buf.String()
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	out := captureOutput(t, LevelWarn, func() {
		Debug("merging folders")
		Info("merging sites")
		Warn("manifest not readable")
		Error("vagrant failed")
	})

	if strings.Contains(out, "merging folders") || strings.Contains(out, "merging sites") {
		t.Error("debug/info should be suppressed at warn level")
	}
	if !strings.Contains(out, "manifest not readable") {
		t.Error("warn message missing")
	}
	if !strings.Contains(out, "vagrant failed") {
		t.Error("error message missing")
	}
}

func TestVerboseInit(t *testing.T) {
	Init(true)
	if GetLevel() != LevelDebug {
		t.Errorf("verbose init should enable debug, got %v", GetLevel())
	}

	Init(false)
	if GetLevel() != LevelWarn {
		t.Errorf("non-verbose init should default to warn, got %v", GetLevel())
	}
}

func TestMessageFormat(t *testing.T) {
	out := captureOutput(t, LevelDebug, func() {
		Debug("loading %s", "Homestead.yaml")
	})

	if !strings.HasPrefix(out, "[DEBUG] ") {
		t.Errorf("expected level prefix, got %q", out)
	}
	if !strings.Contains(out, "loading Homestead.yaml") {
		t.Errorf("formatted message missing, got %q", out)
	}
}

func TestStructuredFields(t *testing.T) {
	out := captureOutput(t, LevelDebug, func() {
		DebugFields("box config merged", map[string]interface{}{
			"sites":   1,
			"folders": 2,
		})
	})

	// Fields are sorted by key for deterministic output
	if !strings.Contains(out, "folders=2 sites=1") {
		t.Errorf("expected sorted key=value fields, got %q", out)
	}
}
