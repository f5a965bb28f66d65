package logger

import "testing"

func TestInitValidLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		if err := Init(level); err != nil {
			t.Errorf("Init(%q) returned error: %v", level, err)
		}
		if Get() == nil {
			t.Errorf("Get() returned nil after Init(%q)", level)
		}
	}
}

func TestInitInvalidLevel(t *testing.T) {
	for _, level := range []string{"", "trace", "DEBUG", "verbose"} {
		if err := Init(level); err == nil {
			t.Errorf("Init(%q) expected error, got nil", level)
		}
	}
}

func TestGetWithoutInit(t *testing.T) {
	globalLogger = nil
	if Get() == nil {
		t.Error("Get() must fall back to the slog default, got nil")
	}
}
