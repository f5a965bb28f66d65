package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestApp() (*Application, *bytes.Buffer) {
	var buf bytes.Buffer
	app := New()
	app.stdout = &buf
	return app, &buf
}

func TestRunSolvesRequestedDay(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "day1.txt"), []byte("12\n14\n"), 0644); err != nil {
		t.Fatalf("Failed to write input: %v", err)
	}

	app, buf := newTestApp()
	if err := app.Run([]string{"-i", dir, "1"}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Day 1") {
		t.Errorf("output missing day header: %q", out)
	}
	if !strings.Contains(out, "Part 1: 4") || !strings.Contains(out, "Part 2: 4") {
		t.Errorf("output missing answers: %q", out)
	}
}

func TestRunFailsWithoutInput(t *testing.T) {
	app, _ := newTestApp()
	if err := app.Run([]string{"-i", t.TempDir(), "1"}); err == nil {
		t.Error("expected error when the day's input file is missing")
	}
}

func TestRunShowsHelp(t *testing.T) {
	app, _ := newTestApp()
	if err := app.Run([]string{"--help"}); err != nil {
		t.Errorf("Run(--help) failed: %v", err)
	}
}

func TestRunRejectsBadArgs(t *testing.T) {
	app, _ := newTestApp()
	if err := app.Run([]string{"--log-level", "shouting"}); err == nil {
		t.Error("expected error for an invalid log level")
	}
}

func TestRunAdHocProgram(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.txt")
	// Doubles its input.
	if err := os.WriteFile(path, []byte("3,9,1,9,9,9,4,9,99,0"), 0644); err != nil {
		t.Fatalf("Failed to write program: %v", err)
	}

	app, buf := newTestApp()
	if err := app.Run([]string{"--run", path, "--inputs", "21"}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if got := strings.TrimSpace(buf.String()); got != "42" {
		t.Errorf("output = %q, want 42", got)
	}
}
