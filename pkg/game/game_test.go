package game

import (
	"testing"

	"github.com/zephyrix/advent2019/pkg/intcode"
)

func TestNewStartsOnTitleScreen(t *testing.T) {
	g := New(intcode.Program{99}, Options{})

	if g.stage != stageTitle {
		t.Errorf("stage = %d, want title", g.stage)
	}
	if g.speed != 1 {
		t.Errorf("speed = %d, want 1 when unset", g.speed)
	}
}

func TestNewKeepsOptions(t *testing.T) {
	g := New(intcode.Program{99}, Options{Autopilot: true, Speed: 10, ShowFPS: true})

	if !g.autopilot || g.speed != 10 || !g.showFPS {
		t.Errorf("options not applied: autopilot=%v speed=%d showFPS=%v",
			g.autopilot, g.speed, g.showFPS)
	}
}

func TestStartLoadsBoard(t *testing.T) {
	// A minimal "game program" that survives the free play patch and draws
	// a full 37x20 board corner to corner, then halts.
	program := intcode.Program{
		1, 50, 50, 50,
		104, 0, 104, 0, 104, 1,
		104, 36, 104, 19, 104, 1,
		99,
	}

	g := New(program, Options{})
	if err := g.start(); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	if g.stage != stagePlaying {
		t.Errorf("stage = %d, want playing", g.stage)
	}
	if g.cabinet == nil {
		t.Fatal("cabinet not booted")
	}
	if w, h, ok := g.cabinet.Screen.Size(); !ok || w != boardWidth || h != boardHeight {
		t.Errorf("board size = (%d, %d, %v), want (%d, %d, true)", w, h, ok, boardWidth, boardHeight)
	}
}
