package solutions

import "testing"

func TestPaintRobotScriptedWalk(t *testing.T) {
	// Emits the published instruction sequence regardless of the camera:
	// 1,0 0,0 1,0 1,0 0,1 1,0 1,0. The robot paints six distinct panels.
	program := mustParseDayProgram(t,
		"104,1,104,0,104,0,104,0,104,1,104,0,104,1,104,0,"+
			"104,0,104,1,104,1,104,0,104,1,104,0,99")

	h := make(hull)
	if err := newPaintRobot(program).paint(h); err != nil {
		t.Fatalf("paint failed: %v", err)
	}

	if len(h) != 6 {
		t.Errorf("painted %d panels, want 6", len(h))
	}
	if got := h.color(panel{x: 0, y: 0}); got != colorBlack {
		t.Errorf("origin color = %d, want black", got)
	}
}

func TestPaintRobotRejectsBadValues(t *testing.T) {
	// Color 2 is not a paint color.
	program := mustParseDayProgram(t, "104,2,104,0,99")
	if err := newPaintRobot(program).paint(make(hull)); err == nil {
		t.Error("expected error for an invalid color")
	}

	// Turn 5 is not a direction.
	program = mustParseDayProgram(t, "104,1,104,5,99")
	if err := newPaintRobot(program).paint(make(hull)); err == nil {
		t.Error("expected error for an invalid turn")
	}
}

func TestPaintRobotIncompleteInstruction(t *testing.T) {
	program := mustParseDayProgram(t, "104,1,99")
	if err := newPaintRobot(program).paint(make(hull)); err == nil {
		t.Error("expected error for a color without a turn")
	}
}

func TestHullRender(t *testing.T) {
	h := hull{
		{0, 0}: colorWhite,
		{1, 0}: colorBlack,
		{1, 1}: colorWhite,
	}

	got := h.render()
	want := "█ \n █"
	if got != want {
		t.Errorf("render = %q, want %q", got, want)
	}
}
