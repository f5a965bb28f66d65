package solutions

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zephyrix/advent2019/pkg/intcode"
)

// Hull panel colors.
const (
	colorBlack int64 = 0
	colorWhite int64 = 1
)

type panel struct {
	x, y int64
}

// hull records every panel the robot has painted; unpainted panels are
// black.
type hull map[panel]int64

func (h hull) color(p panel) int64 {
	return h[p]
}

// render draws the painted region, which spells the registration
// identifier.
func (h hull) render() string {
	if len(h) == 0 {
		return ""
	}

	var min, max panel
	first := true
	for p := range h {
		if first {
			min, max = p, p
			first = false
			continue
		}
		if p.x < min.x {
			min.x = p.x
		}
		if p.y < min.y {
			min.y = p.y
		}
		if p.x > max.x {
			max.x = p.x
		}
		if p.y > max.y {
			max.y = p.y
		}
	}

	var b strings.Builder
	for y := min.y; y <= max.y; y++ {
		for x := min.x; x <= max.x; x++ {
			if h.color(panel{x: x, y: y}) == colorWhite {
				b.WriteRune('█')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// paintRobot walks the hull driven by its camera and brain program. The
// robot starts at the origin facing up; dx, dy hold its heading.
type paintRobot struct {
	machine *intcode.Machine
	x, y    int64
	dx, dy  int64
}

func newPaintRobot(program intcode.Program) *paintRobot {
	return &paintRobot{
		machine: intcode.New(program, intcode.PolicyBatch),
		dx:      0,
		dy:      -1,
	}
}

// nextInstruction feeds the camera reading in and reads the paint color and
// turn direction back. done is true when the program has halted.
func (r *paintRobot) nextInstruction(camera int64) (color, turn int64, done bool, err error) {
	r.machine.PushInput(camera)

	color, ok1, err := r.machine.NextOutput()
	if err != nil {
		return 0, 0, false, err
	}
	turn, ok2, err := r.machine.NextOutput()
	if err != nil {
		return 0, 0, false, err
	}

	switch {
	case ok1 && ok2:
		return color, turn, false, nil
	case !ok1 && !ok2:
		return 0, 0, true, nil
	default:
		return 0, 0, false, fmt.Errorf("incomplete instruction: expected color and turn")
	}
}

// paint runs the robot until its program halts, painting onto h.
func (r *paintRobot) paint(h hull) error {
	for {
		color, turn, done, err := r.nextInstruction(h.color(panel{x: r.x, y: r.y}))
		if err != nil {
			return err
		}
		if done {
			return nil
		}

		if color != colorBlack && color != colorWhite {
			return fmt.Errorf("invalid color value: %d", color)
		}
		h[panel{x: r.x, y: r.y}] = color

		switch turn {
		case 0: // left
			r.dx, r.dy = r.dy, -r.dx
		case 1: // right
			r.dx, r.dy = -r.dy, r.dx
		default:
			return fmt.Errorf("invalid direction value: %d", turn)
		}

		r.x += r.dx
		r.y += r.dy
	}
}

func solveDay11(input string) (Result, error) {
	program, err := intcode.ParseProgram(input)
	if err != nil {
		return Result{}, err
	}

	// Part 1: start on a black panel and count the panels touched
	h := make(hull)
	if err := newPaintRobot(program).paint(h); err != nil {
		return Result{}, err
	}
	part1 := len(h)

	// Part 2: start on a white panel and read the painted identifier
	h = hull{{0, 0}: colorWhite}
	if err := newPaintRobot(program).paint(h); err != nil {
		return Result{}, err
	}

	return Result{
		Part1: strconv.Itoa(part1),
		Part2: "\n" + h.render(),
	}, nil
}
