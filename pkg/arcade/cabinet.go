package arcade

import (
	"fmt"

	"github.com/zephyrix/advent2019/pkg/intcode"
)

// Joystick is the cabinet joystick position, fed to the machine as a
// constant input.
type Joystick int64

const (
	JoystickLeft    Joystick = -1
	JoystickNeutral Joystick = 0
	JoystickRight   Joystick = 1
)

// Cabinet couples one machine running the game program with the screen its
// output draws on.
type Cabinet struct {
	Machine *intcode.Machine
	Screen  *Screen

	// Most recent ball and paddle columns, tracked for the autopilot.
	ballX   int64
	paddleX int64

	joystick Joystick
}

// New boots the cabinet: an interactive machine with the joystick centered.
func New(program intcode.Program) *Cabinet {
	c := &Cabinet{
		Machine: intcode.New(program, intcode.PolicyInteractive),
		Screen:  NewScreen(),
	}
	c.SetJoystick(JoystickNeutral)
	return c
}

// NewFreePlay boots the cabinet with quarters inserted (memory address 0
// set to 2), which makes the game playable instead of just drawing the
// board.
func NewFreePlay(program intcode.Program) (*Cabinet, error) {
	c := New(program)
	if err := c.Machine.Set(0, 2); err != nil {
		return nil, err
	}
	return c, nil
}

// SetJoystick updates the joystick position the machine reads.
func (c *Cabinet) SetJoystick(j Joystick) {
	c.joystick = j
	c.Machine.SetConstantInput(int64(j))
}

// Joystick returns the current joystick position.
func (c *Cabinet) Joystick() Joystick {
	return c.joystick
}

// readInstruction collects the next output triple. It returns nil without
// error when the machine halts cleanly between instructions.
func (c *Cabinet) readInstruction() (*Instruction, error) {
	x, ok, err := c.Machine.NextOutput()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	y, ok, err := c.Machine.NextOutput()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("incomplete instruction: machine stopped after 1 of 3 values")
	}
	v, ok, err := c.Machine.NextOutput()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("incomplete instruction: machine stopped after 2 of 3 values")
	}

	in, err := decodeInstruction(x, y, v)
	if err != nil {
		return nil, err
	}
	return &in, nil
}

// Step reads and applies one instruction. Stepping a halted cabinet returns
// a machine-halted error, which the game shell uses to detect game over.
func (c *Cabinet) Step() error {
	in, err := c.readInstruction()
	if err != nil {
		return err
	}
	if in == nil {
		return intcode.NewHaltedError()
	}

	c.Screen.Apply(*in)
	switch {
	case in.IsBall():
		c.ballX = in.X
	case in.IsPaddle():
		c.paddleX = in.X
	}
	return nil
}

// Run steps until the machine halts, leaving the final screen and score in
// place.
func (c *Cabinet) Run() error {
	for !c.Machine.Halted() {
		if err := c.Step(); err != nil {
			if intcode.HasType(err, intcode.ErrorHalted) {
				return nil
			}
			return err
		}
	}
	return nil
}

// RunUntil steps until the condition holds. The condition is checked before
// each step, so a condition that already holds costs nothing.
func (c *Cabinet) RunUntil(cond func(*Cabinet) bool) error {
	for !cond(c) {
		if err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}

// WaitFrame steps until the program erases a cell, which it does once per
// frame when the ball moves. It always steps at least once so consecutive
// calls advance consecutive frames. Returns a machine-halted error on game
// over.
func (c *Cabinet) WaitFrame() error {
	for {
		if err := c.Step(); err != nil {
			return err
		}
		if c.Screen.Last != nil && c.Screen.Last.IsClear() {
			return nil
		}
	}
}

// LoadScreen steps until the first full frame of the given size has been
// drawn. The day 13 program always draws a 37x20 board first.
func (c *Cabinet) LoadScreen(width, height int64) error {
	return c.RunUntil(func(c *Cabinet) bool {
		w, h, ok := c.Screen.Size()
		return ok && w == width && h == height
	})
}

// Autopilot moves the joystick toward the ball. Call it once per frame for
// a paddle that never misses.
func (c *Cabinet) Autopilot() {
	switch {
	case c.ballX < c.paddleX:
		c.SetJoystick(JoystickLeft)
	case c.ballX > c.paddleX:
		c.SetJoystick(JoystickRight)
	default:
		c.SetJoystick(JoystickNeutral)
	}
}

// Score returns the current score.
func (c *Cabinet) Score() int64 {
	return c.Screen.Score
}

// GameOver reports whether the game program has halted.
func (c *Cabinet) GameOver() bool {
	return c.Machine.Halted()
}

// Won reports whether every block has been cleared.
func (c *Cabinet) Won() bool {
	return c.Screen.CountTiles(TileBlock) == 0
}
