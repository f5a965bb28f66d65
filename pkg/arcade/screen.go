// Package arcade models the day 13 arcade cabinet: the screen built from
// the machine's (x, y, tile) output triples and the joystick fed back as
// input. It is shared by the day 13 solver and the playable game shell.
package arcade

import (
	"fmt"
	"strings"
)

// Tile is one cell of the cabinet screen.
type Tile int64

const (
	TileEmpty Tile = iota
	TileWall
	TileBlock
	TilePaddle
	TileBall
)

// TileFromValue converts a raw output value into a tile.
func TileFromValue(v int64) (Tile, error) {
	if v < int64(TileEmpty) || v > int64(TileBall) {
		return TileEmpty, fmt.Errorf("invalid tile value: %d", v)
	}
	return Tile(v), nil
}

// Rune returns the character used to render the tile on a terminal.
func (t Tile) Rune() rune {
	switch t {
	case TileWall:
		return '#'
	case TileBlock:
		return '█'
	case TilePaddle:
		return '-'
	case TileBall:
		return 'o'
	default:
		return ' '
	}
}

// String returns a readable name for the tile.
func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileWall:
		return "wall"
	case TileBlock:
		return "block"
	case TilePaddle:
		return "paddle"
	case TileBall:
		return "ball"
	default:
		return "invalid"
	}
}

// Point is a screen coordinate.
type Point struct {
	X, Y int64
}

// Instruction is one decoded output triple: either a tile draw or a score
// update (the (-1, 0, score) form).
type Instruction struct {
	X, Y    int64
	Tile    Tile
	Score   int64
	IsScore bool
}

// decodeInstruction interprets an output triple.
func decodeInstruction(x, y, v int64) (Instruction, error) {
	if x == -1 && y == 0 {
		return Instruction{X: x, Y: y, Score: v, IsScore: true}, nil
	}
	tile, err := TileFromValue(v)
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{X: x, Y: y, Tile: tile}, nil
}

// IsBall reports whether the instruction draws the ball.
func (in Instruction) IsBall() bool {
	return !in.IsScore && in.Tile == TileBall
}

// IsPaddle reports whether the instruction draws the paddle.
func (in Instruction) IsPaddle() bool {
	return !in.IsScore && in.Tile == TilePaddle
}

// IsClear reports whether the instruction erases a cell. The game program
// erases the ball's previous cell once per frame, so a clear marks a frame
// boundary.
func (in Instruction) IsClear() bool {
	return !in.IsScore && in.Tile == TileEmpty
}

// Screen is the cabinet framebuffer plus the current score.
type Screen struct {
	Framebuffer map[Point]Tile
	Score       int64

	// Last is the most recently applied instruction, used for frame
	// detection.
	Last *Instruction
}

// NewScreen creates an empty screen.
func NewScreen() *Screen {
	return &Screen{
		Framebuffer: make(map[Point]Tile),
	}
}

// Apply executes one instruction against the screen.
func (s *Screen) Apply(in Instruction) {
	s.Last = &in
	if in.IsScore {
		s.Score = in.Score
		return
	}
	s.Framebuffer[Point{X: in.X, Y: in.Y}] = in.Tile
}

// Bounds returns the smallest rectangle covering every drawn cell. ok is
// false while nothing has been drawn.
func (s *Screen) Bounds() (min, max Point, ok bool) {
	first := true
	for p := range s.Framebuffer {
		if first {
			min, max = p, p
			first = false
			continue
		}
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max, !first
}

// Size returns the screen dimensions implied by the drawn cells.
func (s *Screen) Size() (w, h int64, ok bool) {
	_, max, ok := s.Bounds()
	if !ok {
		return 0, 0, false
	}
	return max.X + 1, max.Y + 1, true
}

// Tile returns the tile at p; cells never drawn are empty.
func (s *Screen) Tile(p Point) Tile {
	return s.Framebuffer[p]
}

// CountTiles returns how many cells currently hold the given tile.
func (s *Screen) CountTiles(t Tile) int {
	n := 0
	for _, tile := range s.Framebuffer {
		if tile == t {
			n++
		}
	}
	return n
}

// String renders the screen as text with the score below, for terminal
// display and debugging.
func (s *Screen) String() string {
	var b strings.Builder
	if min, max, ok := s.Bounds(); ok {
		for y := min.Y; y <= max.Y; y++ {
			for x := min.X; x <= max.X; x++ {
				b.WriteRune(s.Tile(Point{X: x, Y: y}).Rune())
			}
			b.WriteByte('\n')
		}
	}
	fmt.Fprintf(&b, "Score: %d", s.Score)
	return b.String()
}
