package arcade

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func genDraw() gopter.Gen {
	return gopter.CombineGens(
		gen.Int64Range(0, 40),
		gen.Int64Range(0, 25),
		gen.Int64Range(0, 4),
	).Map(func(vs []interface{}) Instruction {
		return Instruction{
			X:    vs[0].(int64),
			Y:    vs[1].(int64),
			Tile: Tile(vs[2].(int64)),
		}
	})
}

func TestPropertyScreenLastWriteWins(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("each cell holds its most recent draw", prop.ForAll(
		func(draws []Instruction) bool {
			s := NewScreen()
			for _, in := range draws {
				s.Apply(in)
			}

			last := make(map[Point]Tile)
			for _, in := range draws {
				last[Point{X: in.X, Y: in.Y}] = in.Tile
			}
			for p, want := range last {
				if s.Tile(p) != want {
					return false
				}
			}
			return true
		},
		gen.SliceOf(genDraw()),
	))

	properties.Property("score updates never touch the framebuffer", prop.ForAll(
		func(scores []int64) bool {
			s := NewScreen()
			for _, v := range scores {
				s.Apply(Instruction{X: -1, Score: v, IsScore: true})
			}
			if len(s.Framebuffer) != 0 {
				return false
			}
			if len(scores) > 0 && s.Score != scores[len(scores)-1] {
				return false
			}
			return true
		},
		gen.SliceOf(gen.Int64()),
	))

	properties.TestingRun(t)
}
