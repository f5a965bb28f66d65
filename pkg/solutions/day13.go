package solutions

import (
	"strconv"

	"github.com/zephyrix/advent2019/pkg/arcade"
	"github.com/zephyrix/advent2019/pkg/intcode"
)

// countBlocks runs the game program without quarters, which just draws the
// board, and counts the block tiles.
func countBlocks(program intcode.Program) (int, error) {
	cabinet := arcade.New(program)
	if err := cabinet.Run(); err != nil {
		return 0, err
	}
	return cabinet.Screen.CountTiles(arcade.TileBlock), nil
}

// playToCompletion plays the game with quarters inserted, keeping the paddle
// under the ball each frame, and returns the final score.
func playToCompletion(program intcode.Program) (int64, error) {
	cabinet, err := arcade.NewFreePlay(program)
	if err != nil {
		return 0, err
	}

	for {
		err := cabinet.WaitFrame()
		if intcode.HasType(err, intcode.ErrorHalted) {
			return cabinet.Score(), nil
		}
		if err != nil {
			return 0, err
		}
		cabinet.Autopilot()
	}
}

func solveDay13(input string) (Result, error) {
	program, err := intcode.ParseProgram(input)
	if err != nil {
		return Result{}, err
	}

	blocks, err := countBlocks(program)
	if err != nil {
		return Result{}, err
	}

	score, err := playToCompletion(program)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Part1: strconv.Itoa(blocks),
		Part2: strconv.FormatInt(score, 10),
	}, nil
}
