package solutions

import (
	"fmt"
	"strconv"

	"github.com/zephyrix/advent2019/pkg/intcode"
)

// runBoost runs the BOOST program in the given mode. In test mode the
// program reports malfunctioning opcodes before the keycode, so any extra
// output is a failure.
func runBoost(program intcode.Program, mode int64) (int64, error) {
	machine := intcode.New(program, intcode.PolicyBatch)
	machine.PushInput(mode)

	if err := machine.Run(); err != nil {
		return 0, err
	}

	outputs := machine.DrainOutput()
	if len(outputs) == 0 {
		return 0, fmt.Errorf("BOOST produced no output")
	}
	if len(outputs) > 1 {
		return 0, fmt.Errorf("BOOST checks failed: %v", outputs[:len(outputs)-1])
	}

	return outputs[0], nil
}

func solveDay9(input string) (Result, error) {
	program, err := intcode.ParseProgram(input)
	if err != nil {
		return Result{}, err
	}

	part1, err := runBoost(program, 1)
	if err != nil {
		return Result{}, err
	}

	part2, err := runBoost(program, 2)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Part1: strconv.FormatInt(part1, 10),
		Part2: strconv.FormatInt(part2, 10),
	}, nil
}
