package solutions

import (
	"fmt"
	"strconv"

	"github.com/zephyrix/advent2019/pkg/intcode"
	"github.com/zephyrix/advent2019/pkg/logger"
)

// runGravityAssist runs the program with the given noun and verb patched
// into addresses 1 and 2 and returns the value left at address 0.
func runGravityAssist(program intcode.Program, noun, verb int64) (int64, error) {
	machine := intcode.New(program, intcode.PolicyBatch)

	if err := machine.Set(1, noun); err != nil {
		return 0, err
	}
	if err := machine.Set(2, verb); err != nil {
		return 0, err
	}

	if err := machine.Run(); err != nil {
		return 0, err
	}

	return machine.Get(0)
}

func solveDay2(input string) (Result, error) {
	program, err := intcode.ParseProgram(input)
	if err != nil {
		return Result{}, err
	}

	part1, err := runGravityAssist(program, 12, 2)
	if err != nil {
		return Result{}, err
	}

	for noun := int64(0); noun < 100; noun++ {
		for verb := int64(0); verb < 100; verb++ {
			result, err := runGravityAssist(program, noun, verb)
			if err != nil {
				return Result{}, err
			}
			if result == 19690720 {
				logger.Get().Debug("found gravity assist inputs", "noun", noun, "verb", verb)
				return Result{
					Part1: strconv.FormatInt(part1, 10),
					Part2: strconv.FormatInt(100*noun+verb, 10),
				}, nil
			}
		}
	}

	return Result{}, fmt.Errorf("no noun and verb produce 19690720")
}
