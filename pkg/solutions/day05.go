package solutions

import (
	"fmt"
	"strconv"

	"github.com/zephyrix/advent2019/pkg/intcode"
)

// runDiagnostic runs the TEST program with one system ID as input. Every
// output except the last is a self check that must be zero; the last is the
// diagnostic code.
func runDiagnostic(program intcode.Program, systemID int64) (int64, error) {
	machine := intcode.New(program, intcode.PolicyBatch)
	machine.PushInput(systemID)

	if err := machine.Run(); err != nil {
		return 0, err
	}

	outputs := machine.DrainOutput()
	if len(outputs) == 0 {
		return 0, fmt.Errorf("diagnostic produced no output")
	}

	for i, check := range outputs[:len(outputs)-1] {
		if check != 0 {
			return 0, fmt.Errorf("diagnostic check #%d failed: %d", i, check)
		}
	}

	return outputs[len(outputs)-1], nil
}

func solveDay5(input string) (Result, error) {
	program, err := intcode.ParseProgram(input)
	if err != nil {
		return Result{}, err
	}

	part1, err := runDiagnostic(program, 1)
	if err != nil {
		return Result{}, err
	}

	part2, err := runDiagnostic(program, 5)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Part1: strconv.FormatInt(part1, 10),
		Part2: strconv.FormatInt(part2, 10),
	}, nil
}
