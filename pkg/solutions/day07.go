package solutions

import (
	"strconv"

	"github.com/zephyrix/advent2019/pkg/intcode"
	"github.com/zephyrix/advent2019/pkg/logger"
)

// runAmplifier feeds one signal to an amplifier and runs it until it emits
// the amplified signal. ok is false when the amplifier has halted instead.
func runAmplifier(amplifier *intcode.Machine, signal int64) (int64, bool, error) {
	amplifier.PushInput(signal)
	return amplifier.NextOutput()
}

// runCircuit wires five amplifiers in series, seeds each with its phase
// setting, and pumps the signal through until the chain settles. With
// loopback the last amplifier feeds the first until all of them halt.
func runCircuit(program intcode.Program, phases [5]int64, loopback bool) (int64, error) {
	var amplifiers [5]*intcode.Machine
	for i := range amplifiers {
		amplifiers[i] = intcode.New(program, intcode.PolicyBatch)
		amplifiers[i].PushInput(phases[i])
	}

	var signal int64
	done := false

	for !done {
		for i, amplifier := range amplifiers {
			output, ok, err := runAmplifier(amplifier, signal)
			if err != nil {
				return 0, err
			}
			if !ok {
				logger.Get().Debug("amplifier halted", "amplifier", i)
				done = true
				continue
			}
			signal = output
		}
		if !loopback {
			done = true
		}
	}

	return signal, nil
}

// permute calls fn with every permutation of values.
func permute(values []int64, fn func([]int64)) {
	var recurse func(k int)
	recurse = func(k int) {
		if k == len(values) {
			fn(values)
			return
		}
		for i := k; i < len(values); i++ {
			values[k], values[i] = values[i], values[k]
			recurse(k + 1)
			values[k], values[i] = values[i], values[k]
		}
	}
	recurse(0)
}

// bestThrusterSignal tries every permutation of the given phase settings and
// returns the highest signal the circuit produces.
func bestThrusterSignal(program intcode.Program, phases []int64, loopback bool) (int64, error) {
	var best int64
	var firstErr error

	permute(phases, func(perm []int64) {
		if firstErr != nil {
			return
		}
		var settings [5]int64
		copy(settings[:], perm)

		output, err := runCircuit(program, settings, loopback)
		if err != nil {
			firstErr = err
			return
		}
		if output > best {
			best = output
		}
	})

	return best, firstErr
}

func solveDay7(input string) (Result, error) {
	program, err := intcode.ParseProgram(input)
	if err != nil {
		return Result{}, err
	}

	part1, err := bestThrusterSignal(program, []int64{0, 1, 2, 3, 4}, false)
	if err != nil {
		return Result{}, err
	}

	part2, err := bestThrusterSignal(program, []int64{5, 6, 7, 8, 9}, true)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Part1: strconv.FormatInt(part1, 10),
		Part2: strconv.FormatInt(part2, 10),
	}, nil
}
