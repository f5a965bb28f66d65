package solutions

import (
	"fmt"
	"strconv"
	"strings"
)

// toDigits splits a six digit password into its digits, most significant
// first.
func toDigits(x int64) [6]int8 {
	var digits [6]int8
	for i := 0; i < 6; i++ {
		digits[5-i] = int8(x % 10)
		x /= 10
	}
	return digits
}

// passwordRuns reports whether the digits never decrease, whether any digit
// repeats, and whether some digit repeats exactly once (a run of two).
func passwordRuns(digits [6]int8) (increasing, anyPair, lonePair bool) {
	increasing = true
	repetitions := 0

	for i := 1; i < 6; i++ {
		if digits[i-1] == digits[i] {
			repetitions++
			anyPair = true
		} else {
			if repetitions == 1 {
				lonePair = true
			}
			repetitions = 0
		}
		if digits[i-1] > digits[i] {
			increasing = false
		}
	}
	if repetitions == 1 {
		lonePair = true
	}

	return increasing, anyPair, lonePair
}

func solveDay4(input string) (Result, error) {
	lo, hi, ok := strings.Cut(strings.TrimSpace(input), "-")
	if !ok {
		return Result{}, fmt.Errorf("expected a lo-hi password range")
	}

	start, err := strconv.ParseInt(lo, 10, 64)
	if err != nil {
		return Result{}, fmt.Errorf("invalid range start %q: %w", lo, err)
	}
	end, err := strconv.ParseInt(hi, 10, 64)
	if err != nil {
		return Result{}, fmt.Errorf("invalid range end %q: %w", hi, err)
	}

	var part1, part2 int64
	for num := start; num <= end; num++ {
		increasing, anyPair, lonePair := passwordRuns(toDigits(num))
		if !increasing {
			continue
		}
		if anyPair {
			part1++
		}
		if lonePair {
			part2++
		}
	}

	return Result{
		Part1: strconv.FormatInt(part1, 10),
		Part2: strconv.FormatInt(part2, 10),
	}, nil
}
