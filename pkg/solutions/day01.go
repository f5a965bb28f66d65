package solutions

import (
	"fmt"
	"strconv"
	"strings"
)

// fuelRequired is the launch fuel for a single module: mass / 3, rounded
// down, minus 2, never negative.
func fuelRequired(mass int64) int64 {
	fuel := mass/3 - 2
	if fuel < 0 {
		return 0
	}
	return fuel
}

// withExtraFuel adds the fuel needed to lift the fuel itself, recursively,
// until the remainder rounds to zero.
func withExtraFuel(fuel int64) int64 {
	if fuel == 0 {
		return 0
	}
	return fuel + withExtraFuel(fuelRequired(fuel))
}

func parseMasses(input string) ([]int64, error) {
	var masses []int64
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		mass, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid module mass %q: %w", line, err)
		}
		masses = append(masses, mass)
	}
	return masses, nil
}

func solveDay1(input string) (Result, error) {
	masses, err := parseMasses(input)
	if err != nil {
		return Result{}, err
	}

	var simple, total int64
	for _, mass := range masses {
		fuel := fuelRequired(mass)
		simple += fuel
		total += withExtraFuel(fuel)
	}

	return Result{
		Part1: strconv.FormatInt(simple, 10),
		Part2: strconv.FormatInt(total, 10),
	}, nil
}
