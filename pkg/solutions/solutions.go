// Package solutions holds one solver per puzzle day. Each solver takes the
// raw input text and returns the answers for both parts.
package solutions

import (
	"fmt"
	"sort"
)

// Result holds the answers for one day. Part2 is empty for days that only
// have one part.
type Result struct {
	Part1 string
	Part2 string
}

// Solver computes both answers for one day from the raw input text.
type Solver func(input string) (Result, error)

var solvers = map[int]Solver{
	1:  solveDay1,
	2:  solveDay2,
	3:  solveDay3,
	4:  solveDay4,
	5:  solveDay5,
	6:  solveDay6,
	7:  solveDay7,
	8:  solveDay8,
	9:  solveDay9,
	10: solveDay10,
	11: solveDay11,
	12: solveDay12,
	13: solveDay13,
}

// Days returns every solved day in ascending order.
func Days() []int {
	days := make([]int, 0, len(solvers))
	for day := range solvers {
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}

// Run executes the solver for the given day.
func Run(day int, input string) (Result, error) {
	solver, ok := solvers[day]
	if !ok {
		return Result{}, fmt.Errorf("day %d is not solved", day)
	}
	result, err := solver(input)
	if err != nil {
		return Result{}, fmt.Errorf("day %d: %w", day, err)
	}
	return result, nil
}
