package intcode

import (
	"strconv"
	"strings"
)

// Program is an Intcode memory image: a flat sequence of signed integers.
type Program []int64

// ParseProgram parses a comma-separated list of integers. Surrounding
// whitespace around the whole text and around individual values is ignored.
func ParseProgram(s string) (Program, error) {
	fields := strings.Split(strings.TrimSpace(s), ",")
	program := make(Program, 0, len(fields))

	for i, field := range fields {
		value, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
		if err != nil {
			return nil, newError(ErrorInvalidProgram, -1, "value %q at position %d is not an integer", field, i)
		}
		program = append(program, value)
	}

	return program, nil
}

// Copy returns an independent copy of the program, so one parsed image can
// seed many machines.
func (p Program) Copy() Program {
	c := make(Program, len(p))
	copy(c, p)
	return c
}
