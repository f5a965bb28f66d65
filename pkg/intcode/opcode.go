package intcode

// Opcode is the low two decimal digits of an instruction word.
type Opcode int64

const (
	OpAdd          Opcode = 1
	OpMul          Opcode = 2
	OpInput        Opcode = 3
	OpOutput       Opcode = 4
	OpJumpIfTrue   Opcode = 5
	OpJumpIfFalse  Opcode = 6
	OpLessThan     Opcode = 7
	OpEquals       Opcode = 8
	OpAdjustRelBas Opcode = 9
	OpHalt         Opcode = 99
)

// String returns the mnemonic for the opcode.
func (op Opcode) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpMul:
		return "mul"
	case OpInput:
		return "in"
	case OpOutput:
		return "out"
	case OpJumpIfTrue:
		return "jnz"
	case OpJumpIfFalse:
		return "jz"
	case OpLessThan:
		return "lt"
	case OpEquals:
		return "eq"
	case OpAdjustRelBas:
		return "arb"
	case OpHalt:
		return "halt"
	default:
		return "unknown"
	}
}

// operands returns the number of operand words following the opcode.
func (op Opcode) operands() int {
	switch op {
	case OpAdd, OpMul, OpLessThan, OpEquals:
		return 3
	case OpJumpIfTrue, OpJumpIfFalse:
		return 2
	case OpInput, OpOutput, OpAdjustRelBas:
		return 1
	default:
		return 0
	}
}

// Mode is a parameter mode digit.
type Mode int64

const (
	ModePosition  Mode = 0
	ModeImmediate Mode = 1
	ModeRelative  Mode = 2
)

// instruction is one decoded instruction word: the opcode plus one mode per
// operand. Missing mode digits default to position mode.
type instruction struct {
	op    Opcode
	modes [3]Mode
}

// decode splits an instruction word into opcode and parameter modes. addr is
// the word's address and is only used for error reporting.
func decode(word, addr int64) (instruction, error) {
	var in instruction

	if word < 0 {
		return in, newError(ErrorUnknownOpcode, addr, "invalid opcode %d", word)
	}

	in.op = Opcode(word % 100)
	switch in.op {
	case OpAdd, OpMul, OpInput, OpOutput, OpJumpIfTrue, OpJumpIfFalse,
		OpLessThan, OpEquals, OpAdjustRelBas, OpHalt:
	default:
		return in, newError(ErrorUnknownOpcode, addr, "invalid opcode %d", word)
	}

	rest := word / 100
	for i := 0; i < in.op.operands(); i++ {
		mode := Mode(rest % 10)
		if mode > ModeRelative {
			return in, newError(ErrorUnknownMode, addr, "invalid mode %d for operand %d of %s", mode, i, in.op)
		}
		in.modes[i] = mode
		rest /= 10
	}
	if rest != 0 {
		return in, newError(ErrorUnknownMode, addr, "instruction %d has more mode digits than %s has operands", word, in.op)
	}

	return in, nil
}
