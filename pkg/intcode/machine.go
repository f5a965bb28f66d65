// Package intcode implements the Intcode virtual machine shared by several
// of the 2019 puzzles: a growable integer memory, an instruction pointer, a
// relative base and two integer queues for input and output.
package intcode

// State is the machine execution state.
type State int

const (
	StateRunning State = iota
	StateAwaitingInput
	StateHalted
)

// String returns a readable name for the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateAwaitingInput:
		return "awaiting-input"
	case StateHalted:
		return "halted"
	default:
		return "invalid"
	}
}

// Policy selects what a starved input instruction does.
type Policy int

const (
	// PolicyBatch treats an empty input queue as fatal. Use it when the
	// caller pre-supplies every input the program will ask for, so running
	// dry means a bug in the calling code.
	PolicyBatch Policy = iota

	// PolicyInteractive parks the machine in StateAwaitingInput instead.
	// The caller pushes more input and resumes; nothing is lost because the
	// input instruction is not consumed while starved.
	PolicyInteractive
)

// Machine is a single Intcode interpreter instance. It exclusively owns its
// memory and is not safe for concurrent use; when several machines model
// interacting agents the caller interleaves their Step/Run calls.
type Machine struct {
	mem     []int64
	pc      int64
	relBase int64

	input      []int64
	constInput *int64
	output     []int64

	state  State
	policy Policy

	steps     int64
	stepLimit int64
}

// New creates a machine over an independent copy of the program image. The
// instruction pointer and relative base start at zero.
func New(program Program, policy Policy) *Machine {
	return &Machine{
		mem:    program.Copy(),
		state:  StateRunning,
		policy: policy,
	}
}

// State returns the current execution state.
func (m *Machine) State() State {
	return m.state
}

// Halted reports whether the halt instruction has executed.
func (m *Machine) Halted() bool {
	return m.state == StateHalted
}

// PushInput appends values to the input queue.
func (m *Machine) PushInput(values ...int64) {
	m.input = append(m.input, values...)
}

// SetConstantInput sets a fallback value that input instructions consume
// whenever the queue is empty. The arcade cabinet uses this for the joystick:
// the machine reads the current position as often as it likes without the
// caller queueing a value per read.
func (m *Machine) SetConstantInput(v int64) {
	m.constInput = &v
}

// ClearConstantInput removes the fallback input value.
func (m *Machine) ClearConstantInput() {
	m.constInput = nil
}

// PopOutput removes and returns the oldest output value.
func (m *Machine) PopOutput() (int64, bool) {
	if len(m.output) == 0 {
		return 0, false
	}
	v := m.output[0]
	m.output = m.output[1:]
	return v, true
}

// DrainOutput removes and returns all pending output values in production
// order.
func (m *Machine) DrainOutput() []int64 {
	out := m.output
	m.output = nil
	return out
}

// Outputs returns a copy of the pending output values without consuming them.
func (m *Machine) Outputs() []int64 {
	out := make([]int64, len(m.output))
	copy(out, m.output)
	return out
}

// SetStepLimit makes execution fail after n steps. Zero means unlimited.
// Useful as a safety bound for programs that are not guaranteed to halt.
func (m *Machine) SetStepLimit(n int64) {
	m.stepLimit = n
}

// Get reads a memory cell, zero-extending memory like execution does.
func (m *Machine) Get(addr int64) (int64, error) {
	if addr < 0 {
		return 0, newError(ErrorNegativeAddr, -1, "read from negative address %d", addr)
	}
	m.grow(addr)
	return m.mem[addr], nil
}

// Set writes a memory cell, zero-extending memory like execution does.
func (m *Machine) Set(addr, v int64) error {
	if addr < 0 {
		return newError(ErrorNegativeAddr, -1, "write to negative address %d", addr)
	}
	m.grow(addr)
	m.mem[addr] = v
	return nil
}

// Memory returns a copy of the current memory image. Some puzzles inspect
// memory after the program halts instead of reading output.
func (m *Machine) Memory() []int64 {
	mem := make([]int64, len(m.mem))
	copy(mem, m.mem)
	return mem
}

// Step decodes and executes the instruction at the instruction pointer.
//
// A starved input instruction either fails (PolicyBatch) or parks the
// machine in StateAwaitingInput without consuming the instruction
// (PolicyInteractive); the next Step after input arrives resumes cleanly.
// Stepping a halted machine is an error.
func (m *Machine) Step() error {
	if m.state == StateHalted {
		return NewHaltedError()
	}
	if m.stepLimit > 0 && m.steps >= m.stepLimit {
		return newError(ErrorStepLimit, m.pc, "exceeded step limit of %d", m.stepLimit)
	}
	m.steps++

	word, err := m.load(m.pc)
	if err != nil {
		return err
	}
	in, err := decode(word, m.pc)
	if err != nil {
		return err
	}

	switch in.op {
	case OpAdd:
		return m.binOp(in, func(a, b int64) int64 { return a + b })

	case OpMul:
		return m.binOp(in, func(a, b int64) int64 { return a * b })

	case OpLessThan:
		return m.binOp(in, func(a, b int64) int64 {
			if a < b {
				return 1
			}
			return 0
		})

	case OpEquals:
		return m.binOp(in, func(a, b int64) int64 {
			if a == b {
				return 1
			}
			return 0
		})

	case OpInput:
		v, ok := m.nextInput()
		if !ok {
			if m.policy == PolicyBatch {
				return newError(ErrorInputExhausted, m.pc, "input requested but the queue is empty")
			}
			m.state = StateAwaitingInput
			return nil
		}
		m.state = StateRunning
		dest, err := m.writeAddr(in, 0)
		if err != nil {
			return err
		}
		if err := m.store(dest, v); err != nil {
			return err
		}
		m.pc += 2
		return nil

	case OpOutput:
		v, err := m.readOperand(in, 0)
		if err != nil {
			return err
		}
		m.output = append(m.output, v)
		m.pc += 2
		return nil

	case OpJumpIfTrue:
		return m.jump(in, func(cond int64) bool { return cond != 0 })

	case OpJumpIfFalse:
		return m.jump(in, func(cond int64) bool { return cond == 0 })

	case OpAdjustRelBas:
		v, err := m.readOperand(in, 0)
		if err != nil {
			return err
		}
		m.relBase += v
		m.pc += 2
		return nil

	case OpHalt:
		m.state = StateHalted
		return nil

	default:
		// decode already rejects unknown opcodes
		return newError(ErrorUnknownOpcode, m.pc, "invalid opcode %d", word)
	}
}

// Run steps until the machine halts or fails. Under PolicyInteractive it
// also returns (without error) when the machine parks in StateAwaitingInput;
// the caller pushes input and calls Run again.
func (m *Machine) Run() error {
	for m.state != StateHalted {
		if err := m.Step(); err != nil {
			return err
		}
		if m.state == StateAwaitingInput {
			return nil
		}
	}
	return nil
}

// NextOutput runs until the machine produces one output value and returns
// it. ok is false when the machine halted (or parked awaiting input) before
// producing anything; the caller distinguishes the two via State.
func (m *Machine) NextOutput() (v int64, ok bool, err error) {
	for {
		if v, ok := m.PopOutput(); ok {
			return v, true, nil
		}
		if m.state == StateHalted {
			return 0, false, nil
		}
		if err := m.Step(); err != nil {
			return 0, false, err
		}
		if m.state == StateAwaitingInput {
			return 0, false, nil
		}
	}
}

func (m *Machine) nextInput() (int64, bool) {
	if len(m.input) > 0 {
		v := m.input[0]
		m.input = m.input[1:]
		return v, true
	}
	if m.constInput != nil {
		return *m.constInput, true
	}
	return 0, false
}

func (m *Machine) binOp(in instruction, f func(a, b int64) int64) error {
	a, err := m.readOperand(in, 0)
	if err != nil {
		return err
	}
	b, err := m.readOperand(in, 1)
	if err != nil {
		return err
	}
	dest, err := m.writeAddr(in, 2)
	if err != nil {
		return err
	}
	if err := m.store(dest, f(a, b)); err != nil {
		return err
	}
	m.pc += 4
	return nil
}

func (m *Machine) jump(in instruction, taken func(cond int64) bool) error {
	cond, err := m.readOperand(in, 0)
	if err != nil {
		return err
	}
	target, err := m.readOperand(in, 1)
	if err != nil {
		return err
	}
	if taken(cond) {
		if target < 0 {
			return newError(ErrorNegativeAddr, m.pc, "jump to negative address %d", target)
		}
		m.pc = target
	} else {
		m.pc += 3
	}
	return nil
}

// readOperand resolves operand i of the current instruction to a value.
func (m *Machine) readOperand(in instruction, i int) (int64, error) {
	raw, err := m.load(m.pc + 1 + int64(i))
	if err != nil {
		return 0, err
	}
	switch in.modes[i] {
	case ModeImmediate:
		return raw, nil
	case ModeRelative:
		return m.load(m.relBase + raw)
	default:
		return m.load(raw)
	}
}

// writeAddr resolves operand i of the current instruction to a destination
// address. Immediate mode is a fatal configuration error for write targets.
func (m *Machine) writeAddr(in instruction, i int) (int64, error) {
	raw, err := m.load(m.pc + 1 + int64(i))
	if err != nil {
		return 0, err
	}
	switch in.modes[i] {
	case ModeImmediate:
		return 0, newError(ErrorImmediateWrite, m.pc, "%s uses immediate mode for its write target", in.op)
	case ModeRelative:
		return m.relBase + raw, nil
	default:
		return raw, nil
	}
}

func (m *Machine) load(addr int64) (int64, error) {
	if addr < 0 {
		return 0, newError(ErrorNegativeAddr, m.pc, "read from negative address %d", addr)
	}
	m.grow(addr)
	return m.mem[addr], nil
}

func (m *Machine) store(addr, v int64) error {
	if addr < 0 {
		return newError(ErrorNegativeAddr, m.pc, "write to negative address %d", addr)
	}
	m.grow(addr)
	m.mem[addr] = v
	return nil
}

// grow zero-extends memory so that addr is a valid index. Addresses used in
// practice are small and contiguous, so a flat slice beats a sparse map.
func (m *Machine) grow(addr int64) {
	if addr < int64(len(m.mem)) {
		return
	}
	grown := make([]int64, addr+1)
	copy(grown, m.mem)
	m.mem = grown
}
