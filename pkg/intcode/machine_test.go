package intcode

import (
	"errors"
	"reflect"
	"testing"
)

func mustParse(t *testing.T, s string) Program {
	t.Helper()
	p, err := ParseProgram(s)
	if err != nil {
		t.Fatalf("ParseProgram(%q) failed: %v", s, err)
	}
	return p
}

func runBatch(t *testing.T, program Program, inputs ...int64) *Machine {
	t.Helper()
	m := New(program, PolicyBatch)
	for _, v := range inputs {
		m.PushInput(v)
	}
	if err := m.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	return m
}

func TestRunArithmetic(t *testing.T) {
	tests := []struct {
		name    string
		program string
		want    []int64
	}{
		{"add positions", "1,0,0,0,99", []int64{2, 0, 0, 0, 99}},
		{"mul positions", "2,3,0,3,99", []int64{2, 3, 0, 6, 99}},
		{"mul into tail", "2,4,4,5,99,0", []int64{2, 4, 4, 5, 99, 9801}},
		{"self modifying", "1,1,1,4,99,5,6,0,99", []int64{30, 1, 1, 4, 2, 5, 6, 0, 99}},
		{"immediate mul", "1002,4,3,4,33", []int64{1002, 4, 3, 4, 99}},
		{"negative immediate", "1101,100,-1,4,0", []int64{1101, 100, -1, 4, 99}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := runBatch(t, mustParse(t, tt.program))
			if got := m.Memory(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("final memory = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestImmediateAddStoresSum(t *testing.T) {
	// add immediate 4 + immediate 3, store at address 5, halt
	m := runBatch(t, mustParse(t, "1101,4,3,5,99"))

	got, err := m.Get(5)
	if err != nil {
		t.Fatalf("Get(5) failed: %v", err)
	}
	if got != 7 {
		t.Errorf("memory[5] = %d, want 7", got)
	}
}

func TestComparisonPrograms(t *testing.T) {
	tests := []struct {
		name    string
		program string
		input   int64
		want    int64
	}{
		{"eq 8 position true", "3,9,8,9,10,9,4,9,99,-1,8", 8, 1},
		{"eq 8 position false", "3,9,8,9,10,9,4,9,99,-1,8", 7, 0},
		{"lt 8 position true", "3,9,7,9,10,9,4,9,99,-1,8", 5, 1},
		{"lt 8 position false", "3,9,7,9,10,9,4,9,99,-1,8", 9, 0},
		{"eq 8 immediate true", "3,3,1108,-1,8,3,4,3,99", 8, 1},
		{"eq 8 immediate false", "3,3,1108,-1,8,3,4,3,99", 1, 0},
		{"lt 8 immediate true", "3,3,1107,-1,8,3,4,3,99", -3, 1},
		{"lt 8 immediate false", "3,3,1107,-1,8,3,4,3,99", 8, 0},
		{"jump position nonzero", "3,12,6,12,15,1,13,14,13,4,13,99,-1,0,1,9", 4, 1},
		{"jump position zero", "3,12,6,12,15,1,13,14,13,4,13,99,-1,0,1,9", 0, 0},
		{"jump immediate nonzero", "3,3,1105,-1,9,1101,0,0,12,4,12,99,1", 77, 1},
		{"jump immediate zero", "3,3,1105,-1,9,1101,0,0,12,4,12,99,1", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := runBatch(t, mustParse(t, tt.program), tt.input)
			out := m.DrainOutput()
			if len(out) != 1 || out[0] != tt.want {
				t.Errorf("output = %v, want [%d]", out, tt.want)
			}
		})
	}
}

// The three-way comparison program outputs 999, 1000 or 1001 depending on
// how the input compares to 8.
func TestThreeWayComparison(t *testing.T) {
	const program = "3,21,1008,21,8,20,1005,20,22,107,8,21,20,1006,20,31," +
		"1106,0,36,98,0,0,1002,21,125,20,4,20,1105,1,46,104,999," +
		"1105,1,46,1101,1000,1,20,4,20,1105,1,46,98,99"

	tests := []struct {
		input int64
		want  int64
	}{
		{7, 999},
		{8, 1000},
		{9, 1001},
	}

	for _, tt := range tests {
		m := runBatch(t, mustParse(t, program), tt.input)
		out := m.DrainOutput()
		if len(out) != 1 || out[0] != tt.want {
			t.Errorf("input %d: output = %v, want [%d]", tt.input, out, tt.want)
		}
	}
}

func TestQuineReproducesItself(t *testing.T) {
	const quine = "109,1,204,-1,1001,100,1,100,1008,100,16,101,1006,101,0,99"
	program := mustParse(t, quine)

	m := runBatch(t, program)
	out := m.DrainOutput()

	if !reflect.DeepEqual(out, []int64(program)) {
		t.Errorf("output = %v, want the program itself %v", out, program)
	}
}

func TestLargeNumbers(t *testing.T) {
	t.Run("16 digit product", func(t *testing.T) {
		m := runBatch(t, mustParse(t, "1102,34915192,34915192,7,4,7,99,0"))
		out := m.DrainOutput()
		if len(out) != 1 || out[0] != 34915192*34915192 {
			t.Errorf("output = %v, want [%d]", out, int64(34915192)*34915192)
		}
	})

	t.Run("large immediate", func(t *testing.T) {
		m := runBatch(t, mustParse(t, "104,1125899906842624,99"))
		out := m.DrainOutput()
		if len(out) != 1 || out[0] != 1125899906842624 {
			t.Errorf("output = %v, want [1125899906842624]", out)
		}
	})
}

func TestRelativeModeRoundTrip(t *testing.T) {
	// Set the relative base to 100, write an immediate value through a
	// relative-mode target, read it back through the same relative operand
	// and output it.
	m := runBatch(t, mustParse(t, "109,100,21101,42,0,5,204,5,99"))
	out := m.DrainOutput()
	if len(out) != 1 || out[0] != 42 {
		t.Errorf("output = %v, want [42]", out)
	}

	got, err := m.Get(105)
	if err != nil {
		t.Fatalf("Get(105) failed: %v", err)
	}
	if got != 42 {
		t.Errorf("memory[105] = %d, want 42", got)
	}
}

func TestMemoryGrowsBeyondProgram(t *testing.T) {
	// Reads address 1000, far past the end of the image; missing cells
	// default to zero.
	m := runBatch(t, mustParse(t, "4,1000,99"))
	out := m.DrainOutput()
	if len(out) != 1 || out[0] != 0 {
		t.Errorf("output = %v, want [0]", out)
	}
}

func TestInputOutputOrdering(t *testing.T) {
	// Echo three inputs in order.
	m := runBatch(t, mustParse(t, "3,11,4,11,3,11,4,11,3,11,4,11,99"), 10, 20, 30)
	out := m.DrainOutput()
	if !reflect.DeepEqual(out, []int64{10, 20, 30}) {
		t.Errorf("output = %v, want [10 20 30]", out)
	}
}

func TestBatchStarvationIsFatal(t *testing.T) {
	m := New(mustParse(t, "3,0,99"), PolicyBatch)
	err := m.Run()
	if !HasType(err, ErrorInputExhausted) {
		t.Fatalf("Run() = %v, want an %s error", err, ErrorInputExhausted)
	}
}

func TestInteractiveStarvationParksAndResumes(t *testing.T) {
	// Needs two inputs before producing any output.
	m := New(mustParse(t, "3,20,3,21,1,20,21,22,4,22,99"), PolicyInteractive)
	m.PushInput(4)

	if err := m.Run(); err != nil {
		t.Fatalf("first Run() failed: %v", err)
	}
	if m.State() != StateAwaitingInput {
		t.Fatalf("state = %v, want %v", m.State(), StateAwaitingInput)
	}
	if out := m.DrainOutput(); len(out) != 0 {
		t.Fatalf("output before second input = %v, want empty", out)
	}

	m.PushInput(5)
	if err := m.Run(); err != nil {
		t.Fatalf("second Run() failed: %v", err)
	}
	if !m.Halted() {
		t.Fatalf("state = %v, want %v", m.State(), StateHalted)
	}
	out := m.DrainOutput()
	if len(out) != 1 || out[0] != 9 {
		t.Errorf("output = %v, want [9]", out)
	}
}

func TestConstantInput(t *testing.T) {
	// Reads twice; the queue only holds one value, the constant covers the
	// second read.
	m := New(mustParse(t, "3,20,3,21,1,20,21,22,4,22,99"), PolicyInteractive)
	m.PushInput(3)
	m.SetConstantInput(7)

	if err := m.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if !m.Halted() {
		t.Fatalf("state = %v, want %v", m.State(), StateHalted)
	}
	out := m.DrainOutput()
	if len(out) != 1 || out[0] != 10 {
		t.Errorf("output = %v, want [10]", out)
	}
}

func TestUnknownOpcodeReportsAddress(t *testing.T) {
	m := New(mustParse(t, "1,0,0,0,77"), PolicyBatch)
	err := m.Run()
	if !HasType(err, ErrorUnknownOpcode) {
		t.Fatalf("Run() = %v, want an %s error", err, ErrorUnknownOpcode)
	}
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("error %v is not an *Error", err)
	}
	if e.Addr != 4 {
		t.Errorf("error address = %d, want 4", e.Addr)
	}
}

func TestImmediateWriteTargetIsFatal(t *testing.T) {
	// add with an immediate destination
	m := New(mustParse(t, "10001,0,0,0,99"), PolicyBatch)
	err := m.Run()
	if !HasType(err, ErrorImmediateWrite) {
		t.Fatalf("Run() = %v, want an %s error", err, ErrorImmediateWrite)
	}
}

func TestNegativeResolvedAddressIsFatal(t *testing.T) {
	// relative read below address zero
	m := New(mustParse(t, "109,-5,204,0,99"), PolicyBatch)
	err := m.Run()
	if !HasType(err, ErrorNegativeAddr) {
		t.Fatalf("Run() = %v, want a %s error", err, ErrorNegativeAddr)
	}
}

func TestStepAfterHaltIsFatal(t *testing.T) {
	m := New(mustParse(t, "99"), PolicyBatch)
	if err := m.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if err := m.Step(); !HasType(err, ErrorHalted) {
		t.Fatalf("Step() after halt = %v, want a %s error", err, ErrorHalted)
	}
}

func TestStepLimit(t *testing.T) {
	// Infinite loop: jump back to the start forever.
	m := New(mustParse(t, "1105,1,0"), PolicyBatch)
	m.SetStepLimit(1000)
	err := m.Run()
	if !HasType(err, ErrorStepLimit) {
		t.Fatalf("Run() = %v, want a %s error", err, ErrorStepLimit)
	}
}

func TestGetSetPatchMemory(t *testing.T) {
	m := New(mustParse(t, "1,0,0,0,99"), PolicyBatch)
	if err := m.Set(1, 4); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := m.Set(2, 4); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := m.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	got, err := m.Get(0)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != 198 {
		t.Errorf("memory[0] = %d, want 198", got)
	}

	if _, err := m.Get(-1); !HasType(err, ErrorNegativeAddr) {
		t.Errorf("Get(-1) = %v, want a %s error", err, ErrorNegativeAddr)
	}
	if err := m.Set(-1, 0); !HasType(err, ErrorNegativeAddr) {
		t.Errorf("Set(-1) = %v, want a %s error", err, ErrorNegativeAddr)
	}
}

func TestNextOutputStreams(t *testing.T) {
	m := New(mustParse(t, "104,1,104,2,99"), PolicyInteractive)

	v, ok, err := m.NextOutput()
	if err != nil || !ok || v != 1 {
		t.Fatalf("first NextOutput = (%d, %v, %v), want (1, true, nil)", v, ok, err)
	}
	v, ok, err = m.NextOutput()
	if err != nil || !ok || v != 2 {
		t.Fatalf("second NextOutput = (%d, %v, %v), want (2, true, nil)", v, ok, err)
	}
	_, ok, err = m.NextOutput()
	if err != nil || ok {
		t.Fatalf("third NextOutput ok = %v (err %v), want false after halt", ok, err)
	}
	if !m.Halted() {
		t.Errorf("state = %v, want %v", m.State(), StateHalted)
	}
}
