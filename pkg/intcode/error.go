package intcode

import (
	"errors"
	"fmt"
)

// ErrorType classifies machine errors.
type ErrorType string

const (
	// Malformed-program errors. All of these are fatal: the machine stops
	// and reports the failing address.
	ErrorUnknownOpcode  ErrorType = "UNKNOWN_OPCODE"
	ErrorUnknownMode    ErrorType = "UNKNOWN_PARAMETER_MODE"
	ErrorNegativeAddr   ErrorType = "NEGATIVE_ADDRESS"
	ErrorImmediateWrite ErrorType = "IMMEDIATE_WRITE_TARGET"

	// Caller contract errors.
	ErrorInputExhausted ErrorType = "INPUT_EXHAUSTED"
	ErrorHalted         ErrorType = "MACHINE_HALTED"
	ErrorStepLimit      ErrorType = "STEP_LIMIT_EXCEEDED"
	ErrorInvalidProgram ErrorType = "INVALID_PROGRAM"
)

// Error is a machine error carrying enough context to diagnose the failing
// instruction: the error class, a message and the instruction address
// (-1 when no address applies).
type Error struct {
	Type    ErrorType
	Message string
	Addr    int64
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Addr >= 0 {
		return fmt.Sprintf("[%s] %s at address %d", e.Type, e.Message, e.Addr)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// HasType reports whether err is (or wraps) a machine error of the given type.
func HasType(err error, t ErrorType) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == t
}

func newError(t ErrorType, addr int64, format string, args ...any) *Error {
	return &Error{
		Type:    t,
		Message: fmt.Sprintf(format, args...),
		Addr:    addr,
	}
}

// NewHaltedError reports an operation attempted on a machine that has
// already executed its halt instruction.
func NewHaltedError() *Error {
	return &Error{Type: ErrorHalted, Message: "machine is halted", Addr: -1}
}
