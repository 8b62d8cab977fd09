package cpu

import (
	"errors"

	"github.com/ezrec/mipslite/translate"
)

var f = translate.From

var (
	// Encode and decode errors
	ErrMalformedOperand = errors.New(f("malformed operand"))
	ErrMalformedWord    = errors.New(f("malformed word"))

	// Assembler errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))

	// Cpu errors
	ErrOpcodeInvalid = errors.New(f("opcode invalid"))
	ErrAddress       = errors.New(f("address invalid"))
	ErrHalted        = errors.New(f("cpu halted"))
	ErrProgramEmpty  = errors.New(f("program empty"))
	ErrProgramSize   = errors.New(f("program exceeds memory"))
)

// ErrUnknownMnemonic is returned when encoding a mnemonic that is not
// in the opcode table. Any ErrUnknownMnemonic matches another under
// errors.Is.
type ErrUnknownMnemonic string

func (err ErrUnknownMnemonic) Error() string {
	return f("unknown mnemonic '%v'", string(err))
}

func (err ErrUnknownMnemonic) Is(target error) (ok bool) {
	_, ok = target.(ErrUnknownMnemonic)
	return
}

// ErrOperand locates a malformed operand within its instruction.
type ErrOperand struct {
	Mnemonic string
	Operand  string
	Err      error
}

func (err *ErrOperand) Error() string {
	if len(err.Operand) == 0 {
		return f("%v: %v", err.Mnemonic, err.Err)
	}
	return f("%v: '%v' %v", err.Mnemonic, err.Operand, err.Err)
}

func (err *ErrOperand) Unwrap() error {
	return err.Err
}

// ErrOperandCount reports the wrong number of operands for a format.
type ErrOperandCount struct {
	Want int
	Got  int
}

func (err ErrOperandCount) Error() string {
	return f("expected %v operands, got %v", err.Want, err.Got)
}

func (err ErrOperandCount) Unwrap() error {
	return ErrMalformedOperand
}

// ErrParseNumber reports a token that is not an integer.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

func (err ErrParseNumber) Unwrap() error {
	return ErrMalformedOperand
}

// ErrRegister reports a register index outside R0..R31.
type ErrRegister string

func (err ErrRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

func (err ErrRegister) Unwrap() error {
	return ErrMalformedOperand
}

// ErrWord reports text that is not an 8 digit hexadecimal word.
type ErrWord string

func (err ErrWord) Error() string {
	return f("'%v' is not a hexadecimal word", string(err))
}

func (err ErrWord) Unwrap() error {
	return ErrMalformedWord
}

// ErrParseExpression reports a $(...) expression that did not
// evaluate to an integer.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

func (err ErrParseExpression) Unwrap() error {
	return ErrMalformedOperand
}

// ErrSyntax locates an error within assembly or object text.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrOpcode reports an instruction word the cpu cannot execute.
type ErrOpcode Code

func (err ErrOpcode) Error() string {
	return f("bad opcode 0x%08X %v", uint32(err), Code(err).Opcode().String())
}

func (err ErrOpcode) Is(target error) (ok bool) {
	if target == ErrOpcodeInvalid {
		return true
	}
	_, ok = target.(ErrOpcode)
	return
}

// ErrAccess reports a byte address outside memory, or a misaligned
// instruction fetch.
type ErrAccess int64

func (err ErrAccess) Error() string {
	return f("address 0x%X out of range", int64(err))
}

func (err ErrAccess) Unwrap() error {
	return ErrAddress
}
