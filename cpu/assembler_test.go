// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssemblerParse(t *testing.T) {
	assert := assert.New(t)

	source := `# sum of 1..5
ADDI R1, R0, 5
ADDI R2, R0, 0

ADD R2, R2, R1     # loop
SUBI R1, R1, 1
BZ R1, 1
BEQ R0, R0, -4
HALT
`

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(source))
	assert.NoError(err)
	assert.NotNil(prog)

	assert.Equal([]uint32{
		0x04010005,
		0x04020000,
		0x00221000,
		0x0C210001,
		0x38200001,
		0x3C00FFFC,
		0x44000000,
	}, prog.Binary())

	assert.Equal(2, prog.Lines[0].LineNo)
	assert.Equal(5, prog.Lines[2].LineNo)
	assert.Equal("ADD R2, R2, R1", prog.Lines[2].Text)
	assert.Equal(9, prog.Lines[6].LineNo)
}

func TestAssemblerEquate(t *testing.T) {
	assert := assert.New(t)

	source := `.equ BASE 100
.equ LIMIT 0x10
ADDI R1, R0, BASE
ADDI R2, R0, $(BASE * 2 + 1)
ADDI R3, R0, $(LINENO)
ANDI R4, R4, LIMIT
LDW R5, R0, $(MEMORY_SIZE - WORD_SIZE)
ADDI R6, R0, SCALE
`

	asm := &Assembler{}
	asm.Predefine("SCALE", "-3")
	prog, err := asm.Parse(strings.NewReader(source))
	assert.NoError(err)

	assert.Equal([]uint32{
		0x04010064,
		0x040200C9,
		0x04030005,
		0x24840010,
		0x30050FFC,
		0x0406FFFD,
	}, prog.Binary())

	assert.Equal("100", asm.Equate["BASE"])
	assert.Equal("0x10", asm.Equate["LIMIT"])
}

func TestAssemblerErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		source string
		lineno int
		err    error
	}){
		{"HALT\nFOO R1, R2, R3\n", 2, ErrUnknownMnemonic("")},
		{"ADDI R1, R0\n", 1, ErrMalformedOperand},
		{"\n\nADD R1, R2, R99\n", 3, ErrMalformedOperand},
		{".equ A 1\n.equ A 2\n", 2, ErrEquateDuplicate},
		{".equ A R1\n", 1, ErrEquateSyntax},
		{".equ A\n", 1, ErrEquateSyntax},
		{".equ R1 7\nADD R1, R2, R3\n", 1, ErrEquateSyntax},
		{".equ r31 0\n", 1, ErrEquateSyntax},
		{".equ addi 1\n", 1, ErrEquateSyntax},
		{".equ X 9\nADD X, R2, R3\n", 2, ErrMalformedOperand},
		{".equ X 9\nJR X\n", 2, ErrMalformedOperand},
		{"ADDI R1, R0, $(1 +)\n", 1, ErrMalformedOperand},
		{"ADDI R1, R0, $(\"text\")\n", 1, ErrMalformedOperand},
	}

	for _, entry := range table {
		asm := &Assembler{}
		prog, err := asm.Parse(strings.NewReader(entry.source))
		assert.Nil(prog, entry.source)
		assert.ErrorIs(err, entry.err, entry.source)

		var serr *ErrSyntax
		if assert.ErrorAs(err, &serr, entry.source) {
			assert.Equal(entry.lineno, serr.LineNo, entry.source)
		}
	}
}

func TestAssemblerKeepGoing(t *testing.T) {
	assert := assert.New(t)

	source := `ADD R1, R2, R3
FOO
HALT
ADDI R1
`

	asm := &Assembler{KeepGoing: true, Logger: discardLogger()}
	prog, err := asm.Parse(strings.NewReader(source))
	assert.Error(err)
	assert.NotNil(prog)

	assert.Equal([]uint32{0x00620800, 0x44000000}, prog.Binary())
	assert.Equal(3, prog.Lines[1].LineNo)

	assert.ErrorIs(err, ErrUnknownMnemonic(""))
	assert.ErrorIs(err, ErrMalformedOperand)

	joined, ok := err.(interface{ Unwrap() []error })
	if assert.True(ok) {
		errs := joined.Unwrap()
		assert.Len(errs, 2)
		var serr *ErrSyntax
		assert.True(errors.As(errs[1], &serr))
		assert.Equal(4, serr.LineNo)
		assert.Equal("ADDI R1", serr.Line)
	}
}

func TestAssemblerEquateImmediateOnly(t *testing.T) {
	assert := assert.New(t)

	// Equates reach immediate operands only.
	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(".equ X 9\nBEQ R1, R2, X\nADDI R3, R0, X\n"))
	assert.NoError(err)
	assert.Equal([]uint32{0x3C220009, 0x04030009}, prog.Binary())

	for _, name := range []string{"R5", "r0", "HALT", "bz"} {
		asm := &Assembler{}
		asm.Predefine(name, "1")
		prog, err := asm.Parse(strings.NewReader("HALT\n"))
		assert.Nil(prog, name)
		assert.ErrorIs(err, ErrEquateSyntax, name)
	}
}

func TestAssemblerReuse(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	_, err := asm.Parse(strings.NewReader(".equ A 1\nADDI R1, R0, A\n"))
	assert.NoError(err)

	// Equates do not leak between parses.
	prog, err := asm.Parse(strings.NewReader(".equ A 2\nADDI R1, R0, A\n"))
	assert.NoError(err)
	assert.Equal([]uint32{0x04010002}, prog.Binary())
}
