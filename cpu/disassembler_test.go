package cpu

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisassemble(t *testing.T) {
	assert := assert.New(t)

	input := `# header

00620800
  # indented note
0x04A4FFF6
FC000000
44000000
`
	expect := `# header

ADD R1, R2, R3
  # indented note
ADDI R4, R5, -10
UNKNOWN 0xFC000000
HALT
`

	var out strings.Builder
	dis := &Disassembler{}
	err := dis.Disassemble(strings.NewReader(input), &out)
	assert.NoError(err)
	assert.Equal(expect, out.String())
}

func TestDisassembleErrors(t *testing.T) {
	assert := assert.New(t)

	input := "00620800\nZZZ\n44000000\n"

	var out strings.Builder
	dis := &Disassembler{}
	err := dis.Disassemble(strings.NewReader(input), &out)
	assert.ErrorIs(err, ErrMalformedWord)
	var serr *ErrSyntax
	if assert.ErrorAs(err, &serr) {
		assert.Equal(2, serr.LineNo)
		assert.Equal("ZZZ", serr.Line)
	}
	assert.Equal("ADD R1, R2, R3\n", out.String())

	out.Reset()
	dis.KeepGoing = true
	err = dis.Disassemble(strings.NewReader(input), &out)
	assert.ErrorIs(err, ErrMalformedWord)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if assert.Len(lines, 3) {
		assert.Equal("ADD R1, R2, R3", lines[0])
		assert.True(strings.HasPrefix(lines[1], COMMENT+" "))
		assert.Equal("HALT", lines[2])
	}
}

func TestDecodeAll(t *testing.T) {
	assert := assert.New(t)

	words := []string{
		"00620800",
		"",
		"04A4FFF6",
		"# note",
		"40E00000",
		"44000000",
	}
	expect := []string{
		"ADD R1, R2, R3",
		"",
		"ADDI R4, R5, -10",
		"# note",
		"JR R7",
		"HALT",
	}

	for _, workers := range []int{0, 1, 3} {
		dis := &Disassembler{Workers: workers}
		lines, err := dis.DecodeAll(context.Background(), words)
		assert.NoError(err)
		assert.Equal(expect, lines)
	}

	dis := &Disassembler{Workers: 2}
	lines, err := dis.DecodeAll(context.Background(), []string{"00620800", "nope"})
	assert.ErrorIs(err, ErrMalformedWord)
	assert.Nil(lines)
}

func TestDecodeAllKeepGoing(t *testing.T) {
	assert := assert.New(t)

	input := "00620800\nZZZ\n44000000\n"

	var serial strings.Builder
	dis := &Disassembler{KeepGoing: true, Workers: 4}
	serr := dis.Disassemble(strings.NewReader(input), &serial)
	assert.ErrorIs(serr, ErrMalformedWord)

	lines, err := dis.DecodeAll(context.Background(), []string{"00620800", "ZZZ", "44000000"})
	assert.ErrorIs(err, ErrMalformedWord)
	assert.Equal(serial.String(), strings.Join(lines, "\n")+"\n")

	var syntax *ErrSyntax
	if assert.ErrorAs(err, &syntax) {
		assert.Equal(2, syntax.LineNo)
	}
	if assert.Len(lines, 3) {
		assert.Equal("ADD R1, R2, R3", lines[0])
		assert.True(strings.HasPrefix(lines[1], COMMENT+" "))
		assert.Equal("HALT", lines[2])
	}
}
