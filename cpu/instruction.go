package cpu

import (
	"fmt"
	"strings"
)

// REGISTER_COUNT is the number of general purpose registers, R0..R31.
const REGISTER_COUNT = 32

// Instruction is a decoded instruction word.
type Instruction struct {
	Opcode Opcode
	Rs     uint8
	Rt     uint8
	Rd     uint8
	Imm    int16 // Sign-extended immediate.
}

// Format returns the operand shape of the instruction.
func (inst Instruction) Format() Format {
	return inst.Opcode.Format()
}

// Field returns the value of an operand field.
func (inst Instruction) Field(field Field) (value int) {
	switch field {
	case FIELD_RS:
		value = int(inst.Rs)
	case FIELD_RT:
		value = int(inst.Rt)
	case FIELD_RD:
		value = int(inst.Rd)
	case FIELD_IMM:
		value = int(inst.Imm)
	}
	return
}

// setField stores an operand value into its field.
func (inst *Instruction) setField(field Field, value int) {
	switch field {
	case FIELD_RS:
		inst.Rs = uint8(value)
	case FIELD_RT:
		inst.Rt = uint8(value)
	case FIELD_RD:
		inst.Rd = uint8(value)
	case FIELD_IMM:
		inst.Imm = int16(uint16(value))
	}
}

// Code packs the instruction into a word, populating only the fields
// its format uses. An unknown opcode keeps rs, rt and the low 16 bits,
// which reproduces the word it was decoded from.
func (inst Instruction) Code() (code Code) {
	switch inst.Format() {
	case FORMAT_R:
		code = MakeCodeR(inst.Opcode, inst.Rd, inst.Rt, inst.Rs)
	case FORMAT_I:
		code = MakeCodeI(inst.Opcode, inst.Rt, inst.Rs, int(inst.Imm))
	case FORMAT_BZ:
		code = MakeCodeBZ(inst.Rs, int(inst.Imm))
	case FORMAT_BEQ:
		code = MakeCodeBEQ(inst.Rs, inst.Rt, int(inst.Imm))
	case FORMAT_JR:
		code = MakeCodeJR(inst.Rs)
	case FORMAT_HALT:
		code = MakeCodeHalt()
	default:
		code = makeCode(inst.Opcode, inst.Rs, inst.Rt) | Code(uint16(inst.Imm))
	}
	return
}

// String renders the instruction in canonical assembly text, with
// operands in the text order of its format.
func (inst Instruction) String() string {
	format := inst.Format()
	if format == FORMAT_NONE {
		return fmt.Sprintf("%v 0x%08X", MNEMONIC_UNKNOWN, uint32(inst.Code()))
	}

	var sb strings.Builder
	sb.WriteString(inst.Opcode.String())
	for n, field := range format.Operands() {
		if n == 0 {
			sb.WriteString(" ")
		} else {
			sb.WriteString(", ")
		}
		if field == FIELD_IMM {
			fmt.Fprintf(&sb, "%d", inst.Imm)
		} else {
			fmt.Fprintf(&sb, "R%d", inst.Field(field))
		}
	}

	return sb.String()
}
