// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
)

// Code is a single 32-bit instruction word.
//
//	31    26 25  21 20  16 15  11 10          0
//	+-------+------+------+------+-------------+
//	|opcode |  rs  |  rt  |  rd  |             |
//	+-------+------+------+------+-------------+
//	                      |        imm         |
//	                      +--------------------+
type Code uint32

const (
	SHIFT_OPCODE = 26
	SHIFT_RS     = 21
	SHIFT_RT     = 16
	SHIFT_RD     = 11

	MASK_REG = 0x1f
	MASK_IMM = 0xffff
	SIGN_IMM = 0x8000
)

// MakeCodeR creates a register-register instruction.
func MakeCodeR(op Opcode, rd, rt, rs uint8) Code {
	return makeCode(op, rs, rt) | Code(rd&MASK_REG)<<SHIFT_RD
}

// MakeCodeI creates an instruction with a 16-bit immediate. The immediate
// is stored modulo 65536.
func MakeCodeI(op Opcode, rt, rs uint8, imm int) Code {
	return makeCode(op, rs, rt) | Code(uint16(imm))
}

// MakeCodeBZ creates a branch-if-zero instruction.
func MakeCodeBZ(rs uint8, imm int) Code {
	return makeCode(OP_BZ, rs, 0) | Code(uint16(imm))
}

// MakeCodeBEQ creates a branch-if-equal instruction.
func MakeCodeBEQ(rs, rt uint8, imm int) Code {
	return makeCode(OP_BEQ, rs, rt) | Code(uint16(imm))
}

// MakeCodeJR creates a jump-to-register instruction.
func MakeCodeJR(rs uint8) Code {
	return makeCode(OP_JR, rs, 0)
}

// MakeCodeHalt creates the halt instruction.
func MakeCodeHalt() Code {
	return makeCode(OP_HALT, 0, 0)
}

func makeCode(op Opcode, rs, rt uint8) Code {
	return Code(op&OP_MASK)<<SHIFT_OPCODE |
		Code(rs&MASK_REG)<<SHIFT_RS |
		Code(rt&MASK_REG)<<SHIFT_RT
}

// Opcode returns the opcode field.
func (code Code) Opcode() Opcode {
	return Opcode((code >> SHIFT_OPCODE) & Code(OP_MASK))
}

// Rs returns the rs register field.
func (code Code) Rs() uint8 {
	return uint8((code >> SHIFT_RS) & MASK_REG)
}

// Rt returns the rt register field.
func (code Code) Rt() uint8 {
	return uint8((code >> SHIFT_RT) & MASK_REG)
}

// Rd returns the rd register field.
func (code Code) Rd() uint8 {
	return uint8((code >> SHIFT_RD) & MASK_REG)
}

// Imm returns the raw 16-bit immediate field.
func (code Code) Imm() uint16 {
	return uint16(code & MASK_IMM)
}

// SignedImm returns the immediate field sign-extended from bit 15.
func (code Code) SignedImm() (imm int) {
	imm = int(code.Imm())
	if imm&SIGN_IMM != 0 {
		imm -= 0x10000
	}
	return
}

// Hex returns the word as 8 uppercase hexadecimal digits.
func (code Code) Hex() string {
	return fmt.Sprintf("%08X", uint32(code))
}

// String returns the assembly text for the word.
func (code Code) String() string {
	return Decode(code).String()
}
