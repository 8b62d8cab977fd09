// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"iter"
	"strings"
)

// Opcode is the 6-bit operation code in bits 31..26 of an instruction word.
type Opcode uint8

const (
	OP_ADD  = Opcode(0x00) // ADD
	OP_ADDI = Opcode(0x01) // ADDI
	OP_SUB  = Opcode(0x02) // SUB
	OP_SUBI = Opcode(0x03) // SUBI
	OP_MUL  = Opcode(0x04) // MUL
	OP_MULI = Opcode(0x05) // MULI
	OP_OR   = Opcode(0x06) // OR
	OP_ORI  = Opcode(0x07) // ORI
	OP_AND  = Opcode(0x08) // AND
	OP_ANDI = Opcode(0x09) // ANDI
	OP_XOR  = Opcode(0x0A) // XOR
	OP_XORI = Opcode(0x0B) // XORI
	OP_LDW  = Opcode(0x0C) // LDW
	OP_STW  = Opcode(0x0D) // STW
	OP_BZ   = Opcode(0x0E) // BZ
	OP_BEQ  = Opcode(0x0F) // BEQ
	OP_JR   = Opcode(0x10) // JR
	OP_HALT = Opcode(0x11) // HALT

	OP_MASK = Opcode(0x3F) // Mask of the opcode field.
)

// MNEMONIC_UNKNOWN is the mnemonic of any opcode not in the table.
const MNEMONIC_UNKNOWN = "UNKNOWN"

// opcodeNames is indexed by opcode; it is the only place mnemonics are spelled.
var opcodeNames = [...]string{
	OP_ADD:  "ADD",
	OP_ADDI: "ADDI",
	OP_SUB:  "SUB",
	OP_SUBI: "SUBI",
	OP_MUL:  "MUL",
	OP_MULI: "MULI",
	OP_OR:   "OR",
	OP_ORI:  "ORI",
	OP_AND:  "AND",
	OP_ANDI: "ANDI",
	OP_XOR:  "XOR",
	OP_XORI: "XORI",
	OP_LDW:  "LDW",
	OP_STW:  "STW",
	OP_BZ:   "BZ",
	OP_BEQ:  "BEQ",
	OP_JR:   "JR",
	OP_HALT: "HALT",
}

// opcodeMap is the inverse of opcodeNames.
var opcodeMap = func() map[string]Opcode {
	m := make(map[string]Opcode, len(opcodeNames))
	for code, name := range opcodeNames {
		m[name] = Opcode(code)
	}
	return m
}()

// Valid returns true if the opcode has a mnemonic.
func (op Opcode) Valid() bool {
	return int(op) < len(opcodeNames)
}

// String returns the mnemonic, or MNEMONIC_UNKNOWN.
func (op Opcode) String() string {
	if !op.Valid() {
		return MNEMONIC_UNKNOWN
	}
	return opcodeNames[op]
}

// OpcodeOf looks up a mnemonic, ignoring case.
func OpcodeOf(mnemonic string) (op Opcode, err error) {
	op, ok := opcodeMap[strings.ToUpper(mnemonic)]
	if !ok {
		err = ErrUnknownMnemonic(mnemonic)
	}
	return
}

// MnemonicOf returns the mnemonic for a raw opcode field value.
func MnemonicOf(code uint8) string {
	return Opcode(code).String()
}

// Opcodes iterates the opcode table in opcode order.
func Opcodes() iter.Seq2[string, Opcode] {
	return func(yield func(string, Opcode) bool) {
		for code, name := range opcodeNames {
			if !yield(name, Opcode(code)) {
				return
			}
		}
	}
}
