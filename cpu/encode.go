// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"strconv"
	"strings"
	"unicode"
)

// COMMENT starts a comment that runs to the end of the line.
const COMMENT = "#"

// StripComment removes any comment and surrounding whitespace from a line.
func StripComment(line string) string {
	line, _, _ = strings.Cut(line, COMMENT)
	return strings.TrimSpace(line)
}

// splitWords splits an instruction line on whitespace and commas.
func splitWords(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
}

// parseInteger parses a signed decimal integer, or a 0x, 0o or 0b
// prefixed one. A bare leading zero is still decimal.
func parseInteger(word string) (value int64, err error) {
	digits := strings.TrimLeft(word, "+-")
	base := 10
	if len(digits) > 1 && digits[0] == '0' {
		switch digits[1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			base = 0
		}
	}

	value, err = strconv.ParseInt(word, base, 64)
	if err != nil {
		err = ErrParseNumber(word)
	}
	return
}

// parseRegister parses a register token such as "R12", "r3," or "7".
func parseRegister(word string) (reg int, err error) {
	text := strings.TrimRight(word, ",")
	text = strings.TrimPrefix(strings.TrimPrefix(text, "R"), "r")
	if len(text) == 0 {
		err = ErrRegister(word)
		return
	}

	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}
	if value < 0 || value >= REGISTER_COUNT {
		err = ErrRegister(word)
		return
	}

	reg = int(value)
	return
}

// parseImmediate parses an immediate token, wrapped to 16 bits.
func parseImmediate(word string) (imm int, err error) {
	value, err := parseInteger(strings.TrimRight(word, ","))
	if err != nil {
		return
	}

	imm = int(int16(uint16(value & MASK_IMM)))
	return
}

// ParseWords builds an instruction from a mnemonic and its operand words.
func ParseWords(words []string) (inst Instruction, err error) {
	if len(words) == 0 {
		err = ErrUnknownMnemonic("")
		return
	}

	op, err := OpcodeOf(words[0])
	if err != nil {
		return
	}

	inst.Opcode = op
	mnemonic := op.String()
	fields := op.Format().Operands()
	args := words[1:]

	if len(args) != len(fields) {
		err = &ErrOperand{
			Mnemonic: mnemonic,
			Err:      ErrOperandCount{Want: len(fields), Got: len(args)},
		}
		return
	}

	for n, field := range fields {
		var value int
		if field == FIELD_IMM {
			value, err = parseImmediate(args[n])
		} else {
			value, err = parseRegister(args[n])
		}
		if err != nil {
			err = &ErrOperand{Mnemonic: mnemonic, Operand: args[n], Err: err}
			return
		}
		inst.setField(field, value)
	}

	return
}

// ParseLine parses one line of assembly text. Blank and comment-only
// lines return ok == false and no error.
func ParseLine(line string) (inst Instruction, ok bool, err error) {
	line = StripComment(line)
	if len(line) == 0 {
		return
	}

	inst, err = ParseWords(splitWords(line))
	if err != nil {
		return
	}

	ok = true
	return
}

// EncodeLine encodes one line of assembly text as 8 uppercase hex
// digits. Blank and comment-only lines return the empty string.
func EncodeLine(line string) (hex string, err error) {
	inst, ok, err := ParseLine(line)
	if err != nil || !ok {
		return
	}

	hex = inst.Code().Hex()
	return
}
