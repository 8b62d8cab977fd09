package cpu

import (
	"strconv"
	"strings"
)

// WORD_DIGITS is the number of hex digits in a rendered instruction word.
const WORD_DIGITS = 8

// ParseWord parses an instruction word written in hexadecimal, with an
// optional 0x prefix.
func ParseWord(text string) (code Code, err error) {
	text = strings.TrimSpace(text)
	digits := text
	if len(digits) > 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		digits = digits[2:]
	}

	if len(digits) == 0 || len(digits) > WORD_DIGITS {
		err = ErrWord(text)
		return
	}

	value, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		err = ErrWord(text)
		return
	}

	code = Code(value)
	return
}

// Decode extracts every field of a word. The immediate is sign-extended
// from 16 bits.
func Decode(code Code) Instruction {
	return Instruction{
		Opcode: code.Opcode(),
		Rs:     code.Rs(),
		Rt:     code.Rt(),
		Rd:     code.Rd(),
		Imm:    int16(code.SignedImm()),
	}
}

// DecodeLine decodes one hexadecimal word into canonical assembly text.
// A word whose opcode has no mnemonic decodes to "UNKNOWN 0xXXXXXXXX"
// rather than failing.
func DecodeLine(text string) (line string, err error) {
	code, err := ParseWord(text)
	if err != nil {
		return
	}

	line = Decode(code).String()
	return
}
