package cpu

import (
	"bufio"
	"io"
	"iter"
)

// WORD_SIZE is the size of an instruction word in bytes.
const WORD_SIZE = 4

// Line is an assembled source line.
type Line struct {
	LineNo int    // Source line number, from 1.
	Text   string // Source text, comments removed.
	Code   Code   // Encoded instruction.
}

// Program is an ordered list of assembled lines.
type Program struct {
	Lines []Line
}

// ProgramOf wraps raw words, such as a loaded object image, as a program.
// Line numbers are the word index plus one.
func ProgramOf(words []uint32) (prog *Program) {
	prog = &Program{Lines: make([]Line, 0, len(words))}
	for n, word := range words {
		code := Code(word)
		prog.Lines = append(prog.Lines, Line{LineNo: n + 1, Text: code.String(), Code: code})
	}
	return
}

// Debug returns the line holding the byte address pc, or nil.
func (prog *Program) Debug(pc uint32) (line *Line) {
	if pc%WORD_SIZE != 0 {
		return
	}

	index := int(pc / WORD_SIZE)
	if index < len(prog.Lines) {
		line = &prog.Lines[index]
	}

	return
}

// Binary returns the program as raw instruction words.
func (prog *Program) Binary() (bins []uint32) {
	for _, code := range prog.Codes() {
		bins = append(bins, uint32(code))
	}

	return
}

// Codes iterates the byte address and word of each instruction.
func (prog *Program) Codes() iter.Seq2[uint32, Code] {
	return func(yield func(pc uint32, code Code) bool) {
		for n, line := range prog.Lines {
			if !yield(uint32(n*WORD_SIZE), line.Code) {
				return
			}
		}
	}
}

// Mix counts the program's instructions by category.
func (prog *Program) Mix() (mix map[Category]int) {
	mix = make(map[Category]int, len(categoryNames))
	for _, code := range prog.Codes() {
		mix[code.Opcode().Category()]++
	}

	return
}

// WriteTo writes one 8 digit hex word per line.
func (prog *Program) WriteTo(w io.Writer) (n int64, err error) {
	out := bufio.NewWriter(w)
	for _, code := range prog.Codes() {
		var wrote int
		wrote, err = out.WriteString(code.Hex() + "\n")
		n += int64(wrote)
		if err != nil {
			return
		}
	}

	err = out.Flush()
	return
}
