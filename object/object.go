// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package object reads and writes MIPS-lite object images: one
// instruction word per line, as 8 uppercase hexadecimal digits.
package object

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/ezrec/mipslite/cpu"
)

// Image is an ordered list of instruction words.
type Image struct {
	Words []uint32
}

// Load reads an image. Blank lines and lines starting with '#' are
// skipped; any other line must be a single hexadecimal word.
func Load(input io.Reader) (img *Image, err error) {
	scanner := bufio.NewScanner(input)

	img = &Image{}

	var lineno int
	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		line := strings.TrimSpace(text)
		if len(line) == 0 || strings.HasPrefix(line, cpu.COMMENT) {
			continue
		}

		var code cpu.Code
		code, err = cpu.ParseWord(line)
		if err != nil {
			img = nil
			err = &cpu.ErrSyntax{LineNo: lineno, Line: line, Err: err}
			return
		}

		img.Words = append(img.Words, uint32(code))
	}

	if err = scanner.Err(); err != nil {
		img = nil
	}

	return
}

// Store writes the image, one word per line.
func (img *Image) Store(output io.Writer) (err error) {
	w := bufio.NewWriter(output)
	for _, word := range img.Words {
		_, err = fmt.Fprintf(w, "%08X\n", word)
		if err != nil {
			return
		}
	}

	err = w.Flush()
	return
}

// Codes iterates the byte address and instruction word of each entry.
func (img *Image) Codes() iter.Seq2[uint32, cpu.Code] {
	return func(yield func(addr uint32, code cpu.Code) bool) {
		for n, word := range img.Words {
			if !yield(uint32(n*cpu.WORD_SIZE), cpu.Code(word)) {
				return
			}
		}
	}
}

// Program wraps the image as a program for the emulator.
func (img *Image) Program() *cpu.Program {
	return cpu.ProgramOf(img.Words)
}

// FromProgram builds an image from an assembled program.
func FromProgram(prog *cpu.Program) *Image {
	return &Image{Words: prog.Binary()}
}
