// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package listing renders MIPS-lite programs as address, word and
// assembly text, optionally highlighted for a terminal.
package listing

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"

	"github.com/ezrec/mipslite/cpu"
)

// ENV_NO_COLOR disables highlighting when set to any value.
const ENV_NO_COLOR = "MIPSLITE_NO_COLOR"

// terminalFormatter picks the richest terminal formatter available.
func terminalFormatter() chroma.Formatter {
	for _, name := range []string{"terminal16m", "terminal256"} {
		if formatter := formatters.Get(name); formatter != nil {
			return formatter
		}
	}
	return formatters.Fallback
}

// Highlight returns text with ANSI colours. Text is returned unchanged
// when MIPSLITE_NO_COLOR is set.
func Highlight(text string) (out string, err error) {
	if os.Getenv(ENV_NO_COLOR) != "" {
		return text, nil
	}

	iterator, err := Lexer.Tokenise(nil, text)
	if err != nil {
		return text, err
	}

	var sb strings.Builder
	err = terminalFormatter().Format(&sb, Style, iterator)
	if err != nil {
		return text, err
	}

	out = sb.String()
	return
}

// Listing writes programs as "ADDR : WORD : TEXT" lines.
type Listing struct {
	Color bool // Highlight the output.
}

// Render returns the listing text for prog.
func (lst *Listing) Render(prog *cpu.Program) (text string, err error) {
	var sb strings.Builder
	for pc, code := range prog.Codes() {
		fmt.Fprintf(&sb, "%04X : %v : %v\n", pc, code.Hex(), code)
	}

	text = sb.String()
	if lst.Color {
		text, err = Highlight(text)
	}
	return
}

// Write renders prog to w.
func (lst *Listing) Write(w io.Writer, prog *cpu.Program) (err error) {
	text, err := lst.Render(prog)
	if err != nil {
		return
	}

	_, err = io.WriteString(w, text)
	return
}
