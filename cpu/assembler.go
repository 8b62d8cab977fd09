// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"maps"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = func() (equ map[string]string) {
	equ = maps.Clone(_cpu_defines)
	equ["LINENO"] = "0"
	return
}()

var reParen = regexp.MustCompile(`\$\([^\$]*\)`)

var reRegister = regexp.MustCompile(`^[Rr]\d+$`)

// checkEquateName rejects names that could stand in for a register or
// a mnemonic.
func checkEquateName(name string) (err error) {
	if reRegister.MatchString(name) || strings.EqualFold(name, ".equ") {
		err = fmt.Errorf("%w: '%v'", ErrEquateSyntax, name)
		return
	}
	if _, lerr := OpcodeOf(name); lerr == nil {
		err = fmt.Errorf("%w: '%v'", ErrEquateSyntax, name)
		return
	}
	return
}

// Assembler is a single pass, line at a time assembler for MIPS-lite.
type Assembler struct {
	Verbose   bool        // If set, logs each line at debug level.
	KeepGoing bool        // If set, skips bad lines and reports them all at the end.
	Logger    *log.Logger // Destination for verbose logs; log.Default() if nil.

	Equate map[string]string // Map of equates.

	predefine map[string]string // Predefines
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

func (asm *Assembler) logger() *log.Logger {
	if asm.Logger != nil {
		return asm.Logger
	}
	return log.Default()
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{Name: "asm"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v64, err := parseInteger(str)
		if err != nil {
			// Only integer equates are visible to expressions.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrParseExpression(expr), err)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	return
}

// expand replaces every $(...) in a line with its decimal value.
func (asm *Assembler) expand(line string) (out string, err error) {
	out = reParen.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			if err == nil {
				err = _err
			}
			return str
		}
		return fmt.Sprintf("%d", value)
	})

	return
}

// parseLine expands a line of text into the words of a single
// instruction. Directives and blank lines return no words.
func (asm *Assembler) parseLine(text string, lineno int) (words []string, err error) {
	asm.Equate["LINENO"] = fmt.Sprintf("%d", lineno)

	line := StripComment(text)
	if len(line) == 0 {
		return
	}

	line, err = asm.expand(line)
	if err != nil {
		return
	}

	words = splitWords(line)
	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if strings.EqualFold(words[0], ".equ") {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		name, value := words[1], words[2]
		if err = checkEquateName(name); err != nil {
			return
		}
		if _, ok := asm.Equate[name]; ok {
			err = ErrEquateDuplicate
			return
		}
		if equate, ok := asm.Equate[value]; ok {
			value = equate
		}
		if _, err = parseInteger(value); err != nil {
			err = fmt.Errorf("%w: %w", ErrEquateSyntax, err)
			return
		}
		asm.Equate[name] = value
		words = nil
		return
	}

	// Equates only stand in for immediates.
	op, lerr := OpcodeOf(words[0])
	if lerr != nil {
		return
	}
	for n, field := range op.Format().Operands() {
		if field != FIELD_IMM || n+1 >= len(words) {
			continue
		}
		if equate, ok := asm.Equate[words[n+1]]; ok {
			words[n+1] = equate
		}
	}

	return
}

// reset prepares the equate table for a new parse.
func (asm *Assembler) reset() (err error) {
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		if err = checkEquateName(attr); err != nil {
			return
		}
		asm.Equate[attr] = val
	}
	return
}

// Parse parses an input stream into a Program, one instruction per
// non-blank line, in input order.
//
// Unless KeepGoing is set, the first bad line stops the parse and no
// program is returned. With KeepGoing, bad lines are left out of the
// program and their errors are joined.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	if err = asm.reset(); err != nil {
		return
	}
	prog = &Program{}

	var errs []error
	var lineno int

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			asm.logger().Debug("asm", "line", lineno, "text", text)
		}

		inst, lerr := asm.parseInstruction(text, lineno)
		if lerr == errSkip {
			continue
		}
		if lerr != nil {
			lerr = &ErrSyntax{LineNo: lineno, Line: strings.TrimSpace(text), Err: lerr}
			if !asm.KeepGoing {
				prog = nil
				err = lerr
				return
			}
			asm.logger().Warn("skipped", "err", lerr)
			errs = append(errs, lerr)
			continue
		}

		code := inst.Code()
		prog.Lines = append(prog.Lines, Line{LineNo: lineno, Text: StripComment(text), Code: code})

		if asm.Verbose {
			asm.logger().Debug("asm", "line", lineno, "code", code.Hex(), "inst", inst)
		}
	}

	if serr := scanner.Err(); serr != nil {
		errs = append(errs, serr)
	}

	err = errors.Join(errs...)
	return
}

// errSkip marks a line that produces no instruction.
var errSkip = errors.New("skip")

func (asm *Assembler) parseInstruction(text string, lineno int) (inst Instruction, err error) {
	words, err := asm.parseLine(text, lineno)
	if err != nil {
		return
	}
	if len(words) == 0 {
		err = errSkip
		return
	}

	inst, err = ParseWords(words)
	return
}
