package cpu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Disassembler turns object text, one hex word per line, back into
// assembly text.
type Disassembler struct {
	KeepGoing bool // If set, bad words become comment lines and errors are joined.
	Workers   int  // Concurrent decoders for DecodeAll; GOMAXPROCS if zero.
}

// passThrough returns true for lines that are copied unchanged.
func passThrough(line string) bool {
	trimmed := strings.TrimSpace(line)
	return len(trimmed) == 0 || strings.HasPrefix(trimmed, COMMENT)
}

// Disassemble decodes in to out line by line, in order. Blank and
// comment lines are copied through unchanged.
func (dis *Disassembler) Disassemble(in io.Reader, out io.Writer) (err error) {
	scanner := bufio.NewScanner(in)
	w := bufio.NewWriter(out)

	var errs []error
	var lineno int

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		line := text
		if !passThrough(text) {
			var derr error
			line, derr = DecodeLine(text)
			if derr != nil {
				derr = &ErrSyntax{LineNo: lineno, Line: strings.TrimSpace(text), Err: derr}
				if !dis.KeepGoing {
					w.Flush()
					return derr
				}
				errs = append(errs, derr)
				line = fmt.Sprintf("%v %v", COMMENT, derr)
			}
		}

		if _, err = fmt.Fprintln(w, line); err != nil {
			return
		}
	}

	if serr := scanner.Err(); serr != nil {
		errs = append(errs, serr)
	}
	if ferr := w.Flush(); ferr != nil {
		errs = append(errs, ferr)
	}

	err = errors.Join(errs...)
	return
}

// DecodeAll decodes words concurrently. Result n is the decoding of
// words[n]; blank and comment entries are returned unchanged. Unless
// KeepGoing is set, the first malformed word cancels the remaining work.
// With KeepGoing, a malformed word becomes a comment line and the errors
// are joined.
func (dis *Disassembler) DecodeAll(ctx context.Context, words []string) (lines []string, err error) {
	lines = make([]string, len(words))
	errs := make([]error, len(words))

	workers := dis.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for n, word := range words {
		g.Go(func() (err error) {
			if err = ctx.Err(); err != nil {
				return
			}
			if passThrough(word) {
				lines[n] = word
				return
			}

			line, derr := DecodeLine(word)
			if derr != nil {
				derr = &ErrSyntax{LineNo: n + 1, Line: strings.TrimSpace(word), Err: derr}
				if !dis.KeepGoing {
					return derr
				}
				errs[n] = derr
				line = fmt.Sprintf("%v %v", COMMENT, derr)
			}
			lines[n] = line
			return
		})
	}

	err = g.Wait()
	if err != nil {
		lines = nil
		return
	}

	err = errors.Join(errs...)
	return
}
