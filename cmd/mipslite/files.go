package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	EXT_SOURCE = ".s" // Assembly text.
	EXT_OBJECT = ".o" // Hexadecimal object words.
	STDIO      = "-"  // Standard input or output.
)

// outputName swaps the extension of input from one kind to the other.
// Standard input maps to standard output.
func outputName(input, from, to string) string {
	if input == STDIO {
		return STDIO
	}
	if filepath.Ext(input) == from {
		return strings.TrimSuffix(input, from) + to
	}
	return input + to
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func openInput(path string) (io.ReadCloser, error) {
	if path == STDIO {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func createOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == STDIO {
		return nopWriteCloser{stdout}, nil
	}
	return os.Create(path)
}
