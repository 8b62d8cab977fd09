package main

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/mipslite/cpu"
	"github.com/ezrec/mipslite/listing"
)

var decodeCmd = &cobra.Command{
	Use:   "decode FILE.o",
	Short: "Disassemble hexadecimal object words into text",
	Args:  cobra.ExactArgs(1),
	RunE:  runDecode,
}

func init() {
	decodeCmd.Flags().StringP("output", "o", "", "Output file (default: input with .s extension, - for stdout)")
	decodeCmd.Flags().IntP("workers", "j", 0, "Concurrent decoders; 0 or 1 decodes line by line")
	decodeCmd.Flags().Bool("color", false, "Highlight output written to stdout")
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) (err error) {
	input := args[0]
	output, _ := cmd.Flags().GetString("output")
	if len(output) == 0 {
		output = outputName(input, EXT_OBJECT, EXT_SOURCE)
	}

	return decodeFile(cmd, input, output)
}

// decodeParallel reads every line, decodes them concurrently, and
// writes the results in input order. With keep-going, the decoded lines
// are written along with the joined errors.
func decodeParallel(cmd *cobra.Command, dis *cpu.Disassembler, in io.Reader, out io.Writer) (err error) {
	var words []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err = scanner.Err(); err != nil {
		return
	}

	lines, derr := dis.DecodeAll(cmd.Context(), words)
	for _, line := range lines {
		if _, err = io.WriteString(out, line+"\n"); err != nil {
			return
		}
	}

	err = derr
	return
}

func decodeFile(cmd *cobra.Command, input, output string) (err error) {
	inf, err := openInput(input)
	if err != nil {
		return
	}
	defer inf.Close()

	dis := &cpu.Disassembler{KeepGoing: cfg.KeepGoing, Workers: cfg.Workers}

	var buf bytes.Buffer
	if cfg.Workers > 1 {
		err = decodeParallel(cmd, dis, inf, &buf)
	} else {
		err = dis.Disassemble(inf, &buf)
	}
	if err != nil && (!cfg.KeepGoing || buf.Len() == 0) {
		return
	}
	derr := err

	text := buf.String()
	if output == STDIO && cfg.Color {
		text, err = listing.Highlight(text)
		if err != nil {
			return
		}
	}

	ouf, err := createOutput(output, cmd.OutOrStdout())
	if err != nil {
		return
	}

	_, err = io.Copy(ouf, strings.NewReader(text))
	err = errors.Join(err, ouf.Close())
	if err != nil {
		return
	}

	logger.Info("Decoded", "input", input, "output", output)
	return derr
}
