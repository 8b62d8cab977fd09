package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/ezrec/mipslite/listing"
	"github.com/ezrec/mipslite/object"
)

var encodeCmd = &cobra.Command{
	Use:   "encode FILE.s",
	Short: "Assemble text into hexadecimal object words",
	Args:  cobra.ExactArgs(1),
	RunE:  runEncode,
}

func init() {
	encodeCmd.Flags().StringP("output", "o", "", "Output file (default: input with .o extension, - for stdout)")
	encodeCmd.Flags().BoolP("list", "l", false, "Print a listing to stdout")
	encodeCmd.Flags().Bool("color", false, "Highlight the listing")
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) (err error) {
	input := args[0]
	output, _ := cmd.Flags().GetString("output")
	if len(output) == 0 {
		output = outputName(input, EXT_SOURCE, EXT_OBJECT)
	}

	return encodeFile(cmd, input, output)
}

func encodeFile(cmd *cobra.Command, input, output string) (err error) {
	inf, err := openInput(input)
	if err != nil {
		return
	}
	defer inf.Close()

	prog, perr := newAssembler().Parse(inf)
	if prog == nil {
		return perr
	}

	ouf, err := createOutput(output, cmd.OutOrStdout())
	if err != nil {
		return
	}

	err = object.FromProgram(prog).Store(ouf)
	err = errors.Join(err, ouf.Close())
	if err != nil {
		return
	}

	logger.Info("Encoded", "input", input, "output", output, "words", len(prog.Lines))

	if list, _ := cmd.Flags().GetBool("list"); list {
		lst := &listing.Listing{Color: cfg.Color}
		err = lst.Write(cmd.OutOrStdout(), prog)
		if err != nil {
			return
		}
	}

	return perr
}
