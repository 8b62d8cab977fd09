package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var autoCmd = &cobra.Command{
	Use:   "auto FILE",
	Short: "Encode a .s file or decode a .o file",
	Args:  cobra.ExactArgs(1),
	RunE:  runAuto,
}

func init() {
	rootCmd.AddCommand(autoCmd)
}

func runAuto(cmd *cobra.Command, args []string) (err error) {
	input := args[0]

	switch filepath.Ext(input) {
	case EXT_SOURCE:
		err = encodeFile(cmd, input, outputName(input, EXT_SOURCE, EXT_OBJECT))
	case EXT_OBJECT:
		err = decodeFile(cmd, input, outputName(input, EXT_OBJECT, EXT_SOURCE))
	default:
		err = fmt.Errorf("%w: %v", ErrExtension, input)
	}

	return
}
