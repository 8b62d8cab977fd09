package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/ezrec/mipslite/cpu"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect WORD...",
	Short: "Show every field of hexadecimal instruction words",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
}

func runInspect(cmd *cobra.Command, args []string) (err error) {
	out := cmd.OutOrStdout()
	for _, arg := range args {
		var code cpu.Code
		code, err = cpu.ParseWord(arg)
		if err != nil {
			return
		}

		inst := cpu.Decode(code)
		fmt.Fprintf(out, "%v: %v (%v, %v)\n", code.Hex(), inst, inst.Format(), inst.Opcode.Category())
		dumper.Fdump(out, inst)
	}

	return
}
