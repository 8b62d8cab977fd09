package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/ezrec/mipslite/cpu"
)

var opcodesCmd = &cobra.Command{
	Use:   "opcodes",
	Short: "Print the opcode table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := table.NewWriter()
		tw.SetOutputMirror(cmd.OutOrStdout())
		tw.SetStyle(table.StyleLight)
		tw.AppendHeader(table.Row{"mnemonic", "opcode", "format", "category", "operands"})
		for name, op := range cpu.Opcodes() {
			var operands []string
			for _, field := range op.Format().Operands() {
				operands = append(operands, field.String())
			}
			tw.AppendRow(table.Row{name, fmt.Sprintf("0x%02X", uint8(op)), op.Format(), op.Category(), strings.Join(operands, ", ")})
		}
		tw.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(opcodesCmd)
}
