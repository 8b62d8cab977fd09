package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ezrec/mipslite/cpu"
	"github.com/ezrec/mipslite/emulator"
	"github.com/ezrec/mipslite/listing"
	"github.com/ezrec/mipslite/object"
)

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Run a .s or .o program until HALT",
	Long: `Run loads a program at address zero and executes it until HALT,
then prints the instruction counts, the non-zero registers and the
non-zero memory words. Files ending in .o are read as object words;
anything else is assembled first.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().Int("max-ticks", 0, "Instructions to execute before giving up (default 1000000)")
	runCmd.Flags().BoolP("list", "l", false, "Print a listing before running")
	runCmd.Flags().Bool("color", false, "Highlight the listing")
	rootCmd.AddCommand(runCmd)
}

// loadProgram reads an object file, or assembles anything else.
func loadProgram(emu *emulator.Emulator, input string) (prog *cpu.Program, err error) {
	inf, err := openInput(input)
	if err != nil {
		return
	}
	defer inf.Close()

	if filepath.Ext(input) == EXT_OBJECT {
		var img *object.Image
		img, err = object.Load(inf)
		if err != nil {
			return
		}
		prog = img.Program()
		return
	}

	asm := newAssembler()
	for name, value := range emu.Defines() {
		if _, ok := cfg.Defines[name]; !ok {
			asm.Predefine(name, value)
		}
	}

	prog, err = asm.Parse(inf)
	return
}

func runRun(cmd *cobra.Command, args []string) (err error) {
	emu := emulator.NewEmulator()
	emu.MaxTicks = cfg.MaxTicks
	emu.Verbose = cfg.LogLevel == "debug"
	emu.SetLogger(logger)

	prog, err := loadProgram(emu, args[0])
	if err != nil {
		return
	}
	emu.Program = prog

	if list, _ := cmd.Flags().GetBool("list"); list {
		lst := &listing.Listing{Color: cfg.Color}
		err = lst.Write(cmd.OutOrStdout(), prog)
		if err != nil {
			return
		}
	}

	err = emu.Reset()
	if err != nil {
		return
	}

	err = emu.Run(cmd.Context())
	emu.Summary(cmd.OutOrStdout())
	if err != nil {
		return
	}

	logger.Info("Program halted", "ticks", emu.Ticks, "pc", emu.Pc())
	return
}
