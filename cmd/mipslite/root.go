package main

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/ezrec/mipslite/cpu"
	"github.com/ezrec/mipslite/internal"
	"github.com/ezrec/mipslite/translate"
)

var f = translate.From

var ErrExtension = errors.New(f("invalid mode or filename"))

var (
	cfg    Config
	logger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "mipslite",
	Short: "MIPS-lite assembler, disassembler and emulator",
	Long: `mipslite translates MIPS-lite assembly (.s) into object files of
8 digit hexadecimal words (.o) and back, and runs object files on a
functional model of the MIPS-lite cpu.`,
	Example: `
# Assemble prog.s into prog.o
mipslite encode prog.s

# Disassemble prog.o into prog.s
mipslite decode prog.o

# Pick encode or decode from the file extension
mipslite auto prog.o

# Run a program and print the final machine state
mipslite run prog.s
  `,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "YAML configuration file")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Debug logging")
	rootCmd.PersistentFlags().BoolP("keep-going", "k", false, "Skip malformed lines and report every error")
}

// setup loads the configuration and applies flag overrides.
func setup(cmd *cobra.Command, args []string) (err error) {
	flags := cmd.Flags()

	cfg = Config{}
	if path, _ := flags.GetString("config"); len(path) != 0 {
		cfg, err = LoadConfig(path)
		if err != nil {
			return
		}
	}

	if flags.Changed("keep-going") {
		cfg.KeepGoing, _ = flags.GetBool("keep-going")
	}
	if debug, _ := flags.GetBool("debug"); debug {
		cfg.LogLevel = "debug"
	}
	if flags.Lookup("workers") != nil && flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Lookup("max-ticks") != nil && flags.Changed("max-ticks") {
		cfg.MaxTicks, _ = flags.GetInt("max-ticks")
	}
	if flags.Lookup("color") != nil && flags.Changed("color") {
		cfg.Color, _ = flags.GetBool("color")
	}

	logger = internal.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	return
}

// newAssembler returns an assembler configured from cfg.
func newAssembler() (asm *cpu.Assembler) {
	asm = &cpu.Assembler{
		KeepGoing: cfg.KeepGoing,
		Verbose:   logger.GetLevel() <= log.DebugLevel,
		Logger:    logger,
	}
	for name, value := range cfg.Defines {
		asm.Predefine(name, value)
	}
	return
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	// fang renders help and errors for a terminal; plain cobra
	// keeps piped output free of styling.
	if !term.IsTerminal(os.Stdout.Fd()) {
		if err := rootCmd.Execute(); err != nil {
			os.Exit(1)
		}
		return
	}

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
