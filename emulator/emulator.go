// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs assembled MIPS-lite programs on the cpu model.
package emulator

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"maps"

	"github.com/charmbracelet/log"

	"github.com/ezrec/mipslite/cpu"
	"github.com/ezrec/mipslite/internal"
)

const (
	DEFAULT_MAX_TICKS = 1_000_000 // Tick limit when MaxTicks is zero.
)

var _emulator_defines = map[string]string{
	"DEFAULT_MAX_TICKS": fmt.Sprintf("%d", DEFAULT_MAX_TICKS),
}

// Emulator state. CPU + loaded program.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.
	MaxTicks int          // Ticks allowed before Run gives up; DEFAULT_MAX_TICKS if zero.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	return
}

// SetLogger directs verbose cpu logs to lg.
func (emu *Emulator) SetLogger(lg *log.Logger) {
	emu.Cpu.Logger = lg
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Reset loads the program into memory and resets the cpu.
func (emu *Emulator) Reset() (err error) {
	if emu.Program == nil {
		err = ErrNoProgram
		return
	}

	err = emu.Cpu.Load(emu.Program.Binary())
	if err != nil {
		return
	}

	emu.Cpu.Verbose = emu.Verbose
	return
}

// Pc returns the current program counter.
func (emu *Emulator) Pc() uint32 {
	return emu.Cpu.Pc
}

// LineNo returns the source line number for the instruction at the
// program counter, or 0 if it is outside the program.
func (emu *Emulator) LineNo() int {
	if emu.Program == nil {
		return 0
	}
	line := emu.Program.Debug(emu.Cpu.Pc)
	if line == nil {
		return 0
	}
	return line.LineNo
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	pc := emu.Cpu.Pc
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Pc: pc, Err: err}
		}
	}()

	done, err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrHalted) {
		err = nil
	}

	return
}

// Run ticks until HALT, an error, cancellation, or the tick limit.
func (emu *Emulator) Run(ctx context.Context) (err error) {
	limit := emu.MaxTicks
	if limit <= 0 {
		limit = DEFAULT_MAX_TICKS
	}

	for ticks := 0; ; ticks++ {
		if err = ctx.Err(); err != nil {
			return
		}
		if ticks >= limit {
			err = &ErrRuntime{LineNo: emu.LineNo(), Pc: emu.Cpu.Pc, Err: ErrTicksExceeded}
			return
		}

		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}
	}
}
