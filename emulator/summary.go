package emulator

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ezrec/mipslite/cpu"
)

// Stats holds the instruction counts of a run.
type Stats struct {
	Total int
	Mix   map[cpu.Category]int
}

// Stats returns the instruction counts since the last reset. HALT is
// not counted.
func (emu *Emulator) Stats() (stats Stats) {
	stats.Mix = make(map[cpu.Category]int, len(emu.Cpu.Mix))
	for _, cat := range cpu.Categories() {
		count := emu.Cpu.Mix[cat]
		stats.Mix[cat] = count
		stats.Total += count
	}
	return
}

// Summary writes instruction counts, the program counter, the non-zero
// registers and the non-zero memory words.
func (emu *Emulator) Summary(w io.Writer) {
	stats := emu.Stats()

	counts := table.NewWriter()
	counts.SetOutputMirror(w)
	counts.SetStyle(table.StyleLight)
	counts.SetTitle(f("Instruction counts"))
	counts.AppendHeader(table.Row{"category", "count"})
	for _, cat := range cpu.Categories() {
		counts.AppendRow(table.Row{cat.String(), stats.Mix[cat]})
	}
	counts.AppendFooter(table.Row{"total", stats.Total})
	counts.Render()

	regs := table.NewWriter()
	regs.SetOutputMirror(w)
	regs.SetStyle(table.StyleLight)
	regs.SetTitle(f("Registers"))
	regs.AppendHeader(table.Row{"register", "value"})
	regs.AppendRow(table.Row{"PC", emu.Cpu.Pc})
	for reg, value := range emu.Cpu.Register {
		if value != 0 {
			regs.AppendRow(table.Row{fmt.Sprintf("R%d", reg), value})
		}
	}
	regs.Render()

	mem := table.NewWriter()
	mem.SetOutputMirror(w)
	mem.SetStyle(table.StyleLight)
	mem.SetTitle(f("Memory"))
	mem.AppendHeader(table.Row{"address", "contents"})
	for index, word := range emu.Cpu.Memory {
		if word != 0 {
			mem.AppendRow(table.Row{index * cpu.WORD_SIZE, int32(word)})
		}
	}
	mem.Render()
}
