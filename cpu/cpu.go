// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"iter"
	"maps"

	"github.com/charmbracelet/log"
)

const (
	MEMORY_SIZE  = 4096                    // Memory size in bytes.
	MEMORY_WORDS = MEMORY_SIZE / WORD_SIZE // Memory size in words.
)

var _cpu_defines = map[string]string{
	"WORD_SIZE":      fmt.Sprintf("%d", WORD_SIZE),
	"REGISTER_COUNT": fmt.Sprintf("%d", REGISTER_COUNT),
	"MEMORY_SIZE":    fmt.Sprintf("%d", MEMORY_SIZE),
	"MEMORY_WORDS":   fmt.Sprintf("%d", MEMORY_WORDS),
}

// Cpu is the functional simulation of a MIPS-lite processor. Program
// and data share one word addressed memory; the program is loaded at
// address zero.
type Cpu struct {
	Verbose bool        // Set to enable verbose logging.
	Logger  *log.Logger // Destination for verbose logs; log.Default() if nil.

	Pc       uint32                // Byte address of the next instruction.
	Register [REGISTER_COUNT]int32 // Register bank.
	Memory   [MEMORY_WORDS]uint32  // Unified program and data memory.
	Modified [REGISTER_COUNT]bool  // Registers written since reset.
	Halted   bool                  // Set once HALT executes.

	Ticks int                       // Instructions executed, HALT included.
	Mix   [CATEGORY_CONTROL + 1]int // Instructions executed by category, HALT excluded.
}

// NewCpu creates a new CPU with cleared memory.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

func (cpu *Cpu) logger() *log.Logger {
	if cpu.Logger != nil {
		return cpu.Logger
	}
	return log.Default()
}

// Reset clears the registers, program counter and statistics. Memory
// is left intact.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		cpu.logger().Debug("cpu: reset")
	}

	clear(cpu.Register[:])
	clear(cpu.Modified[:])
	clear(cpu.Mix[:])
	cpu.Pc = 0
	cpu.Halted = false
	cpu.Ticks = 0
}

// Load clears memory, copies words in from address zero, and resets
// the cpu.
func (cpu *Cpu) Load(words []uint32) (err error) {
	if len(words) == 0 {
		err = ErrProgramEmpty
		return
	}
	if len(words) > MEMORY_WORDS {
		err = ErrProgramSize
		return
	}

	clear(cpu.Memory[:])
	copy(cpu.Memory[:], words)
	cpu.Reset()

	return
}

// wordIndex converts a byte address into a memory index.
func wordIndex(addr int64) (index int, err error) {
	if addr < 0 || addr >= MEMORY_SIZE {
		err = ErrAccess(addr)
		return
	}

	index = int(addr / WORD_SIZE)
	return
}

// FetchCode fetches the instruction at the program counter.
func (cpu *Cpu) FetchCode() (code Code, err error) {
	if cpu.Pc%WORD_SIZE != 0 {
		err = ErrAccess(int64(cpu.Pc))
		return
	}

	index, err := wordIndex(int64(cpu.Pc))
	if err != nil {
		return
	}

	code = Code(cpu.Memory[index])
	return
}

// Tick fetches and executes a single instruction. Once halted, every
// tick returns halted with ErrHalted.
func (cpu *Cpu) Tick() (halted bool, err error) {
	if cpu.Halted {
		return true, ErrHalted
	}

	code, err := cpu.FetchCode()
	if err != nil {
		return
	}

	err = cpu.Execute(code)
	halted = cpu.Halted
	return
}

func (cpu *Cpu) setRegister(reg uint8, value int32) {
	cpu.Register[reg] = value
	cpu.Modified[reg] = true
}

// doAlu performs the arithmetic or logical operation of an opcode.
func doAlu(op Opcode, a, b int32) (value int32) {
	switch op {
	case OP_ADD, OP_ADDI:
		value = a + b
	case OP_SUB, OP_SUBI:
		value = a - b
	case OP_MUL, OP_MULI:
		value = a * b
	case OP_OR, OP_ORI:
		value = a | b
	case OP_AND, OP_ANDI:
		value = a & b
	case OP_XOR, OP_XORI:
		value = a ^ b
	}
	return
}

// Execute executes a single instruction word at the current program
// counter. Branch offsets are in words, relative to the next instruction.
func (cpu *Cpu) Execute(code Code) (err error) {
	inst := Decode(code)

	if cpu.Verbose {
		cpu.logger().Debug("cpu", "pc", fmt.Sprintf("%04X", cpu.Pc), "code", code.Hex(), "inst", inst)
	}

	next_pc := cpu.Pc + WORD_SIZE
	rs := cpu.Register[inst.Rs]
	rt := cpu.Register[inst.Rt]
	imm := int32(inst.Imm)
	branch := uint32(imm * WORD_SIZE)

	switch inst.Opcode {
	case OP_ADD, OP_SUB, OP_MUL, OP_OR, OP_AND, OP_XOR:
		cpu.setRegister(inst.Rd, doAlu(inst.Opcode, rs, rt))
	case OP_ADDI, OP_SUBI, OP_MULI, OP_ORI, OP_ANDI, OP_XORI:
		cpu.setRegister(inst.Rt, doAlu(inst.Opcode, rs, imm))
	case OP_LDW:
		var index int
		index, err = wordIndex(int64(rs) + int64(imm))
		if err != nil {
			return
		}
		cpu.setRegister(inst.Rt, int32(cpu.Memory[index]))
	case OP_STW:
		var index int
		index, err = wordIndex(int64(rs) + int64(imm))
		if err != nil {
			return
		}
		cpu.Memory[index] = uint32(rt)
	case OP_BZ:
		if rs == 0 {
			next_pc += branch
		}
	case OP_BEQ:
		if rs == rt {
			next_pc += branch
		}
	case OP_JR:
		next_pc = uint32(rs)
	case OP_HALT:
		cpu.Halted = true
		next_pc = cpu.Pc
	default:
		err = ErrOpcode(code)
		return
	}

	if inst.Opcode != OP_HALT {
		cpu.Mix[inst.Opcode.Category()]++
	}
	cpu.Ticks++
	cpu.Pc = next_pc

	return
}

// String returns the program counter and the modified registers.
func (cpu *Cpu) String() (text string) {
	text = fmt.Sprintf("   pc: %08X\n", cpu.Pc)
	for reg, value := range cpu.Register {
		if !cpu.Modified[reg] {
			continue
		}
		text += fmt.Sprintf("% 5s: %08X (%d)\n", fmt.Sprintf("R%d", reg), uint32(value), value)
	}

	return
}
