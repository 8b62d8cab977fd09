// Package cpu implements the MIPS-lite instruction set: its opcode table,
// instruction formats, and the encoder and decoder between assembly text
// and 32-bit instruction words.
//
// Every instruction is one word. The opcode occupies bits 31-26, followed
// by the rs, rt and rd register fields; immediate forms use the low 16
// bits as a two's complement value. Register-register forms are written
// "rd, rt, rs" but stored with rs in the high field.
//
// The package also provides a line oriented Assembler and Disassembler for
// whole files, and a functional Cpu that executes assembled programs.
package cpu
