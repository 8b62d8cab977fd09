// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command mipslite assembles, disassembles and runs MIPS-lite programs.
package main

func main() {
	Execute()
}
