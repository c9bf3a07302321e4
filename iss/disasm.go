package iss

import "fmt"

// minDisasmBuffer is the smallest buffer Disassemble will write into.
// Smaller buffers write nothing and the call returns 0.
const minDisasmBuffer = 32

// reg renders a register operand as "x<n>" in unsigned decimal.
func reg(n uint32) string { return fmt.Sprintf("x%d", n) }

// imm renders an immediate: non-negative values in lowercase hex,
// negative values in signed decimal.
func imm(v int64) string {
	if v >= 0 {
		return fmt.Sprintf("0x%x", v)
	}
	return fmt.Sprintf("%d", v)
}

// writeDisasm formats "<addr>   <mnemonic> <operands>" into buf and
// returns the number of bytes written, honoring the minimum-buffer
// contract. The address prefix is a fixed 8 hex digits preceded by
// "0x" and followed by three spaces.
func writeDisasm(buf []byte, pc uint64, mnemonic, operands string) int {
	if len(buf) < minDisasmBuffer {
		return 0
	}
	var text string
	if operands == "" {
		text = fmt.Sprintf("0x%08x   %s", pc, mnemonic)
	} else {
		text = fmt.Sprintf("0x%08x   %s %s", pc, mnemonic, operands)
	}
	n := copy(buf, text)
	if n < len(buf) {
		buf[n] = 0
	} else {
		n--
		buf[n] = 0
	}
	return n
}
