package iss

// Base RV64I/M opcode field values (instr bits 6:0).
const (
	opLUI    = 0x37
	opJAL    = 0x6F
	opJALR   = 0x67
	opBranch = 0x63
	opLoad   = 0x03
	opStore  = 0x23
	opImm    = 0x13
	opImm32  = 0x1B
	opR      = 0x33
	opR32    = 0x3B
	opSystem = 0x73
)

// itypeMask matches opcode+funct3 only, for the I-type arithmetic and
// control-transfer instructions whose encoding carries no funct7 field.
func itypeMask() uint32 { return OpcodeMask | (Funct3Mask << Funct3Shift) }

func itypeBits(op, funct3 uint32) uint32 {
	return op | (funct3 << Funct3Shift)
}

// rtypeMask matches opcode+funct3+funct7, for R-type arithmetic.
func rtypeMask() uint32 {
	return OpcodeMask | (Funct3Mask << Funct3Shift) | (Funct7Mask << Funct7Shift)
}

func rtypeBits(op, funct3, funct7 uint32) uint32 {
	return op | (funct3 << Funct3Shift) | (funct7 << Funct7Shift)
}

// shiftImmMask matches opcode+funct3+top-6-bits-of-funct7 (bits 31:26),
// deliberately excluding bit 25 (the high half of the RV64 6-bit
// shift amount) for slli/srli/srai.
func shiftImmMask() uint32 {
	return OpcodeMask | (Funct3Mask << Funct3Shift) | 0xFC000000
}

func shiftImmBits(op, funct3 uint32, top6Funct7 uint32) uint32 {
	return op | (funct3 << Funct3Shift) | (top6Funct7 << 26)
}
