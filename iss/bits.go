package iss

// Instruction field bit positions and widths for the standard 32-bit
// RISC-V base encoding. Shared between the decoder and the per-mnemonic
// disassemblers.
const (
	OpcodeShift = 0
	OpcodeMask  = 0x7F

	RdShift = 7
	RdMask  = 0x1F

	Funct3Shift = 12
	Funct3Mask  = 0x7

	Rs1Shift = 15
	Rs1Mask  = 0x1F

	Rs2Shift = 20
	Rs2Mask  = 0x1F

	Funct7Shift = 25
	Funct7Mask  = 0x7F

	// ShamtMask selects bits [25:20], the 6-bit shift amount used by the
	// RV64 shift-by-immediate family (slli/srli/srai). Bit 25 is the high
	// half of the shamt and must not be treated as part of funct7 when
	// matching these instructions.
	ShamtShift = 20
	ShamtMask  = 0x3F
)

// Opcode returns the 7-bit opcode field (bits 6:0).
func Opcode(instr uint32) uint32 { return (instr >> OpcodeShift) & OpcodeMask }

// Rd returns the 5-bit destination register field (bits 11:7).
func Rd(instr uint32) uint32 { return (instr >> RdShift) & RdMask }

// Funct3 returns the 3-bit function field (bits 14:12).
func Funct3(instr uint32) uint32 { return (instr >> Funct3Shift) & Funct3Mask }

// Rs1 returns the 5-bit first source register field (bits 19:15).
func Rs1(instr uint32) uint32 { return (instr >> Rs1Shift) & Rs1Mask }

// Rs2 returns the 5-bit second source register field (bits 24:20).
func Rs2(instr uint32) uint32 { return (instr >> Rs2Shift) & Rs2Mask }

// Funct7 returns the 7-bit function field (bits 31:25).
func Funct7(instr uint32) uint32 { return (instr >> Funct7Shift) & Funct7Mask }

// Shamt returns the 6-bit shift amount field (bits 25:20) used by the
// RV64 shift-immediate instructions.
func Shamt(instr uint32) uint32 { return (instr >> ShamtShift) & ShamtMask }

// signExtend sign-extends the low `bits` bits of v (interpreted as a
// 64-bit value) using an arithmetic right shift. Logical right shift on
// signed integers would zero-fill instead of sign-fill and silently
// break every negative immediate, so this is implemented with explicit
// signed shifts rather than masking tricks.
func signExtend(v uint64, bits uint) int64 {
	shift := 64 - bits
	return int64(v<<shift) >> shift
}

// DecodeIImm decodes the I-type immediate: bits 31:20, sign-extended
// from bit 11.
func DecodeIImm(instr uint32) int64 {
	v := uint64(instr) >> 20
	return signExtend(v, 12)
}

// DecodeSImm decodes the S-type immediate: {bits 31:25, bits 11:7},
// sign-extended from bit 11.
func DecodeSImm(instr uint32) int64 {
	hi := uint64(instr>>25) & 0x7F
	lo := uint64(instr>>7) & 0x1F
	v := (hi << 5) | lo
	return signExtend(v, 12)
}

// DecodeBImm decodes the B-type immediate: {bit 31, bit 7, bits 30:25,
// bits 11:8, 0}, a 13-bit value (low bit always 0) sign-extended from
// bit 12.
func DecodeBImm(instr uint32) int64 {
	b12 := uint64(instr>>31) & 0x1
	b11 := uint64(instr>>7) & 0x1
	b10_5 := uint64(instr>>25) & 0x3F
	b4_1 := uint64(instr>>8) & 0xF
	v := (b12 << 12) | (b11 << 11) | (b10_5 << 5) | (b4_1 << 1)
	return signExtend(v, 13)
}

// DecodeUImm decodes the U-type immediate: bits 31:12 placed in bits
// 31:12 of the result (low 12 bits zero), sign-extended from bit 31.
func DecodeUImm(instr uint32) int64 {
	v := uint64(instr) & 0xFFFFF000
	return signExtend(v, 32)
}

// DecodeJImm decodes the J-type immediate: {bit 31, bits 19:12, bit 20,
// bits 30:21, 0}, a 21-bit value (low bit always 0) sign-extended from
// bit 20.
func DecodeJImm(instr uint32) int64 {
	b20 := uint64(instr>>31) & 0x1
	b19_12 := uint64(instr>>12) & 0xFF
	b11 := uint64(instr>>20) & 0x1
	b10_1 := uint64(instr>>21) & 0x3FF
	v := (b20 << 20) | (b19_12 << 12) | (b11 << 11) | (b10_1 << 1)
	return signExtend(v, 21)
}
