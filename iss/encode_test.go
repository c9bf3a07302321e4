package iss_test

// Standard RV64I/M opcode field values, reproduced here (rather than
// imported) because the descriptors' own opcode constants are package
// private. Tests build encodings the same way an assembler would,
// independently of how the kernel stores them internally.
const (
	testOpLUI    = 0x37
	testOpJAL    = 0x6F
	testOpJALR   = 0x67
	testOpBranch = 0x63
	testOpLoad   = 0x03
	testOpStore  = 0x23
	testOpImm    = 0x13
	testOpImm32  = 0x1B
	testOpR      = 0x33
	testOpR32    = 0x3B
	testOpSystem = 0x73
)

func encodeR(opcode, rd, funct3, rs1, rs2, funct7 uint32) uint32 {
	return opcode | (rd << 7) | (funct3 << 12) | (rs1 << 15) | (rs2 << 20) | (funct7 << 25)
}

func encodeI(opcode, rd, funct3, rs1 uint32, imm int32) uint32 {
	return opcode | (rd << 7) | (funct3 << 12) | (rs1 << 15) | (uint32(imm) << 20)
}

func encodeShiftImm(opcode, rd, funct3, rs1, shamt, top6 uint32) uint32 {
	return opcode | (rd << 7) | (funct3 << 12) | (rs1 << 15) | (shamt << 20) | (top6 << 26)
}

func encodeS(opcode, funct3, rs1, rs2 uint32, imm int32) uint32 {
	u := uint32(imm)
	lo := u & 0x1F
	hi := (u >> 5) & 0x7F
	return opcode | (lo << 7) | (funct3 << 12) | (rs1 << 15) | (rs2 << 20) | (hi << 25)
}

func encodeB(opcode, funct3, rs1, rs2 uint32, imm int32) uint32 {
	u := uint32(imm)
	b11 := (u >> 11) & 0x1
	b4_1 := (u >> 1) & 0xF
	b10_5 := (u >> 5) & 0x3F
	b12 := (u >> 12) & 0x1
	return opcode | (b11 << 7) | (b4_1 << 8) | (funct3 << 12) | (rs1 << 15) | (rs2 << 20) | (b10_5 << 25) | (b12 << 31)
}

// encodeU takes the raw 20-bit upper-immediate field, as a disassembler
// would display it, and positions it into bits 31:12.
func encodeU(opcode, rd, imm20 uint32) uint32 {
	return opcode | (rd << 7) | (imm20 << 12)
}

func encodeJ(opcode, rd uint32, imm int32) uint32 {
	u := uint32(imm)
	b19_12 := (u >> 12) & 0xFF
	b11 := (u >> 11) & 0x1
	b10_1 := (u >> 1) & 0x3FF
	b20 := (u >> 20) & 0x1
	return opcode | (rd << 7) | (b19_12 << 12) | (b11 << 20) | (b10_1 << 21) | (b20 << 31)
}

const ebreakWord uint32 = testOpSystem | (1 << 20)
