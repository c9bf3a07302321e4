package iss

import "fmt"

// rv64iDescriptors builds the RV64I base instruction set. ebreak is
// appended first: its mask pins every field, so it must precede any
// broader entry that happens to share its opcode (none of the
// descriptors below do, but the ordering discipline is kept regardless
// since a future extension could add one).
func rv64iDescriptors() []Descriptor {
	return []Descriptor{
		descEbreak(),
		descLui(),

		descIArith("addi", 0x0, func(a, b int64) int64 { return a + b }),
		descIArith("xori", 0x4, func(a, b int64) int64 { return a ^ b }),
		descIArith("ori", 0x6, func(a, b int64) int64 { return a | b }),
		descIArith("andi", 0x7, func(a, b int64) int64 { return a & b }),
		descAddiw(),

		descShiftImm("slli", 0x1, 0x00, func(v uint64, sh uint) uint64 { return v << sh }),
		descShiftImm("srli", 0x5, 0x00, func(v uint64, sh uint) uint64 { return v >> sh }),
		descShiftImm("srai", 0x5, 0x10, func(v uint64, sh uint) uint64 {
			return uint64(int64(v) >> sh)
		}),

		descRArith("add", 0x0, 0x00, func(a, b uint64) uint64 { return a + b }),
		descRArith("sub", 0x0, 0x20, func(a, b uint64) uint64 { return a - b }),
		descRArith("sll", 0x1, 0x00, func(a, b uint64) uint64 { return a << (b & 0x3F) }),
		descRArith("srl", 0x5, 0x00, func(a, b uint64) uint64 { return a >> (b & 0x3F) }),
		descRArith("sra", 0x5, 0x20, func(a, b uint64) uint64 {
			return uint64(int64(a) >> (b & 0x3F))
		}),
		descAddw(),

		descLw(),
		descLd(),
		descSw(),
		descSd(),

		descJal(),
		descJalr(),

		descBranch("beq", 0x0, func(a, b uint64) bool { return a == b }),
		descBranch("bne", 0x1, func(a, b uint64) bool { return a != b }),
		descBranch("blt", 0x4, func(a, b uint64) bool { return int64(a) < int64(b) }),
		descBranch("bge", 0x5, func(a, b uint64) bool { return int64(a) >= int64(b) }),
		descBranch("bltu", 0x6, func(a, b uint64) bool { return a < b }),
		descBranch("bgeu", 0x7, func(a, b uint64) bool { return a >= b }),
	}
}

func descEbreak() Descriptor {
	return Descriptor{
		Name:         "ebreak",
		Mask:         0xFFFFFFFF,
		RequiredBits: EbreakWord,
		Disassemble: func(cpu *CPU, instr uint32, buf []byte) int {
			return writeDisasm(buf, cpu.PC, "ebreak", "")
		},
		Execute: func(cpu *CPU, instr uint32, pcWritten *bool) {
			cpu.Signal(SignalHalt)
		},
	}
}

// EbreakWord is the exact 32-bit encoding of ebreak: opcode=SYSTEM,
// rd=rs1=funct3=funct7=0, rs2=1. The fetch loop checks for this
// literal word as a fast exit before consulting the registry.
const EbreakWord uint32 = opSystem | (1 << Rs2Shift)

func descLui() Descriptor {
	return Descriptor{
		Name:         "lui",
		Mask:         OpcodeMask,
		RequiredBits: opLUI,
		Disassemble: func(cpu *CPU, instr uint32, buf []byte) int {
			rd := Rd(instr)
			field := (instr >> 12) & 0xFFFFF
			return writeDisasm(buf, cpu.PC, "lui", fmt.Sprintf("%s, %s", reg(rd), imm(int64(field))))
		},
		Execute: func(cpu *CPU, instr uint32, pcWritten *bool) {
			rd := int(Rd(instr))
			cpu.RegWrite(rd, uint64(DecodeUImm(instr)))
		},
	}
}

func descIArith(name string, funct3 uint32, op func(a, b int64) int64) Descriptor {
	return Descriptor{
		Name:         name,
		Mask:         itypeMask(),
		RequiredBits: itypeBits(opImm, funct3),
		Disassemble: func(cpu *CPU, instr uint32, buf []byte) int {
			rd, rs1 := Rd(instr), Rs1(instr)
			operands := fmt.Sprintf("%s, %s, %s", reg(rd), reg(rs1), imm(DecodeIImm(instr)))
			return writeDisasm(buf, cpu.PC, name, operands)
		},
		Execute: func(cpu *CPU, instr uint32, pcWritten *bool) {
			rd, rs1 := int(Rd(instr)), int(Rs1(instr))
			result := op(int64(cpu.RegRead(rs1)), DecodeIImm(instr))
			cpu.RegWrite(rd, uint64(result))
		},
	}
}

func descAddiw() Descriptor {
	return Descriptor{
		Name:         "addiw",
		Mask:         itypeMask(),
		RequiredBits: itypeBits(opImm32, 0x0),
		Disassemble: func(cpu *CPU, instr uint32, buf []byte) int {
			rd, rs1 := Rd(instr), Rs1(instr)
			operands := fmt.Sprintf("%s, %s, %s", reg(rd), reg(rs1), imm(DecodeIImm(instr)))
			return writeDisasm(buf, cpu.PC, "addiw", operands)
		},
		Execute: func(cpu *CPU, instr uint32, pcWritten *bool) {
			rd, rs1 := int(Rd(instr)), int(Rs1(instr))
			sum32 := int32(cpu.RegRead(rs1)) + int32(DecodeIImm(instr))
			cpu.RegWrite(rd, uint64(int64(sum32)))
		},
	}
}

func descShiftImm(name string, funct3 uint32, top6 uint32, op func(v uint64, shamt uint) uint64) Descriptor {
	return Descriptor{
		Name:         name,
		Mask:         shiftImmMask(),
		RequiredBits: shiftImmBits(opImm, funct3, top6),
		Disassemble: func(cpu *CPU, instr uint32, buf []byte) int {
			rd, rs1, shamt := Rd(instr), Rs1(instr), Shamt(instr)
			operands := fmt.Sprintf("%s, %s, %s", reg(rd), reg(rs1), imm(int64(shamt)))
			return writeDisasm(buf, cpu.PC, name, operands)
		},
		Execute: func(cpu *CPU, instr uint32, pcWritten *bool) {
			rd, rs1 := int(Rd(instr)), int(Rs1(instr))
			shamt := uint(Shamt(instr))
			cpu.RegWrite(rd, op(cpu.RegRead(rs1), shamt))
		},
	}
}

func descRArith(name string, funct3, funct7 uint32, op func(a, b uint64) uint64) Descriptor {
	return Descriptor{
		Name:         name,
		Mask:         rtypeMask(),
		RequiredBits: rtypeBits(opR, funct3, funct7),
		Disassemble: func(cpu *CPU, instr uint32, buf []byte) int {
			rd, rs1, rs2 := Rd(instr), Rs1(instr), Rs2(instr)
			operands := fmt.Sprintf("%s, %s, %s", reg(rd), reg(rs1), reg(rs2))
			return writeDisasm(buf, cpu.PC, name, operands)
		},
		Execute: func(cpu *CPU, instr uint32, pcWritten *bool) {
			rd, rs1, rs2 := int(Rd(instr)), int(Rs1(instr)), int(Rs2(instr))
			cpu.RegWrite(rd, op(cpu.RegRead(rs1), cpu.RegRead(rs2)))
		},
	}
}

func descAddw() Descriptor {
	return Descriptor{
		Name:         "addw",
		Mask:         rtypeMask(),
		RequiredBits: rtypeBits(opR32, 0x0, 0x00),
		Disassemble: func(cpu *CPU, instr uint32, buf []byte) int {
			rd, rs1, rs2 := Rd(instr), Rs1(instr), Rs2(instr)
			operands := fmt.Sprintf("%s, %s, %s", reg(rd), reg(rs1), reg(rs2))
			return writeDisasm(buf, cpu.PC, "addw", operands)
		},
		Execute: func(cpu *CPU, instr uint32, pcWritten *bool) {
			rd, rs1, rs2 := int(Rd(instr)), int(Rs1(instr)), int(Rs2(instr))
			sum32 := int32(cpu.RegRead(rs1)) + int32(cpu.RegRead(rs2))
			cpu.RegWrite(rd, uint64(int64(sum32)))
		},
	}
}

func descLw() Descriptor {
	return Descriptor{
		Name:         "lw",
		Mask:         itypeMask(),
		RequiredBits: itypeBits(opLoad, 0x2),
		Disassemble: func(cpu *CPU, instr uint32, buf []byte) int {
			return writeDisasm(buf, cpu.PC, "lw", loadStoreOperands(instr))
		},
		Execute: func(cpu *CPU, instr uint32, pcWritten *bool) {
			rd, rs1 := int(Rd(instr)), int(Rs1(instr))
			addr := cpu.RegRead(rs1) + uint64(DecodeIImm(instr))
			v := cpu.Host().LoadWord(addr)
			cpu.RegWrite(rd, uint64(int64(int32(v))))
			cpu.Stats.Loads++
		},
	}
}

func descLd() Descriptor {
	return Descriptor{
		Name:         "ld",
		Mask:         itypeMask(),
		RequiredBits: itypeBits(opLoad, 0x3),
		Disassemble: func(cpu *CPU, instr uint32, buf []byte) int {
			return writeDisasm(buf, cpu.PC, "ld", loadStoreOperands(instr))
		},
		Execute: func(cpu *CPU, instr uint32, pcWritten *bool) {
			rd, rs1 := int(Rd(instr)), int(Rs1(instr))
			addr := cpu.RegRead(rs1) + uint64(DecodeIImm(instr))
			cpu.RegWrite(rd, cpu.Host().LoadDword(addr))
			cpu.Stats.Loads++
		},
	}
}

func loadStoreOperands(instr uint32) string {
	rd, rs1 := Rd(instr), Rs1(instr)
	return fmt.Sprintf("%s, %s(%s)", reg(rd), imm(DecodeIImm(instr)), reg(rs1))
}

func descSw() Descriptor {
	return Descriptor{
		Name:         "sw",
		Mask:         itypeMask(),
		RequiredBits: itypeBits(opStore, 0x2),
		Disassemble: func(cpu *CPU, instr uint32, buf []byte) int {
			return writeDisasm(buf, cpu.PC, "sw", storeOperands(instr))
		},
		Execute: func(cpu *CPU, instr uint32, pcWritten *bool) {
			rs1, rs2 := int(Rs1(instr)), int(Rs2(instr))
			addr := cpu.RegRead(rs1) + uint64(DecodeSImm(instr))
			cpu.Host().StoreWord(addr, uint32(cpu.RegRead(rs2)))
			cpu.Stats.Stores++
		},
	}
}

func descSd() Descriptor {
	return Descriptor{
		Name:         "sd",
		Mask:         itypeMask(),
		RequiredBits: itypeBits(opStore, 0x3),
		Disassemble: func(cpu *CPU, instr uint32, buf []byte) int {
			return writeDisasm(buf, cpu.PC, "sd", storeOperands(instr))
		},
		Execute: func(cpu *CPU, instr uint32, pcWritten *bool) {
			rs1, rs2 := int(Rs1(instr)), int(Rs2(instr))
			addr := cpu.RegRead(rs1) + uint64(DecodeSImm(instr))
			cpu.Host().StoreDword(addr, cpu.RegRead(rs2))
			cpu.Stats.Stores++
		},
	}
}

// storeOperands renders "xRs2, imm(xRs1)"; stores swap rd for rs2
// relative to the load rendering.
func storeOperands(instr uint32) string {
	rs1, rs2 := Rs1(instr), Rs2(instr)
	return fmt.Sprintf("%s, %s(%s)", reg(rs2), imm(DecodeSImm(instr)), reg(rs1))
}

func descJal() Descriptor {
	return Descriptor{
		Name:         "jal",
		Mask:         OpcodeMask,
		RequiredBits: opJAL,
		Disassemble: func(cpu *CPU, instr uint32, buf []byte) int {
			rd := Rd(instr)
			operands := fmt.Sprintf("%s, %s", reg(rd), imm(DecodeJImm(instr)))
			return writeDisasm(buf, cpu.PC, "jal", operands)
		},
		Execute: func(cpu *CPU, instr uint32, pcWritten *bool) {
			rd := int(Rd(instr))
			link := cpu.PC + 4
			cpu.PC = cpu.PC + uint64(DecodeJImm(instr))
			cpu.RegWrite(rd, link)
			*pcWritten = true
		},
	}
}

func descJalr() Descriptor {
	return Descriptor{
		Name:         "jalr",
		Mask:         itypeMask(),
		RequiredBits: itypeBits(opJALR, 0x0),
		Disassemble: func(cpu *CPU, instr uint32, buf []byte) int {
			return writeDisasm(buf, cpu.PC, "jalr", loadStoreOperands(instr))
		},
		Execute: func(cpu *CPU, instr uint32, pcWritten *bool) {
			rd, rs1 := int(Rd(instr)), int(Rs1(instr))
			// tmp <- pc; pc <- (rs1 + imm) & ~1; rd <- tmp+4: the
			// canonical RISC-V jalr semantics, matching jal's link
			// register contract (pc_before + 4).
			tmp := cpu.PC
			target := (cpu.RegRead(rs1) + uint64(DecodeIImm(instr))) &^ 1
			cpu.PC = target
			cpu.RegWrite(rd, tmp+4)
			*pcWritten = true
		},
	}
}

func descBranch(name string, funct3 uint32, cond func(a, b uint64) bool) Descriptor {
	return Descriptor{
		Name:         name,
		Mask:         itypeMask(),
		RequiredBits: itypeBits(opBranch, funct3),
		Disassemble: func(cpu *CPU, instr uint32, buf []byte) int {
			rs1, rs2 := Rs1(instr), Rs2(instr)
			operands := fmt.Sprintf("%s, %s, %s", reg(rs1), reg(rs2), imm(DecodeBImm(instr)))
			return writeDisasm(buf, cpu.PC, name, operands)
		},
		Execute: func(cpu *CPU, instr uint32, pcWritten *bool) {
			rs1, rs2 := int(Rs1(instr)), int(Rs2(instr))
			if cond(cpu.RegRead(rs1), cpu.RegRead(rs2)) {
				cpu.PC = cpu.PC + uint64(DecodeBImm(instr))
				*pcWritten = true
			}
		},
	}
}
