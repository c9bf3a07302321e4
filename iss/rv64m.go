package iss

import "fmt"

// rv64mDescriptors builds the RV64M subset this kernel implements:
// just mul, computing the low 64 bits of a signed 64x64 product.
func rv64mDescriptors() []Descriptor {
	return []Descriptor{descMul()}
}

func descMul() Descriptor {
	return Descriptor{
		Name:         "mul",
		Mask:         rtypeMask(),
		RequiredBits: rtypeBits(opR, 0x0, 0x01),
		Disassemble: func(cpu *CPU, instr uint32, buf []byte) int {
			rd, rs1, rs2 := Rd(instr), Rs1(instr), Rs2(instr)
			operands := fmt.Sprintf("%s, %s, %s", reg(rd), reg(rs1), reg(rs2))
			return writeDisasm(buf, cpu.PC, "mul", operands)
		},
		Execute: func(cpu *CPU, instr uint32, pcWritten *bool) {
			rd, rs1, rs2 := int(Rd(instr)), int(Rs1(instr)), int(Rs2(instr))
			product := int64(cpu.RegRead(rs1)) * int64(cpu.RegRead(rs2))
			cpu.RegWrite(rd, uint64(product))
		},
	}
}
