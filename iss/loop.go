package iss

// Run executes instructions starting at the current PC until the
// kernel is halted (by ebreak, by a host-visible Signal(Halt), or by
// the step budget running out), and reports how many instructions it
// executed, including a terminating ebreak. A budget of 0 means
// unbounded: the loop runs until halted by some other means.
func (c *CPU) Run(budget uint64) uint64 {
	c.running.Store(true)

	var executed uint64
	for c.running.Load() {
		if budget != 0 && executed >= budget {
			break
		}

		// A direct 4-byte word read, not the dword-load service: the
		// two are equivalent here since only the low 32 bits carry
		// the instruction, and a word-sized fetch avoids reading
		// past the end of a short final page.
		instr := c.host.LoadWord(c.PC)

		if instr == EbreakWord {
			c.Stats.Instructions++
			executed++
			if c.TraceEnabled() {
				c.host.LogTrace(executed, c.PC, c.Snapshot())
			}
			c.Signal(SignalHalt)
			break
		}

		desc := c.registry.Search(instr)
		if desc == nil {
			c.panicf("unrecognized instruction 0x%08x at pc 0x%016x", instr, c.PC)
			break
		}

		pcWritten := false
		desc.Execute(c, instr, &pcWritten)

		c.Stats.Instructions++
		executed++
		if c.TraceEnabled() {
			c.host.LogTrace(executed, c.PC, c.Snapshot())
		}

		if !pcWritten {
			c.PC += 4
		}
	}

	c.running.Store(false)
	return executed
}

// Disassemble renders the caller-supplied word instr into buf, using
// the current PC as its address prefix (it does not fetch), returning the number of bytes written (0 if buf is too small or no
// descriptor matches). Unlike Run, this never mutates architectural
// state.
func (c *CPU) Disassemble(instr uint32, buf []byte) int {
	if instr == EbreakWord {
		return writeDisasm(buf, c.PC, "ebreak", "")
	}
	desc := c.registry.Search(instr)
	if desc == nil {
		return 0
	}
	return desc.Disassemble(c, instr, buf)
}
