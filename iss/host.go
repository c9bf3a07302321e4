package iss

// HostServices is the vtable of callbacks the host supplies at Init. It is
// the kernel's only window onto the outside world: memory/MMIO at four
// granularities, a per-instruction trace sink, an informational log sink,
// and a fatal-error sink. The kernel copies this value into CPU state at
// Init and never looks up services anywhere else (see CPU.Init).
//
// Memory access is an interface rather than a concrete type: the host
// owns the memory implementation and its failure semantics, the kernel
// only ever calls through this contract. Implementations may return
// zero from loads and discard stores to undefined regions; they may
// also treat any address as live MMIO.
type HostServices interface {
	LoadByte(addr uint64) uint8
	LoadHalf(addr uint64) uint16
	LoadWord(addr uint64) uint32
	LoadDword(addr uint64) uint64

	StoreByte(addr uint64, v uint8)
	StoreHalf(addr uint64, v uint16)
	StoreWord(addr uint64, v uint32)
	StoreDword(addr uint64, v uint64)

	// LogTrace is invoked once per executed instruction iff the
	// TraceLog configuration bit is set (see ConfigTraceLog).
	LogTrace(step uint64, pc uint64, regs [32]uint64)

	// LogMessage reports non-fatal informational text.
	LogMessage(msg string)

	// Panic reports a terminal condition. The host is expected not to
	// return control to the kernel afterward; the kernel itself always
	// returns from the call site as if Panic returned, so a host that
	// logs-and-continues will see the kernel unwind cleanly rather than
	// double-fault.
	Panic(msg string)
}
