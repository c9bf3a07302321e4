package iss

// DisasmFunc renders a canonical textual form of instr (whose PC is
// cpu.PC at the time of the call) into buf and returns the number of
// bytes written. A buffer shorter than minDisasmBuffer writes nothing
// and returns 0.
type DisasmFunc func(cpu *CPU, instr uint32, buf []byte) int

// ExecFunc applies the side effects of instr to cpu. If the executor
// itself advances or branches PC, it must set *pcWritten so the fetch
// loop does not also add 4.
type ExecFunc func(cpu *CPU, instr uint32, pcWritten *bool)

// Descriptor is an immutable record identifying one instruction family:
// a mask/required-bits pair paired with a disassembler and an
// executor, replacing a bit-pattern dispatch cascade with plain data,
// one descriptor per mnemonic.
type Descriptor struct {
	Name         string
	Mask         uint32
	RequiredBits uint32
	Disassemble  DisasmFunc
	Execute      ExecFunc
}

// Matches reports whether instr's masked bits equal RequiredBits.
func (d *Descriptor) Matches(instr uint32) bool {
	return instr&d.Mask == d.RequiredBits
}

// Registry is an ordered, append-only sequence of descriptors. Order
// matters: Search returns the first match, so narrowly masked entries
// (e.g. ebreak, which pins every field) must be appended before the
// broader entries that would also match them.
type Registry struct {
	entries []Descriptor
}

// Append adds a contiguous run of descriptors to the end of the
// registry. Intended for use during Init only; the registry is
// read-only once construction completes.
func (r *Registry) Append(entries ...Descriptor) {
	r.entries = append(r.entries, entries...)
}

// Search returns the first descriptor whose (mask, required bits) pair
// matches instr, or nil if none do. Cost is O(N) over the registry,
// acceptable for the low tens of entries this kernel registers.
func (r *Registry) Search(instr uint32) *Descriptor {
	for i := range r.entries {
		if r.entries[i].Matches(instr) {
			return &r.entries[i]
		}
	}
	return nil
}

// Len reports how many descriptors are registered.
func (r *Registry) Len() int { return len(r.entries) }
