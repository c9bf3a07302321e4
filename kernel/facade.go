// Package kernel is the narrow, stable surface over the instruction-set
// simulator core in package iss, playing the role a facade package
// plays over an internal VM (a stable surface for a caller that
// doesn't want the core's internal types), but as a plain Go API
// rather than a dynamic-library/RPC export layer.
package kernel

import "github.com/lookbusy1344/riscv-kernel/iss"

// Info describes the kernel build a caller is linked against. API is
// the facade's own capability version, distinct from Version (the
// kernel build version); it lets a host detect a facade contract it
// does not understand without parsing Version.
type Info struct {
	Name    string
	Version string
	ISA     string
	Author  string
	API     string
	Mockup  bool
}

// Tags renders Info as the "key=value" tag strings a host logs or
// reports alongside its own build info: name, version, isa, author,
// and api are always present, and mockup is appended only when set.
func (i Info) Tags() []string {
	tags := []string{
		"name=" + i.Name,
		"version=" + i.Version,
		"isa=" + i.ISA,
		"author=" + i.Author,
		"api=" + i.API,
	}
	if i.Mockup {
		tags = append(tags, "mockup")
	}
	return tags
}

const (
	kernelName    = "riscv-kernel"
	kernelVersion = "0.1.0"
	kernelISA     = "rv64im"
	kernelAuthor  = "lookbusy1344"
	kernelAPI     = "1.0"
)

// Kernel owns one simulated hart. It introduces no global state: every
// method is a plain delegation onto the iss.CPU value it owns, so a
// caller may create as many independent Kernels as it needs.
type Kernel struct {
	cpu iss.CPU
}

// New returns a zero-value Kernel. Init must be called before use.
func New() *Kernel {
	return &Kernel{}
}

// Info reports static information about this kernel build, including
// the author= and api= capability tags a host surfaces via Info.Tags.
func (k *Kernel) Info() Info {
	return Info{
		Name:    kernelName,
		Version: kernelVersion,
		ISA:     kernelISA,
		Author:  kernelAuthor,
		API:     kernelAPI,
	}
}

// Init resets all architectural state and binds host to it.
func (k *Kernel) Init(host iss.HostServices) {
	k.cpu.Init(host)
}

// ConfigGet returns the current configuration bitset.
func (k *Kernel) ConfigGet() uint64 {
	return k.cpu.Config()
}

// ConfigSet replaces the configuration bitset.
func (k *Kernel) ConfigSet(bits uint64) {
	k.cpu.SetConfig(bits)
}

// StatsReport returns a copy of the current execution statistics.
func (k *Kernel) StatsReport() iss.Statistics {
	return k.cpu.Stats
}

// RegGet reads integer register index.
func (k *Kernel) RegGet(index int) uint64 {
	return k.cpu.RegRead(index)
}

// RegSet writes integer register index.
func (k *Kernel) RegSet(index int, value uint64) {
	k.cpu.RegWrite(index, value)
}

// PCGet returns the current program counter.
func (k *Kernel) PCGet() uint64 {
	return k.cpu.PC
}

// PCSet overwrites the program counter, e.g. to set an entry point
// before the first Run.
func (k *Kernel) PCSet(value uint64) {
	k.cpu.PC = value
}

// Running reports whether the kernel is currently inside Run on some
// goroutine.
func (k *Kernel) Running() bool {
	return k.cpu.Running()
}

// Signal sends a cooperative control request (typically Halt) to a
// running kernel from another goroutine.
func (k *Kernel) Signal(sig iss.Signal) {
	k.cpu.Signal(sig)
}

// Disasm renders the instruction word instr (fetched by the caller at
// the kernel's current PC, or any other word the caller wants rendered
// as if it were current) into buf, returning bytes written.
func (k *Kernel) Disasm(instr uint32, buf []byte) int {
	return k.cpu.Disassemble(instr, buf)
}

// Run fetches, decodes, and executes instructions until halted, up to
// budget instructions (0 means unbounded), returning the number
// actually executed.
func (k *Kernel) Run(budget uint64) uint64 {
	return k.cpu.Run(budget)
}
