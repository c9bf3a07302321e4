package iss_test

import "encoding/binary"

// fakeHost is a minimal HostServices implementation for tests: a flat
// byte slice plus captured trace/log/panic calls, wrapping recording
// hooks rather than a mock framework.
type fakeHost struct {
	mem []byte

	traces   []traceCall
	messages []string
	panics   []string
	panicked bool
}

type traceCall struct {
	step uint64
	pc   uint64
	regs [32]uint64
}

func newFakeHost(size int) *fakeHost {
	return &fakeHost{mem: make([]byte, size)}
}

func (h *fakeHost) LoadByte(addr uint64) uint8  { return h.mem[addr] }
func (h *fakeHost) LoadHalf(addr uint64) uint16 { return binary.LittleEndian.Uint16(h.mem[addr:]) }
func (h *fakeHost) LoadWord(addr uint64) uint32 { return binary.LittleEndian.Uint32(h.mem[addr:]) }
func (h *fakeHost) LoadDword(addr uint64) uint64 {
	return binary.LittleEndian.Uint64(h.mem[addr:])
}

func (h *fakeHost) StoreByte(addr uint64, v uint8)  { h.mem[addr] = v }
func (h *fakeHost) StoreHalf(addr uint64, v uint16) { binary.LittleEndian.PutUint16(h.mem[addr:], v) }
func (h *fakeHost) StoreWord(addr uint64, v uint32) { binary.LittleEndian.PutUint32(h.mem[addr:], v) }
func (h *fakeHost) StoreDword(addr uint64, v uint64) {
	binary.LittleEndian.PutUint64(h.mem[addr:], v)
}

func (h *fakeHost) LogTrace(step uint64, pc uint64, regs [32]uint64) {
	h.traces = append(h.traces, traceCall{step: step, pc: pc, regs: regs})
}

func (h *fakeHost) LogMessage(msg string) {
	h.messages = append(h.messages, msg)
}

func (h *fakeHost) Panic(msg string) {
	h.panicked = true
	h.panics = append(h.panics, msg)
}

// loadProgram writes each 32-bit instruction word at consecutive
// 4-byte-aligned addresses starting at 0.
func (h *fakeHost) loadProgram(words ...uint32) {
	for i, w := range words {
		binary.LittleEndian.PutUint32(h.mem[i*4:], w)
	}
}
