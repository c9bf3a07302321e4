package iss_test

import (
	"testing"

	"github.com/lookbusy1344/riscv-kernel/iss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestX0AlwaysReadsZero(t *testing.T) {
	host := newFakeHost(64)
	var cpu iss.CPU
	cpu.Init(host)

	cpu.RegWrite(0, 0xFFFFFFFFFFFFFFFF)
	assert.Equal(t, uint64(0), cpu.RegRead(0))
}

func TestRegisterWritesRoundTrip(t *testing.T) {
	host := newFakeHost(64)
	var cpu iss.CPU
	cpu.Init(host)

	for i := 1; i < 32; i++ {
		cpu.RegWrite(i, uint64(i)*7)
	}
	for i := 1; i < 32; i++ {
		assert.Equal(t, uint64(i)*7, cpu.RegRead(i))
	}
}

func TestOutOfRangeRegisterEscalatesToHostPanic(t *testing.T) {
	host := newFakeHost(64)
	var cpu iss.CPU
	cpu.Init(host)

	got := cpu.RegRead(32)
	assert.Equal(t, uint64(0), got)
	require.True(t, host.panicked)
}

func TestInitBuildsNonEmptyRegistry(t *testing.T) {
	host := newFakeHost(64)
	var cpu iss.CPU
	cpu.Init(host)

	// addi x1, x0, 1 must resolve to some descriptor; a reset CPU with
	// an empty registry would instead escalate to host.Panic via the
	// "unrecognized instruction" path the very first fetch.
	cpu.Host().(*fakeHost).loadProgram(encodeI(testOpImm, 1, 0, 0, 1), ebreakWord)
	cpu.Run(0)
	assert.False(t, host.panicked)
	assert.Equal(t, uint64(1), cpu.RegRead(1))
}

func TestTraceEnabledTracksConfigBit(t *testing.T) {
	host := newFakeHost(64)
	var cpu iss.CPU
	cpu.Init(host)

	assert.False(t, cpu.TraceEnabled())
	cpu.SetConfig(iss.ConfigTraceLog)
	assert.True(t, cpu.TraceEnabled())
}
