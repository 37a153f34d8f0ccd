package config

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(false, false))
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
}

func TestNewLogger(t *testing.T) {
	opts := options.Program{Flags: options.Flags{Trace: true, Quiet: true}}
	assert.NotNil(t, NewLogger(opts))
	assert.True(t, debugLogging(opts))

	opts.Trace = false
	assert.False(t, debugLogging(opts))

	opts.Debug = true
	assert.True(t, debugLogging(opts))
}

func TestEmulatorOptions(t *testing.T) {
	logger := log.NewTestLogger(t)
	opts := options.Program{
		Flags: options.Flags{
			EntryPoint:        0x300,
			Seed:              3,
			InclusiveTransfer: true,
		},
	}

	cpuOpts := EmulatorOptions(logger, opts)
	assert.Equal(t, uint16(0x300), cpuOpts.EntryPoint)
	assert.True(t, cpuOpts.Quirks.InclusiveRegisterTransfer)
	assert.NotNil(t, cpuOpts.Random)
	assert.True(t, cpuOpts.Tracer == nil)

	opts.Trace = true
	cpuOpts = EmulatorOptions(logger, opts)
	assert.True(t, cpuOpts.Tracer != nil)

	cpu := chip8.New(cpuOpts)
	cpu.Load([]byte{0x60, 0x01})
	assert.NoError(t, cpu.Step())
	assert.Equal(t, byte(1), cpu.Register(0))
}
