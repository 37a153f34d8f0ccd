// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// NewLogger creates the logger for the program options. Instruction traces
// are logged at debug level, so tracing enables it.
func NewLogger(opts options.Program) *log.Logger {
	return CreateLogger(debugLogging(opts), opts.Quiet)
}

func debugLogging(opts options.Program) bool {
	return opts.Debug || opts.Trace
}

// EmulatorOptions converts the program options into CPU options.
func EmulatorOptions(logger *log.Logger, opts options.Program) chip8.Options {
	cpuOpts := chip8.Options{
		EntryPoint: opts.EntryPoint,
		Random:     chip8.NewRandomSource(opts.Seed),
		Quirks: chip8.Quirks{
			InclusiveRegisterTransfer: opts.InclusiveTransfer,
		},
		Logger: logger,
	}
	if opts.Trace {
		cpuOpts.Tracer = newTracer(logger)
	}
	return cpuOpts
}

// newTracer returns a tracer that logs every executed instruction.
func newTracer(logger *log.Logger) chip8.Tracer {
	return func(address uint16, ins chip8.Instruction) {
		logger.Debug(disasm.Format(ins.Word),
			log.Hex("address", address),
			log.Hex("opcode", ins.Word))
	}
}
