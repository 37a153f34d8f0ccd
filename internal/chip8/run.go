package chip8

import (
	"context"
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// StopReason describes why a run ended.
type StopReason int

const (
	// StopBudget means the execution budget was used up.
	StopBudget StopReason = iota
	// StopNoProgress means a step left the program counter unchanged.
	StopNoProgress
	// StopInterrupted means the host ended the run before it halted, for
	// example by closing its window.
	StopInterrupted
)

func (r StopReason) String() string {
	switch r {
	case StopBudget:
		return "budget exhausted"
	case StopNoProgress:
		return "no progress"
	case StopInterrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

// RunResult summarizes a run.
type RunResult struct {
	Steps       int        // executed steps
	Diagnostics int        // steps that returned a recoverable error
	Reason      StopReason // why the run ended
}

// Run executes up to budget steps. It stops early when a step does not
// change the program counter. Recoverable step errors are logged once per
// address and execution continues. An error is only returned if the
// context is cancelled.
func (c *CPU) Run(ctx context.Context, budget int) (RunResult, error) {
	var result RunResult

	for result.Steps < budget {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("run cancelled after %d steps: %w", result.Steps, err)
		}

		address := c.pc
		err := c.Step()
		result.Steps++
		if err != nil {
			result.Diagnostics++
			c.report(address, err)
		}

		if c.pc == address {
			c.logger.Debug("Program counter did not advance, halting",
				log.Hex("address", address))
			result.Reason = StopNoProgress
			return result, nil
		}
	}

	result.Reason = StopBudget
	return result, nil
}

func (c *CPU) report(address uint16, err error) {
	if c.reported.Contains(address) {
		return
	}
	c.reported.Add(address)
	c.logger.Warn("Recoverable execution error", log.Hex("address", address), log.Err(err))
}
