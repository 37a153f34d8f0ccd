// Package app provides the main application flow of the emulator.
package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/render"
	"github.com/retroenv/retrochip8/internal/script"
	"github.com/retroenv/retrochip8/internal/window"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// PrintBanner prints the program name and version.
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}
	logger.Info("retrochip8 - CHIP-8 emulator",
		log.String("version", buildinfo.Version(version, commit, date)))
}

// PrintInfo prints the information about the program image.
func PrintInfo(logger *log.Logger, opts options.Program, size int) {
	if opts.Quiet {
		return
	}

	logger.Info("Processing CHIP-8 program",
		log.String("file", opts.Input),
		log.String("size", fmt.Sprintf("%d", size)),
		log.Hex("entry", opts.EntryPoint),
	)
}

// Run loads the program image, executes it and writes the requested
// reports to the output writer.
func Run(ctx context.Context, logger *log.Logger, opts options.Program, output io.Writer) error {
	image, err := loader.New().Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading program: %w", err)
	}

	PrintInfo(logger, opts, len(image))
	renderer := render.New(output)
	if opts.Dump {
		if err := renderer.Image(image); err != nil {
			return err
		}
	}

	cpu := chip8.New(config.EmulatorOptions(logger, opts))
	cpu.Load(image)

	var result chip8.RunResult
	if opts.Window {
		result, err = window.Run(ctx, logger, cpu, opts.Steps, filepath.Base(opts.Input))
	} else {
		result, err = cpu.Run(ctx, opts.Steps)
	}
	if err != nil {
		return fmt.Errorf("executing program: %w", err)
	}

	logger.Info("Execution finished",
		log.String("reason", result.Reason.String()),
		log.String("steps", fmt.Sprintf("%d", result.Steps)),
		log.String("diagnostics", fmt.Sprintf("%d", result.Diagnostics)),
		log.Hex("pc", cpu.PC()))

	if err := writeReports(renderer, cpu, opts); err != nil {
		return err
	}

	if opts.Script != "" {
		if err := script.New(cpu, result).RunFile(opts.Script); err != nil {
			return fmt.Errorf("inspecting machine state: %w", err)
		}
		logger.Info("Inspection script passed", log.String("script", opts.Script))
	}
	return nil
}

func writeReports(renderer *render.Renderer, cpu *chip8.CPU, opts options.Program) error {
	if opts.Screen {
		if err := renderer.Framebuffer(cpu.Framebuffer()); err != nil {
			return err
		}
	}
	if opts.Registers {
		if err := renderer.Registers(cpu); err != nil {
			return err
		}
	}
	return nil
}
