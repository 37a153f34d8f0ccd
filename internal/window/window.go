// Package window shows the CHIP-8 display in a desktop window while the
// program runs.
package window

import (
	"context"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
)

const (
	scale          = 10
	stepsPerFrame  = 10
	bytesPerPixel  = 4
	onIntensity    = 0xE0
	offIntensity   = 0x10
	windowTitleFmt = "retrochip8 - %s"
)

// Game drives the CPU from the ebiten update loop, executing a fixed
// number of steps per frame until the budget is used up or the program
// stops making progress.
type Game struct {
	ctx    context.Context
	cpu    *chip8.CPU
	logger *log.Logger

	remaining int
	result    chip8.RunResult
	halted    bool

	pixels []byte
	image  *ebiten.Image
}

// NewGame returns a game running the CPU with the given execution budget.
func NewGame(ctx context.Context, logger *log.Logger, cpu *chip8.CPU, budget int) *Game {
	return &Game{
		ctx:       ctx,
		cpu:       cpu,
		logger:    logger,
		remaining: budget,
		pixels:    make([]byte, chip8.DisplayWidth*chip8.DisplayHeight*bytesPerPixel),
	}
}

// Update executes the steps of one frame.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if g.halted || g.remaining <= 0 {
		return nil
	}

	result, err := g.cpu.Run(g.ctx, min(stepsPerFrame, g.remaining))
	g.remaining -= result.Steps
	g.result.Steps += result.Steps
	g.result.Diagnostics += result.Diagnostics
	if err != nil {
		return ebiten.Termination
	}

	if result.Reason == chip8.StopNoProgress || g.remaining == 0 {
		g.halted = true
		g.result.Reason = result.Reason
		g.logger.Info("Execution finished, close the window to exit",
			log.String("reason", g.result.Reason.String()))
	}
	return nil
}

// Draw renders the framebuffer.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.image == nil {
		g.image = ebiten.NewImage(chip8.DisplayWidth, chip8.DisplayHeight)
	}
	fillPixels(g.pixels, g.cpu.Framebuffer())
	g.image.WritePixels(g.pixels)
	screen.DrawImage(g.image, nil)
}

// Layout returns the logical screen size, ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return chip8.DisplayWidth, chip8.DisplayHeight
}

// Result returns the accumulated run result. The reason is StopInterrupted
// while the run has not halted.
func (g *Game) Result() chip8.RunResult {
	result := g.result
	if !g.halted {
		result.Reason = chip8.StopInterrupted
	}
	return result
}

// Run opens the window and blocks until it is closed or the context is
// cancelled.
func Run(ctx context.Context, logger *log.Logger, cpu *chip8.CPU, budget int, title string) (chip8.RunResult, error) {
	game := NewGame(ctx, logger, cpu, budget)

	ebiten.SetWindowSize(chip8.DisplayWidth*scale, chip8.DisplayHeight*scale)
	ebiten.SetWindowTitle(fmt.Sprintf(windowTitleFmt, title))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return game.Result(), fmt.Errorf("running window: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return game.Result(), fmt.Errorf("window closed: %w", err)
	}
	return game.Result(), nil
}

// fillPixels converts the framebuffer to RGBA pixels.
func fillPixels(pixels []byte, fb *chip8.Framebuffer) {
	for y := range chip8.DisplayHeight {
		for x := range chip8.DisplayWidth {
			intensity := byte(offIntensity)
			if fb.Pixel(x, y) {
				intensity = onIntensity
			}
			i := (y*chip8.DisplayWidth + x) * bytesPerPixel
			pixels[i] = intensity
			pixels[i+1] = intensity
			pixels[i+2] = intensity
			pixels[i+3] = 0xFF
		}
	}
}
