package window

import (
	"context"
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func newTestCPU(t *testing.T, program ...byte) *chip8.CPU {
	t.Helper()
	cpu := chip8.New(chip8.Options{Logger: log.NewTestLogger(t)})
	cpu.Load(program)
	return cpu
}

func TestGame_UpdateUntilHalt(t *testing.T) {
	// count V0 up to 30, then jump to self
	cpu := newTestCPU(t,
		0x70, 0x01, // V0 += 1
		0x30, 0x1E, // skip if V0 == 30
		0x12, 0x00, // jump $200
		0x12, 0x06, // jump to itself
	)
	game := NewGame(context.Background(), log.NewTestLogger(t), cpu, 1000)

	for range 20 {
		assert.NoError(t, game.Update())
	}

	assert.True(t, game.halted)
	assert.Equal(t, chip8.StopNoProgress, game.Result().Reason)
	assert.Equal(t, byte(30), cpu.Register(0))
	assert.Equal(t, 90, game.Result().Steps)
}

func TestGame_UpdateBudget(t *testing.T) {
	cpu := newTestCPU(t, 0x70, 0x01, 0x12, 0x00)
	game := NewGame(context.Background(), log.NewTestLogger(t), cpu, 25)

	for range 5 {
		assert.NoError(t, game.Update())
	}

	assert.True(t, game.halted)
	assert.Equal(t, 25, game.Result().Steps)
	assert.Equal(t, chip8.StopBudget, game.Result().Reason)
}

func TestGame_ClosedBeforeHalt(t *testing.T) {
	cpu := newTestCPU(t, 0x70, 0x01, 0x12, 0x00)
	game := NewGame(context.Background(), log.NewTestLogger(t), cpu, 100)

	for range 3 {
		assert.NoError(t, game.Update())
	}

	assert.False(t, game.halted)
	assert.Equal(t, 30, game.Result().Steps)
	assert.Equal(t, chip8.StopInterrupted, game.Result().Reason)
}

func TestGame_UpdateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	game := NewGame(ctx, log.NewTestLogger(t), newTestCPU(t, 0x70, 0x01, 0x12, 0x00), 100)
	cancel()

	assert.True(t, errors.Is(game.Update(), ebiten.Termination))
	assert.Equal(t, chip8.StopInterrupted, game.Result().Reason)
}

func TestGame_Layout(t *testing.T) {
	game := NewGame(context.Background(), log.NewTestLogger(t), newTestCPU(t, 0x00, 0xE0), 1)
	width, height := game.Layout(640, 320)
	assert.Equal(t, chip8.DisplayWidth, width)
	assert.Equal(t, chip8.DisplayHeight, height)
}

func TestFillPixels(t *testing.T) {
	var fb chip8.Framebuffer
	fb.DrawSprite(1, 0, []byte{0x80})

	pixels := make([]byte, chip8.DisplayWidth*chip8.DisplayHeight*bytesPerPixel)
	fillPixels(pixels, &fb)

	assert.Equal(t, byte(offIntensity), pixels[0])
	assert.Equal(t, byte(onIntensity), pixels[bytesPerPixel])
	assert.Equal(t, byte(0xFF), pixels[bytesPerPixel+3])
}
