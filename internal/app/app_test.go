package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return path
}

func testOptions(input string) options.Program {
	return options.Program{
		Parameters:  options.Parameters{Input: input},
		Flags:       options.Flags{Steps: 100, EntryPoint: chip8.ProgramStart, Seed: 1},
		OutputFlags: options.OutputFlags{Screen: true, Registers: true},
	}
}

func TestRun(t *testing.T) {
	program := writeFile(t, "test.ch8", []byte{
		0x60, 0x05, // V0 = 5
		0x61, 0x03, // V1 = 3
		0x80, 0x14, // V0 += V1
		0x12, 0x06, // jump to itself
	})

	var buf bytes.Buffer
	err := Run(context.Background(), log.NewTestLogger(t), testOptions(program), &buf)
	assert.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "PC=$206")
	assert.Contains(t, out, "V0=$08")
	assert.Equal(t, chip8.DisplayHeight+2+3, strings.Count(out, "\n"))
}

func TestRun_Dump(t *testing.T) {
	program := writeFile(t, "test.ch8", []byte{0x6A, 0x42, 0x12, 0x02})

	opts := testOptions(program)
	opts.Dump = true
	opts.Screen = false

	var buf bytes.Buffer
	assert.NoError(t, Run(context.Background(), log.NewTestLogger(t), opts, &buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "[0]6a\n[1]42\n[2]12\n[3]02\nPC=$202"))
	assert.Contains(t, out, "VA=$42")
}

func TestRun_OversizedImage(t *testing.T) {
	image := make([]byte, chip8.MaxProgramSize+4)
	image[0], image[1] = 0x12, 0x00 // jump to itself
	image[chip8.MaxProgramSize] = 0xFF
	program := writeFile(t, "big.ch8", image)

	opts := testOptions(program)
	opts.Screen = false

	var buf bytes.Buffer
	assert.NoError(t, Run(context.Background(), log.NewTestLogger(t), opts, &buf))
	assert.Contains(t, buf.String(), "PC=$200")
}

func TestRun_Script(t *testing.T) {
	program := writeFile(t, "test.ch8", []byte{0x6A, 0x42, 0x12, 0x02})
	passing := writeFile(t, "pass.lua", []byte(`assert(chip8.v(10) == 0x42)`))
	failing := writeFile(t, "fail.lua", []byte(`assert(chip8.v(10) == 0, "VA mismatch")`))

	opts := testOptions(program)
	opts.Screen = false
	opts.Registers = false

	var buf bytes.Buffer
	opts.Script = passing
	assert.NoError(t, Run(context.Background(), log.NewTestLogger(t), opts, &buf))
	assert.Equal(t, 0, buf.Len())

	opts.Script = failing
	err := Run(context.Background(), log.NewTestLogger(t), opts, &buf)
	assert.ErrorContains(t, err, "VA mismatch")
}

func TestRun_MissingFile(t *testing.T) {
	var buf bytes.Buffer
	err := Run(context.Background(), log.NewTestLogger(t), testOptions("/nonexistent/test.ch8"), &buf)
	assert.ErrorContains(t, err, "loading program")
}

func TestRun_Cancelled(t *testing.T) {
	program := writeFile(t, "test.ch8", []byte{0x70, 0x01, 0x12, 0x00})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := Run(ctx, log.NewTestLogger(t), testOptions(program), &buf)
	assert.ErrorContains(t, err, "executing program")
}
