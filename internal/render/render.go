// Package render prints the machine state as text.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
	"golang.org/x/term"
)

// Glyphs used for set and cleared pixels.
const (
	terminalOn  = "█"
	terminalOff = " "
	plainOn     = "#"
	plainOff    = "."
)

// Renderer writes the program image, framebuffer and registers to a writer.
type Renderer struct {
	writer io.Writer
	on     string
	off    string
	scale  int // horizontal repetition of every pixel
}

// New returns a renderer for the writer. Terminals get block glyphs and,
// when wide enough, double width pixels to keep the aspect ratio.
func New(writer io.Writer) *Renderer {
	r := &Renderer{
		writer: writer,
		on:     plainOn,
		off:    plainOff,
		scale:  1,
	}

	file, ok := writer.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return r
	}

	r.on = terminalOn
	r.off = terminalOff
	if width, _, err := term.GetSize(int(file.Fd())); err == nil && width >= 2*chip8.DisplayWidth+2 {
		r.scale = 2
	}
	return r
}

// Image writes every byte of a program image on its own line, prefixed by
// its index in the image.
func (r *Renderer) Image(image []byte) error {
	var sb strings.Builder
	for i, b := range image {
		fmt.Fprintf(&sb, "[%d]%02x\n", i, b)
	}

	if _, err := io.WriteString(r.writer, sb.String()); err != nil {
		return fmt.Errorf("writing program image: %w", err)
	}
	return nil
}

// Framebuffer writes the display framed by a border.
func (r *Renderer) Framebuffer(fb *chip8.Framebuffer) error {
	var sb strings.Builder
	border := "+" + strings.Repeat("-", chip8.DisplayWidth*r.scale) + "+\n"

	sb.WriteString(border)
	for y := range chip8.DisplayHeight {
		sb.WriteByte('|')
		for x := range chip8.DisplayWidth {
			glyph := r.off
			if fb.Pixel(x, y) {
				glyph = r.on
			}
			sb.WriteString(strings.Repeat(glyph, r.scale))
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border)

	if _, err := io.WriteString(r.writer, sb.String()); err != nil {
		return fmt.Errorf("writing framebuffer: %w", err)
	}
	return nil
}

// Registers writes the program counter, index register, call stack and
// general purpose registers.
func (r *Renderer) Registers(cpu *chip8.CPU) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "PC=$%03X I=$%03X SP=%d", cpu.PC(), cpu.Index(), cpu.StackDepth())
	if stack := cpu.Stack(); len(stack) > 0 {
		sb.WriteString(" stack=[")
		for i, address := range stack {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "$%03X", address)
		}
		sb.WriteByte(']')
	}
	sb.WriteByte('\n')

	registers := cpu.Registers()
	for i, value := range registers {
		fmt.Fprintf(&sb, "V%X=$%02X", i, value)
		if i%8 == 7 {
			sb.WriteByte('\n')
		} else {
			sb.WriteByte(' ')
		}
	}

	if _, err := io.WriteString(r.writer, sb.String()); err != nil {
		return fmt.Errorf("writing registers: %w", err)
	}
	return nil
}
