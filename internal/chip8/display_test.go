package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestFramebuffer_DrawSprite(t *testing.T) {
	var fb Framebuffer

	collision := fb.DrawSprite(0, 0, []byte{0xFF})
	assert.False(t, collision)
	assert.Equal(t, uint64(0xFF00000000000000), fb.Row(0))
	assert.True(t, fb.Pixel(0, 0))
	assert.True(t, fb.Pixel(7, 0))
	assert.False(t, fb.Pixel(8, 0))

	collision = fb.DrawSprite(0, 0, []byte{0xFF})
	assert.True(t, collision)
	assert.True(t, fb.Empty())
}

func TestFramebuffer_DrawSpritePosition(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		data byte
		row  int
		want uint64
	}{
		{"right aligned", 56, 0, 0xFF, 0, 0x00000000000000FF},
		{"clipped right", 60, 1, 0xFF, 1, 0x000000000000000F},
		{"last column", 63, 2, 0x80, 2, 0x0000000000000001},
		{"wrapped x", 64 + 8, 3, 0x80, 3, 0x0080000000000000},
		{"wrapped y", 0, 32 + 4, 0x80, 4, 0x8000000000000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fb Framebuffer
			fb.DrawSprite(tt.x, tt.y, []byte{tt.data})
			assert.Equal(t, tt.want, fb.Row(tt.row))
		})
	}
}

func TestFramebuffer_DrawSpriteClipsBottom(t *testing.T) {
	var fb Framebuffer

	fb.DrawSprite(0, 30, []byte{0x80, 0x80, 0x80, 0x80})
	assert.True(t, fb.Pixel(0, 30))
	assert.True(t, fb.Pixel(0, 31))
	assert.False(t, fb.Pixel(0, 0))
	assert.False(t, fb.Pixel(0, 1))
}

func TestFramebuffer_PartialCollision(t *testing.T) {
	var fb Framebuffer

	fb.DrawSprite(0, 0, []byte{0xF0})
	collision := fb.DrawSprite(0, 0, []byte{0x18})
	assert.True(t, collision)
	assert.Equal(t, uint64(0xE8)<<56, fb.Row(0))

	collision = fb.DrawSprite(0, 1, []byte{0xFF})
	assert.False(t, collision)
}

func TestFramebuffer_Clear(t *testing.T) {
	var fb Framebuffer
	fb.DrawSprite(10, 10, []byte{0xFF, 0xFF})
	assert.False(t, fb.Empty())

	fb.Clear()
	assert.True(t, fb.Empty())
	for y := range DisplayHeight {
		assert.Equal(t, uint64(0), fb.Row(y))
	}
}

func TestFramebuffer_OutOfRange(t *testing.T) {
	var fb Framebuffer
	assert.Equal(t, uint64(0), fb.Row(-1))
	assert.Equal(t, uint64(0), fb.Row(DisplayHeight))
	assert.False(t, fb.Pixel(-1, 0))
	assert.False(t, fb.Pixel(DisplayWidth, 0))
}
