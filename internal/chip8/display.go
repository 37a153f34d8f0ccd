package chip8

// Framebuffer dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// spriteWidth is the number of pixels of one sprite row.
const spriteWidth = 8

// Framebuffer is the 64x32 monochrome display. Each row is one uint64 with
// the most significant bit holding column 0.
type Framebuffer [DisplayHeight]uint64

// Clear sets all pixels to off.
func (f *Framebuffer) Clear() {
	*f = Framebuffer{}
}

// Row returns the pixel bits of row y, or 0 if y is outside the display.
func (f *Framebuffer) Row(y int) uint64 {
	if y < 0 || y >= DisplayHeight {
		return 0
	}
	return f[y]
}

// Pixel returns whether the pixel at column x of row y is set.
func (f *Framebuffer) Pixel(x, y int) bool {
	if x < 0 || x >= DisplayWidth || y < 0 || y >= DisplayHeight {
		return false
	}
	return f[y]>>(DisplayWidth-1-x)&1 == 1
}

// Empty returns whether no pixel is set.
func (f *Framebuffer) Empty() bool {
	for _, row := range f {
		if row != 0 {
			return false
		}
	}
	return true
}

// DrawSprite XORs the sprite rows into the framebuffer with the top left
// corner at (x, y) and returns whether any set pixel was cleared.
//
// The start position wraps around the display. Pixels right of the last
// column and rows below the last row are clipped.
func (f *Framebuffer) DrawSprite(x, y int, sprite []byte) bool {
	x %= DisplayWidth
	y %= DisplayHeight

	var collision bool
	for i, data := range sprite {
		row := y + i
		if row >= DisplayHeight {
			break
		}

		bits := spriteRowBits(data, x)
		if f[row]&bits != 0 {
			collision = true
		}
		f[row] ^= bits
	}
	return collision
}

// spriteRowBits positions an 8 pixel sprite row at column x of a display row.
// Columns beyond the right edge are shifted out.
func spriteRowBits(data byte, x int) uint64 {
	offset := DisplayWidth - spriteWidth - x
	if offset >= 0 {
		return uint64(data) << offset
	}
	return uint64(data) >> -offset
}
