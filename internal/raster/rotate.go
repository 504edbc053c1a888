package raster

// RotateRight rotates the image 90 degrees clockwise. A w × h image becomes
// h × w; source pixel (x, y) moves to (h-1-y, x).
func (b *Buffer) RotateRight() {
	b.rotate(func(x, y int) (int, int) {
		return b.height - 1 - y, x
	})
}

// RotateLeft rotates the image 90 degrees counter-clockwise. A w × h image
// becomes h × w; source pixel (x, y) moves to (y, w-1-x).
func (b *Buffer) RotateLeft() {
	b.rotate(func(x, y int) (int, int) {
		return y, b.width - 1 - x
	})
}

// rotate moves every pixel of b to dest(x, y) in a new buffer whose width is
// the old height.
func (b *Buffer) rotate(dest func(x, y int) (int, int)) {
	layout := b.Layout()
	ch := layout.Channels()
	newWidth, newHeight := b.height, b.width
	rotated := make([]byte, len(b.pix))

	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			dx, dy := dest(x, y)
			s := offset(x, y, b.width, layout)
			d := offset(dx, dy, newWidth, layout)
			copy(rotated[d:d+ch], b.pix[s:s+ch])
		}
	}

	b.swap(newWidth, newHeight, layout, rotated)
}
