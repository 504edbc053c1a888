package raster

import "fmt"

// Fill writes c into every pixel of [offsetX, offsetX+width) ×
// [offsetY, offsetY+height). Offsets must be non-negative, the size
// positive, and the rectangle inside the image; otherwise ErrInvalidRegion
// is returned and nothing is written. On an RGB buffer c.A is ignored.
func (b *Buffer) Fill(offsetX, offsetY, width, height int, c Color) error {
	if offsetX < 0 || offsetY < 0 || width <= 0 || height <= 0 {
		return fmt.Errorf("%w: offsets must be non-negative and size positive, got (%d,%d) %dx%d",
			ErrInvalidRegion, offsetX, offsetY, width, height)
	}
	if offsetX > b.width-width || offsetY > b.height-height {
		return fmt.Errorf("%w: fill area (%d,%d) %dx%d outside %dx%d image",
			ErrInvalidRegion, offsetX, offsetY, width, height, b.width, b.height)
	}

	layout := b.Layout()
	ch := layout.Channels()
	px := []byte{c.R, c.G, c.B, c.A}[:ch]

	for y := offsetY; y < offsetY+height; y++ {
		row := b.pix[offset(offsetX, y, b.width, layout):offset(offsetX+width, y, b.width, layout)]
		for i := 0; i < len(row); i += ch {
			copy(row[i:i+ch], px)
		}
	}
	return nil
}
