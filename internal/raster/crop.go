package raster

import "fmt"

// Crop keeps only the pixels of [offsetX, offsetX+width) ×
// [offsetY, offsetY+height); the buffer becomes width × height.
//
// Negative arguments return ErrInvalidRegion. A rectangle that reaches past
// the right or bottom edge returns ErrOutOfBounds. A zero width or height is
// allowed and leaves an empty image.
func (b *Buffer) Crop(offsetX, offsetY, width, height int) error {
	if offsetX < 0 || offsetY < 0 || width < 0 || height < 0 {
		return fmt.Errorf("%w: crop offsets and size must be non-negative, got (%d,%d) %dx%d",
			ErrInvalidRegion, offsetX, offsetY, width, height)
	}
	if offsetX > b.width-width || offsetY > b.height-height {
		return fmt.Errorf("%w: crop area (%d,%d) %dx%d outside %dx%d image",
			ErrOutOfBounds, offsetX, offsetY, width, height, b.width, b.height)
	}

	layout := b.Layout()
	rowLen := width * layout.Channels()
	cropped := make([]byte, height*rowLen)

	// A horizontal span of one row is contiguous, so copy whole rows.
	for y := 0; y < height; y++ {
		src := offset(offsetX, offsetY+y, b.width, layout)
		copy(cropped[y*rowLen:(y+1)*rowLen], b.pix[src:src+rowLen])
	}

	b.swap(width, height, layout, cropped)
	return nil
}

// SetSize changes the canvas size without scaling.
//
// When neither dimension grows this is Crop(0, 0, width, height). Otherwise
// a new zeroed canvas is allocated and the old pixels are copied to the same
// coordinates, anchored top-left. Rows or columns of the old image that fall
// outside the new canvas (a canvas that grows in one direction and shrinks
// in the other) are dropped. A size above MaxPixels returns ErrInvalidRegion.
func (b *Buffer) SetSize(width, height int) error {
	if err := checkSize(width, height); err != nil {
		return err
	}
	if width <= b.width && height <= b.height {
		return b.Crop(0, 0, width, height)
	}

	layout := b.Layout()
	extended := make([]byte, width*height*layout.Channels())
	rowLen := min(width, b.width) * layout.Channels()

	for y := 0; y < min(height, b.height); y++ {
		dst := offset(0, y, width, layout)
		src := offset(0, y, b.width, layout)
		copy(extended[dst:dst+rowLen], b.pix[src:src+rowLen])
	}

	b.swap(width, height, layout, extended)
	return nil
}
