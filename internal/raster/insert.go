package raster

import "fmt"

// Insert overwrites the region of b at (offsetX, offsetY) with the pixels of
// src. No blending takes place:
//
//   - same layout: bytes are copied channel for channel, alpha included;
//   - RGBA target, RGB source: pasted pixels get alpha 255;
//   - RGB target, RGBA source: the source alpha is dropped.
//
// A nil src returns ErrNotARasterBuffer, negative offsets ErrInvalidRegion,
// and a src that does not fit inside b at the offset ErrOutOfBounds. src may
// be b itself.
func (b *Buffer) Insert(src *Buffer, offsetX, offsetY int) error {
	if src == nil {
		return ErrNotARasterBuffer
	}
	if offsetX < 0 || offsetY < 0 {
		return fmt.Errorf("%w: insert offset (%d,%d) must be non-negative", ErrInvalidRegion, offsetX, offsetY)
	}
	if offsetX > b.width-src.width || offsetY > b.height-src.height {
		return fmt.Errorf("%w: %dx%d image at (%d,%d) exceeds %dx%d image",
			ErrOutOfBounds, src.width, src.height, offsetX, offsetY, b.width, b.height)
	}

	dstLayout, srcLayout := b.Layout(), src.Layout()
	dstCh, srcCh := dstLayout.Channels(), srcLayout.Channels()

	out := make([]byte, len(b.pix))
	copy(out, b.pix)

	for y := 0; y < src.height; y++ {
		d := offset(offsetX, offsetY+y, b.width, dstLayout)
		s := offset(0, y, src.width, srcLayout)

		if dstLayout == srcLayout {
			n := src.width * srcCh
			copy(out[d:d+n], src.pix[s:s+n])
			continue
		}

		for x := 0; x < src.width; x, d, s = x+1, d+dstCh, s+srcCh {
			copy(out[d:d+3], src.pix[s:s+3])
			if dstLayout.HasAlpha() {
				out[d+3] = 255
			}
		}
	}

	b.swap(b.width, b.height, dstLayout, out)
	return nil
}
