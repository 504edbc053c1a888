package raster

import (
	"fmt"
	"image"
	"image/color"
)

// Buffer is a mutable 8-bit raster image.
//
// The zero value is an empty 0x0 RGB image. Use New, FromPix or Decode to
// obtain a usable Buffer.
type Buffer struct {
	width  int
	height int
	layout Layout
	pix    []byte
}

// Size holds the pixel dimensions of a Buffer.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// New returns a zero-filled buffer (black, and fully transparent for RGBA).
// Negative sizes and areas above MaxPixels return ErrInvalidRegion.
func New(width, height int, layout Layout) (*Buffer, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	if !layout.valid() {
		return nil, fmt.Errorf("unsupported layout %v", layout)
	}
	return &Buffer{
		width:  width,
		height: height,
		layout: layout,
		pix:    make([]byte, width*height*layout.Channels()),
	}, nil
}

// FromPix wraps pix without copying. The caller hands ownership of pix to
// the returned Buffer.
func FromPix(width, height int, layout Layout, pix []byte) (*Buffer, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	if !layout.valid() {
		return nil, fmt.Errorf("unsupported layout %v", layout)
	}
	if want := width * height * layout.Channels(); len(pix) != want {
		return nil, fmt.Errorf("pixel data is %d bytes, want %d for %dx%d %v",
			len(pix), want, width, height, layout)
	}
	return &Buffer{width: width, height: height, layout: layout, pix: pix}, nil
}

// MaxPixels caps width*height for every buffer this package allocates.
const MaxPixels = 1 << 28

// checkSize rejects negative dimensions and areas above MaxPixels.
func checkSize(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidRegion, width, height)
	}
	if width > 0 && height > MaxPixels/width {
		return fmt.Errorf("%w: size %dx%d exceeds %d pixels", ErrInvalidRegion, width, height, MaxPixels)
	}
	return nil
}

// Width returns the width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the height in pixels.
func (b *Buffer) Height() int { return b.height }

// Size returns the dimensions in pixels.
func (b *Buffer) Size() Size {
	return Size{Width: b.width, Height: b.height}
}

// Layout returns the channel layout.
func (b *Buffer) Layout() Layout {
	if b.layout == 0 {
		return RGB
	}
	return b.layout
}

// HasAlpha reports whether the buffer stores an alpha channel.
func (b *Buffer) HasAlpha() bool { return b.Layout().HasAlpha() }

// Pix returns the underlying pixel bytes. The slice is replaced, not
// resized, by shape-changing operations, so do not hold on to it across
// edits.
func (b *Buffer) Pix() []byte { return b.pix }

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	pix := make([]byte, len(b.pix))
	copy(pix, b.pix)
	return &Buffer{width: b.width, height: b.height, layout: b.Layout(), pix: pix}
}

// offset returns the index of the first byte of pixel (x, y) in a buffer of
// the given width and layout. Every pixel address in this package goes
// through here.
func offset(x, y, width int, layout Layout) int {
	return (y*width + x) * layout.Channels()
}

// swap installs a fully built replacement.
func (b *Buffer) swap(width, height int, layout Layout, pix []byte) {
	b.width, b.height, b.layout, b.pix = width, height, layout, pix
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

// Get returns the color of pixel (x, y).
func (b *Buffer) Get(x, y int) (Color, error) {
	if !b.inBounds(x, y) {
		return Color{}, fmt.Errorf("%w: pixel (%d,%d) outside %dx%d image",
			ErrOutOfBounds, x, y, b.width, b.height)
	}
	return b.at(x, y), nil
}

func (b *Buffer) at(x, y int) Color {
	layout := b.Layout()
	i := offset(x, y, b.width, layout)
	c := Color{R: b.pix[i], G: b.pix[i+1], B: b.pix[i+2], A: 255}
	if layout.HasAlpha() {
		c.A = b.pix[i+3]
	}
	return c
}

// Set writes c to pixel (x, y). It is a 1x1 Fill, except that a coordinate
// outside the image reports ErrOutOfBounds.
func (b *Buffer) Set(x, y int, c Color) error {
	if !b.inBounds(x, y) {
		return fmt.Errorf("%w: pixel (%d,%d) outside %dx%d image",
			ErrOutOfBounds, x, y, b.width, b.height)
	}
	return b.Fill(x, y, 1, 1, c)
}

// ColorModel implements image.Image.
func (b *Buffer) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements image.Image.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// At implements image.Image. Pixels outside the buffer are transparent black.
func (b *Buffer) At(x, y int) color.Color {
	if !b.inBounds(x, y) {
		return color.NRGBA{}
	}
	c := b.at(x, y)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Opaque reports whether the buffer lacks an alpha channel. RGBA buffers
// report false even when every alpha byte is 255.
func (b *Buffer) Opaque() bool {
	return !b.HasAlpha()
}
