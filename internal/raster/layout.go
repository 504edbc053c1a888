package raster

import "fmt"

// Layout is the channel arrangement of a pixel in a Buffer.
type Layout int

const (
	// RGB stores red, green and blue; alpha reads as 255.
	RGB Layout = 3
	// RGBA stores red, green, blue and non-premultiplied alpha.
	RGBA Layout = 4
)

// LayoutForColorType maps a PNG color type to a Layout. Types 4 (gray +
// alpha) and 6 (truecolor + alpha) carry alpha; everything else is RGB.
func LayoutForColorType(colorType uint8) Layout {
	if colorType == 4 || colorType == 6 {
		return RGBA
	}
	return RGB
}

// Channels returns the number of bytes per pixel.
func (l Layout) Channels() int {
	return int(l)
}

// HasAlpha reports whether the layout stores an alpha byte.
func (l Layout) HasAlpha() bool {
	return l == RGBA
}

func (l Layout) valid() bool {
	return l == RGB || l == RGBA
}

func (l Layout) String() string {
	switch l {
	case RGB:
		return "rgb"
	case RGBA:
		return "rgba"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}
