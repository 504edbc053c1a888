package raster

import "errors"

var (
	// ErrOutOfBounds reports a coordinate or region beyond the buffer.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrInvalidRegion reports a negative offset or a size that must be positive.
	ErrInvalidRegion = errors.New("invalid region")

	// ErrInvalidColor reports a color string ParseColor could not read.
	ErrInvalidColor = errors.New("invalid color")

	// ErrNotARasterBuffer reports an Insert without a source buffer.
	ErrNotARasterBuffer = errors.New("not a raster buffer")
)
