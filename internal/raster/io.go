package raster

import (
	"fmt"
	"io"
	"os"

	"github.com/ironsheep/raster-tools-mcp/internal/pngcodec"
)

// Decode builds a Buffer from an encoded PNG stream. The layout is RGBA for
// PNG color types 4 and 6 and RGB for every other type.
func Decode(data []byte) (*Buffer, error) {
	frame, err := pngcodec.Decode(data)
	if err != nil {
		return nil, err
	}
	return FromPix(frame.Width, frame.Height, LayoutForColorType(frame.ColorType), frame.Pix)
}

// Load reads and decodes the PNG file at path.
func Load(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	b, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return b, nil
}

// frame describes the buffer to the codec without copying.
func (b *Buffer) frame() *pngcodec.Frame {
	ct := pngcodec.ColorTypeRGB
	if b.HasAlpha() {
		ct = pngcodec.ColorTypeRGBA
	}
	return &pngcodec.Frame{
		Width:     b.width,
		Height:    b.height,
		ColorType: ct,
		BitDepth:  pngcodec.BitDepth8,
		Pix:       b.pix,
	}
}

// Encode writes the buffer to w as PNG.
func (b *Buffer) Encode(w io.Writer, opts ...pngcodec.EncodeOption) error {
	return pngcodec.Encode(w, b.frame(), opts...)
}

// Save encodes the buffer and writes it to path, replacing any existing file.
func (b *Buffer) Save(path string, opts ...pngcodec.EncodeOption) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if err := b.Encode(f, opts...); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// SaveAsync saves a snapshot of the buffer on a new goroutine and calls done
// exactly once with the result (nil on success). The buffer may be edited
// again as soon as SaveAsync returns. A save cannot be cancelled once issued.
func (b *Buffer) SaveAsync(path string, done func(error), opts ...pngcodec.EncodeOption) {
	snapshot := b.Clone()
	go func() {
		err := snapshot.Save(path, opts...)
		if done != nil {
			done(err)
		}
	}()
}
