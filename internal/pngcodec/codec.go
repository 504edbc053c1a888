// Package pngcodec converts between encoded PNG byte streams and flat
// 8-bit pixel frames.
//
// A Frame holds pixels row-major with either 3 (RGB) or 4 (RGBA) bytes per
// pixel. Decoding normalizes every PNG flavor (grayscale, palette, 16-bit)
// down to one of those two layouts, chosen by the color type recorded in
// the IHDR chunk. Encoding always writes 8-bit truecolor, with or without
// alpha.
package pngcodec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/disintegration/imaging"
)

// PNG color types, as stored in the IHDR chunk.
const (
	ColorTypeGray      uint8 = 0
	ColorTypeRGB       uint8 = 2
	ColorTypePalette   uint8 = 3
	ColorTypeGrayAlpha uint8 = 4
	ColorTypeRGBA      uint8 = 6
)

// BitDepth8 is the only per-channel depth frames carry.
const BitDepth8 uint8 = 8

var (
	ErrNotPNG              = errors.New("not a PNG stream")
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
	ErrShortBuffer         = errors.New("pixel buffer does not match dimensions")
)

var signature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Header is the subset of the IHDR chunk the editor cares about.
type Header struct {
	Width     int
	Height    int
	BitDepth  uint8
	ColorType uint8
}

// HasAlpha reports whether the color type carries an alpha channel.
func (h Header) HasAlpha() bool {
	return h.ColorType == ColorTypeGrayAlpha || h.ColorType == ColorTypeRGBA
}

// Frame is a decoded image: dimensions, source color type and flat pixels.
type Frame struct {
	Width     int
	Height    int
	ColorType uint8
	BitDepth  uint8
	Pix       []byte
}

// HasAlpha reports whether Pix carries an alpha byte per pixel.
func (f *Frame) HasAlpha() bool {
	return f.ColorType == ColorTypeGrayAlpha || f.ColorType == ColorTypeRGBA
}

// Channels returns the number of bytes per pixel in Pix.
func (f *Frame) Channels() int {
	if f.HasAlpha() {
		return 4
	}
	return 3
}

// ReadHeader parses the PNG signature and IHDR chunk without decoding pixels.
func ReadHeader(data []byte) (Header, error) {
	// signature(8) + length(4) + "IHDR"(4) + width(4) + height(4) + depth(1) + type(1)
	if len(data) < 26 || !bytes.Equal(data[:8], signature) {
		return Header{}, ErrNotPNG
	}
	if string(data[12:16]) != "IHDR" {
		return Header{}, fmt.Errorf("%w: first chunk is %q", ErrNotPNG, data[12:16])
	}
	return Header{
		Width:     int(binary.BigEndian.Uint32(data[16:20])),
		Height:    int(binary.BigEndian.Uint32(data[20:24])),
		BitDepth:  data[24],
		ColorType: data[25],
	}, nil
}

// Decode decodes a PNG byte stream into an 8-bit frame.
//
// The returned frame has 4 channels when the source color type is 4 or 6
// and 3 channels otherwise. Its ColorType is rewritten to ColorTypeRGBA or
// ColorTypeRGB to match, and BitDepth is always BitDepth8.
func Decode(data []byte) (*Frame, error) {
	hdr, err := ReadHeader(data)
	if err != nil {
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode png: %w", err)
	}

	// Clone normalizes palette, gray and 16-bit sources to non-premultiplied 8-bit.
	nrgba := imaging.Clone(img)
	w, h := nrgba.Bounds().Dx(), nrgba.Bounds().Dy()

	frame := &Frame{
		Width:     w,
		Height:    h,
		ColorType: ColorTypeRGB,
		BitDepth:  BitDepth8,
	}
	if hdr.HasAlpha() {
		frame.ColorType = ColorTypeRGBA
		frame.Pix = nrgba.Pix
		return frame, nil
	}

	frame.Pix = make([]byte, w*h*3)
	for i, j := 0, 0; i < len(nrgba.Pix); i, j = i+4, j+3 {
		copy(frame.Pix[j:j+3], nrgba.Pix[i:i+3])
	}
	return frame, nil
}

// EncodeOption configures Encode.
type EncodeOption func(*encodeConfig)

type encodeConfig struct {
	compression png.CompressionLevel
}

// WithCompression selects the zlib compression level of the written stream.
func WithCompression(level png.CompressionLevel) EncodeOption {
	return func(c *encodeConfig) {
		c.compression = level
	}
}

// ParseCompression maps a config string to a compression level.
// The empty string selects the default level.
func ParseCompression(s string) (png.CompressionLevel, error) {
	switch s {
	case "", "default":
		return png.DefaultCompression, nil
	case "none":
		return png.NoCompression, nil
	case "speed":
		return png.BestSpeed, nil
	case "best":
		return png.BestCompression, nil
	default:
		return 0, fmt.Errorf("unknown png compression level: %s", s)
	}
}

// Encode writes frame to w as an 8-bit truecolor PNG. Frames with alpha are
// written as color type 6, all others as color type 2.
func Encode(w io.Writer, frame *Frame, opts ...EncodeOption) error {
	cfg := encodeConfig{compression: png.DefaultCompression}
	for _, opt := range opts {
		opt(&cfg)
	}

	if frame.BitDepth != BitDepth8 {
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, frame.BitDepth)
	}
	if frame.Width <= 0 || frame.Height <= 0 {
		return fmt.Errorf("cannot encode %dx%d image", frame.Width, frame.Height)
	}
	if len(frame.Pix) != frame.Width*frame.Height*frame.Channels() {
		return fmt.Errorf("%w: got %d bytes for %dx%dx%d",
			ErrShortBuffer, len(frame.Pix), frame.Width, frame.Height, frame.Channels())
	}

	if err := imaging.Encode(w, frameImage{frame}, imaging.PNG, imaging.PNGCompressionLevel(cfg.compression)); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// frameImage exposes a Frame to image/png. Opaque tells the encoder which
// color type to write, so an RGBA frame whose alpha happens to be all 255
// still round-trips as RGBA.
type frameImage struct {
	f *Frame
}

func (m frameImage) ColorModel() color.Model { return color.NRGBAModel }

func (m frameImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.f.Width, m.f.Height)
}

func (m frameImage) At(x, y int) color.Color {
	ch := m.f.Channels()
	i := (y*m.f.Width + x) * ch
	p := m.f.Pix[i : i+ch : i+ch]
	if ch == 3 {
		return color.NRGBA{R: p[0], G: p[1], B: p[2], A: 255}
	}
	return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

func (m frameImage) Opaque() bool {
	return !m.f.HasAlpha()
}
