package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#FF0000", Color{R: 255, G: 0, B: 0, A: 255}},
		{"#0a141e", Color{R: 10, G: 20, B: 30, A: 255}},
		{"0A141E", Color{R: 10, G: 20, B: 30, A: 255}},
		{"#fff", Color{R: 255, G: 255, B: 255, A: 255}},
		{"#a0b", Color{R: 0xaa, G: 0x00, B: 0xbb, A: 255}},
		{"#0A141E28", Color{R: 10, G: 20, B: 30, A: 40}},
		{"  #000000  ", Color{A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "#GGGGGG", "#0A141EZZ", "red", "#1234567890"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseColor(in)
			assert.ErrorIs(t, err, ErrInvalidColor)
		})
	}
}

func TestColorHex(t *testing.T) {
	assert.Equal(t, "#0A141E", Opaque(10, 20, 30).Hex())
	assert.Equal(t, "#0A141E28", Color{R: 10, G: 20, B: 30, A: 40}.Hex())

	c := Color{R: 1, G: 2, B: 3, A: 4}
	back, err := ParseColor(c.Hex())
	require.NoError(t, err)
	assert.Equal(t, c, back)
}
