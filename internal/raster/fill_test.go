package raster

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFill_Scenario(t *testing.T) {
	b := patterned(t, 4, 4, RGBA, false)
	before := b.Clone()
	c := Color{R: 10, G: 20, B: 30, A: 40}

	require.NoError(t, b.Fill(1, 1, 2, 2, c))

	got, err := b.Get(1, 1)
	require.NoError(t, err)
	assert.Equal(t, c, got)

	got, err = b.Get(0, 0)
	require.NoError(t, err)
	orig, _ := before.Get(0, 0)
	assert.Equal(t, orig, got)
}

func TestFill_InsideAndOutside(t *testing.T) {
	for _, layout := range []Layout{RGB, RGBA} {
		t.Run(layout.String(), func(t *testing.T) {
			b := patterned(t, 7, 5, layout, layout == RGBA)
			before := b.Clone()
			c := Color{R: 200, G: 100, B: 50, A: 25}
			ox, oy, w, h := 2, 1, 4, 3

			require.NoError(t, b.Fill(ox, oy, w, h, c))

			want := c
			if !layout.HasAlpha() {
				want.A = 255
			}
			for y := 0; y < b.Height(); y++ {
				for x := 0; x < b.Width(); x++ {
					got, err := b.Get(x, y)
					require.NoError(t, err)
					if x >= ox && x < ox+w && y >= oy && y < oy+h {
						assert.Equal(t, want, got, "inside (%d,%d)", x, y)
					} else {
						orig, _ := before.Get(x, y)
						assert.Equal(t, orig, got, "outside (%d,%d)", x, y)
					}
				}
			}
			assert.Len(t, b.Pix(), 7*5*layout.Channels())
		})
	}
}

func TestFill_WholeImage(t *testing.T) {
	b := patterned(t, 3, 2, RGB, false)
	require.NoError(t, b.Fill(0, 0, 3, 2, Opaque(9, 8, 7)))
	for _, c := range pixels(t, b) {
		assert.Equal(t, Opaque(9, 8, 7), c)
	}
}

func TestFill_InvalidRegion(t *testing.T) {
	tests := []struct {
		name   string
		ox, oy int
		w, h   int
	}{
		{"negative x", -1, 0, 1, 1},
		{"negative y", 0, -1, 1, 1},
		{"zero width", 0, 0, 0, 1},
		{"zero height", 0, 0, 1, 0},
		{"negative width", 0, 0, -2, 1},
		{"past right edge", 3, 0, 2, 1},
		{"past bottom edge", 0, 2, 1, 3},
		{"larger than image", 0, 0, 5, 5},
		{"x at int limit", math.MaxInt, 0, 1, 1},
		{"y at int limit", 0, math.MaxInt, 1, 1},
		{"width at int limit", 1, 0, math.MaxInt, 1},
		{"height at int limit", 0, 1, 1, math.MaxInt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := patterned(t, 4, 4, RGBA, true)
			before := b.Clone()
			err := b.Fill(tt.ox, tt.oy, tt.w, tt.h, Opaque(1, 2, 3))
			assert.ErrorIs(t, err, ErrInvalidRegion)
			assert.Equal(t, before.Pix(), b.Pix(), "nothing may be written on failure")
		})
	}
}
