package raster

import (
	"image"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateRight_Small(t *testing.T) {
	// 3x2:      rotated right, 2x3:
	//   a b c     d a
	//   d e f     e b
	//             f c
	pix := []byte{
		'a', 0, 0, 'b', 0, 0, 'c', 0, 0,
		'd', 0, 0, 'e', 0, 0, 'f', 0, 0,
	}
	b, err := FromPix(3, 2, RGB, pix)
	require.NoError(t, err)

	b.RotateRight()
	assert.Equal(t, Size{Width: 2, Height: 3}, b.Size())
	assert.Equal(t, []byte{
		'd', 0, 0, 'a', 0, 0,
		'e', 0, 0, 'b', 0, 0,
		'f', 0, 0, 'c', 0, 0,
	}, b.Pix())
}

func TestRotateLeft_Small(t *testing.T) {
	// 3x2:      rotated left, 2x3:
	//   a b c     c f
	//   d e f     b e
	//             a d
	pix := []byte{
		'a', 1, 2, 3, 'b', 1, 2, 3, 'c', 1, 2, 3,
		'd', 1, 2, 3, 'e', 1, 2, 3, 'f', 1, 2, 3,
	}
	b, err := FromPix(3, 2, RGBA, pix)
	require.NoError(t, err)

	b.RotateLeft()
	assert.Equal(t, Size{Width: 2, Height: 3}, b.Size())
	assert.Equal(t, []byte{
		'c', 1, 2, 3, 'f', 1, 2, 3,
		'b', 1, 2, 3, 'e', 1, 2, 3,
		'a', 1, 2, 3, 'd', 1, 2, 3,
	}, b.Pix())
}

func TestRotate_Coordinates(t *testing.T) {
	b := patterned(t, 5, 3, RGBA, true)
	orig := b.Clone()

	b.RotateRight()
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			want, _ := orig.Get(x, y)
			got, err := b.Get(3-1-y, x)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	}

	b = orig.Clone()
	b.RotateLeft()
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			want, _ := orig.Get(x, y)
			got, err := b.Get(y, 5-1-x)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	}
}

func TestRotateRight_FourTimesIsIdentity(t *testing.T) {
	for _, layout := range []Layout{RGB, RGBA} {
		t.Run(layout.String(), func(t *testing.T) {
			b := patterned(t, 7, 4, layout, layout == RGBA)
			orig := b.Clone()
			for i := 0; i < 4; i++ {
				b.RotateRight()
			}
			assert.Equal(t, orig.Size(), b.Size())
			assert.Equal(t, pixels(t, orig), pixels(t, b))
		})
	}
}

func TestRotate_RightThenLeftIsIdentity(t *testing.T) {
	b := patterned(t, 6, 9, RGBA, true)
	orig := b.Clone()
	b.RotateRight()
	b.RotateLeft()
	assert.Equal(t, orig.Size(), b.Size())
	assert.Equal(t, orig.Pix(), b.Pix())
}

func TestRotate_MatchesImaging(t *testing.T) {
	src := patterned(t, 6, 4, RGB, false)

	tests := []struct {
		name   string
		rotate func(*Buffer)
		want   func() [][4]uint8
	}{
		{"right", (*Buffer).RotateRight, func() [][4]uint8 { return nrgbaPixels(imaging.Rotate270(src)) }},
		{"left", (*Buffer).RotateLeft, func() [][4]uint8 { return nrgbaPixels(imaging.Rotate90(src)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := tt.want()
			b := src.Clone()
			tt.rotate(b)

			got := make([][4]uint8, 0, len(want))
			for _, c := range pixels(t, b) {
				got = append(got, [4]uint8{c.R, c.G, c.B, c.A})
			}
			assert.Equal(t, want, got)
		})
	}
}

func nrgbaPixels(img *image.NRGBA) [][4]uint8 {
	r := img.Bounds()
	out := make([][4]uint8, 0, r.Dx()*r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			out = append(out, [4]uint8{c.R, c.G, c.B, c.A})
		}
	}
	return out
}

func TestRotate_Empty(t *testing.T) {
	b, err := New(0, 3, RGB)
	require.NoError(t, err)
	b.RotateRight()
	assert.Equal(t, Size{Width: 3, Height: 0}, b.Size())
	assert.Empty(t, b.Pix())
}
