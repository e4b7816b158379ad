package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func encodeJPEG(t *testing.T, w, h int) []byte {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, solid(w, h, color.RGBA{255, 0, 0, 255}), nil))
	return buf.Bytes()
}

func TestNormalizeJPEG(t *testing.T) {
	photo, err := Normalize(bytes.NewReader(encodeJPEG(t, 100, 60)))
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", photo.MIME)
	assert.Equal(t, 100, photo.Width)
	assert.Equal(t, 60, photo.Height)
	assert.NotEmpty(t, photo.Data)
}

func TestNormalizeDownscales(t *testing.T) {
	photo, err := Normalize(bytes.NewReader(encodeJPEG(t, 1600, 1200)))
	require.NoError(t, err)

	img, _, err := image.Decode(bytes.NewReader(photo.Data))
	require.NoError(t, err)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())
}

func TestNormalizeTransparentPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, solid(10, 10, color.RGBA{})))

	photo, err := Normalize(&buf)
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(photo.Data))
	require.NoError(t, err)
	r, g, b, _ := img.At(5, 5).RGBA()
	// Transparent pixels end up close to white after JPEG compression.
	assert.Greater(t, r>>8, uint32(240))
	assert.Greater(t, g>>8, uint32(240))
	assert.Greater(t, b>>8, uint32(240))
}

func TestNormalizeGIF(t *testing.T) {
	pal := image.NewPaletted(image.Rect(0, 0, 20, 20), color.Palette{color.Black, color.White})
	var buf bytes.Buffer
	require.NoError(t, gif.Encode(&buf, pal, nil))

	photo, err := Normalize(&buf)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", photo.MIME)
}

func TestNormalizeRejects(t *testing.T) {
	_, err := Normalize(bytes.NewReader([]byte("not an image")))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Normalize(bytes.NewReader(make([]byte, MaxBytes+1)))
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestFit(t *testing.T) {
	tests := []struct {
		w, h, max    int
		wantW, wantH int
	}{
		{100, 50, 800, 100, 50},
		{1600, 800, 800, 800, 400},
		{800, 1600, 800, 400, 800},
		{4000, 2, 800, 800, 1},
		{1000, 1000, 800, 800, 800},
	}
	for _, tt := range tests {
		w, h := Fit(tt.w, tt.h, tt.max)
		assert.Equal(t, tt.wantW, w, "%dx%d", tt.w, tt.h)
		assert.Equal(t, tt.wantH, h, "%dx%d", tt.w, tt.h)
	}
}
