// Package imaging normalizes uploaded item photos.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"

	"golang.org/x/image/draw"
)

const (
	// MaxBytes caps the size of an uploaded photo.
	MaxBytes = 10 << 20

	// MaxDimension is the longest side of a stored photo.
	MaxDimension = 800

	// Quality is the JPEG quality of stored photos.
	Quality = 82
)

var (
	ErrTooLarge          = errors.New("photo too large")
	ErrUnsupportedFormat = errors.New("unsupported photo format")
)

var accepted = map[string]func(io.Reader) (image.Image, error){
	"image/jpeg": jpeg.Decode,
	"image/png":  png.Decode,
	"image/gif":  gif.Decode,
}

// Photo is a normalized item photo.
type Photo struct {
	Data []byte
	MIME string

	Width, Height int
}

// Normalize reads an uploaded photo, sniffs its format, fits it within
// MaxDimension and re-encodes it as JPEG on a white background.
func Normalize(r io.Reader) (*Photo, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading photo: %w", err)
	}
	if len(data) > MaxBytes {
		return nil, ErrTooLarge
	}

	mime := http.DetectContentType(data)
	decode, ok := accepted[mime]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, mime)
	}

	img, err := decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding photo: %w", err)
	}

	w, h := Fit(img.Bounds().Dx(), img.Bounds().Dy(), MaxDimension)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	if w == img.Bounds().Dx() && h == img.Bounds().Dy() {
		draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Over)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: Quality}); err != nil {
		return nil, fmt.Errorf("encoding photo: %w", err)
	}

	return &Photo{Data: buf.Bytes(), MIME: "image/jpeg", Width: w, Height: h}, nil
}

// Fit returns the size of a w×h image scaled down, keeping its aspect ratio,
// so that neither side exceeds max. Smaller images are left as they are.
func Fit(w, h, max int) (int, int) {
	if w <= max && h <= max {
		return w, h
	}
	if w >= h {
		return max, atLeastOne(h * max / w)
	}
	return atLeastOne(w * max / h), max
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
