package model

import (
	"errors"
	"fmt"
)

// ErrInvalidTexture is returned for textures with no usable pixels.
var ErrInvalidTexture = errors.New("invalid texture")

// Texture is a row-major ARGB8888 image.
type Texture struct {
	Width  int
	Height int
	Pixels []uint32
}

// NewTexture wraps pixels, which must hold at least width*height entries.
func NewTexture(width, height int, pixels []uint32) (*Texture, error) {
	t := &Texture{Width: width, Height: height, Pixels: pixels}
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %dx%d with %d pixels", ErrInvalidTexture, width, height, len(pixels))
	}
	return t, nil
}

// Valid reports whether the texture can be sampled.
func (t *Texture) Valid() bool {
	return t != nil && t.Width > 0 && t.Height > 0 && len(t.Pixels) >= t.Width*t.Height
}

// At returns the texel at (x, y). Coordinates must be in range.
func (t *Texture) At(x, y int) uint32 {
	return t.Pixels[y*t.Width+x]
}
