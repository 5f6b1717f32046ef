package render

import "image"

// Frame is a row-major ARGB8888 pixel buffer.
type Frame struct {
	Width  int
	Height int
	Pix    []uint32
}

func NewFrame(width, height int) *Frame {
	width, height = max(width, 0), max(height, 0)
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]uint32, width*height),
	}
}

func (f *Frame) empty() bool {
	return f == nil || f.Width <= 0 || f.Height <= 0 || len(f.Pix) < f.Width*f.Height
}

// At returns the pixel at (x, y), or 0 outside the frame.
func (f *Frame) At(x, y int) uint32 {
	if f.empty() || x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return 0
	}
	return f.Pix[y*f.Width+x]
}

func (f *Frame) set(x, y int, c uint32) {
	f.Pix[y*f.Width+x] = c
}

// RGBA converts the frame to RGBA byte order, reusing dst when it is large
// enough.
func (f *Frame) RGBA(dst []byte) []byte {
	if f.empty() {
		return dst[:0]
	}
	n := f.Width * f.Height * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, c := range f.Pix[:f.Width*f.Height] {
		r, g, b, a := Channels(c)
		dst[i*4] = r
		dst[i*4+1] = g
		dst[i*4+2] = b
		dst[i*4+3] = a
	}
	return dst
}

// Image copies the frame into a new image.RGBA.
func (f *Frame) Image() *image.RGBA {
	if f.empty() {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	img.Pix = f.RGBA(img.Pix)
	return img
}
