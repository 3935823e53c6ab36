package raster

import (
	"image"
	"image/color"
)

// Channel indices of a Color. The order matches the TGA pixel layout.
const (
	Blue = iota
	Green
	Red
	Alpha
)

// Color is a BGRA sample.
type Color [4]uint8

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{b, g, r, 255}
}

// Gray returns an opaque gray level. Depth samples are stored this way so the
// depth buffer can be saved as a visualization without conversion.
func Gray(v uint8) Color {
	return Color{v, v, v, 255}
}

// Image is a mutable pixel buffer stored as a flat slice for cache locality.
// Coordinates outside [0,Width)×[0,Height) read as the zero Color and
// writes to them are dropped.
type Image struct {
	width  int
	height int
	pix    []uint8 // BGRA interleaved, len = w*h*4
}

// NewImage allocates a zeroed buffer.
func NewImage(w, h int) *Image {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Image{
		width:  w,
		height: h,
		pix:    make([]uint8, w*h*4),
	}
}

func (m *Image) Width() int  { return m.width }
func (m *Image) Height() int { return m.height }

func (m *Image) offset(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return 0, false
	}
	return (y*m.width + x) * 4, true
}

// Get returns the color at (x, y).
func (m *Image) Get(x, y int) Color {
	i, ok := m.offset(x, y)
	if !ok {
		return Color{}
	}
	return Color{m.pix[i], m.pix[i+1], m.pix[i+2], m.pix[i+3]}
}

// Set stores c at (x, y).
func (m *Image) Set(x, y int, c Color) {
	i, ok := m.offset(x, y)
	if !ok {
		return
	}
	copy(m.pix[i:i+4], c[:])
}

// Fill sets every pixel to c.
func (m *Image) Fill(c Color) {
	for i := 0; i < len(m.pix); i += 4 {
		copy(m.pix[i:i+4], c[:])
	}
}

// FlipVertical returns a copy with the rows in reverse order.
func (m *Image) FlipVertical() *Image {
	out := NewImage(m.width, m.height)
	stride := m.width * 4
	for y := 0; y < m.height; y++ {
		src := m.pix[y*stride : (y+1)*stride]
		dst := (m.height - 1 - y) * stride
		copy(out.pix[dst:dst+stride], src)
	}
	return out
}

// ColorModel implements image.Image.
func (m *Image) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements image.Image.
func (m *Image) Bounds() image.Rectangle { return image.Rect(0, 0, m.width, m.height) }

// At implements image.Image.
func (m *Image) At(x, y int) color.Color {
	c := m.Get(x, y)
	return color.NRGBA{R: c[Red], G: c[Green], B: c[Blue], A: c[Alpha]}
}

// Opaque reports whether every pixel has full alpha.
func (m *Image) Opaque() bool {
	for i := Alpha; i < len(m.pix); i += 4 {
		if m.pix[i] != 255 {
			return false
		}
	}
	return true
}
