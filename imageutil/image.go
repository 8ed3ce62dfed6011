// Package imageutil provides a pure Go pixel matrix and codec layer with the
// same channel layout OpenCV uses, so images can be loaded, edited and saved
// without linking gocv.
package imageutil

import (
	"fmt"
	"image"
	"image/color"
)

// MaxChannels is the largest channel count a Mat can hold.
const MaxChannels = 5

// RGB represents a color in the RGB color space with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// ToColor converts RGB to color.RGBA for use with standard library.
func (rgb RGB) ToColor() color.RGBA {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// Mat is an interleaved 8-bit pixel matrix with 1 to MaxChannels channels.
// Channels are stored in OpenCV order: gray, gray+alpha, BGR, BGRA.
type Mat struct {
	Pix      []uint8
	rows     int
	cols     int
	channels int
}

// NewMat creates a zeroed Mat. It panics if channels is outside
// [1, MaxChannels] or either dimension is negative.
func NewMat(rows, cols, channels int) *Mat {
	if channels < 1 || channels > MaxChannels {
		panic(fmt.Sprintf("imageutil: invalid channel count %d", channels))
	}
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("imageutil: invalid dimensions %dx%d", cols, rows))
	}
	return &Mat{
		Pix:      make([]uint8, rows*cols*channels),
		rows:     rows,
		cols:     cols,
		channels: channels,
	}
}

// MatFromImage converts any image.Image to a Mat. Gray images become one
// channel, opaque color images three (BGR) and everything else four (BGRA).
func MatFromImage(img image.Image) *Mat {
	bounds := img.Bounds()
	rows, cols := bounds.Dy(), bounds.Dx()

	switch src := img.(type) {
	case *image.Gray:
		m := NewMat(rows, cols, 1)
		for y := 0; y < rows; y++ {
			i := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(m.Pix[y*cols:(y+1)*cols], src.Pix[i:i+cols])
		}
		return m
	case *image.Gray16:
		m := NewMat(rows, cols, 1)
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				m.Pix[y*cols+x] = uint8(src.Gray16At(bounds.Min.X+x, bounds.Min.Y+y).Y >> 8)
			}
		}
		return m
	}

	channels := 4
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		channels = 3
	}
	m := NewMat(rows, cols, channels)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			i := m.offset(y, x)
			m.Pix[i], m.Pix[i+1], m.Pix[i+2] = c.B, c.G, c.R
			if channels == 4 {
				m.Pix[i+3] = c.A
			}
		}
	}
	return m
}

func (m *Mat) offset(row, col int) int {
	return (row*m.cols + col) * m.channels
}

// Rows returns the image height.
func (m *Mat) Rows() int { return m.rows }

// Cols returns the image width.
func (m *Mat) Cols() int { return m.cols }

// Channels returns the number of channels per pixel.
func (m *Mat) Channels() int { return m.channels }

// Stride returns the distance in bytes between vertically adjacent pixels.
func (m *Mat) Stride() int { return m.cols * m.channels }

// Empty reports whether the Mat holds no pixel data.
func (m *Mat) Empty() bool {
	return m == nil || len(m.Pix) == 0
}

// At returns channel ch of the pixel at (row, col).
func (m *Mat) At(row, col, ch int) uint8 {
	return m.Pix[m.offset(row, col)+ch]
}

// Set sets channel ch of the pixel at (row, col).
func (m *Mat) Set(row, col, ch int, v uint8) {
	m.Pix[m.offset(row, col)+ch] = v
}

// GetRGB returns the displayable color at (row, col). Gray channels are
// replicated, alpha and any fifth channel are ignored.
func (m *Mat) GetRGB(row, col int) RGB {
	i := m.offset(row, col)
	if m.channels < 3 {
		v := m.Pix[i]
		return RGB{R: v, G: v, B: v}
	}
	return RGB{R: m.Pix[i+2], G: m.Pix[i+1], B: m.Pix[i]}
}

// Clone creates a deep copy of the Mat.
func (m *Mat) Clone() *Mat {
	clone := NewMat(m.rows, m.cols, m.channels)
	copy(clone.Pix, m.Pix)
	return clone
}

// ToImage converts the Mat to a standard library image. One channel maps to
// image.Gray, three to image.RGBA and four to image.NRGBA. Two and five
// channel layouts have no standard equivalent and return an error.
func (m *Mat) ToImage() (image.Image, error) {
	rect := image.Rect(0, 0, m.cols, m.rows)
	switch m.channels {
	case 1:
		gray := image.NewGray(rect)
		copy(gray.Pix, m.Pix)
		return gray, nil
	case 3:
		rgba := image.NewRGBA(rect)
		for y := 0; y < m.rows; y++ {
			for x := 0; x < m.cols; x++ {
				rgba.SetRGBA(x, y, m.GetRGB(y, x).ToColor())
			}
		}
		return rgba, nil
	case 4:
		nrgba := image.NewNRGBA(rect)
		for y := 0; y < m.rows; y++ {
			for x := 0; x < m.cols; x++ {
				i := m.offset(y, x)
				nrgba.SetNRGBA(x, y, color.NRGBA{
					R: m.Pix[i+2], G: m.Pix[i+1], B: m.Pix[i], A: m.Pix[i+3],
				})
			}
		}
		return nrgba, nil
	}
	return nil, fmt.Errorf("%d-channel images have no standard encoding", m.channels)
}

// RGBA renders the displayable colors of the Mat into an opaque image.RGBA,
// for any channel count.
func (m *Mat) RGBA() *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, m.cols, m.rows))
	for y := 0; y < m.rows; y++ {
		for x := 0; x < m.cols; x++ {
			rgba.SetRGBA(x, y, m.GetRGB(y, x).ToColor())
		}
	}
	return rgba
}
