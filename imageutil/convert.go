package imageutil

import "image"

// ToGray converts a Mat to a single-channel Mat using the standard
// luminance formula: Y = 0.299*R + 0.587*G + 0.114*B
// This matches the BT.601 standard used by OpenCV's COLOR_BGR2GRAY.
// One and two channel inputs keep their first channel.
func ToGray(m *Mat) *Mat {
	gray := NewMat(m.Rows(), m.Cols(), 1)

	for y := 0; y < m.Rows(); y++ {
		for x := 0; x < m.Cols(); x++ {
			if m.Channels() < 3 {
				gray.Pix[y*m.Cols()+x] = m.At(y, x, 0)
				continue
			}
			c := m.GetRGB(y, x)
			// Integer math, scaled by 1000
			lum := (299*int(c.R) + 587*int(c.G) + 114*int(c.B) + 500) / 1000
			if lum > 255 {
				lum = 255
			}
			gray.Pix[y*m.Cols()+x] = uint8(lum)
		}
	}

	return gray
}

// grayImage returns the luminance of m as an image.Gray.
func grayImage(m *Mat) *image.Gray {
	gray := ToGray(m)
	img := image.NewGray(image.Rect(0, 0, gray.Cols(), gray.Rows()))
	copy(img.Pix, gray.Pix)
	return img
}
