package imageutil

import (
	"image"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationArea uses Catmull-Rom for high-quality downscaling.
	// This is the closest equivalent to OpenCV's INTER_AREA.
	InterpolationArea Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	// Equivalent to OpenCV's INTER_LINEAR.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation.
	// Fastest but lowest quality.
	InterpolationNearest
)

func (interp Interpolation) scaler() draw.Scaler {
	switch interp {
	case InterpolationLinear:
		return draw.BiLinear
	case InterpolationNearest:
		return draw.NearestNeighbor
	default:
		return draw.CatmullRom
	}
}

// Resize resizes a Mat to the specified dimensions using the given
// interpolation method. Only the displayable color survives: the result is
// always a three channel BGR Mat.
func Resize(m *Mat, width, height int, interp Interpolation) *Mat {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	interp.scaler().Scale(dst, dst.Bounds(), m.RGBA(), image.Rect(0, 0, m.Cols(), m.Rows()), draw.Src, nil)
	return MatFromImage(opaqueRGBA{dst})
}

// ResizeToWidth resizes a Mat to the specified width while maintaining
// aspect ratio. rowScale stretches the height, which lets callers compensate
// for non-square terminal cells.
func ResizeToWidth(m *Mat, width int, rowScale float64, interp Interpolation) *Mat {
	aspectRatio := float64(m.Cols()) / float64(m.Rows())
	height := max(1, int(float64(width)/aspectRatio*rowScale))
	return Resize(m, width, height, interp)
}

// opaqueRGBA marks a scaled image as opaque so MatFromImage keeps three
// channels.
type opaqueRGBA struct {
	*image.RGBA
}

func (opaqueRGBA) Opaque() bool { return true }
