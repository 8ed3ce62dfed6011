package climage

import (
	"fmt"

	"github.com/wbrown/climage/imageutil"
)

// Matrix is a decoded pixel matrix owned by a backend. Channel values are
// 8 bits; channel order is whatever the backend decodes to.
type Matrix interface {
	Rows() int
	Cols() int
	Channels() int
	Empty() bool
	At(row, col, ch int) uint8
	Set(row, col, ch int, v uint8)
	// Clone returns an independent deep copy.
	Clone() Matrix
	// Close releases any memory held outside the Go heap.
	Close() error
}

// Backend decodes, encodes and displays matrices.
type Backend interface {
	Read(path string) (Matrix, error)
	Write(path string, m Matrix, f Format) error
	// Show displays m and blocks until the viewer reports a key press or
	// close event.
	Show(title string, m Matrix) error
}

// GoBackend is the pure Go Backend built on imageutil. Show draws into the
// terminal.
type GoBackend struct{}

// WrapMat adapts an imageutil.Mat to the Matrix interface.
func WrapMat(m *imageutil.Mat) Matrix {
	return goMat{m}
}

type goMat struct {
	*imageutil.Mat
}

func (m goMat) Clone() Matrix { return goMat{m.Mat.Clone()} }
func (m goMat) Close() error  { return nil }

// asMat returns m as an imageutil.Mat, copying the pixels of foreign
// matrices.
func asMat(m Matrix) (*imageutil.Mat, error) {
	if gm, ok := m.(goMat); ok {
		return gm.Mat, nil
	}
	if m.Channels() < 1 || m.Channels() > imageutil.MaxChannels {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedChannels, m.Channels())
	}
	mat := imageutil.NewMat(m.Rows(), m.Cols(), m.Channels())
	for y := 0; y < m.Rows(); y++ {
		for x := 0; x < m.Cols(); x++ {
			for ch := 0; ch < m.Channels(); ch++ {
				mat.Set(y, x, ch, m.At(y, x, ch))
			}
		}
	}
	return mat, nil
}

func (GoBackend) Read(path string) (Matrix, error) {
	mat, err := imageutil.LoadMat(path)
	if err != nil {
		return nil, err
	}
	return goMat{mat}, nil
}

func (GoBackend) Write(path string, m Matrix, f Format) error {
	mat, err := asMat(m)
	if err != nil {
		return err
	}
	switch f.Param {
	case ParamPNGCompression:
		return imageutil.SavePNG(mat, path, f.Level)
	case ParamJPEGQuality:
		return imageutil.SaveJPEG(mat, path, f.Level)
	case ParamPXMBinary:
		switch f.Ext {
		case ".pbm":
			return imageutil.SavePNM(mat, path, imageutil.PBM)
		case ".pgm":
			return imageutil.SavePNM(mat, path, imageutil.PGM)
		default:
			return imageutil.SavePNM(mat, path, imageutil.PPM)
		}
	}
	return fmt.Errorf("unsupported codec parameter %v", f.Param)
}

func (GoBackend) Show(title string, m Matrix) error {
	mat, err := asMat(m)
	if err != nil {
		return err
	}
	return imageutil.Show(title, mat)
}
