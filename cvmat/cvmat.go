// Package cvmat implements climage.Backend on OpenCV through gocv. It needs
// OpenCV installed at build time.
package cvmat

import (
	"fmt"

	"gocv.io/x/gocv"

	"github.com/wbrown/climage"
)

// Mat adapts a gocv.Mat holding 8-bit channels to climage.Matrix.
type Mat struct {
	mat gocv.Mat
}

// Wrap takes ownership of an 8-bit gocv.Mat.
func Wrap(m gocv.Mat) *Mat {
	return &Mat{mat: m}
}

// Mat returns the underlying gocv.Mat. It stays owned by m.
func (m *Mat) Mat() gocv.Mat { return m.mat }

func (m *Mat) Rows() int     { return m.mat.Rows() }
func (m *Mat) Cols() int     { return m.mat.Cols() }
func (m *Mat) Channels() int { return m.mat.Channels() }
func (m *Mat) Empty() bool   { return m.mat.Empty() }

// At returns channel ch of the pixel at (row, col). Channels are
// interleaved, so the byte column is col*channels+ch.
func (m *Mat) At(row, col, ch int) uint8 {
	return m.mat.GetUCharAt(row, col*m.mat.Channels()+ch)
}

// Set sets channel ch of the pixel at (row, col).
func (m *Mat) Set(row, col, ch int, v uint8) {
	m.mat.SetUCharAt(row, col*m.mat.Channels()+ch, v)
}

func (m *Mat) Clone() climage.Matrix {
	return &Mat{mat: m.mat.Clone()}
}

func (m *Mat) Close() error {
	return m.mat.Close()
}

// matType8U returns the CV_8UC(n) type for n channels.
func matType8U(channels int) gocv.MatType {
	return gocv.MatType((channels - 1) << 3)
}

// depth returns the element depth of a gocv.MatType, e.g. MatTypeCV8U.
func depth(t gocv.MatType) gocv.MatType {
	return t & 7
}

// Backend reads, writes and shows images with OpenCV's imgcodecs and
// highgui modules.
type Backend struct {
	// ReadFlags are passed to IMRead. New sets gocv.IMReadUnchanged so
	// alpha channels survive.
	ReadFlags gocv.IMReadFlag
}

// New returns a Backend that loads images unchanged.
func New() *Backend {
	return &Backend{ReadFlags: gocv.IMReadUnchanged}
}

func (b *Backend) Read(path string) (climage.Matrix, error) {
	img := gocv.IMRead(path, b.ReadFlags)
	if img.Empty() {
		img.Close()
		return nil, fmt.Errorf("could not read image from %s", path)
	}

	switch depth(img.Type()) {
	case gocv.MatTypeCV8U:
		return Wrap(img), nil
	case gocv.MatTypeCV16U:
		// 16-bit PNG and TIFF files are scaled down to 8 bits.
		defer img.Close()
		dst := gocv.NewMat()
		img.ConvertToWithParams(&dst, matType8U(img.Channels()), 1.0/257, 0)
		if dst.Empty() {
			dst.Close()
			return nil, fmt.Errorf("could not convert %s to 8 bits", path)
		}
		return Wrap(dst), nil
	}
	img.Close()
	return nil, fmt.Errorf("unsupported pixel depth in %s", path)
}

func (b *Backend) Write(path string, m climage.Matrix, f climage.Format) error {
	src, release, err := toGocv(m)
	if err != nil {
		return err
	}
	defer release()

	params := []int{int(writeFlag(f.Param)), f.Level}
	if !gocv.IMWriteWithParams(path, src, params) {
		return fmt.Errorf("could not write image to %s", path)
	}
	return nil
}

// Show opens a highgui window titled title and waits for a key press.
func (b *Backend) Show(title string, m climage.Matrix) error {
	src, release, err := toGocv(m)
	if err != nil {
		return err
	}
	defer release()

	window := gocv.NewWindow(title)
	defer func(window *gocv.Window) {
		err := window.Close()
		if err != nil {
			fmt.Println("Error closing window")
		}
	}(window)

	window.IMShow(src)
	window.WaitKey(0)
	return nil
}

func writeFlag(p climage.Param) gocv.IMWriteFlag {
	switch p {
	case climage.ParamJPEGQuality:
		return gocv.IMWriteJpegQuality
	case climage.ParamPXMBinary:
		return gocv.IMWritePxmBinary
	default:
		return gocv.IMWritePngCompression
	}
}

// toGocv returns m as a gocv.Mat, copying the pixels of matrices from other
// backends. release frees the copy, if one was made.
func toGocv(m climage.Matrix) (gocv.Mat, func(), error) {
	if cm, ok := m.(*Mat); ok {
		return cm.mat, func() {}, nil
	}

	channels := m.Channels()
	if channels < 1 || channels > climage.MaxChannels {
		return gocv.Mat{}, nil, fmt.Errorf("%w: %d", climage.ErrUnsupportedChannels, channels)
	}
	mat := gocv.NewMatWithSize(m.Rows(), m.Cols(), matType8U(channels))
	for y := 0; y < m.Rows(); y++ {
		for x := 0; x < m.Cols(); x++ {
			for ch := 0; ch < channels; ch++ {
				mat.SetUCharAt(y, x*channels+ch, m.At(y, x, ch))
			}
		}
	}
	return mat, func() { mat.Close() }, nil
}
