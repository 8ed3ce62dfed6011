package climage

import "fmt"

// MaxChannels is the largest channel count the pixel accessors support.
const MaxChannels = 5

// Failure values of PixelIntensity.
const (
	IntensityOutOfRange      = -2.0
	IntensityChannelMismatch = -1.0
)

// Width returns the width in pixels, or 0 if the Image is uninitialized.
func (img *Image) Width() int {
	if !img.Initialized() {
		return 0
	}
	return img.mat.Cols()
}

// Height returns the height in pixels, or 0 if the Image is uninitialized.
func (img *Image) Height() int {
	if !img.Initialized() {
		return 0
	}
	return img.mat.Rows()
}

// Channels returns the number of channels per pixel, or 0 if the Image is
// uninitialized.
func (img *Image) Channels() int {
	if !img.Initialized() {
		return 0
	}
	return img.mat.Channels()
}

// inRange reports whether (row, col) lies inside an initialized image.
func (img *Image) inRange(row, col int) bool {
	return img.Initialized() &&
		row >= 0 && row < img.mat.Rows() &&
		col >= 0 && col < img.mat.Cols()
}

// Pixel returns the channel values at (row, col), one per channel. It
// returns nil if the Image is uninitialized, the coordinates are out of
// range, or the image has more than MaxChannels channels.
func (img *Image) Pixel(row, col int) []uint8 {
	if !img.inRange(row, col) {
		return nil
	}
	n := img.mat.Channels()
	if n < 1 || n > MaxChannels {
		return nil
	}
	px := make([]uint8, n)
	for ch := range px {
		px[ch] = img.mat.At(row, col, ch)
	}
	return px
}

// PixelInts is Pixel with each channel widened to uint32.
func (img *Image) PixelInts(row, col int) []uint32 {
	px := img.Pixel(row, col)
	if px == nil {
		return nil
	}
	wide := make([]uint32, len(px))
	for i, v := range px {
		wide[i] = uint32(v)
	}
	return wide
}

// PixelIntensity returns the unweighted mean of the channel values at
// (row, col), truncated to an integer, for an image expected to have
// channels channels. It returns IntensityOutOfRange if the coordinates lie
// outside the image and IntensityChannelMismatch if the image does not have
// exactly channels channels.
func (img *Image) PixelIntensity(row, col, channels int) float64 {
	if !img.inRange(row, col) {
		return IntensityOutOfRange
	}
	if channels != img.mat.Channels() {
		return IntensityChannelMismatch
	}
	var sum uint
	for ch := 0; ch < channels; ch++ {
		sum += uint(img.mat.At(row, col, ch))
	}
	return float64(sum / uint(channels))
}

// SetPixel overwrites every channel of the pixel at (row, col).
func (img *Image) SetPixel(row, col int, values []uint8) error {
	wide := make([]uint32, len(values))
	for i, v := range values {
		wide[i] = uint32(v)
	}
	return img.SetPixelInts(row, col, wide)
}

// SetPixelInts overwrites every channel of the pixel at (row, col). values
// must hold exactly one value per channel, each at most 255. All values are
// checked before any channel is written.
func (img *Image) SetPixelInts(row, col int, values []uint32) error {
	if !img.Initialized() {
		return ErrUninitialized
	}
	if !img.inRange(row, col) {
		return fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfBounds,
			row, col, img.mat.Rows(), img.mat.Cols())
	}
	n := img.mat.Channels()
	if n < 1 || n > MaxChannels {
		return fmt.Errorf("%w: %d", ErrUnsupportedChannels, n)
	}
	if len(values) != n {
		return fmt.Errorf("%w: got %d values for %d channels",
			ErrChannelCount, len(values), n)
	}
	for ch, v := range values {
		if v > 255 {
			return fmt.Errorf("%w: channel %d is %d", ErrChannelValue, ch, v)
		}
	}

	for ch, v := range values {
		img.mat.Set(row, col, ch, uint8(v))
	}
	return nil
}
