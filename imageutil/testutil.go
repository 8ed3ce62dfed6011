package imageutil

// CreateGradientMat creates a horizontal gradient test image. Every channel
// of a pixel carries the same value.
func CreateGradientMat(rows, cols, channels int) *Mat {
	m := NewMat(rows, cols, channels)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			v := uint8(0)
			if cols > 1 {
				v = uint8(255 * x / (cols - 1))
			}
			for ch := 0; ch < channels; ch++ {
				m.Set(y, x, ch, v)
			}
		}
	}
	return m
}

// CreateSolidMat creates a solid image whose pixels all hold values. The
// channel count is len(values).
func CreateSolidMat(rows, cols int, values ...uint8) *Mat {
	m := NewMat(rows, cols, len(values))
	for i := 0; i < len(m.Pix); i += len(values) {
		copy(m.Pix[i:], values)
	}
	return m
}

// CreateCheckerboardMat creates a three channel black and white
// checkerboard pattern.
func CreateCheckerboardMat(rows, cols, squareSize int) *Mat {
	m := NewMat(rows, cols, 3)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if ((x/squareSize)+(y/squareSize))%2 == 0 {
				for ch := 0; ch < 3; ch++ {
					m.Set(y, x, ch, 255)
				}
			}
		}
	}
	return m
}

// CreateColorBarsMat creates a BGR color bars test pattern.
func CreateColorBarsMat(rows, cols int) *Mat {
	m := NewMat(rows, cols, 3)
	colors := []RGB{
		{255, 255, 255}, // White
		{255, 255, 0},   // Yellow
		{0, 255, 255},   // Cyan
		{0, 255, 0},     // Green
		{255, 0, 255},   // Magenta
		{255, 0, 0},     // Red
		{0, 0, 255},     // Blue
		{0, 0, 0},       // Black
	}

	barWidth := max(1, cols/len(colors))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c := colors[min(x/barWidth, len(colors)-1)]
			m.Set(y, x, 0, c.B)
			m.Set(y, x, 1, c.G)
			m.Set(y, x, 2, c.R)
		}
	}
	return m
}

// CalculateMaxDiff calculates the maximum channel difference between two
// Mats. Mats of different shape report 256.
func CalculateMaxDiff(m1, m2 *Mat) int {
	if m1.Rows() != m2.Rows() || m1.Cols() != m2.Cols() ||
		m1.Channels() != m2.Channels() {
		return 256
	}

	maxDiff := 0
	for i := range m1.Pix {
		maxDiff = max(maxDiff, abs(int(m1.Pix[i])-int(m2.Pix[i])))
	}
	return maxDiff
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
