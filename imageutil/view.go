package imageutil

import (
	"fmt"
	"strings"

	"github.com/mattn/go-tty"
)

const (
	ESC = "\u001b"

	// DefaultViewWidth is the preview width used when the terminal size
	// cannot be queried.
	DefaultViewWidth = 80

	upperHalf = '▀'
)

// cell is one terminal character: the upper pixel is drawn in the
// foreground, the lower pixel in the background. A nil bg leaves the
// terminal's own background.
type cell struct {
	fg RGB
	bg *RGB
}

// RenderANSI renders a Mat as 24-bit color half blocks, two image rows per
// line of text. Images wider than width columns are scaled down first.
// Adjacent cells with identical colors share a single escape sequence.
func RenderANSI(m *Mat, width int) string {
	if m.Empty() || width <= 0 {
		return ""
	}
	if m.Cols() > width {
		m = ResizeToWidth(m, width, 1.0, InterpolationArea)
	}

	var sb strings.Builder
	for y := 0; y < m.Rows(); y += 2 {
		var current cell
		count := 0
		for x := 0; x < m.Cols(); x++ {
			c := cell{fg: m.GetRGB(y, x)}
			if y+1 < m.Rows() {
				bg := m.GetRGB(y+1, x)
				c.bg = &bg
			}
			if count > 0 && sameCell(c, current) {
				count++
				continue
			}
			if count > 0 {
				sb.WriteString(formatANSICode(current, count))
			}
			current, count = c, 1
		}
		if count > 0 {
			sb.WriteString(formatANSICode(current, count))
		}
		// Reset colors at the end of each line
		sb.WriteString(ESC + "[0m\n")
	}
	return sb.String()
}

func sameCell(a, b cell) bool {
	if a.fg != b.fg || (a.bg == nil) != (b.bg == nil) {
		return false
	}
	return a.bg == nil || *a.bg == *b.bg
}

// formatANSICode formats the escape sequence for a run of count identical
// cells followed by the half block characters themselves.
func formatANSICode(c cell, count int) string {
	var code strings.Builder
	fmt.Fprintf(&code, "%s[38;2;%d;%d;%d", ESC, c.fg.R, c.fg.G, c.fg.B)
	if c.bg != nil {
		fmt.Fprintf(&code, ";48;2;%d;%d;%d", c.bg.R, c.bg.G, c.bg.B)
	} else {
		code.WriteString(";49")
	}
	code.WriteByte('m')
	code.WriteString(strings.Repeat(string(upperHalf), count))
	return code.String()
}

// Show draws m on the controlling terminal under the given title and blocks
// until a key is pressed.
func Show(title string, m *Mat) error {
	t, err := tty.Open()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	defer t.Close()

	width, _, err := t.Size()
	if err != nil || width <= 0 {
		width = DefaultViewWidth
	}

	// The terminal is in raw mode, so every line needs its own carriage
	// return.
	out := t.Output()
	fmt.Fprintf(out, "%s (%dx%d, %d channels)\r\n", title, m.Cols(), m.Rows(), m.Channels())
	fmt.Fprint(out, strings.ReplaceAll(RenderANSI(m, width), "\n", "\r\n"))
	fmt.Fprint(out, "press any key to close\r\n")

	if _, err := t.ReadRune(); err != nil {
		return fmt.Errorf("failed to read key press: %w", err)
	}
	return nil
}
