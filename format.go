package climage

import (
	"fmt"
	"slices"
)

// Param identifies the codec parameter a backend sets when writing a format.
type Param int

const (
	ParamPNGCompression Param = iota // PNG compression level, 0-9
	ParamJPEGQuality                 // JPEG quality, 0-100
	ParamPXMBinary                   // portable map binary flag, 0 or 1
)

func (p Param) String() string {
	switch p {
	case ParamPNGCompression:
		return "png-compression"
	case ParamJPEGQuality:
		return "jpeg-quality"
	case ParamPXMBinary:
		return "pxm-binary"
	}
	return fmt.Sprintf("Param(%d)", int(p))
}

// Format describes how images with a given extension are written.
type Format struct {
	Ext   string
	Param Param
	Level int
}

// Results of ExtensionIndex that do not name a format.
const (
	ExtEmpty   = -3 // the filename is empty
	ExtMissing = -2 // no extension, or nothing but an extension
	ExtInvalid = -1 // an extension that is not in the format table
)

// DefaultExtension replaces invalid extensions on save.
const DefaultExtension = ".png"

var formats = [...]Format{
	// Portable Network Graphics
	{".png", ParamPNGCompression, 9},
	// Joint Photographic Experts Group
	{".jpg", ParamJPEGQuality, 100},
	{".jpeg", ParamJPEGQuality, 100},
	// Netpbm
	{".pbm", ParamPXMBinary, 1},
	{".pgm", ParamPXMBinary, 1},
	{".ppm", ParamPXMBinary, 1},
}

// Formats returns a copy of the supported formats in table order.
func Formats() []Format {
	return slices.Clone(formats[:])
}

// ExtensionIndex returns the index in Formats of the format matching the
// extension of name, or ExtEmpty, ExtMissing or ExtInvalid. Matching is
// case sensitive.
func ExtensionIndex(name string) int {
	if name == "" {
		return ExtEmpty
	}
	dot := extensionDot(name)
	if dot <= baseStart(name) {
		return ExtMissing
	}
	ext := name[dot:]
	for i, f := range formats {
		if f.Ext == ext {
			return i
		}
	}
	return ExtInvalid
}

// LookupFormat returns the format for the extension of name.
func LookupFormat(name string) (Format, bool) {
	idx := ExtensionIndex(name)
	if idx < 0 {
		return Format{}, false
	}
	return formats[idx], true
}
