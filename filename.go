package climage

import (
	"math"
	"os"
	"strconv"
)

// isSeparator reports whether c separates path elements. '/' is accepted on
// every platform.
func isSeparator(c byte) bool {
	return c == '/' || os.IsPathSeparator(c)
}

// baseStart returns the index where the final path element of name begins.
func baseStart(name string) int {
	for i := len(name) - 1; i >= 0; i-- {
		if isSeparator(name[i]) {
			return i + 1
		}
	}
	return 0
}

// extensionDot returns the index of the last '.' in the final path element
// of name, or -1 if there is none.
func extensionDot(name string) int {
	for i := len(name) - 1; i >= 0 && !isSeparator(name[i]); i-- {
		if name[i] == '.' {
			return i
		}
	}
	return -1
}

// StripExtension removes everything from the last '.' of the final path
// element onwards. It reports false, and returns name unchanged, when there
// is no such '.' past the first character of the element.
func StripExtension(name string) (string, bool) {
	dot := extensionDot(name)
	if dot <= baseStart(name) {
		return name, false
	}
	return name[:dot], true
}

// DeriveCopyFilename generates the filename for a copy of the image stored
// at seed by bumping its copy counter:
//
//	photo.png   -> photo_1.png
//	photo_1.png -> photo_2.png
//	photo2.png  -> photo2.png
//
// Digits that are not preceded by an underscore leave seed unchanged. An
// empty seed, or one without a known extension, yields "".
func DeriveCopyFilename(seed string) string {
	if ExtensionIndex(seed) < 0 {
		return ""
	}

	dot := extensionDot(seed)
	start := baseStart(seed)

	digits := dot
	for digits > start && isDigit(seed[digits-1]) {
		digits--
	}
	if digits == dot {
		return seed[:dot] + "_1" + seed[dot:]
	}
	if digits-1 <= start || seed[digits-1] != '_' {
		return seed
	}

	n, err := strconv.ParseUint(seed[digits:dot], 10, 64)
	if err != nil || n == math.MaxUint64 {
		return seed
	}
	return seed[:digits] + strconv.FormatUint(n+1, 10) + seed[dot:]
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// fileExists reports whether path names an existing regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
