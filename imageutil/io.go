package imageutil

import (
	"fmt"
	"image"
	_ "image/gif" // Register GIF decoder
	"image/jpeg"
	"image/png"
	"io"
	"os"

	pnm "github.com/jbuchbinder/gopnm"
	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/tiff" // Register TIFF decoder
	_ "golang.org/x/image/webp" // Register WebP decoder
	filetype "gopkg.in/h2non/filetype.v1"
)

// PNMKind selects the portable-map flavor written by SavePNM.
type PNMKind int

const (
	PBM PNMKind = iota // bitmap
	PGM                // graymap
	PPM                // pixmap
)

// LoadMat loads an image from the specified path.
// Supports PNG, JPEG, GIF, BMP, TIFF, WebP and PBM/PGM/PPM.
func LoadMat(path string) (*Mat, error) {
	kind, err := filetype.MatchFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	// Portable maps are unknown to the sniffer, so only reject files it
	// positively identifies as something else.
	if kind != filetype.Unknown && kind.MIME.Type != "image" {
		return nil, fmt.Errorf("%s is %s, not an image", path, kind.MIME.Value)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return MatFromImage(img), nil
}

// SavePNG saves a Mat as PNG. level follows the OpenCV compression scale,
// 0 (none) to 9 (smallest).
func SavePNG(m *Mat, path string, level int) error {
	img, err := m.ToImage()
	if err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: pngCompression(level)}
	return save(path, func(w io.Writer) error {
		return enc.Encode(w, img)
	})
}

// SaveJPEG saves a Mat as JPEG with the given quality (1-100).
func SaveJPEG(m *Mat, path string, quality int) error {
	img, err := m.ToImage()
	if err != nil {
		return err
	}
	quality = max(1, min(100, quality))
	return save(path, func(w io.Writer) error {
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	})
}

// SavePNM saves a Mat as a binary portable bitmap, graymap or pixmap.
// Bitmaps and graymaps are written from the luminance of color images.
func SavePNM(m *Mat, path string, kind PNMKind) error {
	var img image.Image
	switch kind {
	case PBM, PGM:
		img = grayImage(m)
	case PPM:
		img = m.RGBA()
	default:
		return fmt.Errorf("unknown portable map kind %d", kind)
	}
	return save(path, func(w io.Writer) error {
		switch kind {
		case PBM:
			return pnm.Encode(w, img, pnm.PBM)
		case PGM:
			return pnm.Encode(w, img, pnm.PGM)
		default:
			return pnm.Encode(w, img, pnm.PPM)
		}
	})
}

// save creates path and runs encode on it. A partially written file is
// removed when encoding fails.
func save(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := encode(f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("failed to encode image: %w", err)
	}
	return f.Close()
}

func pngCompression(level int) png.CompressionLevel {
	switch {
	case level <= 0:
		return png.NoCompression
	case level <= 3:
		return png.BestSpeed
	case level <= 6:
		return png.DefaultCompression
	default:
		return png.BestCompression
	}
}
