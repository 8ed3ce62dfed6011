// Package climage couples a filename with a decoded pixel matrix and provides
// the pixel access, format selection and save/load/display helpers behind
// the climage command line tool. Decoding, encoding and display are
// delegated to a Backend.
package climage

import (
	"fmt"
	"log"
)

// Image is a handle on an optional pixel matrix and the name of the file it
// was loaded from or will be saved to. A handle exclusively owns its matrix.
type Image struct {
	filename string
	mat      Matrix

	backend Backend
	logger  *log.Logger
	exists  func(path string) bool
}

// Option configures an Image.
type Option func(*Image)

// WithBackend sets the backend used to read, write and show the image.
// The default is GoBackend.
func WithBackend(b Backend) Option {
	return func(img *Image) {
		img.backend = b
	}
}

// WithLogger sets the logger that receives load and encode failures.
func WithLogger(l *log.Logger) Option {
	return func(img *Image) {
		img.logger = l
	}
}

// WithFileCheck replaces the existence check applied to candidate paths
// before loading.
func WithFileCheck(exists func(path string) bool) Option {
	return func(img *Image) {
		img.exists = exists
	}
}

func newImage(filename string, opts []Option) *Image {
	img := &Image{
		filename: filename,
		backend:  GoBackend{},
		logger:   log.Default(),
		exists:   fileExists,
	}
	for _, opt := range opts {
		opt(img)
	}
	return img
}

// New creates an Image bound to filename and tries to load it. A failed load
// is logged and leaves the Image uninitialized.
func New(filename string, opts ...Option) *Image {
	img := newImage(filename, opts)
	if filename == "" {
		return img
	}
	if err := img.Load(""); err != nil {
		img.logger.Printf("could not open %s: %v", filename, err)
	}
	return img
}

// NewFromMatrix creates an Image that takes ownership of an already decoded
// matrix. filename is where Save will write it.
func NewFromMatrix(m Matrix, filename string, opts ...Option) *Image {
	img := newImage(filename, opts)
	img.mat = m
	return img
}

// Clone returns a deep copy of img. The copy's filename is derived from
// img's with DeriveCopyFilename so saving it does not overwrite the source.
func (img *Image) Clone() *Image {
	clone := &Image{
		filename: DeriveCopyFilename(img.filename),
		backend:  img.backend,
		logger:   img.logger,
		exists:   img.exists,
	}
	if img.Initialized() {
		clone.mat = img.mat.Clone()
	}
	return clone
}

// Close releases the matrix. The Image is uninitialized afterwards.
func (img *Image) Close() error {
	if img.mat == nil {
		return nil
	}
	err := img.mat.Close()
	img.mat = nil
	return err
}

// Filename returns the name of the image file. It is empty for images that
// were never named.
func (img *Image) Filename() string {
	return img.filename
}

// Matrix returns the pixel matrix, or nil. It remains owned by img.
func (img *Image) Matrix() Matrix {
	return img.mat
}

// Initialized reports whether the Image holds pixel data.
func (img *Image) Initialized() bool {
	return img.mat != nil && !img.mat.Empty()
}

// Load decodes an image file into an uninitialized Image. When both filename
// and the stored filename are set, the stored one is used if it exists and
// filename otherwise. On success the stored filename becomes the path that
// was loaded.
func (img *Image) Load(filename string) error {
	if img.Initialized() {
		return ErrAlreadyLoaded
	}

	path, err := img.resolve(filename)
	if err != nil {
		return err
	}

	mat, err := img.backend.Read(path)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	if mat == nil || mat.Empty() {
		if mat != nil {
			mat.Close()
		}
		return fmt.Errorf("failed to load %s: no pixel data", path)
	}

	img.filename = path
	img.mat = mat
	return nil
}

// resolve picks the file Load reads from.
func (img *Image) resolve(filename string) (string, error) {
	switch {
	case filename == "" && img.filename == "":
		return "", ErrEmptyFilename
	case img.filename != "" && img.exists(img.filename):
		return img.filename, nil
	case filename != "" && img.exists(filename):
		return filename, nil
	case filename != "":
		return "", fmt.Errorf("%w: %s", ErrFileNotFound, filename)
	}
	return "", fmt.Errorf("%w: %s", ErrFileNotFound, img.filename)
}

// Save writes the image to its filename. A filename without a supported
// extension has it replaced by DefaultExtension first, and keeps the new
// name. Backend failures are logged and returned wrapped in ErrEncode.
func (img *Image) Save() (err error) {
	if !img.Initialized() {
		return ErrUninitialized
	}
	if img.filename == "" {
		return ErrEmptyFilename
	}

	name := img.filename
	if ExtensionIndex(name) < 0 {
		var ok bool
		if name, ok = img.appendDefaultExtension(name); !ok {
			return fmt.Errorf("%w: %s", ErrInvalidExtension, img.filename)
		}
	}

	format, ok := LookupFormat(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrInvalidExtension, name)
	}
	img.filename = name

	defer func() {
		if r := recover(); r != nil {
			err = img.encodeFailed(fmt.Errorf("%v", r))
		}
	}()
	if err := img.backend.Write(img.filename, img.mat, format); err != nil {
		return img.encodeFailed(err)
	}
	return nil
}

func (img *Image) encodeFailed(err error) error {
	img.logger.Printf("error converting image format: %v", err)
	return fmt.Errorf("%w: %w", ErrEncode, err)
}

// appendDefaultExtension strips any extension from name and appends
// DefaultExtension. It fails only when the Image is uninitialized.
func (img *Image) appendDefaultExtension(name string) (string, bool) {
	if !img.Initialized() {
		return name, false
	}
	stripped, _ := StripExtension(name)
	return stripped + DefaultExtension, true
}

// Display shows the image, titled with its filename, and blocks until the
// viewer reports a key press or close event. There is no timeout.
func (img *Image) Display() error {
	if !img.Initialized() {
		return ErrUninitialized
	}
	return img.backend.Show(img.filename, img.mat)
}
