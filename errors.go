package climage

import "errors"

// State errors.
var (
	ErrUninitialized = errors.New("image is not initialized")
	ErrAlreadyLoaded = errors.New("image is already loaded")
)

// Pixel errors.
var (
	ErrOutOfBounds         = errors.New("pixel coordinates out of range")
	ErrChannelCount        = errors.New("channel count mismatch")
	ErrChannelValue        = errors.New("channel value exceeds 255")
	ErrUnsupportedChannels = errors.New("unsupported channel count")
)

// Filename errors.
var (
	ErrEmptyFilename    = errors.New("filename is empty")
	ErrFileNotFound     = errors.New("no such image file")
	ErrInvalidExtension = errors.New("invalid file extension")
)

// ErrEncode wraps any failure reported by a backend while writing an image.
var ErrEncode = errors.New("error converting image format")
