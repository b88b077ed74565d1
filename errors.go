package nif

import "errors"

var (
	// ErrBadMagic indicates the stream does not start with the NIF magic.
	ErrBadMagic = errors.New("invalid magic number")
	// ErrUnsupportedVersion indicates a format version with a different major number.
	ErrUnsupportedVersion = errors.New("unsupported format version")
	// ErrUnsupportedFlags indicates feature flags this codec cannot honor.
	ErrUnsupportedFlags = errors.New("unsupported feature flags")
	// ErrUnknownPixelFormat indicates a pixel format outside the defined set.
	ErrUnknownPixelFormat = errors.New("unknown pixel format")
	// ErrInvalidDimensions indicates a zero width or height.
	ErrInvalidDimensions = errors.New("invalid image dimensions")
	// ErrDimensionOverflow indicates dimensions whose frame size overflows.
	ErrDimensionOverflow = errors.New("frame size overflows")
	// ErrTruncated indicates the stream ended before a complete header or frame.
	ErrTruncated = errors.New("truncated container")
	// ErrFrameCountMismatch indicates a frame count differing from the header.
	ErrFrameCountMismatch = errors.New("frame count mismatch")
	// ErrFrameSizeMismatch indicates a frame pixel count differing from the header geometry.
	ErrFrameSizeMismatch = errors.New("frame size mismatch")
	// ErrSizeOverflow indicates a size or dimension exceeds supported limits.
	ErrSizeOverflow = errors.New("size overflow")
	// ErrHeaderRead indicates header read failed.
	ErrHeaderRead = errors.New("reading header failed")
	// ErrHeaderWrite indicates header write failed.
	ErrHeaderWrite = errors.New("writing header failed")
	// ErrFrameRead indicates frame data read failed.
	ErrFrameRead = errors.New("reading frame data failed")
	// ErrFrameWrite indicates frame data write failed.
	ErrFrameWrite = errors.New("writing frame data failed")
	// ErrOpenFile indicates NIF file open failed.
	ErrOpenFile = errors.New("open file failed")
	// ErrCreateFile indicates file creation failed.
	ErrCreateFile = errors.New("create file failed")
)
