package nif

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

const (
	// Magic identifies a NIF container ("NIF\0" as a big-endian word).
	Magic uint32 = 0x4E494600
	// HeaderSize is the fixed preamble length in bytes.
	HeaderSize = 32
)

// Version is the container format version, packed on the wire as major,
// minor and patch bytes plus one reserved byte. Decoders accept any
// version sharing their major number.
type Version struct {
	Major, Minor, Patch uint8
}

// CurrentVersion is the format version written by this package.
var CurrentVersion = Version{Major: 0, Minor: 1, Patch: 0}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Flags is the reserved feature bitmask. All bits must be zero on
// write; unknown bits are ignored on read.
type Flags uint32

// FlagCompressed marks compressed frame data (.nifz/.nvfz). Reserved:
// no compressed codec path exists, so the bit is rejected on read.
const FlagCompressed Flags = 1 << 0

// Header describes the geometry and timing of the frame data that
// follows it. It is immutable by convention once decoded.
type Header struct {
	Version    Version
	Flags      Flags
	Width      uint32
	Height     uint32
	Format     PixelFormat
	FrameCount uint32  // 0 is the still-image sentinel: one implicit frame
	FPS        float32 // meaningful only when FrameCount >= 1
}

// NewHeader builds a header stamped with the current format version.
func NewHeader(width, height uint32, format PixelFormat, frameCount uint32, fps float32) Header {
	return Header{
		Version:    CurrentVersion,
		Width:      width,
		Height:     height,
		Format:     format,
		FrameCount: frameCount,
		FPS:        fps,
	}
}

// Frames returns the number of frame blocks stored in the container:
// FrameCount, or 1 when FrameCount is the still-image sentinel 0.
func (h Header) Frames() uint32 {
	if h.FrameCount == 0 {
		return 1
	}
	return h.FrameCount
}

// FrameSize returns the packed byte size of one frame,
// width*height*bytesPerPixel, with overflow checking.
func (h Header) FrameSize() (int, error) {
	bpp := h.Format.BytesPerPixel()
	if bpp <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrUnknownPixelFormat, uint32(h.Format))
	}

	px := uint64(h.Width) * uint64(h.Height)
	if px > uint64(maxInt)/uint64(bpp) {
		return 0, fmt.Errorf("%w: %dx%d at %d bytes per pixel", ErrDimensionOverflow, h.Width, h.Height, bpp)
	}

	return int(px) * bpp, nil
}

// validate checks everything except the version, which only the decode
// path constrains.
func (h Header) validate() error {
	if h.Format.BytesPerPixel() <= 0 {
		return fmt.Errorf("%w: %d", ErrUnknownPixelFormat, uint32(h.Format))
	}
	if h.Width == 0 || h.Height == 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, h.Width, h.Height)
	}
	if _, err := h.FrameSize(); err != nil {
		return err
	}

	return nil
}

// DecodeHeader reads and validates the 32-byte preamble, consuming
// exactly HeaderSize bytes from r on success.
func DecodeHeader(r io.Reader) (Header, error) {
	var buf [HeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return Header{}, fmt.Errorf("%w: header needs %d bytes", ErrTruncated, HeaderSize)
		}
		return Header{}, fmt.Errorf("%w: %v", ErrHeaderRead, err)
	}

	if magic := binary.BigEndian.Uint32(buf[0:4]); magic != Magic {
		return Header{}, fmt.Errorf("%w: 0x%08X", ErrBadMagic, magic)
	}

	h := Header{
		Version:    Version{Major: buf[4], Minor: buf[5], Patch: buf[6]},
		Flags:      Flags(binary.BigEndian.Uint32(buf[8:12])),
		Width:      binary.BigEndian.Uint32(buf[12:16]),
		Height:     binary.BigEndian.Uint32(buf[16:20]),
		Format:     PixelFormat(binary.BigEndian.Uint32(buf[20:24])),
		FrameCount: binary.BigEndian.Uint32(buf[24:28]),
		FPS:        math.Float32frombits(binary.BigEndian.Uint32(buf[28:32])),
	}

	if h.Version.Major != CurrentVersion.Major {
		return Header{}, fmt.Errorf("%w: %s, want major %d", ErrUnsupportedVersion, h.Version, CurrentVersion.Major)
	}
	// Unknown flag bits are reserved and ignored, but compressed
	// containers have no decode path yet.
	if h.Flags&FlagCompressed != 0 {
		return Header{}, fmt.Errorf("%w: compressed container", ErrUnsupportedFlags)
	}
	if h.Format.BytesPerPixel() <= 0 {
		return Header{}, fmt.Errorf("%w: %d", ErrUnknownPixelFormat, uint32(h.Format))
	}
	if h.Width == 0 || h.Height == 0 {
		return Header{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, h.Width, h.Height)
	}

	return h, nil
}

// EncodeHeader validates h and writes the 32-byte preamble with a
// single Write, so a failed validation emits nothing. A zero-valued
// Version is stamped with CurrentVersion; any other value is written
// as-is for compatibility testing. Flags must be zero.
func EncodeHeader(w io.Writer, h Header) error {
	if h.Version == (Version{}) {
		h.Version = CurrentVersion
	}
	if h.Flags != 0 {
		return fmt.Errorf("%w: 0x%08X, must be zero", ErrUnsupportedFlags, uint32(h.Flags))
	}
	if err := h.validate(); err != nil {
		return err
	}

	var buf [HeaderSize]byte
	binary.BigEndian.PutUint32(buf[0:4], Magic)
	buf[4] = h.Version.Major
	buf[5] = h.Version.Minor
	buf[6] = h.Version.Patch
	binary.BigEndian.PutUint32(buf[8:12], uint32(h.Flags))
	binary.BigEndian.PutUint32(buf[12:16], h.Width)
	binary.BigEndian.PutUint32(buf[16:20], h.Height)
	binary.BigEndian.PutUint32(buf[20:24], uint32(h.Format))
	binary.BigEndian.PutUint32(buf[24:28], h.FrameCount)
	binary.BigEndian.PutUint32(buf[28:32], math.Float32bits(h.FPS))

	if _, err := w.Write(buf[:]); err != nil {
		return fmt.Errorf("%w: %v", ErrHeaderWrite, err)
	}

	return nil
}
