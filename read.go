package nif

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
)

// Decoder reads a NIF stream one frame at a time. It is not
// restartable: frames come back in file order and r is consumed as
// Next is called.
type Decoder struct {
	r         io.Reader
	header    Header
	frameSize int
	remaining uint32
	buf       []byte
}

// NewDecoder reads and validates the container header, leaving r
// positioned at the first frame.
func NewDecoder(r io.Reader) (*Decoder, error) {
	h, err := DecodeHeader(r)
	if err != nil {
		return nil, err
	}

	size, err := h.FrameSize()
	if err != nil {
		return nil, err
	}

	return &Decoder{
		r:         r,
		header:    h,
		frameSize: size,
		remaining: h.Frames(),
		buf:       make([]byte, size),
	}, nil
}

// Header returns the decoded container header.
func (d *Decoder) Header() Header {
	return d.header
}

// Next returns the next frame, or io.EOF once every declared frame has
// been decoded. Ownership of the returned frame passes to the caller;
// the decoder itself holds one packed frame buffer regardless of frame
// count.
func (d *Decoder) Next() (*Frame, error) {
	if d.remaining == 0 {
		return nil, io.EOF
	}

	if _, err := io.ReadFull(d.r, d.buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: frame needs %d bytes", ErrTruncated, d.frameSize)
		}
		return nil, fmt.Errorf("%w: %v", ErrFrameRead, err)
	}
	d.remaining--

	bpp := d.header.Format.BytesPerPixel()
	frame := &Frame{
		Width:  int(d.header.Width),
		Height: int(d.header.Height),
		Pix:    make([]Pixel, d.frameSize/bpp),
	}
	for i := range frame.Pix {
		frame.Pix[i] = d.header.Format.unpack(d.buf[i*bpp:])
	}

	return frame, nil
}

// Read decodes the NIF/NVF file at path, buffering every frame.
func Read(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrOpenFile, path, err)
	}
	defer func() { _ = f.Close() }()

	return Decode(bufio.NewReader(f))
}

// ReadConfig reads NIF file configuration without decoding frame data.
func ReadConfig(path string) (image.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return image.Config{}, fmt.Errorf("%w: %q: %v", ErrOpenFile, path, err)
	}
	defer func() { _ = f.Close() }()

	h, err := DecodeHeader(f)
	if err != nil {
		return image.Config{}, err
	}

	return image.Config{
		Width:      int(h.Width),
		Height:     int(h.Height),
		ColorModel: color.NRGBAModel,
	}, nil
}
