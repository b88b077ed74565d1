package nif

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Encoder writes a NIF stream one frame at a time. A failure after the
// header or any frame has been emitted leaves the sink with a partial
// write; callers needing atomicity should stage to a temporary file
// and rename on success.
type Encoder struct {
	w         io.Writer
	header    Header
	frameSize int
	pixels    int
	total     uint32
	written   uint32
	buf       []byte
}

// NewEncoder validates h and writes the 32-byte header. A zero-valued
// Header.Version is stamped with CurrentVersion.
func NewEncoder(w io.Writer, h Header) (*Encoder, error) {
	if h.Version == (Version{}) {
		h.Version = CurrentVersion
	}
	if err := EncodeHeader(w, h); err != nil {
		return nil, err
	}

	// EncodeHeader already validated the geometry.
	size, _ := h.FrameSize()

	return &Encoder{
		w:         w,
		header:    h,
		frameSize: size,
		pixels:    size / h.Format.BytesPerPixel(),
		total:     h.Frames(),
		buf:       make([]byte, size),
	}, nil
}

// Write packs and emits one frame. Writing more frames than the header
// declares fails with ErrFrameCountMismatch; nothing is emitted for a
// rejected frame.
func (e *Encoder) Write(f *Frame) error {
	if e.written == e.total {
		return fmt.Errorf("%w: header declares %d frames", ErrFrameCountMismatch, e.total)
	}
	if len(f.Pix) != e.pixels {
		return fmt.Errorf("%w: frame %d: expected %d pixels, got %d", ErrFrameSizeMismatch, e.written, e.pixels, len(f.Pix))
	}

	bpp := e.header.Format.BytesPerPixel()
	for i, px := range f.Pix {
		e.header.Format.pack(e.buf[i*bpp:], px)
	}

	if _, err := e.w.Write(e.buf); err != nil {
		return fmt.Errorf("%w: frame %d: %v", ErrFrameWrite, e.written, err)
	}
	e.written++

	return nil
}

// Close verifies that every declared frame was written. It does not
// close the underlying writer.
func (e *Encoder) Close() error {
	if e.written != e.total {
		return fmt.Errorf("%w: wrote %d of %d frames", ErrFrameCountMismatch, e.written, e.total)
	}

	return nil
}

// Write encodes f to the file at path.
func Write(path string, f *File) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrCreateFile, path, err)
	}
	defer func() { _ = out.Close() }()

	bw := bufio.NewWriter(out)
	if err := Encode(bw, f); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrFrameWrite, err)
	}

	return nil
}
