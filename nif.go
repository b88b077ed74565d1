package nif

import (
	"fmt"
	"io"
)

// File is a fully buffered container: one header and every decoded
// frame. Streaming callers should use Decoder/Encoder instead.
type File struct {
	Header Header
	Frames []*Frame
}

// Decode buffers an entire container from r.
func Decode(r io.Reader) (*File, error) {
	dec, err := NewDecoder(r)
	if err != nil {
		return nil, err
	}

	file := &File{Header: dec.Header(), Frames: make([]*Frame, 0, dec.Header().Frames())}
	for {
		frame, err := dec.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		file.Frames = append(file.Frames, frame)
	}

	return file, nil
}

// Encode writes a fully buffered container to w. The frame slice must
// hold exactly the header's effective frame count; a slice API has no
// unconsumed tail, so extras are a mismatch rather than a silent
// truncation.
func Encode(w io.Writer, f *File) error {
	n, err := u32FromInt(len(f.Frames))
	if err != nil {
		return err
	}
	if n != f.Header.Frames() {
		return fmt.Errorf("%w: header declares %d, got %d", ErrFrameCountMismatch, f.Header.Frames(), n)
	}

	enc, err := NewEncoder(w, f.Header)
	if err != nil {
		return err
	}
	for _, frame := range f.Frames {
		if err := enc.Write(frame); err != nil {
			return err
		}
	}

	return enc.Close()
}
