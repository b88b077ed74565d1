package nif

// Pixel is one unpacked sample. Channels hold native-depth values:
// 0-255 for the 8-bit formats, 0-15 for the 4-bit formats. Formats
// without alpha decode A as the format's opaque maximum and ignore it
// on encode.
type Pixel struct {
	R, G, B, A uint8
}

// Frame is one full width×height grid of unpacked pixels, stored
// row-major.
type Frame struct {
	Width  int
	Height int
	Pix    []Pixel
}

// NewFrame allocates a zeroed frame matching the header geometry.
func NewFrame(h Header) (*Frame, error) {
	if _, err := h.FrameSize(); err != nil {
		return nil, err
	}

	w, ht := int(h.Width), int(h.Height)
	return &Frame{Width: w, Height: ht, Pix: make([]Pixel, w*ht)}, nil
}

// At returns the pixel at (x, y). Coordinates must be in bounds.
func (f *Frame) At(x, y int) Pixel {
	return f.Pix[y*f.Width+x]
}

// SetAt replaces the pixel at (x, y). Coordinates must be in bounds.
func (f *Frame) SetAt(x, y int, px Pixel) {
	f.Pix[y*f.Width+x] = px
}
