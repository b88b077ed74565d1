package nif

import "testing"

func TestBytesPerPixel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format PixelFormat
		want   int
	}{
		{name: "rgba8888", format: RGBA8888, want: 4},
		{name: "rgb888", format: RGB888, want: 3},
		{name: "rgba4444", format: RGBA4444, want: 2},
		{name: "rgb444", format: RGB444, want: 2},
		{name: "unknown", format: PixelFormat(4), want: -1},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := tc.format.BytesPerPixel(); got != tc.want {
				t.Fatalf("BytesPerPixel(%v) = %d, want %d", tc.format, got, tc.want)
			}
		})
	}
}

func TestNibblePackingDeterminism(t *testing.T) {
	t.Parallel()

	// R fills the high nibble of the first byte, A the low nibble of
	// the second; cycles must be stable.
	px := Pixel{R: 0xF, G: 0x0, B: 0xF, A: 0x0}

	buf := make([]byte, 2)
	for cycle := 0; cycle < 3; cycle++ {
		RGBA4444.pack(buf, px)
		if buf[0] != 0xF0 || buf[1] != 0xF0 {
			t.Fatalf("cycle %d: packed bytes = %02X %02X, want F0 F0", cycle, buf[0], buf[1])
		}

		got := RGBA4444.unpack(buf)
		if got != px {
			t.Fatalf("cycle %d: unpacked %+v, want %+v", cycle, got, px)
		}
		px = got
	}
}

func TestPackUnpackAllFormats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format PixelFormat
		in     Pixel
		packed []byte
		out    Pixel
	}{
		{
			name:   "rgba8888",
			format: RGBA8888,
			in:     Pixel{R: 0x12, G: 0x34, B: 0x56, A: 0x78},
			packed: []byte{0x12, 0x34, 0x56, 0x78},
			out:    Pixel{R: 0x12, G: 0x34, B: 0x56, A: 0x78},
		},
		{
			name:   "rgb888-opaque-alpha",
			format: RGB888,
			in:     Pixel{R: 0x12, G: 0x34, B: 0x56, A: 0x00},
			packed: []byte{0x12, 0x34, 0x56},
			out:    Pixel{R: 0x12, G: 0x34, B: 0x56, A: 0xFF},
		},
		{
			name:   "rgba4444",
			format: RGBA4444,
			in:     Pixel{R: 0x1, G: 0x2, B: 0x3, A: 0x4},
			packed: []byte{0x12, 0x34},
			out:    Pixel{R: 0x1, G: 0x2, B: 0x3, A: 0x4},
		},
		{
			name:   "rgb444-zero-padding",
			format: RGB444,
			in:     Pixel{R: 0xA, G: 0xB, B: 0xC, A: 0x3},
			packed: []byte{0xAB, 0xC0},
			out:    Pixel{R: 0xA, G: 0xB, B: 0xC, A: 0xF},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			buf := make([]byte, tc.format.BytesPerPixel())
			tc.format.pack(buf, tc.in)
			for i, b := range tc.packed {
				if buf[i] != b {
					t.Fatalf("packed = % X, want % X", buf, tc.packed)
				}
			}

			if got := tc.format.unpack(buf); got != tc.out {
				t.Fatalf("unpacked %+v, want %+v", got, tc.out)
			}
		})
	}
}

func TestRGB444IgnoresPaddingNibble(t *testing.T) {
	t.Parallel()

	// Stray bits in the padding nibble must not leak into channels.
	got := RGB444.unpack([]byte{0xAB, 0xCF})
	want := Pixel{R: 0xA, G: 0xB, B: 0xC, A: 0xF}
	if got != want {
		t.Fatalf("unpacked %+v, want %+v", got, want)
	}
}

func TestFormatProperties(t *testing.T) {
	t.Parallel()

	if !RGBA8888.HasAlpha() || !RGBA4444.HasAlpha() {
		t.Fatalf("RGBA formats must report alpha")
	}
	if RGB888.HasAlpha() || RGB444.HasAlpha() {
		t.Fatalf("RGB formats must not report alpha")
	}

	if RGBA8888.ChannelMax() != 0xFF || RGB888.ChannelMax() != 0xFF {
		t.Fatalf("8-bit formats must report channel max 255")
	}
	if RGBA4444.ChannelMax() != 0x0F || RGB444.ChannelMax() != 0x0F {
		t.Fatalf("4-bit formats must report channel max 15")
	}

	if s := RGBA4444.String(); s != "RGBA4444" {
		t.Fatalf("String() = %q", s)
	}
	if s := PixelFormat(9).String(); s != "PixelFormat(9)" {
		t.Fatalf("String() = %q", s)
	}
}

func TestFrameAccessors(t *testing.T) {
	t.Parallel()

	h := NewHeader(3, 2, RGBA8888, 0, 0)
	frame, err := NewFrame(h)
	if err != nil {
		t.Fatalf("NewFrame: %v", err)
	}
	if frame.Width != 3 || frame.Height != 2 || len(frame.Pix) != 6 {
		t.Fatalf("unexpected geometry: %dx%d, %d pixels", frame.Width, frame.Height, len(frame.Pix))
	}

	px := Pixel{R: 9, G: 8, B: 7, A: 6}
	frame.SetAt(2, 1, px)
	if got := frame.At(2, 1); got != px {
		t.Fatalf("At(2,1) = %+v, want %+v", got, px)
	}
	if got := frame.Pix[5]; got != px {
		t.Fatalf("row-major index 5 = %+v, want %+v", got, px)
	}
}
