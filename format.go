package nif

import "fmt"

// PixelFormat enumerates the wire layouts for one pixel sample.
type PixelFormat uint32

const (
	// RGBA8888 stores four 8-bit channels in four bytes.
	RGBA8888 PixelFormat = iota
	// RGB888 stores three 8-bit channels in three bytes.
	RGB888
	// RGBA4444 packs four 4-bit channels into two bytes.
	RGBA4444
	// RGB444 packs three 4-bit channels into two bytes; the final low
	// nibble is padding, written zero and ignored on read.
	RGB444
)

// BytesPerPixel returns the packed size of one pixel, or -1 for an
// unknown format.
func (p PixelFormat) BytesPerPixel() int {
	switch p {
	case RGBA8888:
		return 4
	case RGB888:
		return 3
	case RGBA4444, RGB444:
		return 2
	default:
		return -1
	}
}

// HasAlpha reports whether the format carries an alpha channel.
func (p PixelFormat) HasAlpha() bool {
	return p == RGBA8888 || p == RGBA4444
}

// ChannelMax returns the largest value one channel can hold: 255 for
// the 8-bit formats, 15 for the 4-bit formats.
func (p PixelFormat) ChannelMax() uint8 {
	if p == RGBA4444 || p == RGB444 {
		return 0x0F
	}
	return 0xFF
}

func (p PixelFormat) String() string {
	switch p {
	case RGBA8888:
		return "RGBA8888"
	case RGB888:
		return "RGB888"
	case RGBA4444:
		return "RGBA4444"
	case RGB444:
		return "RGB444"
	default:
		return fmt.Sprintf("PixelFormat(%d)", uint32(p))
	}
}

// pack writes px into buf using the format's layout. The 4-bit formats
// keep only the low nibble of each channel, first channel in the high
// nibble.
func (p PixelFormat) pack(buf []byte, px Pixel) {
	switch p {
	case RGBA8888:
		buf[0], buf[1], buf[2], buf[3] = px.R, px.G, px.B, px.A
	case RGB888:
		buf[0], buf[1], buf[2] = px.R, px.G, px.B
	case RGBA4444:
		buf[0] = px.R<<4 | px.G&0x0F
		buf[1] = px.B<<4 | px.A&0x0F
	case RGB444:
		buf[0] = px.R<<4 | px.G&0x0F
		buf[1] = px.B << 4
	}
}

// unpack reads one pixel from buf. Formats without alpha report the
// format's opaque maximum.
func (p PixelFormat) unpack(buf []byte) Pixel {
	switch p {
	case RGBA8888:
		return Pixel{R: buf[0], G: buf[1], B: buf[2], A: buf[3]}
	case RGB888:
		return Pixel{R: buf[0], G: buf[1], B: buf[2], A: 0xFF}
	case RGBA4444:
		return Pixel{R: buf[0] >> 4, G: buf[0] & 0x0F, B: buf[1] >> 4, A: buf[1] & 0x0F}
	case RGB444:
		return Pixel{R: buf[0] >> 4, G: buf[0] & 0x0F, B: buf[1] >> 4, A: 0x0F}
	default:
		return Pixel{}
	}
}
