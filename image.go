package nif

import (
	"image"
	"image/color"
)

// Image converts a decoded frame to an NRGBA image. Channels of the
// 4-bit formats are widened with v*17 so 0x0F maps to 0xFF.
func (f *Frame) Image(format PixelFormat) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))

	scale := uint8(1)
	if format.ChannelMax() == 0x0F {
		scale = 17
	}

	for i, px := range f.Pix {
		o := i * 4
		img.Pix[o+0] = px.R * scale
		img.Pix[o+1] = px.G * scale
		img.Pix[o+2] = px.B * scale
		img.Pix[o+3] = px.A * scale
	}

	return img
}

// FrameFromImage converts img into a frame ready to encode with the
// given format. Channels are narrowed with v>>4 for the 4-bit formats;
// alpha is dropped at pack time by the formats without it.
func FrameFromImage(img image.Image, format PixelFormat) *Frame {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	frame := &Frame{Width: w, Height: h, Pix: make([]Pixel, w*h)}

	shift := uint(0)
	if format.ChannelMax() == 0x0F {
		shift = 4
	}

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			frame.Pix[i] = Pixel{R: c.R >> shift, G: c.G >> shift, B: c.B >> shift, A: c.A >> shift}
			i++
		}
	}

	return frame
}
