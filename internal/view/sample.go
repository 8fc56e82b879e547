package view

import (
	"fmt"
	"image/color"
)

// PixelSample is the colour under the pointer. R, G and B are meaningless
// when InBounds is false.
type PixelSample struct {
	R, G, B  uint8
	InBounds bool
}

func OutOfBounds() PixelSample {
	return PixelSample{}
}

// SampleOf converts any colour to an in-bounds sample, dropping alpha
// premultiplication the way a decoded pixel is reported.
func SampleOf(c color.Color) PixelSample {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return PixelSample{R: n.R, G: n.G, B: n.B, InBounds: true}
}

func (s PixelSample) Color() color.NRGBA {
	return color.NRGBA{R: s.R, G: s.G, B: s.B, A: 0xff}
}

func (s PixelSample) IsBlack() bool {
	return s.InBounds && s.R == 0 && s.G == 0 && s.B == 0
}

func (s PixelSample) String() string {
	if !s.InBounds {
		return "out of bounds"
	}
	return fmt.Sprintf("rgb(%d,%d,%d)", s.R, s.G, s.B)
}
