package components

import (
	"fmt"
	"image/color"

	"image-viewer/internal/view"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	PixelLabelInitialText = "Pixel Value:"
	pixelLabelOutOfBounds = "Pixel Value: Out of bounds"
)

// LabelStyle is how the pixel label presents one sample. A nil Foreground
// means the theme's foreground colour.
type LabelStyle struct {
	Text       string
	Background color.Color
	Foreground color.Color
	Swatch     bool
}

// PixelLabelStyle renders the swatch in the sampled colour with text that
// stays legible on it: white on pure black, black on anything else.
func PixelLabelStyle(sample view.PixelSample) LabelStyle {
	if !sample.InBounds {
		return LabelStyle{Text: pixelLabelOutOfBounds}
	}

	foreground := color.Color(color.Black)
	if sample.IsBlack() {
		foreground = color.White
	}

	return LabelStyle{
		Text:       fmt.Sprintf("Pixel Value: R=%d G=%d B=%d", sample.R, sample.G, sample.B),
		Background: sample.Color(),
		Foreground: foreground,
		Swatch:     true,
	}
}

// PixelLabel is the status line under the canvas.
type PixelLabel struct {
	widget.BaseWidget

	swatch *canvas.Rectangle
	text   *canvas.Text
	style  LabelStyle
}

func NewPixelLabel() *PixelLabel {
	swatch := canvas.NewRectangle(color.Transparent)
	swatch.Hide()

	text := canvas.NewText(PixelLabelInitialText, theme.Color(theme.ColorNameForeground))
	text.Alignment = fyne.TextAlignCenter

	pl := &PixelLabel{
		swatch: swatch,
		text:   text,
		style:  LabelStyle{Text: PixelLabelInitialText},
	}
	pl.ExtendBaseWidget(pl)
	return pl
}

func (pl *PixelLabel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(pl.swatch, container.NewPadded(pl.text)))
}

// SetSample restyles the label for sample. Out-of-bounds samples remove the
// swatch entirely.
func (pl *PixelLabel) SetSample(sample view.PixelSample) {
	pl.apply(PixelLabelStyle(sample))
}

func (pl *PixelLabel) Style() LabelStyle {
	return pl.style
}

func (pl *PixelLabel) Text() string {
	return pl.text.Text
}

func (pl *PixelLabel) apply(style LabelStyle) {
	pl.style = style

	pl.text.Text = style.Text
	if style.Foreground != nil {
		pl.text.Color = style.Foreground
	} else {
		pl.text.Color = theme.Color(theme.ColorNameForeground)
	}

	if style.Swatch {
		pl.swatch.FillColor = style.Background
		pl.swatch.Show()
	} else {
		pl.swatch.FillColor = color.Transparent
		pl.swatch.Hide()
	}

	pl.text.Refresh()
	pl.swatch.Refresh()
}
