package components

import (
	"image"
	"image/color"
	"sync"

	"image-viewer/internal/view"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/image/draw"
)

const (
	CanvasMinWidth  = 100
	CanvasMinHeight = 100
)

var canvasBackground = color.Black

// ImageCanvas displays one image letterboxed on black. The wheel zooms
// around the pointer, dragging pans and hovering reports the pixel underneath.
type ImageCanvas struct {
	widget.BaseWidget

	mu     sync.Mutex
	view   *view.View
	raster *canvas.Raster

	onPixelSample func(view.PixelSample)
}

var (
	_ fyne.Scrollable   = (*ImageCanvas)(nil)
	_ fyne.Draggable    = (*ImageCanvas)(nil)
	_ desktop.Hoverable = (*ImageCanvas)(nil)
)

func NewImageCanvas() *ImageCanvas {
	ic := &ImageCanvas{view: view.New()}

	ic.raster = canvas.NewRaster(ic.draw)
	ic.raster.ScaleMode = canvas.ImageScalePixels

	ic.ExtendBaseWidget(ic)
	return ic
}

func (ic *ImageCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(ic.raster)
}

func (ic *ImageCanvas) MinSize() fyne.Size {
	return fyne.NewSize(CanvasMinWidth, CanvasMinHeight)
}

// Resize keeps the view's viewport in step with the widget size.
func (ic *ImageCanvas) Resize(size fyne.Size) {
	ic.BaseWidget.Resize(size)

	ic.mu.Lock()
	ic.view.SetViewport(float64(size.Width), float64(size.Height))
	ic.mu.Unlock()

	ic.raster.Refresh()
}

// SetOnPixelSample registers the callback fired whenever the pointer moves
// over a loaded image.
func (ic *ImageCanvas) SetOnPixelSample(callback func(view.PixelSample)) {
	ic.mu.Lock()
	ic.onPixelSample = callback
	ic.mu.Unlock()
}

// Load replaces the displayed image and fits it to the widget.
func (ic *ImageCanvas) Load(img image.Image) {
	ic.update(func(v *view.View) { v.Load(img) })
}

func (ic *ImageCanvas) FitToView() {
	ic.update(func(v *view.View) { v.FitToView() })
}

func (ic *ImageCanvas) ZoomIn() {
	ic.update(func(v *view.View) { v.ZoomIn() })
}

func (ic *ImageCanvas) ZoomOut() {
	ic.update(func(v *view.View) { v.ZoomOut() })
}

func (ic *ImageCanvas) HasImage() bool {
	ic.mu.Lock()
	defer ic.mu.Unlock()
	return ic.view.HasImage()
}

func (ic *ImageCanvas) Transform() view.Transform {
	ic.mu.Lock()
	defer ic.mu.Unlock()
	return ic.view.Transform()
}

// Sample returns the pixel under pos, in widget coordinates.
func (ic *ImageCanvas) Sample(pos fyne.Position) view.PixelSample {
	ic.mu.Lock()
	defer ic.mu.Unlock()
	return ic.view.Sample(toPoint(pos))
}

func (ic *ImageCanvas) Scrolled(ev *fyne.ScrollEvent) {
	var delta float64
	switch {
	case ev.Scrolled.DY > 0:
		delta = view.WheelNotch
	case ev.Scrolled.DY < 0:
		delta = -view.WheelNotch
	default:
		return
	}

	ic.update(func(v *view.View) { v.ZoomBy(delta, toPoint(ev.Position)) })
	ic.report(ev.Position)
}

func (ic *ImageCanvas) Dragged(ev *fyne.DragEvent) {
	ic.update(func(v *view.View) {
		v.Pan(float64(ev.Dragged.DX), float64(ev.Dragged.DY))
	})
	ic.report(ev.Position)
}

func (ic *ImageCanvas) DragEnd() {}

func (ic *ImageCanvas) MouseIn(ev *desktop.MouseEvent) {
	ic.report(ev.Position)
}

func (ic *ImageCanvas) MouseMoved(ev *desktop.MouseEvent) {
	ic.report(ev.Position)
}

// MouseOut leaves the last reading on the label.
func (ic *ImageCanvas) MouseOut() {}

func (ic *ImageCanvas) update(fn func(v *view.View)) {
	ic.mu.Lock()
	fn(ic.view)
	ic.mu.Unlock()

	ic.raster.Refresh()
}

// report samples pos and hands the result to the callback. Nothing is
// reported while the canvas is empty.
func (ic *ImageCanvas) report(pos fyne.Position) {
	ic.mu.Lock()
	callback := ic.onPixelSample
	loaded := ic.view.HasImage()
	sample := ic.view.Sample(toPoint(pos))
	ic.mu.Unlock()

	if loaded && callback != nil {
		callback(sample)
	}
}

// draw renders the image at device resolution: w and h are in pixels while
// the view works in widget units.
func (ic *ImageCanvas) draw(w, h int) image.Image {
	output := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(output, output.Bounds(), image.NewUniform(canvasBackground), image.Point{}, draw.Src)

	ic.mu.Lock()
	img := ic.view.Image()
	t := ic.view.Transform()
	viewportW, _ := ic.view.Viewport()
	ic.mu.Unlock()

	if img == nil || img.Bounds().Empty() || viewportW <= 0 || w <= 0 {
		return output
	}

	pixelScale := float64(w) / viewportW
	device := view.Transform{
		Scale: t.Scale * pixelScale,
		TX:    t.TX * pixelScale,
		TY:    t.TY * pixelScale,
	}

	scaler := draw.NearestNeighbor
	if device.Scale < 1 {
		scaler = draw.ApproxBiLinear
	}
	scaler.Transform(output, device.Aff3(), img, img.Bounds(), draw.Over, nil)

	return output
}

func toPoint(pos fyne.Position) view.Point {
	return view.Point{X: float64(pos.X), Y: float64(pos.Y)}
}
