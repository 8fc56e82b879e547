// Package view holds the toolkit-independent state behind the image canvas:
// the displayed image, the image-to-viewport transform and pointer sampling.
package view

import (
	"image"
	"math"
)

const (
	ZoomInFactor  = 1.25
	ZoomOutFactor = 0.8

	// WheelNotch is the wheel delta reported for a single detent.
	WheelNotch = 120
)

// View is not safe for concurrent use; callers serialise access on the UI thread.
type View struct {
	img       image.Image
	bounds    image.Rectangle
	transform Transform

	viewportW float64
	viewportH float64

	zoomSteps  float64
	pendingFit bool
}

func New() *View {
	return &View{transform: Identity()}
}

func (v *View) HasImage() bool {
	return v.img != nil
}

func (v *View) Image() image.Image {
	return v.img
}

// Bounds is the scene rectangle, equal to the loaded image's pixel rectangle.
func (v *View) Bounds() image.Rectangle {
	return v.bounds
}

func (v *View) Transform() Transform {
	return v.transform
}

// ZoomSteps is the accumulated wheel position in detents since the last fit.
func (v *View) ZoomSteps() float64 {
	return v.zoomSteps
}

func (v *View) Viewport() (w, h float64) {
	return v.viewportW, v.viewportH
}

// SetViewport records the viewport size. A fit requested while the viewport
// had no area is applied on the first non-empty size.
func (v *View) SetViewport(w, h float64) {
	v.viewportW = w
	v.viewportH = h

	if v.pendingFit && w > 0 && h > 0 {
		v.FitToView()
	}
}

// Load replaces the displayed image and fits it to the viewport.
func (v *View) Load(img image.Image) {
	if img == nil {
		return
	}

	v.img = img
	v.bounds = img.Bounds()
	v.zoomSteps = 0
	v.transform = Identity()
	v.FitToView()
}

// FitToView scales the image to fit inside the viewport and centres it.
// Zero-area images keep their current transform.
func (v *View) FitToView() {
	if !v.HasImage() {
		return
	}

	if v.viewportW <= 0 || v.viewportH <= 0 {
		v.pendingFit = true
		return
	}
	v.pendingFit = false

	t, ok := Fit(v.bounds, v.viewportW, v.viewportH)
	if !ok {
		return
	}
	v.transform = t
	v.zoomSteps = 0
}

// ZoomBy applies one wheel event. Positive deltas zoom in by ZoomInFactor,
// negative deltas zoom out by ZoomOutFactor, anchored at the pointer.
func (v *View) ZoomBy(delta float64, anchor Point) {
	if !v.adjustable() || delta == 0 {
		return
	}

	factor := ZoomInFactor
	if delta < 0 {
		factor = ZoomOutFactor
	}
	v.transform = v.transform.ScaledAbout(factor, anchor)
	v.zoomSteps += delta / WheelNotch
}

// Scale applies a fixed zoom factor anchored at the viewport centre.
func (v *View) Scale(factor float64) {
	if !v.adjustable() || factor <= 0 {
		return
	}
	v.transform = v.transform.ScaledAbout(factor, v.centre())
}

func (v *View) ZoomIn() {
	v.Scale(ZoomInFactor)
}

func (v *View) ZoomOut() {
	v.Scale(ZoomOutFactor)
}

// Pan moves the image by (dx, dy) viewport units.
func (v *View) Pan(dx, dy float64) {
	if !v.adjustable() {
		return
	}
	v.transform = v.transform.Translated(dx, dy)
}

// Sample reads the colour of the image pixel under the viewport point p.
// The image rectangle is half-open: the pixel at Max is outside.
func (v *View) Sample(p Point) PixelSample {
	if !v.HasImage() || v.bounds.Empty() {
		return OutOfBounds()
	}

	ip, ok := v.transform.Invert(p)
	if !ok {
		return OutOfBounds()
	}

	fx := math.Floor(ip.X)
	fy := math.Floor(ip.Y)
	if fx < math.MinInt32 || fx > math.MaxInt32 || fy < math.MinInt32 || fy > math.MaxInt32 {
		return OutOfBounds()
	}

	pt := image.Pt(int(fx), int(fy))
	if !pt.In(v.bounds) {
		return OutOfBounds()
	}
	return SampleOf(v.img.At(pt.X, pt.Y))
}

// adjustable is false until an image has been fitted; a pending fit would
// overwrite any zoom or pan made before it.
func (v *View) adjustable() bool {
	return v.HasImage() && !v.pendingFit
}

func (v *View) centre() Point {
	return Point{X: v.viewportW / 2, Y: v.viewportH / 2}
}
