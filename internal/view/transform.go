package view

import (
	"image"
	"math"

	"golang.org/x/image/math/f64"
)

// Point is a position in either image or viewport coordinates.
type Point struct {
	X, Y float64
}

// Transform maps image space to viewport space: p' = Scale*p + (TX, TY).
// Scaling is always isotropic so the image aspect ratio is preserved.
type Transform struct {
	Scale float64
	TX    float64
	TY    float64
}

func Identity() Transform {
	return Transform{Scale: 1}
}

func (t Transform) Apply(p Point) Point {
	return Point{X: p.X*t.Scale + t.TX, Y: p.Y*t.Scale + t.TY}
}

// Invert maps a viewport point back into image space. A degenerate
// transform reports ok=false.
func (t Transform) Invert(p Point) (Point, bool) {
	if t.Scale == 0 || math.IsNaN(t.Scale) || math.IsInf(t.Scale, 0) {
		return Point{}, false
	}
	return Point{X: (p.X - t.TX) / t.Scale, Y: (p.Y - t.TY) / t.Scale}, true
}

// ScaledAbout multiplies the scale by factor while keeping the image point
// currently under anchor at the same viewport position.
func (t Transform) ScaledAbout(factor float64, anchor Point) Transform {
	scale := t.Scale * factor
	return Transform{
		Scale: scale,
		TX:    anchor.X - (anchor.X-t.TX)*factor,
		TY:    anchor.Y - (anchor.Y-t.TY)*factor,
	}
}

func (t Transform) Translated(dx, dy float64) Transform {
	return Transform{Scale: t.Scale, TX: t.TX + dx, TY: t.TY + dy}
}

// Aff3 returns the transform as the matrix expected by golang.org/x/image/draw.
func (t Transform) Aff3() f64.Aff3 {
	return f64.Aff3{
		t.Scale, 0, t.TX,
		0, t.Scale, t.TY,
	}
}

// MapRect returns the viewport-space rectangle covered by r.
func (t Transform) MapRect(r image.Rectangle) (topLeft, bottomRight Point) {
	topLeft = t.Apply(Point{X: float64(r.Min.X), Y: float64(r.Min.Y)})
	bottomRight = t.Apply(Point{X: float64(r.Max.X), Y: float64(r.Max.Y)})
	return topLeft, bottomRight
}

// Fit returns the scale-to-contain transform that centres r inside a
// viewport of vw x vh. ok is false when either r or the viewport has no area.
func Fit(r image.Rectangle, vw, vh float64) (Transform, bool) {
	if r.Empty() || vw <= 0 || vh <= 0 {
		return Transform{}, false
	}

	iw := float64(r.Dx())
	ih := float64(r.Dy())
	scale := math.Min(vw/iw, vh/ih)

	return Transform{
		Scale: scale,
		TX:    (vw-iw*scale)/2 - float64(r.Min.X)*scale,
		TY:    (vh-ih*scale)/2 - float64(r.Min.Y)*scale,
	}, true
}
