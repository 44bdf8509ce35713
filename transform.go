package panzoom

// Transform is an immutable snapshot of a controller's view transform.
//
// A renderer applies it by scaling the drawing surface by Scale about the
// pivot (FocusX, FocusY) and then translating by (OffsetX, OffsetY) before
// drawing the content. Matrix returns that composition.
type Transform struct {
	// OffsetX and OffsetY are the accumulated pan in content units.
	OffsetX, OffsetY float64
	// Scale is the current zoom level; 1 means no zoom.
	Scale float64
	// FocusX and FocusY are the last pinch center in surface pixels.
	FocusX, FocusY float64
}

// Identity reports whether the transform leaves content untouched.
func (t Transform) Identity() bool {
	return t.Matrix().IsIdentity()
}

// Matrix returns the content-to-surface matrix:
//
//	x' = Scale*(x + OffsetX - FocusX) + FocusX
//	y' = Scale*(y + OffsetY - FocusY) + FocusY
func (t Transform) Matrix() Matrix {
	return ScaleAbout(t.Scale, t.FocusX, t.FocusY).Multiply(Translate(t.OffsetX, t.OffsetY))
}

// ContentToSurface maps a point in content coordinates to the surface.
func (t Transform) ContentToSurface(p Point) Point {
	return t.Matrix().TransformPoint(p)
}

// SurfaceToContent maps a surface point back to content coordinates.
// It returns false when the scale is zero, or too close to zero for the
// matrix to be inverted.
func (t Transform) SurfaceToContent(p Point) (Point, bool) {
	m := t.Matrix()
	if !m.Invertible() {
		return Point{}, false
	}
	return m.Invert().TransformPoint(p), true
}
