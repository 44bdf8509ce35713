package panzoom

import (
	"math"
	"strconv"
)

// Default scale values of a freshly constructed Controller: no zoom.
const (
	DefaultScaleMin = 1.0
	DefaultScaleMax = 1.0
	DefaultScale    = 1.0
)

// transformState is the mutable state owned by a Controller.
type transformState struct {
	offsetX, offsetY float64

	scaleMin, scaleMax float64
	scaleDefault       float64
	scaleCurrent       float64

	focusX, focusY float64
}

// Controller maintains the pan/zoom transform of an image surface.
//
// It consumes already classified gesture deltas through Pan and ScaleBy and
// exposes the result through CurrentTransform. After every completed call
// the scale invariants hold:
//
//	ScaleMin <= current <= ScaleMax
//	ScaleMin <= default <= ScaleMax
//
// Controller is NOT safe for concurrent use. Drive it from the goroutine
// that delivers input events, or use [SyncController].
type Controller struct {
	st transformState
}

// NewController creates a controller with the given options applied.
// Without options the controller starts at scale 1 with bounds [1, 1]
// and no pan offset.
//
// The returned error wraps [ErrInvalidArgument] when the options describe
// inconsistent scales.
func NewController(opts ...Option) (*Controller, error) {
	c := &Controller{
		st: transformState{
			scaleMin:     DefaultScaleMin,
			scaleMax:     DefaultScaleMax,
			scaleDefault: DefaultScale,
			scaleCurrent: DefaultScale,
		},
	}
	if len(opts) == 0 {
		return c, nil
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.defaultSet {
		o.scaleDefault = math.Max(o.scaleMin, math.Min(o.scaleDefault, o.scaleMax))
	}
	if err := c.SetScaleBoundsAndDefault(o.scaleMin, o.scaleMax, o.scaleDefault, true); err != nil {
		return nil, err
	}
	return c, nil
}

// SetScaleBounds sets the minimum and maximum scale.
// The default scale and the current scale are clamped into the new range.
//
// Both values must be non-negative and min must not exceed max; otherwise
// an error wrapping [ErrInvalidArgument] is returned and nothing changes.
func (c *Controller) SetScaleBounds(min, max float64) error {
	if err := validateBounds("SetScaleBounds", min, max); err != nil {
		return err
	}
	c.applyBounds(min, max)
	return nil
}

// SetScaleBoundsAndDefault sets the scale range and the default scale in one
// step. If applyNow is true the current scale jumps to the default.
//
// All three values are validated against each other before any state is
// modified, so a failed call leaves the controller untouched.
func (c *Controller) SetScaleBoundsAndDefault(min, max, defaultScale float64, applyNow bool) error {
	const op = "SetScaleBoundsAndDefault"
	if err := validateBounds(op, min, max); err != nil {
		return err
	}
	if err := validateDefault(op, defaultScale, min, max); err != nil {
		return err
	}
	c.applyBounds(min, max)
	c.applyDefault(defaultScale, applyNow)
	return nil
}

// SetScaleMax sets the maximum scale. The current and default scales are
// lowered to max if they exceed it.
//
// max must be non-negative and not below the current minimum; lower the
// minimum first or use SetScaleBounds to move both.
func (c *Controller) SetScaleMax(max float64) error {
	const op = "SetScaleMax"
	if !(max >= 0) {
		return invalidArg(op, "max", max, "must not be negative")
	}
	if max < c.st.scaleMin {
		return invalidArg(op, "max", max, "must not be below min scale "+formatScale(c.st.scaleMin))
	}

	c.st.scaleMax = max
	if c.st.scaleCurrent > max {
		c.st.scaleCurrent = max
	}
	if c.st.scaleDefault > max {
		c.st.scaleDefault = max
	}
	return nil
}

// SetScaleMin sets the minimum scale. The current and default scales are
// raised to min if they are below it.
//
// min must be non-negative and not above the current maximum; raise the
// maximum first or use SetScaleBounds to move both.
func (c *Controller) SetScaleMin(min float64) error {
	const op = "SetScaleMin"
	if !(min >= 0) {
		return invalidArg(op, "min", min, "must not be negative")
	}
	if min > c.st.scaleMax {
		return invalidArg(op, "min", min, "must not exceed max scale "+formatScale(c.st.scaleMax))
	}

	c.st.scaleMin = min
	if c.st.scaleCurrent < min {
		c.st.scaleCurrent = min
	}
	if c.st.scaleDefault < min {
		c.st.scaleDefault = min
	}
	return nil
}

// SetDefaultScale sets the default scale, which must lie within the current
// bounds. If applyNow is true the current scale is reset to it.
func (c *Controller) SetDefaultScale(defaultScale float64, applyNow bool) error {
	if err := validateDefault("SetDefaultScale", defaultScale, c.st.scaleMin, c.st.scaleMax); err != nil {
		return err
	}
	c.applyDefault(defaultScale, applyNow)
	return nil
}

// Pan moves the view by a drag delta given in surface pixels.
//
// The delta is divided by the current scale, so a drag of a fixed number of
// pixels moves less content when zoomed in, and negated so the content
// follows the pointer.
//
// Pan is a no-op while the scale is zero. This deliberately departs from
// the plain offset += -d/scale formula, which would store infinite offsets.
func (c *Controller) Pan(dx, dy float64) {
	s := c.st.scaleCurrent
	if s == 0 {
		return
	}
	c.st.offsetX += -dx / s
	c.st.offsetY += -dy / s
}

// ScaleBy multiplies the current scale by factor and clamps the result into
// [ScaleMin, ScaleMax]. The focus point is recorded even when clamping turns
// the call into a no-op.
//
// factor is an incremental multiplier, typically close to 1 for continuous
// pinch deltas. Zero, negative and NaN factors are not rejected; they clamp
// to the minimum scale.
func (c *Controller) ScaleBy(factor, focusX, focusY float64) {
	c.st.focusX = focusX
	c.st.focusY = focusY

	s := c.st.scaleCurrent * factor
	switch {
	case math.IsNaN(s) || s < c.st.scaleMin:
		s = c.st.scaleMin
		Logger().Debug("panzoom: scale clamped to min", "factor", factor, "scale", s)
	case s > c.st.scaleMax:
		s = c.st.scaleMax
		Logger().Debug("panzoom: scale clamped to max", "factor", factor, "scale", s)
	}
	c.st.scaleCurrent = s
}

// CurrentTransform returns a snapshot of the transform for rendering.
func (c *Controller) CurrentTransform() Transform {
	return Transform{
		OffsetX: c.st.offsetX,
		OffsetY: c.st.offsetY,
		Scale:   c.st.scaleCurrent,
		FocusX:  c.st.focusX,
		FocusY:  c.st.focusY,
	}
}

// ScaleBounds returns the current minimum and maximum scale.
func (c *Controller) ScaleBounds() (min, max float64) {
	return c.st.scaleMin, c.st.scaleMax
}

// DefaultScale returns the default scale.
func (c *Controller) DefaultScale() float64 {
	return c.st.scaleDefault
}

func (c *Controller) applyBounds(min, max float64) {
	c.st.scaleMin = min
	c.st.scaleMax = max

	if c.st.scaleDefault > max {
		c.st.scaleDefault = max
	} else if c.st.scaleDefault < min {
		c.st.scaleDefault = min
	}

	if c.st.scaleCurrent > max {
		c.st.scaleCurrent = max
	} else if c.st.scaleCurrent < min {
		c.st.scaleCurrent = min
	}
}

func (c *Controller) applyDefault(defaultScale float64, applyNow bool) {
	c.st.scaleDefault = defaultScale
	if applyNow {
		c.st.scaleCurrent = defaultScale
	}
}

func validateBounds(op string, min, max float64) error {
	if !(min >= 0) {
		return invalidArg(op, "min", min, "must not be negative")
	}
	if !(max >= 0) {
		return invalidArg(op, "max", max, "must not be negative")
	}
	if min > max {
		return invalidArg(op, "min", min, "must not exceed max "+formatScale(max))
	}
	return nil
}

func validateDefault(op string, defaultScale, min, max float64) error {
	if !(defaultScale >= 0) {
		return invalidArg(op, "default", defaultScale, "must not be negative")
	}
	if defaultScale < min {
		return invalidArg(op, "default", defaultScale, "must not be below min scale "+formatScale(min))
	}
	if defaultScale > max {
		return invalidArg(op, "default", defaultScale, "must not exceed max scale "+formatScale(max))
	}
	return nil
}

func formatScale(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
