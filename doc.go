// Package panzoom provides a pan/zoom view-transform controller for image
// display surfaces.
//
// # Overview
//
// A [Controller] owns the transform state of one surface: the accumulated pan
// offset, the current scale with its minimum, maximum and default, and the
// last pinch focus point. A gesture source feeds it classified gestures (a
// drag delta, or a pinch factor with its center) and a renderer reads the
// result with [Controller.CurrentTransform].
//
// Recognising gestures from raw pointer samples and painting the image are
// left to the host. The render sub-package contains a CPU reference renderer
// built on golang.org/x/image/draw.
//
// # Quick Start
//
//	c, err := panzoom.NewController(panzoom.WithScaleBounds(0.5, 4))
//	if err != nil {
//	    return err
//	}
//
//	// From the gesture source:
//	c.Pan(dx, dy)
//	c.ScaleBy(factor, focusX, focusY)
//
//	// From the renderer:
//	m := c.CurrentTransform().Matrix()
//
// # Coordinate System
//
// Surface coordinates are pixels of the display surface with the origin at
// the top-left, X to the right and Y down. Content coordinates are pixels of
// the displayed image. Offsets are stored in content units, so panning speed
// on screen does not depend on the zoom level.
//
// # Errors
//
// The validating setters return errors wrapping [ErrInvalidArgument]. Pan,
// ScaleBy and CurrentTransform never fail.
package panzoom
