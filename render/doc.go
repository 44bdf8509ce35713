// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render is a CPU reference renderer for panzoom transforms.
//
// It draws an image onto a destination through a [panzoom.Transform] using
// the affine transformers of golang.org/x/image/draw, and can overlay a
// one-line status label describing the transform.
//
// Typical use in a redraw handler:
//
//	frame := render.Frame(w, h, img, c.CurrentTransform(),
//	    render.WithInterpolation(render.Bilinear))
//
// The functions are stateless and safe for concurrent use as long as
// callers do not share a destination image.
package render
