// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/panzoom"
)

// Draw paints src onto dst through the transform t.
//
// The content-to-surface matrix of t maps src pixel coordinates onto dst.
// Pixels of dst that the image does not cover are filled with the
// background color first.
func Draw(dst draw.Image, src image.Image, t panzoom.Transform, opts ...Option) {
	o := collect(opts)

	if o.background != nil {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(o.background), image.Point{}, draw.Src)
	}

	if t.Scale > 0 {
		m := t.Matrix()
		o.interp.transformer().Transform(dst, m.Aff3(), src, src.Bounds(), draw.Over, nil)
	} else {
		panzoom.Logger().Debug("render: skipped image at non-positive scale", "scale", t.Scale)
	}

	if o.overlay {
		Overlay(dst, t, o.lang)
	}
}

// Frame allocates a w x h RGBA surface and draws src onto it.
func Frame(w, h int, src image.Image, t panzoom.Transform, opts ...Option) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	Draw(dst, src, t, opts...)
	return dst
}
