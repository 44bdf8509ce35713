// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/panzoom"
)

const overlayPadding = 4

var (
	overlayBox  = color.RGBA{A: 0xa0}
	overlayText = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Label formats a one-line description of t with numbers localized for tag.
func Label(t panzoom.Transform, tag language.Tag) string {
	p := message.NewPrinter(tag)
	return p.Sprintf("zoom %.0f%%  offset %.1f / %.1f  focus %.0f / %.0f",
		t.Scale*100, t.OffsetX, t.OffsetY, t.FocusX, t.FocusY)
}

// Overlay draws Label(t, tag) in the top-left corner of dst on a
// translucent box.
func Overlay(dst draw.Image, t panzoom.Transform, tag language.Tag) {
	face := basicfont.Face7x13
	label := Label(t, tag)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(overlayText),
		Face: face,
	}
	width := d.MeasureString(label).Ceil()
	metrics := face.Metrics()
	height := (metrics.Ascent + metrics.Descent).Ceil()

	b := dst.Bounds()
	box := image.Rect(b.Min.X, b.Min.Y, b.Min.X+width+2*overlayPadding, b.Min.Y+height+2*overlayPadding)
	draw.Draw(dst, box.Intersect(b), image.NewUniform(overlayBox), image.Point{}, draw.Over)

	d.Dot = fixed.P(b.Min.X+overlayPadding, b.Min.Y+overlayPadding+metrics.Ascent.Ceil())
	d.DrawString(label)
}
