// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image/color"

	"golang.org/x/text/language"
)

// Option configures Draw and Frame.
type Option func(*options)

type options struct {
	interp     Interpolation
	background color.Color
	overlay    bool
	lang       language.Tag
}

func defaultOptions() options {
	return options{
		interp:     Bilinear,
		background: color.Black,
		lang:       language.English,
	}
}

func collect(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithInterpolation sets the sampling mode. The default is Bilinear.
func WithInterpolation(i Interpolation) Option {
	return func(o *options) {
		o.interp = i
	}
}

// WithBackground sets the color used for surface pixels not covered by the
// image. The default is opaque black. A nil color leaves the destination
// untouched before drawing.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithOverlay draws the status label after the image, formatting numbers
// for the given language.
func WithOverlay(tag language.Tag) Option {
	return func(o *options) {
		o.overlay = true
		o.lang = tag
	}
}
