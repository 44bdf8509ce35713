// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import "golang.org/x/image/draw"

// Interpolation selects how source pixels are sampled when the transform
// scales the image.
type Interpolation uint8

const (
	// Nearest selects the closest pixel (no interpolation).
	// Fast but produces blocky results when zoomed in.
	Nearest Interpolation = iota

	// Bilinear performs linear interpolation between 4 neighboring pixels.
	// Good balance between quality and performance.
	Bilinear

	// Bicubic performs Catmull-Rom cubic interpolation.
	// Highest quality but the slowest.
	Bicubic
)

// String returns the name of the interpolation mode.
func (i Interpolation) String() string {
	switch i {
	case Nearest:
		return "nearest"
	case Bilinear:
		return "bilinear"
	case Bicubic:
		return "bicubic"
	default:
		return "unknown"
	}
}

// ParseInterpolation converts a name produced by String back to a mode.
func ParseInterpolation(name string) (Interpolation, bool) {
	switch name {
	case "nearest":
		return Nearest, true
	case "bilinear":
		return Bilinear, true
	case "bicubic":
		return Bicubic, true
	}
	return Nearest, false
}

func (i Interpolation) transformer() draw.Transformer {
	switch i {
	case Bilinear:
		return draw.BiLinear
	case Bicubic:
		return draw.CatmullRom
	default:
		return draw.NearestNeighbor
	}
}
