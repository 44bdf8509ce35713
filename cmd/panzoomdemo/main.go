// Command panzoomdemo replays a gesture script through a panzoom controller
// and renders the resulting view of an image to a file.
package main

import (
	"flag"
	"image"
	"image/color"
	"log"
	"log/slog"
	"os"

	"golang.org/x/text/language"

	"github.com/gogpu/panzoom"
	"github.com/gogpu/panzoom/internal/imageio"
	"github.com/gogpu/panzoom/render"
)

func main() {
	var (
		input   = flag.String("input", "", "image to display (default: generated checkerboard)")
		output  = flag.String("output", "panzoom.png", "output file")
		width   = flag.Int("width", 800, "surface width")
		height  = flag.Int("height", 600, "surface height")
		minS    = flag.Float64("min", 0.5, "minimum scale")
		maxS    = flag.Float64("max", 4, "maximum scale")
		defS    = flag.Float64("default", 1, "default scale (clamped into -min/-max when unset)")
		script  = flag.String("script", "scale:1.5,400,300;scale:1.5,400,300;pan:-40,25", "gesture script")
		interp  = flag.String("interp", "bilinear", "interpolation: nearest, bilinear, bicubic")
		hud     = flag.Bool("hud", true, "draw the transform label")
		lang    = flag.String("lang", "en", "BCP 47 language for the label")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	panzoom.SetLogger(logger)

	mode, ok := render.ParseInterpolation(*interp)
	if !ok {
		log.Fatalf("Unknown interpolation %q", *interp)
	}
	tag, err := language.Parse(*lang)
	if err != nil {
		log.Fatalf("Invalid language: %v", err)
	}

	steps, err := parseScript(*script)
	if err != nil {
		log.Fatalf("Invalid script: %v", err)
	}

	src, err := loadSource(*input, *width, *height)
	if err != nil {
		log.Fatalf("Failed to load: %v", err)
	}

	c, err := panzoom.NewController(scaleOptions(*minS, *maxS, *defS, flagSet("default"))...)
	if err != nil {
		log.Fatalf("Invalid scales: %v", err)
	}

	changed, err := replay(c, steps)
	if err != nil {
		log.Fatalf("Replay failed: %v", err)
	}
	t := c.CurrentTransform()
	logger.Info("gestures replayed", "steps", len(steps), "changed", changed,
		"scale", t.Scale, "offsetX", t.OffsetX, "offsetY", t.OffsetY)

	opts := []render.Option{render.WithInterpolation(mode)}
	if *hud {
		opts = append(opts, render.WithOverlay(tag))
	}
	frame := render.Frame(*width, *height, src, t, opts...)

	if err := imageio.Save(*output, frame); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	logger.Info("frame written", "path", *output, "width", *width, "height", *height)
}

// loadSource loads path, or generates a checkerboard covering the w x h
// surface when path is empty.
func loadSource(path string, w, h int) (image.Image, error) {
	if path == "" {
		return checkerboard(w, h, 50), nil
	}
	img, format, err := imageio.Load(path)
	if err != nil {
		return nil, err
	}
	panzoom.Logger().Info("image loaded", "path", path, "format", format, "bounds", img.Bounds())
	return img, nil
}

// scaleOptions builds the controller options from the scale flags. The
// default scale is only passed on when given explicitly.
func scaleOptions(min, max, def float64, defaultGiven bool) []panzoom.Option {
	opts := []panzoom.Option{panzoom.WithScaleBounds(min, max)}
	if defaultGiven {
		opts = append(opts, panzoom.WithDefaultScale(def))
	}
	return opts
}

// flagSet reports whether the named flag was given on the command line.
func flagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// checkerboard generates a w x h test image with square cells.
func checkerboard(w, h, cell int) *image.RGBA {
	light := color.RGBA{R: 0xe0, G: 0xe0, B: 0xe8, A: 0xff}
	dark := color.RGBA{R: 0x30, G: 0x40, B: 0x70, A: 0xff}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.SetRGBA(x, y, light)
			} else {
				img.SetRGBA(x, y, dark)
			}
		}
	}
	return img
}
