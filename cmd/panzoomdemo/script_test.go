package main

import (
	"strings"
	"testing"

	"github.com/gogpu/panzoom"
)

func TestParseScript(t *testing.T) {
	steps, err := parseScript(" pan:10,-5 ; scale:2, 100, 50;;reset;")
	if err != nil {
		t.Fatalf("parseScript() error = %v", err)
	}
	if len(steps) != 3 {
		t.Fatalf("len(steps) = %d, want 3", len(steps))
	}

	if p := steps[0].frame.Pan; p == nil || p.DX != 10 || p.DY != -5 {
		t.Errorf("step 1 pan = %+v", p)
	}
	s := steps[1].frame.Scale
	if s == nil || s.Factor != 2 || s.FocusX != 100 || s.FocusY != 50 {
		t.Errorf("step 2 scale = %+v", s)
	}
	if !steps[1].frame.ScaleInProgress {
		t.Error("step 2 should mark the scale gesture in progress")
	}
	if !steps[2].reset {
		t.Error("step 3 should be a reset")
	}
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		script string
		want   string
	}{
		{"pan:1", "step 1"},
		{"pan:1,2;scale:1,2", "step 2"},
		{"zoom:2", "unknown gesture"},
		{"pan:a,b", "invalid syntax"},
		{"reset:1", "no arguments"},
	}
	for _, tt := range tests {
		t.Run(tt.script, func(t *testing.T) {
			_, err := parseScript(tt.script)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("parseScript(%q) error = %v, want it to mention %q", tt.script, err, tt.want)
			}
		})
	}
}

func TestReplay(t *testing.T) {
	c, err := panzoom.NewController(panzoom.WithScaleBounds(0.5, 4))
	if err != nil {
		t.Fatal(err)
	}
	steps, err := parseScript("scale:2,10,10;pan:4,0;reset;pan:4,0")
	if err != nil {
		t.Fatal(err)
	}

	changed, err := replay(c, steps)
	if err != nil {
		t.Fatalf("replay() error = %v", err)
	}
	if changed != 4 {
		t.Errorf("changed = %d, want 4", changed)
	}

	// -4/2 at scale 2, then -4/1 after the reset.
	want := panzoom.Transform{OffsetX: -6, Scale: 1, FocusX: 10, FocusY: 10}
	if got := c.CurrentTransform(); got != want {
		t.Errorf("CurrentTransform() = %+v, want %+v", got, want)
	}
}

func TestCheckerboard(t *testing.T) {
	img := checkerboard(20, 10, 5)
	if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 10 {
		t.Fatalf("Bounds() = %v", img.Bounds())
	}
	if img.RGBAAt(0, 0) == img.RGBAAt(5, 0) {
		t.Error("adjacent cells share a color")
	}
	if img.RGBAAt(0, 0) != img.RGBAAt(5, 5) {
		t.Error("diagonal cells differ")
	}
}

func TestScaleOptions(t *testing.T) {
	tests := []struct {
		name         string
		min, max     float64
		def          float64
		defaultGiven bool
		want         float64
	}{
		{"bounds only above 1", 2, 5, 1, false, 2},
		{"bounds only containing 1", 0.5, 4, 1, false, 1},
		{"explicit default", 2, 5, 3, true, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := panzoom.NewController(scaleOptions(tt.min, tt.max, tt.def, tt.defaultGiven)...)
			if err != nil {
				t.Fatalf("NewController() error = %v", err)
			}
			if got := c.CurrentTransform().Scale; got != tt.want {
				t.Errorf("Scale = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadSourceCheckerboardMatchesSurface(t *testing.T) {
	img, err := loadSource("", 320, 200)
	if err != nil {
		t.Fatalf("loadSource() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 200 {
		t.Errorf("Bounds() = %v, want 320x200", b)
	}
}
