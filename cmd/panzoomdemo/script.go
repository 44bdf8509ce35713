package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/panzoom"
)

// step is one entry of a gesture script.
type step struct {
	frame panzoom.Frame
	reset bool
}

// parseScript parses a semicolon separated gesture script:
//
//	pan:dx,dy          drag delta in surface pixels
//	scale:f,fx,fy      pinch factor and focus point
//	reset              jump back to the default scale
//
// Blank steps are ignored.
func parseScript(s string) ([]step, error) {
	var steps []step
	for i, raw := range strings.Split(s, ";") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		st, err := parseStep(raw)
		if err != nil {
			return nil, fmt.Errorf("script step %d (%q): %w", i+1, raw, err)
		}
		steps = append(steps, st)
	}
	return steps, nil
}

func parseStep(raw string) (step, error) {
	name, args, _ := strings.Cut(raw, ":")
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pan":
		v, err := parseFloats(args, 2)
		if err != nil {
			return step{}, err
		}
		return step{frame: panzoom.Frame{Pan: &panzoom.PanEvent{DX: v[0], DY: v[1]}}}, nil
	case "scale":
		v, err := parseFloats(args, 3)
		if err != nil {
			return step{}, err
		}
		ev := &panzoom.ScaleEvent{Factor: v[0], FocusX: v[1], FocusY: v[2]}
		return step{frame: panzoom.Frame{Scale: ev, ScaleInProgress: true}}, nil
	case "reset":
		if strings.TrimSpace(args) != "" {
			return step{}, fmt.Errorf("reset takes no arguments")
		}
		return step{reset: true}, nil
	default:
		return step{}, fmt.Errorf("unknown gesture %q", name)
	}
}

func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d values, got %d", n, len(parts))
	}
	v := make([]float64, n)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		v[i] = f
	}
	return v, nil
}

// replay applies the script to c and returns how many steps changed the
// transform.
func replay(c *panzoom.Controller, steps []step) (int, error) {
	changed := 0
	for _, st := range steps {
		if st.reset {
			if err := c.SetDefaultScale(c.DefaultScale(), true); err != nil {
				return changed, err
			}
			changed++
			continue
		}
		if c.HandleFrame(st.frame) {
			changed++
		}
	}
	return changed, nil
}
