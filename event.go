package panzoom

// Event is a classified gesture delivered by a gesture source.
// It is implemented by PanEvent and ScaleEvent.
type Event interface {
	applyTo(c *Controller)
}

// PanEvent is a drag delta in surface pixels since the previous event.
type PanEvent struct {
	DX, DY float64
}

func (e PanEvent) applyTo(c *Controller) { c.Pan(e.DX, e.DY) }

// ScaleEvent is a pinch step: Factor is the multiplicative change since the
// previous scale event, (FocusX, FocusY) the pinch center in surface pixels.
type ScaleEvent struct {
	Factor         float64
	FocusX, FocusY float64
}

func (e ScaleEvent) applyTo(c *Controller) { c.ScaleBy(e.Factor, e.FocusX, e.FocusY) }

// Handle applies a single event. It returns false for a nil event.
func (c *Controller) Handle(ev Event) bool {
	if ev == nil {
		return false
	}
	ev.applyTo(c)
	return true
}

// Frame bundles the gesture output of one input frame.
//
// Gesture sources usually run a scale detector and a drag detector over the
// same pointer samples. Scale takes precedence: the pan is dropped when the
// frame carries a scale step or a scale gesture is in progress.
type Frame struct {
	// Scale is the pinch step of this frame, if any.
	Scale *ScaleEvent
	// ScaleInProgress reports that a pinch is active, even when this
	// frame carries no scale step.
	ScaleInProgress bool
	// Pan is the drag step of this frame, if any.
	Pan *PanEvent
}

// HandleFrame applies the events of one input frame and reports whether
// the transform may have changed, in which case the caller should redraw.
func (c *Controller) HandleFrame(f Frame) bool {
	handled := false
	if f.Scale != nil {
		c.Handle(*f.Scale)
		handled = true
	}
	if f.Pan != nil && f.Scale == nil && !f.ScaleInProgress {
		c.Handle(*f.Pan)
		handled = true
	}
	return handled
}
