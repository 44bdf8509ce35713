package panzoom

// Option configures a Controller during creation.
//
// Example:
//
//	// Zoom between 50% and 400%, starting at 100%.
//	c, err := panzoom.NewController(
//	    panzoom.WithScaleBounds(0.5, 4),
//	    panzoom.WithDefaultScale(1),
//	)
type Option func(*options)

// options holds the scale configuration collected from Options.
type options struct {
	scaleMin     float64
	scaleMax     float64
	scaleDefault float64
	defaultSet   bool
}

func defaultOptions() options {
	return options{
		scaleMin:     DefaultScaleMin,
		scaleMax:     DefaultScaleMax,
		scaleDefault: DefaultScale,
	}
}

// WithScaleBounds sets the minimum and maximum scale. Without
// WithDefaultScale the default scale of 1 is clamped into the bounds, so
// WithScaleBounds(2, 3) starts the controller at scale 2.
func WithScaleBounds(min, max float64) Option {
	return func(o *options) {
		o.scaleMin = min
		o.scaleMax = max
	}
}

// WithDefaultScale sets the default scale. The controller starts at this
// scale. It must lie within the configured bounds.
func WithDefaultScale(s float64) Option {
	return func(o *options) {
		o.scaleDefault = s
		o.defaultSet = true
	}
}
