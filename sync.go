package panzoom

import "sync"

// SyncController wraps a Controller with a mutex so it can be driven from
// several goroutines, for example an input goroutine and a render loop.
type SyncController struct {
	mu sync.Mutex
	c  *Controller
}

// NewSyncController creates a guarded controller with the given options.
func NewSyncController(opts ...Option) (*SyncController, error) {
	c, err := NewController(opts...)
	if err != nil {
		return nil, err
	}
	return &SyncController{c: c}, nil
}

// SetScaleBounds is the guarded form of [Controller.SetScaleBounds].
func (s *SyncController) SetScaleBounds(min, max float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.SetScaleBounds(min, max)
}

// SetScaleBoundsAndDefault is the guarded form of [Controller.SetScaleBoundsAndDefault].
func (s *SyncController) SetScaleBoundsAndDefault(min, max, defaultScale float64, applyNow bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.SetScaleBoundsAndDefault(min, max, defaultScale, applyNow)
}

// SetScaleMax is the guarded form of [Controller.SetScaleMax].
func (s *SyncController) SetScaleMax(max float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.SetScaleMax(max)
}

// SetScaleMin is the guarded form of [Controller.SetScaleMin].
func (s *SyncController) SetScaleMin(min float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.SetScaleMin(min)
}

// SetDefaultScale is the guarded form of [Controller.SetDefaultScale].
func (s *SyncController) SetDefaultScale(defaultScale float64, applyNow bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.SetDefaultScale(defaultScale, applyNow)
}

// Pan is the guarded form of [Controller.Pan].
func (s *SyncController) Pan(dx, dy float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Pan(dx, dy)
}

// ScaleBy is the guarded form of [Controller.ScaleBy].
func (s *SyncController) ScaleBy(factor, focusX, focusY float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.ScaleBy(factor, focusX, focusY)
}

// Handle is the guarded form of [Controller.Handle].
func (s *SyncController) Handle(ev Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Handle(ev)
}

// HandleFrame is the guarded form of [Controller.HandleFrame].
func (s *SyncController) HandleFrame(f Frame) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.HandleFrame(f)
}

// CurrentTransform is the guarded form of [Controller.CurrentTransform].
func (s *SyncController) CurrentTransform() Transform {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.CurrentTransform()
}

// ScaleBounds is the guarded form of [Controller.ScaleBounds].
func (s *SyncController) ScaleBounds() (min, max float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.ScaleBounds()
}

// DefaultScale is the guarded form of [Controller.DefaultScale].
func (s *SyncController) DefaultScale() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.DefaultScale()
}
