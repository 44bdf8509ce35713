package panzoom

import (
	"errors"
	"testing"
)

func TestArgumentErrorMessage(t *testing.T) {
	c, err := NewController()
	if err != nil {
		t.Fatal(err)
	}

	err = c.SetScaleMax(-1)
	want := "panzoom: SetScaleMax: max=-1: must not be negative"
	if err == nil || err.Error() != want {
		t.Errorf("error = %v, want %q", err, want)
	}

	err = c.SetScaleMin(2.5)
	want = "panzoom: SetScaleMin: min=2.5: must not exceed max scale 1"
	if err == nil || err.Error() != want {
		t.Errorf("error = %v, want %q", err, want)
	}
}

func TestArgumentErrorFields(t *testing.T) {
	c, err := NewController(WithScaleBounds(1, 3))
	if err != nil {
		t.Fatal(err)
	}

	err = c.SetDefaultScale(0.5, false)
	var ae *ArgumentError
	if !errors.As(err, &ae) {
		t.Fatalf("errors.As(%v) = false", err)
	}
	if ae.Op != "SetDefaultScale" || ae.Param != "default" || ae.Value != 0.5 {
		t.Errorf("ArgumentError = %+v", ae)
	}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Error("errors.Is(err, ErrInvalidArgument) = false")
	}
}
