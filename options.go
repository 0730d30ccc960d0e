package panzoom

import "fmt"

// Default option values.
const (
	DefaultInitialScale = 1.0
	DefaultScaleMin     = 0.5
	DefaultScaleMax     = 1.5
	DefaultScaleStep    = 0.1
)

// Options configures a Canvas. Zero fields take the defaults listed on each.
type Options struct {
	// InitialScale is the starting zoom. Default 1. Clamped into range.
	InitialScale float64
	// ScaleMin and ScaleMax bound the zoom. Defaults 0.5 and 1.5.
	ScaleMin, ScaleMax float64
	// ScaleStep is the zoom change per wheel tick. Default 0.1.
	ScaleStep float64

	// ValidateDrag decides whether a pointer-down on an element starts a
	// drag. Default: Ctrl held and the primary button.
	ValidateDrag func(ev *PointerEvent, el *Element) bool
	// ValidatePan decides whether a pointer-down on the container starts a
	// pan. Default: Ctrl held and the secondary button.
	ValidatePan func(ev *PointerEvent) bool
	// ValidateZoom decides whether a wheel event zooms. Default: Ctrl held.
	ValidateZoom func(ev *WheelEvent) bool

	// MoveTransition is written to element styles during pans.
	MoveTransition Transition
	// ScaleTransition is written to element styles during zooms.
	ScaleTransition Transition

	// Debug enables debug mode at construction (see Canvas.SetDebugMode).
	Debug bool
}

// DefaultValidateDrag accepts Ctrl + primary button.
func DefaultValidateDrag(ev *PointerEvent, _ *Element) bool {
	return ev.Modifiers.Has(ModCtrl) && ev.Button == MouseButtonLeft
}

// DefaultValidatePan accepts Ctrl + secondary button.
func DefaultValidatePan(ev *PointerEvent) bool {
	return ev.Modifiers.Has(ModCtrl) && ev.Button == MouseButtonRight
}

// DefaultValidateZoom accepts any wheel event with Ctrl held.
func DefaultValidateZoom(ev *WheelEvent) bool {
	return ev.Modifiers.Has(ModCtrl)
}

// DefaultOptions returns Options with every default filled in.
func DefaultOptions() Options {
	return Options{}.withDefaults()
}

// withDefaults returns a copy of o with zero fields replaced by defaults.
func (o Options) withDefaults() Options {
	if o.InitialScale == 0 {
		o.InitialScale = DefaultInitialScale
	}
	if o.ScaleMin == 0 {
		o.ScaleMin = DefaultScaleMin
	}
	if o.ScaleMax == 0 {
		o.ScaleMax = DefaultScaleMax
	}
	if o.ScaleStep == 0 {
		o.ScaleStep = DefaultScaleStep
	}
	if o.ValidateDrag == nil {
		o.ValidateDrag = DefaultValidateDrag
	}
	if o.ValidatePan == nil {
		o.ValidatePan = DefaultValidatePan
	}
	if o.ValidateZoom == nil {
		o.ValidateZoom = DefaultValidateZoom
	}
	return o
}

// validate reports impossible scale configurations.
func (o Options) validate() error {
	switch {
	case o.ScaleMin <= 0:
		return fmt.Errorf("%w: ScaleMin %v must be positive", ErrInvalidOptions, o.ScaleMin)
	case o.ScaleMin > o.ScaleMax:
		return fmt.Errorf("%w: ScaleMin %v exceeds ScaleMax %v", ErrInvalidOptions, o.ScaleMin, o.ScaleMax)
	case o.ScaleStep < 0:
		return fmt.Errorf("%w: ScaleStep %v is negative", ErrInvalidOptions, o.ScaleStep)
	}
	return nil
}
