package responsive

import (
	"fmt"
)

// Breakpoints holds the pixel thresholds of the narrower devices. They are
// supplied by the host's settings. Device inheritance does not depend on
// them; they are needed only when generating CSS media queries.
type Breakpoints struct {
	Mobile int `yaml:"mobile" json:"mobile" validate:"gt=0,ltfield=Tablet"`
	Tablet int `yaml:"tablet" json:"tablet" validate:"gt=0"`
}

// DefaultBreakpoints are the editor's stock thresholds.
var DefaultBreakpoints = Breakpoints{Mobile: 767, Tablet: 1024}

// Validate checks that thresholds are positive and ordered.
func (bp Breakpoints) Validate() error {
	if bp.Mobile <= 0 || bp.Tablet <= 0 {
		return fmt.Errorf("breakpoints must be positive, have mobile=%d, tablet=%d", bp.Mobile, bp.Tablet)
	}
	if bp.Mobile >= bp.Tablet {
		return fmt.Errorf("mobile breakpoint %d must be below tablet breakpoint %d", bp.Mobile, bp.Tablet)
	}
	return nil
}

// DeviceForWidth returns the device a viewport of the given width
// (in CSS pixels) belongs to.
func (bp Breakpoints) DeviceForWidth(px int) Device {
	switch {
	case px <= bp.Mobile:
		return Mobile
	case px <= bp.Tablet:
		return Tablet
	}
	return Base
}

// MediaQuery returns the CSS media query condition for device d, or the
// empty string for the base device.
func (bp Breakpoints) MediaQuery(d Device) string {
	switch d {
	case Tablet:
		return fmt.Sprintf("(max-width: %dpx)", bp.Tablet)
	case Mobile:
		return fmt.Sprintf("(max-width: %dpx)", bp.Mobile)
	}
	return ""
}
