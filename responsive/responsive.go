/*
Package responsive handles attribute values which differ by device.

A responsive value carries up to three layers: the base (global) layer and
optional tablet and mobile overrides. Narrower devices inherit from wider
ones:

    base    →  value
    tablet  →  tablet, else value
    mobile  →  mobile, else tablet, else value

The device currently previewed in an editor is never read from ambient state
by this package: every operation receives the device as an explicit
parameter, which makes resolution reproducible from the arguments alone.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package responsive

import (
	"fmt"
	"strings"

	"github.com/npillmayer/boxstyle/attr"
	"github.com/npillmayer/boxstyle/maybe"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxstyle.responsive'.
func tracer() tracing.Trace {
	return tracing.Select("boxstyle.responsive")
}

// Device is a responsive breakpoint.
type Device uint8

// Devices, from wide to narrow.
const (
	Base Device = iota
	Tablet
	Mobile
)

var deviceNames = [...]string{"base", "tablet", "mobile"}

func (d Device) String() string {
	if int(d) < len(deviceNames) {
		return deviceNames[d]
	}
	return fmt.Sprintf("device(%d)", uint8(d))
}

// Devices lists all devices from wide to narrow.
func Devices() []Device {
	return []Device{Base, Tablet, Mobile}
}

// ParseDevice reads a device name. "global" and "desktop" are accepted as
// synonyms for the base device.
func ParseDevice(s string) (Device, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "base", "global", "desktop":
		return Base, nil
	case "tablet":
		return Tablet, nil
	case "mobile":
		return Mobile, nil
	}
	return Base, fmt.Errorf("unknown device %q", s)
}

// layers returns the layers of v. A bare (non-responsive) value is its own
// base layer.
func layers(v attr.Value) attr.Responsive {
	if r, ok := v.AsResponsive(); ok {
		return r
	}
	if v.IsNone() {
		return attr.Responsive{}
	}
	return attr.Responsive{Base: maybe.Just(v)}
}

// Layer returns the explicitly set layer of v for device d, without
// inheritance.
func Layer(v attr.Value, d Device) maybe.Maybe[attr.Value] {
	r := layers(v)
	switch d {
	case Base:
		return r.Base
	case Tablet:
		return r.Tablet
	case Mobile:
		return r.Mobile
	}
	return maybe.Nothing[attr.Value]()
}

// ForDevice returns the effective value of v for device d, following the
// inheritance chain mobile → tablet → base. A bare value is returned as is
// for every device. The inheritance holds even if intermediate layers are
// absent.
func ForDevice(v attr.Value, d Device) attr.Value {
	if !v.IsResponsive() {
		return v
	}
	r := layers(v)
	var chain maybe.Maybe[attr.Value]
	switch d {
	case Mobile:
		chain = maybe.FirstOf(r.Mobile, r.Tablet, r.Base)
	case Tablet:
		chain = maybe.FirstOf(r.Tablet, r.Base)
	default:
		chain = r.Base
	}
	return chain.WithDefault(attr.Null)
}

// SetForDevice returns a responsive value with the layer for device d set to
// nv. Writing the base layer preserves existing overrides; writing a
// tablet or mobile layer leaves all other layers untouched. Writing None
// clears the layer (see ClearOverride).
func SetForDevice(v attr.Value, d Device, nv attr.Value) attr.Value {
	if nv.IsNone() {
		return ClearOverride(v, d)
	}
	r := layers(v)
	layer := maybe.Just(ForDevice(nv, d)) // never nest responsive values
	switch d {
	case Base:
		r.Base = layer
	case Tablet:
		r.Tablet = layer
	case Mobile:
		r.Mobile = layer
	default:
		tracer().Debugf("responsive: ignoring write to unknown device %s", d)
	}
	return attr.ResponsiveOf(r)
}

// HasOverride is true if the layer for device d is explicitly present. For a
// bare value, only the base layer is present.
func HasOverride(v attr.Value, d Device) bool {
	return Layer(v, d).IsJust()
}

// ClearOverride returns v with the layer for device d removed, making the
// device inherit again. A value left with a base layer only collapses to a
// bare value.
func ClearOverride(v attr.Value, d Device) attr.Value {
	if !v.IsResponsive() {
		if d == Base {
			return attr.Null
		}
		return v
	}
	r := layers(v)
	switch d {
	case Base:
		r.Base = maybe.Nothing[attr.Value]()
	case Tablet:
		r.Tablet = maybe.Nothing[attr.Value]()
	case Mobile:
		r.Mobile = maybe.Nothing[attr.Value]()
	}
	return Collapse(attr.ResponsiveOf(r))
}

// Collapse turns a responsive value carrying nothing but a base layer into a
// bare value, and a responsive value without any layer into None.
func Collapse(v attr.Value) attr.Value {
	r, ok := v.AsResponsive()
	if !ok {
		return v
	}
	if r.Tablet.IsJust() || r.Mobile.IsJust() {
		return v
	}
	return r.Base.WithDefault(attr.Null)
}

// Layers lists the devices for which v has an explicit layer.
func Layers(v attr.Value) []Device {
	var present []Device
	for _, d := range Devices() {
		if HasOverride(v, d) {
			present = append(present, d)
		}
	}
	return present
}
