/*
Package cascade computes the effective value of style attributes.

Every attribute of a block instance gets its value from the first of three
layers which defines it:

    customizations  →  theme  →  schema defaults

If the selected value is responsive, the device's layer is extracted,
following the device inheritance of package responsive. Each attribute
resolves independently of all others.

The device is a parameter of every resolution, never state kept in this
package: resolving twice with the same Context always gives the same result.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cascade

import (
	"fmt"
	"sort"

	"github.com/npillmayer/boxstyle/attr"
	"github.com/npillmayer/boxstyle/responsive"
	"github.com/npillmayer/boxstyle/theme"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxstyle.cascade'.
func tracer() tracing.Trace {
	return tracing.Select("boxstyle.cascade")
}

// Layer is a source of attribute values in the cascade.
type Layer uint8

// Layers of the cascade, lowest precedence first.
const (
	Absent Layer = iota
	Default
	Theme
	Customization
)

func (l Layer) String() string {
	switch l {
	case Default:
		return "default"
	case Theme:
		return "theme"
	case Customization:
		return "customization"
	}
	return "absent"
}

// Context holds the inputs of a resolution. Defaults must not be nil;
// Theme and Customizations are optional.
type Context struct {
	Defaults       attr.Bag
	Theme          *theme.Theme
	Customizations attr.Bag
	Device         responsive.Device
}

// Resolution explains where the value of an attribute came from.
type Resolution struct {
	Name  string
	Layer Layer      // layer which defined the value
	Raw   attr.Value // value as stored in that layer, possibly responsive
	Value attr.Value // value for the context's device
}

func (r Resolution) String() string {
	return fmt.Sprintf("%s = %s (%s, from %s)", r.Name, r.Value, r.Layer, r.Raw)
}

// CascadedValue returns the value for name from the highest layer defining
// it, without applying device inheritance. None values count as undefined.
func CascadedValue(name string, ctx Context) (attr.Value, Layer) {
	assertThat(ctx.Defaults != nil, "cascade needs defaults, have nil")
	if v, ok := ctx.Customizations.Lookup(name).Get(); ok {
		return v, Customization
	}
	if v, ok := ctx.Theme.Lookup(name).Get(); ok {
		return v, Theme
	}
	if v, ok := ctx.Defaults.Lookup(name).Get(); ok {
		return v, Default
	}
	return attr.Null, Absent
}

// Explain resolves name and tells which layer the value came from.
func Explain(name string, ctx Context) Resolution {
	raw, layer := CascadedValue(name, ctx)
	r := Resolution{
		Name:  name,
		Layer: layer,
		Raw:   raw,
		Value: responsive.ForDevice(raw, ctx.Device),
	}
	tracer().Debugf("cascade: %s", r)
	return r
}

// Resolve returns the effective value of attribute name for ctx.Device.
// An attribute defined in none of the layers resolves to None.
//
// Resolve panics if ctx.Defaults is nil.
func Resolve(name string, ctx Context) attr.Value {
	raw, _ := CascadedValue(name, ctx)
	return responsive.ForDevice(raw, ctx.Device)
}

// ResolveAll resolves a list of attributes. Attributes resolving to None are
// not part of the result.
func ResolveAll(names []string, ctx Context) attr.Bag {
	bag := make(attr.Bag, len(names))
	for _, name := range names {
		if v := Resolve(name, ctx); !v.IsNone() {
			bag[name] = v
		}
	}
	return bag
}

// Names returns the sorted names of all attributes defined in any layer.
func Names(ctx Context) []string {
	seen := map[string]bool{}
	for k := range ctx.Defaults {
		seen[k] = true
	}
	if ctx.Theme != nil {
		for k := range ctx.Theme.Values {
			seen[k] = true
		}
	}
	for k := range ctx.Customizations {
		seen[k] = true
	}
	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// ResolveEverything resolves all attributes defined in any layer.
func ResolveEverything(ctx Context) attr.Bag {
	return ResolveAll(Names(ctx), ctx)
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("cascade: "+msg, msgargs...)
		panic(msg)
	}
}
