package codec

import (
	"strings"

	"github.com/npillmayer/boxstyle/attr"
	"github.com/npillmayer/boxstyle/box"
	"github.com/npillmayer/boxstyle/family"
	"github.com/npillmayer/boxstyle/maybe"
	"github.com/npillmayer/boxstyle/responsive"
)

// Decompress expands the shorthand key of every family present in the bag
// into the family's atomic keys, in reverse compression order.
//
// A responsive shorthand is expanded per present device layer, giving
// responsive atomic values carrying exactly those layers. Box and corner
// values stored under a shorthand key are expanded side by side.
// Atomic keys already present in the bag win over values expanded from a
// shorthand.
func Decompress(bag attr.Bag, table family.Table) attr.Bag {
	out := bag.Clone()
	for _, f := range table.Reversed() {
		decompressFamily(out, f)
	}
	return out
}

// decompressFamily operates in place on a bag owned by Decompress.
func decompressFamily(bag attr.Bag, f family.Family) {
	short := bag[f.ShorthandKey]
	if short.IsNone() {
		return
	}
	var parts []attr.Value
	if short.IsResponsive() {
		parts = splitResponsive(f, short)
	} else {
		parts = split(f, short)
	}
	if parts == nil {
		tracer().Debugf("shorthand %s = %s is malformed, leaving it untouched", f.ShorthandKey, short)
		return
	}
	delete(bag, f.ShorthandKey)
	for i, key := range f.AtomicKeys {
		if !bag[key].IsNone() {
			tracer().Debugf("atomic %s already present, not overwritten by %s", key, f.ShorthandKey)
			continue
		}
		bag[key] = parts[i]
	}
}

// splitResponsive expands a responsive shorthand layer by layer.
func splitResponsive(f family.Family, short attr.Value) []attr.Value {
	rs := make([]attr.Responsive, len(f.AtomicKeys))
	present := 0
	for _, d := range responsive.Devices() {
		layer, ok := responsive.Layer(short, d).Get()
		if !ok {
			continue
		}
		parts := split(f, layer)
		if parts == nil {
			return nil
		}
		for i, p := range parts {
			switch d {
			case responsive.Base:
				rs[i].Base = maybe.Just(p)
			case responsive.Tablet:
				rs[i].Tablet = maybe.Just(p)
			case responsive.Mobile:
				rs[i].Mobile = maybe.Just(p)
			}
		}
		present++
	}
	if present == 0 {
		return nil
	}
	parts := make([]attr.Value, len(rs))
	for i, r := range rs {
		parts[i] = attr.ResponsiveOf(r)
	}
	return parts
}

// split expands a non-responsive shorthand value into the values of the
// family's atomic keys. It returns nil if the shorthand is malformed.
func split(f family.Family, short attr.Value) []attr.Value {
	switch f.Kind {
	case family.Box:
		if short.Kind() == attr.KindBox {
			b := box.Normalize(short, attr.Str(""))
			return withUnit(b.Unit, b.Top, b.Right, b.Bottom, b.Left)
		}
		var b attr.Box
		if s := attr.Text(short, f.Unit); s != "" {
			switch r := box.TryParse(s).Match(); r {
			case r.Ok(&b):
				return []attr.Value{b.Top, b.Right, b.Bottom, b.Left}
			}
		}
	case family.Corner:
		if short.Kind() == attr.KindCorners {
			c := box.NormalizeCorners(short, attr.Str(""))
			return withUnit(c.Unit, c.TopLeft, c.TopRight, c.BottomRight, c.BottomLeft)
		}
		var c attr.Corners
		if s := attr.Text(short, f.Unit); s != "" {
			switch r := box.TryParseCorners(s).Match(); r {
			case r.Ok(&c):
				return []attr.Value{c.TopLeft, c.TopRight, c.BottomRight, c.BottomLeft}
			}
		}
	case family.BorderTriplet:
		fields := strings.Fields(attr.Text(short, f.Unit))
		if len(fields) >= 3 {
			return []attr.Value{
				attr.Str(fields[0]),
				attr.Str(fields[1]),
				attr.Str(strings.Join(fields[2:], " ")),
			}
		}
	case family.BorderSide:
		if s := attr.Text(short, f.Unit); s != "" {
			v := attr.Str(s)
			return []attr.Value{v, v, v, v}
		}
	}
	return nil
}

// withUnit renders numeric sides with the unit stored in a box or corner
// value, which would otherwise be lost on the atomic keys.
func withUnit(unit string, sides ...attr.Value) []attr.Value {
	if unit == "" {
		return sides
	}
	for i, v := range sides {
		if _, ok := v.AsNumber(); ok {
			sides[i] = attr.Str(attr.Text(v, unit))
		}
	}
	return sides
}
