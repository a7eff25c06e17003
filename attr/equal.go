package attr

import (
	"strconv"

	"github.com/npillmayer/boxstyle/maybe"
)

// Equal compares two values structurally. Boxes, corners and responsive
// values are compared field by field, objects and lists element by element.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNone:
		return true
	case KindString:
		return a.str == b.str
	case KindNumber:
		return a.num == b.num
	case KindBool:
		return a.flag == b.flag
	case KindBox:
		x, y := a.box, b.box
		return x.Unit == y.Unit && x.Linked == y.Linked &&
			Equal(x.Top, y.Top) && Equal(x.Right, y.Right) &&
			Equal(x.Bottom, y.Bottom) && Equal(x.Left, y.Left)
	case KindCorners:
		x, y := a.corners, b.corners
		return x.Unit == y.Unit && x.Linked == y.Linked &&
			Equal(x.TopLeft, y.TopLeft) && Equal(x.TopRight, y.TopRight) &&
			Equal(x.BottomRight, y.BottomRight) && Equal(x.BottomLeft, y.BottomLeft)
	case KindResponsive:
		return equalLayer(a.resp.Base, b.resp.Base) &&
			equalLayer(a.resp.Tablet, b.resp.Tablet) &&
			equalLayer(a.resp.Mobile, b.resp.Mobile)
	case KindIcon:
		return *a.icon == *b.icon
	case KindObject:
		if len(a.obj) != len(b.obj) {
			return false
		}
		for k, x := range a.obj {
			y, ok := b.obj[k]
			if !ok || !Equal(x, y) {
				return false
			}
		}
		return true
	case KindList:
		if len(a.list) != len(b.list) {
			return false
		}
		for i := range a.list {
			if !Equal(a.list[i], b.list[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func equalLayer(a, b maybe.Maybe[Value]) bool {
	x, okx := a.Get()
	y, oky := b.Get()
	if okx != oky {
		return false
	}
	return !okx || Equal(x, y)
}

// Text renders a scalar-like value as CSS text, as it would appear as one
// token of a shorthand. Numbers are formatted in their shortest form and get
// unit appended. Measure objects {value, unit} use their own unit. Responsive
// values render their base layer. Other kinds render as the empty string.
//
// The shorthand codec compares sides by this textual form, not structurally:
// Str("10px"), Num(10) with unit "px" and Measure(10, "px") all render as "10px".
func Text(v Value, unit string) string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return FormatNumber(v.num) + unit
	case KindBool:
		return strconv.FormatBool(v.flag)
	case KindObject:
		inner, ok := v.obj["value"]
		if !ok || !inner.IsScalar() {
			return ""
		}
		if u, ok := v.obj["unit"].AsString(); ok {
			unit = u
		}
		return Text(inner, unit)
	case KindResponsive:
		if base, ok := v.resp.Base.Get(); ok {
			return Text(base, unit)
		}
	}
	return ""
}

// FormatNumber formats a number in its shortest round-trip form, e.g. 10, 1.5.
func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
