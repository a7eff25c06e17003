package attr

import (
	"github.com/npillmayer/boxstyle/maybe"
)

// Kind is the type tag of an attribute value.
type Kind uint8

// Kinds of attribute values.
const (
	KindNone Kind = iota
	KindString
	KindNumber
	KindBool
	KindBox
	KindCorners
	KindResponsive
	KindIcon
	KindObject
	KindList
)

var kindNames = [...]string{
	KindNone:       "none",
	KindString:     "string",
	KindNumber:     "number",
	KindBool:       "bool",
	KindBox:        "box",
	KindCorners:    "corners",
	KindResponsive: "responsive",
	KindIcon:       "icon",
	KindObject:     "object",
	KindList:       "list",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Value is an attribute value. The zero value is None, i.e. an absent value.
//
// Values are immutable: composite payloads are copied on construction and
// on access.
type Value struct {
	kind    Kind
	str     string
	num     float64
	flag    bool
	box     *Box
	corners *Corners
	resp    *Responsive
	icon    *Icon
	obj     map[string]Value
	list    []Value
}

// Box is a value with four sides. Missing sides are None.
//
// Linked is a hint from the editing controls telling that all four sides were
// last set to the same value. It is never load-bearing: code which depends
// on side equality compares the actual sides.
type Box struct {
	Top, Right, Bottom, Left Value
	Unit                     string
	Linked                   bool
}

// Corners is a value with four corners, used for radii.
type Corners struct {
	TopLeft, TopRight, BottomRight, BottomLeft Value
	Unit                                       string
	Linked                                     bool
}

// Responsive is a value which may differ by device. Base is the global layer
// (JSON key "value"); absent Tablet and Mobile layers inherit from wider
// devices.
type Responsive struct {
	Base   maybe.Maybe[Value]
	Tablet maybe.Maybe[Value]
	Mobile maybe.Maybe[Value]
}

// Icon is an icon source. It is opaque to this module and passed through.
type Icon struct {
	Type  string // char, image or library
	Value string
}

// Null is the absent value.
var Null = Value{}

// --- Constructors ----------------------------------------------------------

// Str creates a string value.
func Str(s string) Value {
	return Value{kind: KindString, str: s}
}

// Num creates a number value.
func Num(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

// Int creates a number value from an integer.
func Int(n int) Value {
	return Num(float64(n))
}

// Boolean creates a boolean value.
func Boolean(b bool) Value {
	return Value{kind: KindBool, flag: b}
}

// BoxOf creates a four-sides value.
func BoxOf(b Box) Value {
	return Value{kind: KindBox, box: &b}
}

// CornersOf creates a four-corners value.
func CornersOf(c Corners) Value {
	return Value{kind: KindCorners, corners: &c}
}

// ResponsiveOf creates a per-device value. A responsive value never wraps
// another responsive value: nested layers are flattened to their base.
func ResponsiveOf(r Responsive) Value {
	r.Base = flatten(r.Base)
	r.Tablet = flatten(r.Tablet)
	r.Mobile = flatten(r.Mobile)
	return Value{kind: KindResponsive, resp: &r}
}

func flatten(layer maybe.Maybe[Value]) maybe.Maybe[Value] {
	v, ok := layer.Get()
	if !ok || v.kind != KindResponsive {
		return layer
	}
	return v.resp.Base
}

// IconOf creates an icon source value.
func IconOf(icon Icon) Value {
	return Value{kind: KindIcon, icon: &icon}
}

// ObjectOf creates a generic object value. The map is copied.
func ObjectOf(m map[string]Value) Value {
	obj := make(map[string]Value, len(m))
	for k, v := range m {
		obj[k] = v
	}
	return Value{kind: KindObject, obj: obj}
}

// Measure creates an object value {value: n, unit: unit}, the form some
// editing controls store lengths in.
func Measure(n float64, unit string) Value {
	return ObjectOf(map[string]Value{"value": Num(n), "unit": Str(unit)})
}

// ListOf creates a list value. The slice is copied.
func ListOf(items ...Value) Value {
	list := make([]Value, len(items))
	copy(list, items)
	return Value{kind: KindList, list: list}
}

// --- Accessors -------------------------------------------------------------

// Kind returns the type tag of v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNone is true for absent values.
func (v Value) IsNone() bool {
	return v.kind == KindNone
}

// IsScalar is true for strings, numbers and booleans.
func (v Value) IsScalar() bool {
	return v.kind == KindString || v.kind == KindNumber || v.kind == KindBool
}

// IsResponsive is true for per-device values.
func (v Value) IsResponsive() bool {
	return v.kind == KindResponsive
}

// AsString returns the string payload of a string value.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

// AsNumber returns the payload of a number value.
func (v Value) AsNumber() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// AsBool returns the payload of a boolean value.
func (v Value) AsBool() (bool, bool) {
	return v.flag, v.kind == KindBool
}

// AsBox returns a copy of the payload of a four-sides value.
func (v Value) AsBox() (Box, bool) {
	if v.kind != KindBox {
		return Box{}, false
	}
	return *v.box, true
}

// AsCorners returns a copy of the payload of a four-corners value.
func (v Value) AsCorners() (Corners, bool) {
	if v.kind != KindCorners {
		return Corners{}, false
	}
	return *v.corners, true
}

// AsResponsive returns a copy of the layers of a per-device value.
func (v Value) AsResponsive() (Responsive, bool) {
	if v.kind != KindResponsive {
		return Responsive{}, false
	}
	return *v.resp, true
}

// AsIcon returns the payload of an icon source value.
func (v Value) AsIcon() (Icon, bool) {
	if v.kind != KindIcon {
		return Icon{}, false
	}
	return *v.icon, true
}

// AsObject returns a copy of the fields of a generic object value.
func (v Value) AsObject() (map[string]Value, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	m := make(map[string]Value, len(v.obj))
	for k, x := range v.obj {
		m[k] = x
	}
	return m, true
}

// Field returns a field of a generic object value, or None.
func (v Value) Field(key string) Value {
	if v.kind != KindObject {
		return Null
	}
	return v.obj[key]
}

// AsList returns a copy of the items of a list value.
func (v Value) AsList() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}
	list := make([]Value, len(v.list))
	copy(list, v.list)
	return list, true
}
