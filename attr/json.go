package attr

import (
	"encoding/json"
	"fmt"

	"github.com/npillmayer/boxstyle/maybe"
)

var boxKeys = map[string]bool{
	"top": true, "right": true, "bottom": true, "left": true,
	"unit": true, "linked": true,
}

var cornerKeys = map[string]bool{
	"topLeft": true, "topRight": true, "bottomRight": true, "bottomLeft": true,
	"unit": true, "linked": true,
}

var responsiveKeys = map[string]bool{
	"value": true, "tablet": true, "mobile": true,
}

var iconTypes = map[string]bool{
	"char": true, "image": true, "library": true,
}

// FromJSON classifies a decoded JSON value (as produced by json.Unmarshal
// into an interface{}) into an attribute value. This is the normalization
// boundary of the module: it never fails, unknown shapes become generic
// objects or lists.
func FromJSON(x interface{}) Value {
	switch x := x.(type) {
	case nil:
		return Null
	case string:
		return Str(x)
	case float64:
		return Num(x)
	case float32:
		return Num(float64(x))
	case int:
		return Int(x)
	case int64:
		return Num(float64(x))
	case json.Number:
		n, err := x.Float64()
		if err != nil {
			return Str(x.String())
		}
		return Num(n)
	case bool:
		return Boolean(x)
	case []interface{}:
		items := make([]Value, len(x))
		for i, item := range x {
			items[i] = FromJSON(item)
		}
		return Value{kind: KindList, list: items}
	case map[string]interface{}:
		return fromJSONObject(x)
	}
	tracer().Debugf("attr: cannot classify JSON value of type %T", x)
	return Null
}

func fromJSONObject(m map[string]interface{}) Value {
	if len(m) == 0 {
		return ObjectOf(nil)
	}
	switch {
	case keysWithin(m, responsiveKeys):
		return ResponsiveOf(Responsive{
			Base:   layerFromJSON(m, "value"),
			Tablet: layerFromJSON(m, "tablet"),
			Mobile: layerFromJSON(m, "mobile"),
		})
	case isIcon(m):
		return IconOf(Icon{Type: m["kind"].(string), Value: m["value"].(string)})
	case keysWithin(m, boxKeys) && hasAny(m, "top", "right", "bottom", "left"):
		b := Box{
			Top:    FromJSON(m["top"]),
			Right:  FromJSON(m["right"]),
			Bottom: FromJSON(m["bottom"]),
			Left:   FromJSON(m["left"]),
		}
		b.Unit, _ = m["unit"].(string)
		b.Linked, _ = m["linked"].(bool)
		return BoxOf(b)
	case keysWithin(m, cornerKeys) && hasAny(m, "topLeft", "topRight", "bottomRight", "bottomLeft"):
		c := Corners{
			TopLeft:     FromJSON(m["topLeft"]),
			TopRight:    FromJSON(m["topRight"]),
			BottomRight: FromJSON(m["bottomRight"]),
			BottomLeft:  FromJSON(m["bottomLeft"]),
		}
		c.Unit, _ = m["unit"].(string)
		c.Linked, _ = m["linked"].(bool)
		return CornersOf(c)
	}
	obj := make(map[string]Value, len(m))
	for k, x := range m {
		obj[k] = FromJSON(x)
	}
	return Value{kind: KindObject, obj: obj}
}

func layerFromJSON(m map[string]interface{}, key string) maybe.Maybe[Value] {
	x, ok := m[key]
	if !ok || x == nil {
		return maybe.Nothing[Value]()
	}
	return maybe.Just(FromJSON(x))
}

func keysWithin(m map[string]interface{}, allowed map[string]bool) bool {
	for k := range m {
		if !allowed[k] {
			return false
		}
	}
	return true
}

func hasAny(m map[string]interface{}, keys ...string) bool {
	for _, k := range keys {
		if _, ok := m[k]; ok {
			return true
		}
	}
	return false
}

func isIcon(m map[string]interface{}) bool {
	if len(m) != 2 {
		return false
	}
	kind, ok := m["kind"].(string)
	if !ok || !iconTypes[kind] {
		return false
	}
	_, ok = m["value"].(string)
	return ok
}

// ToJSON converts a value into plain Go data suitable for json.Marshal.
// Absent sides, corners and layers are omitted.
func ToJSON(v Value) interface{} {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num
	case KindBool:
		return v.flag
	case KindBox:
		m := map[string]interface{}{}
		putSide(m, "top", v.box.Top)
		putSide(m, "right", v.box.Right)
		putSide(m, "bottom", v.box.Bottom)
		putSide(m, "left", v.box.Left)
		putHints(m, v.box.Unit, v.box.Linked)
		return m
	case KindCorners:
		m := map[string]interface{}{}
		putSide(m, "topLeft", v.corners.TopLeft)
		putSide(m, "topRight", v.corners.TopRight)
		putSide(m, "bottomRight", v.corners.BottomRight)
		putSide(m, "bottomLeft", v.corners.BottomLeft)
		putHints(m, v.corners.Unit, v.corners.Linked)
		return m
	case KindResponsive:
		m := map[string]interface{}{}
		putLayer(m, "value", v.resp.Base)
		putLayer(m, "tablet", v.resp.Tablet)
		putLayer(m, "mobile", v.resp.Mobile)
		return m
	case KindIcon:
		return map[string]interface{}{"kind": v.icon.Type, "value": v.icon.Value}
	case KindObject:
		m := make(map[string]interface{}, len(v.obj))
		for k, x := range v.obj {
			m[k] = ToJSON(x)
		}
		return m
	case KindList:
		items := make([]interface{}, len(v.list))
		for i, x := range v.list {
			items[i] = ToJSON(x)
		}
		return items
	}
	return nil
}

func putSide(m map[string]interface{}, key string, v Value) {
	if !v.IsNone() {
		m[key] = ToJSON(v)
	}
}

func putHints(m map[string]interface{}, unit string, linked bool) {
	if unit != "" {
		m["unit"] = unit
	}
	if linked {
		m["linked"] = true
	}
}

func putLayer(m map[string]interface{}, key string, layer maybe.Maybe[Value]) {
	if v, ok := layer.Get(); ok {
		m[key] = ToJSON(v)
	}
}

// MarshalJSON is part of interface json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(ToJSON(v))
}

// UnmarshalJSON is part of interface json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	var x interface{}
	if err := json.Unmarshal(data, &x); err != nil {
		return fmt.Errorf("attr: cannot decode value: %w", err)
	}
	*v = FromJSON(x)
	return nil
}

// String renders a value in JSON notation, for debugging.
func (v Value) String() string {
	data, err := json.Marshal(ToJSON(v))
	if err != nil {
		return fmt.Sprintf("<%s: %v>", v.kind, err)
	}
	return string(data)
}
