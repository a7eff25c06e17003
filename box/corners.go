package box

import (
	"fmt"

	"github.com/npillmayer/boxstyle/attr"
	"github.com/npillmayer/boxstyle/result"
)

// Corner is one of TopLeft, TopRight, BottomRight or BottomLeft.
type Corner uint8

// Corners of a box, in CSS border-radius shorthand order.
const (
	TopLeft Corner = iota
	TopRight
	BottomRight
	BottomLeft
)

var cornerNames = [4]string{"topLeft", "topRight", "bottomRight", "bottomLeft"}

func (c Corner) String() string {
	if c <= BottomLeft {
		return cornerNames[c]
	}
	return fmt.Sprintf("corner(%d)", uint8(c))
}

// NormalizeCorners turns any attribute value into a four-cornered value,
// with the same rules as Normalize.
func NormalizeCorners(v attr.Value, def attr.Value) attr.Corners {
	switch v.Kind() {
	case attr.KindCorners:
		c, _ := v.AsCorners()
		c.TopLeft = orDefault(c.TopLeft, def)
		c.TopRight = orDefault(c.TopRight, def)
		c.BottomRight = orDefault(c.BottomRight, def)
		c.BottomLeft = orDefault(c.BottomLeft, def)
		return c
	case attr.KindBox: // a box is not a corner value
		return fromBox(broadcast(def))
	case attr.KindResponsive:
		r, _ := v.AsResponsive()
		return NormalizeCorners(r.Base.WithDefault(attr.Null), def)
	}
	return fromBox(Normalize(v, def))
}

func fromBox(b attr.Box) attr.Corners {
	return attr.Corners{
		TopLeft:     b.Top,
		TopRight:    b.Right,
		BottomRight: b.Bottom,
		BottomLeft:  b.Left,
		Unit:        b.Unit,
		Linked:      b.Linked,
	}
}

// FormatCorners renders corners as a CSS border-radius shorthand, with the
// same minimization rule as Format.
func FormatCorners(c attr.Corners, unit string) string {
	if c.Unit != "" {
		unit = c.Unit
	}
	return shorthand(CornerTexts(c, unit))
}

// CornerTexts renders the four corners as CSS text, in shorthand order.
func CornerTexts(c attr.Corners, unit string) [4]string {
	return [4]string{
		attr.Text(c.TopLeft, unit),
		attr.Text(c.TopRight, unit),
		attr.Text(c.BottomRight, unit),
		attr.Text(c.BottomLeft, unit),
	}
}

// ParseCorners expands a border-radius shorthand into four corners.
// Malformed input yields four empty corners.
func ParseCorners(s string) attr.Corners {
	return TryParseCorners(s).WithDefault(fromBox(emptyBox()))
}

// TryParseCorners is the strict variant of ParseCorners. Elliptical radii
// ("10px / 20px") are not supported and result in an error.
func TryParseCorners(s string) result.Result[attr.Corners] {
	tokens := Tokens(s)
	for _, t := range tokens {
		if t == "/" {
			return result.Err[attr.Corners](fmt.Errorf("elliptical corner radii not supported: %q", s))
		}
	}
	t, err := expand(tokens)
	if err != nil {
		return result.Err[attr.Corners](err)
	}
	return result.Ok(attr.Corners{
		TopLeft:     attr.Str(t[0]),
		TopRight:    attr.Str(t[1]),
		BottomRight: attr.Str(t[2]),
		BottomLeft:  attr.Str(t[3]),
	})
}

// GetCorner returns the value of one corner.
func GetCorner(c attr.Corners, corner Corner) attr.Value {
	switch corner {
	case TopLeft:
		return c.TopLeft
	case TopRight:
		return c.TopRight
	case BottomRight:
		return c.BottomRight
	case BottomLeft:
		return c.BottomLeft
	}
	return attr.Null
}

// UpdateCorner returns a copy of c with one corner set to v. If linked is set,
// all four corners are set to v.
func UpdateCorner(c attr.Corners, corner Corner, v attr.Value, linked bool) attr.Corners {
	if linked {
		c.TopLeft, c.TopRight, c.BottomRight, c.BottomLeft = v, v, v, v
		c.Linked = true
		return c
	}
	switch corner {
	case TopLeft:
		c.TopLeft = v
	case TopRight:
		c.TopRight = v
	case BottomRight:
		c.BottomRight = v
	case BottomLeft:
		c.BottomLeft = v
	}
	c.Linked = false
	return c
}

// ToggleCornersLinked is the corner counterpart of ToggleLinked.
func ToggleCornersLinked(c attr.Corners) attr.Corners {
	if c.Linked {
		c.Linked = false
		return c
	}
	v := firstSet(c.TopLeft, c.TopRight, c.BottomRight, c.BottomLeft)
	return UpdateCorner(c, TopLeft, v, true)
}
