package box

import (
	"fmt"
	"strings"

	"github.com/npillmayer/boxstyle/attr"
	"github.com/npillmayer/boxstyle/result"
)

// Side is either Top, Right, Bottom or Left.
type Side uint8

// Sides of a box, in CSS shorthand order.
const (
	Top Side = iota
	Right
	Bottom
	Left
)

var sideNames = [4]string{"top", "right", "bottom", "left"}

func (s Side) String() string {
	if s <= Left {
		return sideNames[s]
	}
	return fmt.Sprintf("side(%d)", uint8(s))
}

// Sides lists the four sides in shorthand order.
func Sides() [4]Side {
	return [4]Side{Top, Right, Bottom, Left}
}

// --- Normalization ---------------------------------------------------------

// Normalize turns any attribute value into a four-sided value.
//
// A scalar is broadcast to all four sides (and the box is flagged as linked).
// A partial box gets its missing sides from def. A responsive value
// normalizes its base layer. An absent value or the empty string yields four
// empty-string sides, which format to "". Anything else normalizes to four
// copies of def.
func Normalize(v attr.Value, def attr.Value) attr.Box {
	switch v.Kind() {
	case attr.KindNone:
		return emptyBox()
	case attr.KindString:
		if s, _ := v.AsString(); s == "" {
			return emptyBox()
		}
		return broadcast(v)
	case attr.KindNumber, attr.KindBool:
		return broadcast(v)
	case attr.KindObject:
		if attr.Text(v, "") != "" { // a measure {value, unit}
			return broadcast(v)
		}
	case attr.KindBox:
		b, _ := v.AsBox()
		b.Top = orDefault(b.Top, def)
		b.Right = orDefault(b.Right, def)
		b.Bottom = orDefault(b.Bottom, def)
		b.Left = orDefault(b.Left, def)
		return b
	case attr.KindResponsive:
		r, _ := v.AsResponsive()
		return Normalize(r.Base.WithDefault(attr.Null), def)
	}
	tracer().Debugf("box: cannot normalize %s value, using default", v.Kind())
	return broadcast(def)
}

func emptyBox() attr.Box {
	e := attr.Str("")
	return attr.Box{Top: e, Right: e, Bottom: e, Left: e}
}

func broadcast(v attr.Value) attr.Box {
	return attr.Box{Top: v, Right: v, Bottom: v, Left: v, Linked: true}
}

func orDefault(v, def attr.Value) attr.Value {
	if v.IsNone() {
		return def
	}
	return v
}

// --- Formatting ------------------------------------------------------------

// Format renders a box as a CSS shorthand, using the shortest form which
// expands back to the same four sides. Numeric sides get unit appended;
// a unit stored with the box wins over the parameter.
//
//     Format({10,10,10,10}, "px")  →  "10px"
//     Format({10,20,10,20}, "px")  →  "10px 20px"
//     Format({10,20,30,20}, "px")  →  "10px 20px 30px"
//     Format({10,20,30,40}, "px")  →  "10px 20px 30px 40px"
//
func Format(b attr.Box, unit string) string {
	if b.Unit != "" {
		unit = b.Unit
	}
	return shorthand(SideTexts(b, unit))
}

// SideTexts renders the four sides of a box as CSS text, in shorthand order.
func SideTexts(b attr.Box, unit string) [4]string {
	return [4]string{
		attr.Text(b.Top, unit),
		attr.Text(b.Right, unit),
		attr.Text(b.Bottom, unit),
		attr.Text(b.Left, unit),
	}
}

// shorthand applies the CSS minimization rule to four tokens.
func shorthand(t [4]string) string {
	tokens := t[:]
	switch {
	case t[0] == t[1] && t[1] == t[2] && t[2] == t[3]:
		tokens = t[:1]
	case t[0] == t[2] && t[1] == t[3]:
		tokens = t[:2]
	case t[1] == t[3]:
		tokens = t[:3]
	}
	return strings.Join(tokens, " ")
}

// --- Parsing ---------------------------------------------------------------

// Parse expands a CSS shorthand of one to four tokens into four explicit
// sides. The empty string and malformed input (more than four tokens) yield
// four empty sides.
func Parse(s string) attr.Box {
	return TryParse(s).WithDefault(emptyBox())
}

// TryParse is the strict variant of Parse: shorthands with more than four
// tokens result in an error.
func TryParse(s string) result.Result[attr.Box] {
	t, err := expand(Tokens(s))
	if err != nil {
		return result.Err[attr.Box](err)
	}
	return result.Ok(attr.Box{
		Top:    attr.Str(t[0]),
		Right:  attr.Str(t[1]),
		Bottom: attr.Str(t[2]),
		Left:   attr.Str(t[3]),
	})
}

// expand distributes tokens to four positions: 1→[0,0,0,0], 2→[0,1,0,1],
// 3→[0,1,2,1], 4→[0,1,2,3].
func expand(tokens []string) ([4]string, error) {
	var t [4]string
	switch len(tokens) {
	case 0:
	case 1:
		t = [4]string{tokens[0], tokens[0], tokens[0], tokens[0]}
	case 2:
		t = [4]string{tokens[0], tokens[1], tokens[0], tokens[1]}
	case 3:
		t = [4]string{tokens[0], tokens[1], tokens[2], tokens[1]}
	case 4:
		t = [4]string{tokens[0], tokens[1], tokens[2], tokens[3]}
	default:
		return t, fmt.Errorf("expected 1 to 4 shorthand tokens, have %d", len(tokens))
	}
	return t, nil
}

// Tokens splits a CSS value at whitespace. Parenthesized groups stay
// together, so "rgba(0, 0, 0, .5)" or "calc(1em + 2px)" count as a single
// token.
func Tokens(s string) []string {
	var tokens []string
	var b strings.Builder
	depth := 0
	flush := func() {
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
			b.Reset()
		}
	}
	for _, r := range s {
		switch {
		case r == '(':
			depth++
		case r == ')' && depth > 0:
			depth--
		case depth == 0 && (r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f'):
			flush()
			continue
		}
		b.WriteRune(r)
	}
	flush()
	return tokens
}

// IsSingleToken is true if s is a non-empty CSS value without top-level
// whitespace and with balanced parentheses, i.e. usable as one token of a
// shorthand.
func IsSingleToken(s string) bool {
	return len(Tokens(s)) == 1 && strings.TrimSpace(s) == s && balanced(s)
}

func balanced(s string) bool {
	depth := 0
	for _, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			if depth == 0 {
				return false
			}
			depth--
		}
	}
	return depth == 0
}

// --- Linking and side access -----------------------------------------------

// IsLinked is true if all four sides (or corners) of v render to the same
// text. A stored linked-hint is ignored.
func IsLinked(v attr.Value) bool {
	if v.Kind() == attr.KindCorners {
		c, _ := v.AsCorners()
		t := CornerTexts(c, c.Unit)
		return t[0] == t[1] && t[1] == t[2] && t[2] == t[3]
	}
	b := Normalize(v, attr.Null)
	t := SideTexts(b, b.Unit)
	return t[0] == t[1] && t[1] == t[2] && t[2] == t[3]
}

// GetSide returns the value of one side of a box.
func GetSide(b attr.Box, side Side) attr.Value {
	switch side {
	case Top:
		return b.Top
	case Right:
		return b.Right
	case Bottom:
		return b.Bottom
	case Left:
		return b.Left
	}
	return attr.Null
}

// UpdateSide returns a copy of b with one side set to v. If linked is set,
// all four sides are set to v.
func UpdateSide(b attr.Box, side Side, v attr.Value, linked bool) attr.Box {
	if linked {
		b.Top, b.Right, b.Bottom, b.Left = v, v, v, v
		b.Linked = true
		return b
	}
	switch side {
	case Top:
		b.Top = v
	case Right:
		b.Right = v
	case Bottom:
		b.Bottom = v
	case Left:
		b.Left = v
	}
	b.Linked = false
	return b
}

// ToggleLinked returns a copy of b with the linked-hint inverted. When
// linking, all sides take the value of the top side (or of the first side
// which is set).
func ToggleLinked(b attr.Box) attr.Box {
	if b.Linked {
		b.Linked = false
		return b
	}
	v := firstSet(b.Top, b.Right, b.Bottom, b.Left)
	return UpdateSide(b, Top, v, true)
}

func firstSet(vs ...attr.Value) attr.Value {
	for _, v := range vs {
		if !v.IsNone() {
			return v
		}
	}
	return attr.Null
}
