package family

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var sideNames = []string{"Top", "Right", "Bottom", "Left"}
var cornerNames = []string{"TopLeft", "TopRight", "BottomRight", "BottomLeft"}

// Key builds a camel-case attribute key from a prefix and name parts:
//
//     Key("", "padding", "Top")       →  "paddingTop"
//     Key("title", "border", "Left")  →  "titleBorderLeft"
//
func Key(prefix string, parts ...string) string {
	var b strings.Builder
	b.WriteString(prefix)
	for _, p := range parts {
		if b.Len() == 0 {
			b.WriteString(p)
			continue
		}
		b.WriteString(upperFirst(p))
	}
	return b.String()
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Standard returns the CSS box-model families for the element with the
// given key prefix (the empty prefix denotes the block itself):
//
//     padding, margin            box       {prefix}padding{Side}
//     borderWidth/Style/Color    box       {prefix}border{Side}Width …
//     borderRadius               corner    {prefix}border{Corner}Radius
//     border{Side}               triplet   {prefix}border{Side}Width/Style/Color
//     border                     side      {prefix}border{Side}
//
// Numeric atomic values are rendered with unit px.
func Standard(prefix string) Table {
	sides := func(base, suffix string) []string {
		keys := make([]string, 4)
		for i, side := range sideNames {
			keys[i] = Key(prefix, base, side, suffix)
		}
		return keys
	}
	t := Table{
		{ID: Key(prefix, "padding"), Kind: Box, AtomicKeys: sides("padding", ""),
			ShorthandKey: Key(prefix, "padding"), Unit: "px"},
		{ID: Key(prefix, "margin"), Kind: Box, AtomicKeys: sides("margin", ""),
			ShorthandKey: Key(prefix, "margin"), Unit: "px"},
		{ID: Key(prefix, "borderWidth"), Kind: Box, AtomicKeys: sides("border", "width"),
			ShorthandKey: Key(prefix, "borderWidth"), Unit: "px"},
		{ID: Key(prefix, "borderStyle"), Kind: Box, AtomicKeys: sides("border", "style"),
			ShorthandKey: Key(prefix, "borderStyle")},
		{ID: Key(prefix, "borderColor"), Kind: Box, AtomicKeys: sides("border", "color"),
			ShorthandKey: Key(prefix, "borderColor")},
	}
	radii := make([]string, 4)
	for i, corner := range cornerNames {
		radii[i] = Key(prefix, "border", corner, "radius")
	}
	t = append(t, Family{ID: Key(prefix, "borderRadius"), Kind: Corner, AtomicKeys: radii,
		ShorthandKey: Key(prefix, "borderRadius"), Unit: "px"})
	for _, side := range sideNames {
		t = append(t, Family{
			ID:   Key(prefix, "border", side),
			Kind: BorderTriplet,
			AtomicKeys: []string{
				Key(prefix, "border", side, "width"),
				Key(prefix, "border", side, "style"),
				Key(prefix, "border", side, "color"),
			},
			ShorthandKey: Key(prefix, "border", side),
			Unit:         "px",
		})
	}
	t = append(t, Family{ID: Key(prefix, "border"), Kind: BorderSide, AtomicKeys: sides("border", ""),
		ShorthandKey: Key(prefix, "border")})
	return t
}

// AccordionElements are the style-able elements of the accordion / tabs /
// table-of-contents block, by key prefix. The empty prefix is the block
// wrapper itself.
var AccordionElements = []string{"", "title", "content", "icon"}

// Accordion returns the families of all elements of the accordion block.
func Accordion() Table {
	tables := make([]Table, len(AccordionElements))
	for i, prefix := range AccordionElements {
		tables[i] = Standard(prefix)
	}
	return Merge(tables...)
}
