package cssom

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/boxstyle/attr"
	"github.com/npillmayer/boxstyle/box"
	"github.com/npillmayer/boxstyle/family"
)

// Kebab converts a camel-case attribute key to a CSS property name,
// e.g. borderTopWidth → border-top-width.
func Kebab(key string) string {
	var b strings.Builder
	for _, r := range key {
		if unicode.IsUpper(r) {
			if b.Len() > 0 {
				b.WriteByte('-')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Camel converts a CSS property name to a camel-case attribute key,
// e.g. border-top-width → borderTopWidth.
func Camel(property string) string {
	var b strings.Builder
	upper := false
	for _, r := range strings.TrimSpace(property) {
		if r == '-' {
			upper = b.Len() > 0
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Declarations converts attributes into CSS declarations, sorted by
// property. Box and corner values are written as shorthands. Numbers get
// the unit of the family in table owning their key. Values which have no
// CSS text form (icons, lists, booleans, empty strings) are skipped.
func Declarations(bag attr.Bag, table family.Table) []*css.Declaration {
	return declarations(bag, table, "")
}

// declarations strips the element prefix from the keys of bag before
// turning them into property names.
func declarations(bag attr.Bag, table family.Table, prefix string) []*css.Declaration {
	decls := make([]*css.Declaration, 0, len(bag))
	for _, key := range bag.Keys() {
		text := cssText(bag[key], table.UnitOf(key))
		if text == "" {
			tracer().Debugf("no CSS for %s = %s", key, bag[key])
			continue
		}
		decl := css.NewDeclaration()
		decl.Property = Kebab(unprefixed(key, prefix))
		decl.Value = text
		decls = append(decls, decl)
	}
	sort.Sort(css.DeclarationsByProperty(decls))
	return decls
}

func cssText(v attr.Value, unit string) string {
	switch v.Kind() {
	case attr.KindBox:
		b, _ := v.AsBox()
		return box.Format(b, unit)
	case attr.KindCorners:
		c, _ := v.AsCorners()
		return box.FormatCorners(c, unit)
	case attr.KindBool:
		return ""
	}
	return attr.Text(v, unit)
}

// ImportDeclarations reads a list of CSS declarations, e.g.
//
//     padding: 10px 20px; border-top-color: #000
//
// and returns them as attributes with camel-case keys and string values.
// !important markers are dropped.
func ImportDeclarations(text string) (attr.Bag, error) {
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return nil, fmt.Errorf("cannot parse CSS declarations: %w", err)
	}
	return fromDeclarations(decls), nil
}

func fromDeclarations(decls []*css.Declaration) attr.Bag {
	bag := make(attr.Bag, len(decls))
	for _, d := range decls {
		if d.Property == "" || d.Value == "" {
			continue
		}
		if d.Important {
			tracer().Debugf("dropping !important from %s", d.Property)
		}
		bag[Camel(d.Property)] = attr.Str(d.Value)
	}
	return bag
}
