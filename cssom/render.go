package cssom

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aymerick/douceur/css"
	"github.com/npillmayer/boxstyle/attr"
	"github.com/npillmayer/boxstyle/cascade"
	"github.com/npillmayer/boxstyle/codec"
	"github.com/npillmayer/boxstyle/delta"
	"github.com/npillmayer/boxstyle/family"
	"github.com/npillmayer/boxstyle/responsive"
)

// Render creates a stylesheet for a block instance. names are resolved
// through the cascade (ctx.Device is ignored) and compressed with table.
//
// Attributes are grouped by the element prefixes in elements, e.g.
// "title" for titleColor. The block itself (no prefix) gets a rule for
// selector, every other element a rule for ElementSelector(selector, prefix),
// with the prefix stripped from the property names. For tablets and mobile
// phones, the declarations differing from the next wider device are written
// to @media rules with the breakpoints' media queries.
func Render(selector string, ctx cascade.Context, names []string, elements []string,
	table family.Table, bps responsive.Breakpoints) *Sheet {
	//
	groups := groupByElement(names, elements)
	sheet := Wrap(css.NewStylesheet())
	seen := map[string]bool{}
	for _, prefix := range append([]string{""}, elements...) {
		if seen[prefix] || len(groups[prefix]) == 0 {
			continue
		}
		seen[prefix] = true
		sel := ElementSelector(selector, prefix)
		sheet.AppendRules(renderElement(sel, prefix, ctx, groups[prefix], table, bps))
	}
	return sheet
}

// renderElement creates the rules for a single element of the block.
func renderElement(selector, prefix string, ctx cascade.Context, names []string,
	table family.Table, bps responsive.Breakpoints) *Sheet {
	//
	sheet := Wrap(css.NewStylesheet())
	var wider attr.Bag
	for _, d := range responsive.Devices() {
		ctx.Device = d
		resolved := codec.Decompress(cascade.ResolveAll(names, ctx), table)
		values := resolved
		if d != responsive.Base {
			values = delta.Compute(resolved, wider)
		}
		wider = resolved
		if len(values) == 0 {
			continue
		}
		rule := css.NewRule(css.QualifiedRule)
		rule.Prelude = selector
		rule.Selectors = []string{selector}
		rule.Declarations = declarations(codec.Compress(values, table), table, prefix)
		if len(rule.Declarations) == 0 {
			continue
		}
		if d == responsive.Base {
			sheet.css.Rules = append(sheet.css.Rules, rule)
			continue
		}
		rule.EmbedLevel = 1
		media := css.NewRule(css.AtRule)
		media.Name = "@media"
		media.Prelude = bps.MediaQuery(d)
		media.Rules = []*css.Rule{rule}
		sheet.css.Rules = append(sheet.css.Rules, media)
		tracer().Debugf("%s: %d declarations for %s", selector, len(rule.Declarations), d)
	}
	return sheet
}

// ElementSelector returns the selector for the element with the given key
// prefix, nested in the block's selector:
//
//     ElementSelector(".acc", "")       →  ".acc"
//     ElementSelector(".acc", "title")  →  ".acc .title"
//
func ElementSelector(selector, prefix string) string {
	if prefix == "" {
		return selector
	}
	return selector + " ." + Kebab(prefix)
}

// ElementOf returns the element prefix of an attribute key: the longest
// prefix in elements which is followed by an upper-case letter. Keys without
// such a prefix belong to the block itself ("").
func ElementOf(key string, elements []string) string {
	element := ""
	for _, p := range elements {
		if p == "" || len(p) <= len(element) || len(key) <= len(p) || !strings.HasPrefix(key, p) {
			continue
		}
		if r, _ := utf8.DecodeRuneInString(key[len(p):]); unicode.IsUpper(r) {
			element = p
		}
	}
	return element
}

func groupByElement(names []string, elements []string) map[string][]string {
	groups := map[string][]string{}
	for _, name := range names {
		p := ElementOf(name, elements)
		groups[p] = append(groups[p], name)
	}
	return groups
}

// unprefixed strips an element prefix from a key: titleColor → color.
func unprefixed(key, prefix string) string {
	if prefix == "" || !strings.HasPrefix(key, prefix) {
		return key
	}
	rest := key[len(prefix):]
	r, size := utf8.DecodeRuneInString(rest)
	if r == utf8.RuneError {
		return key
	}
	return string(unicode.ToLower(r)) + rest[size:]
}
