package cssom

import (
	"fmt"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/boxstyle/attr"
)

// Sheet is an adapter for a douceur stylesheet.
type Sheet struct {
	css *css.Stylesheet
}

// Wrap a douceur css.Stylesheet into a Sheet.
// The stylesheet is now managed by the wrapper.
func Wrap(sheet *css.Stylesheet) *Sheet {
	if sheet == nil {
		sheet = css.NewStylesheet()
	}
	return &Sheet{css: sheet}
}

// Parse reads a stylesheet from CSS text.
func Parse(text string) (*Sheet, error) {
	sheet, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("cannot parse stylesheet: %w", err)
	}
	return Wrap(sheet), nil
}

// Empty checks if this stylesheet contains any rules.
func (sheet *Sheet) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
func (sheet *Sheet) AppendRules(other *Sheet) {
	sheet.css.Rules = append(sheet.css.Rules, other.css.Rules...)
}

// Rules returns the top-level rules of a stylesheet.
func (sheet *Sheet) Rules() []Rule {
	return wrapRules(sheet.css.Rules)
}

func (sheet *Sheet) String() string {
	return sheet.css.String()
}

func wrapRules(rules []*css.Rule) []Rule {
	wrapped := make([]Rule, len(rules))
	for i, r := range rules {
		wrapped[i] = Rule(*r)
	}
	return wrapped
}

// Rule is an adapter for a douceur rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule. For a media rule this
// is the media query.
func (r Rule) Selector() string {
	return r.Prelude
}

// IsMedia is true for @media rules.
func (r Rule) IsMedia() bool {
	return r.Kind == css.AtRule && r.Name == "@media"
}

// Nested returns the rules embedded in an at-rule, e.g. in @media.
func (r Rule) Nested() []Rule {
	return wrapRules(r.Rules)
}

// Properties returns the property keys of a rule, e.g. "margin-top".
func (r Rule) Properties() []string {
	props := make([]string, 0, len(r.Declarations))
	for _, d := range r.Declarations {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property value for given key with this rule, e.g. "15px".
func (r Rule) Value(key string) string {
	for _, d := range r.Declarations {
		if d.Property == key {
			return d.Value
		}
	}
	return ""
}

// Bag returns the declarations of the rule as attributes.
func (r Rule) Bag() attr.Bag {
	return fromDeclarations(r.Declarations)
}
