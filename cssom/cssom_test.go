package cssom

import (
	"strings"
	"testing"

	"github.com/npillmayer/boxstyle/attr"
	"github.com/npillmayer/boxstyle/cascade"
	"github.com/npillmayer/boxstyle/family"
	"github.com/npillmayer/boxstyle/maybe"
	"github.com/npillmayer/boxstyle/responsive"
	"github.com/npillmayer/boxstyle/theme"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKebabCamel(t *testing.T) {
	for camel, kebab := range map[string]string{
		"padding":             "padding",
		"borderTopWidth":      "border-top-width",
		"borderTopLeftRadius": "border-top-left-radius",
	} {
		assert.Equal(t, kebab, Kebab(camel))
		assert.Equal(t, camel, Camel(kebab))
	}
}

func TestDeclarations(t *testing.T) {
	bag := attr.Bag{
		"paddingTop": attr.Num(4),
		"fontWeight": attr.Num(700),
		"margin":     attr.BoxOf(attr.Box{Top: attr.Num(1), Right: attr.Num(2), Bottom: attr.Num(1), Left: attr.Num(2), Unit: "em"}),
		"open":       attr.Boolean(true),
		"icon":       attr.IconOf(attr.Icon{Type: "char", Value: "+"}),
	}
	decls := Declarations(bag, family.Standard(""))
	require.Len(t, decls, 3)
	assert.Equal(t, "font-weight: 700;", decls[0].String())
	assert.Equal(t, "margin: 1em 2em;", decls[1].String())
	assert.Equal(t, "padding-top: 4px;", decls[2].String())
}

func TestElementOf(t *testing.T) {
	elements := []string{"", "title", "content", "icon"}
	assert.Equal(t, "title", ElementOf("titleColor", elements))
	assert.Equal(t, "content", ElementOf("contentBorderTopWidth", elements))
	assert.Equal(t, "", ElementOf("icon", elements))
	assert.Equal(t, "", ElementOf("titles", elements))
	assert.Equal(t, "", ElementOf("paddingTop", elements))
	assert.Equal(t, ".acc .title", ElementSelector(".acc", "title"))
	assert.Equal(t, ".acc", ElementSelector(".acc", ""))
	assert.Equal(t, "borderTopWidth", unprefixed("contentBorderTopWidth", "content"))
}

func TestAppendRules(t *testing.T) {
	sheet := Wrap(nil)
	require.True(t, sheet.Empty())
	block, err := Parse(".acc { color: red; }")
	require.NoError(t, err)
	media, err := Parse("@media (max-width: 767px) { .acc { color: blue; } }")
	require.NoError(t, err)
	sheet.AppendRules(block)
	sheet.AppendRules(media)
	rules := sheet.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, "red", rules[0].Value("color"))
	require.True(t, rules[1].IsMedia())
	assert.Equal(t, "blue", rules[1].Nested()[0].Value("color"))
}

func TestImportDeclarations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxstyle.cssom")
	defer teardown()
	//
	bag, err := ImportDeclarations("padding: 10px 20px; border-top-color: #000 !important;")
	require.NoError(t, err)
	assert.Equal(t, []string{"borderTopColor", "padding"}, bag.Keys())
	assert.Equal(t, "10px 20px", attr.Text(bag["padding"], ""))
	assert.Equal(t, "#000", attr.Text(bag["borderTopColor"], ""))
}

func TestRender(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxstyle.cssom")
	defer teardown()
	//
	defaults := attr.Bag{
		"paddingTop": attr.Str("10px"), "paddingRight": attr.Str("10px"),
		"paddingBottom": attr.Str("10px"), "paddingLeft": attr.Str("10px"),
		"titlePaddingTop": attr.Num(5), "titlePaddingRight": attr.Num(5),
		"titlePaddingBottom": attr.Num(5), "titlePaddingLeft": attr.Num(5),
		"titleColor":            attr.Str("#000"),
		"contentBorderTopWidth": attr.Num(2),
	}
	narrow := attr.ResponsiveOf(attr.Responsive{
		Base:   maybe.Just(attr.Str("10px")),
		Tablet: maybe.Just(attr.Str("8px")),
	})
	ctx := cascade.Context{
		Defaults: defaults,
		Theme:    &theme.Theme{Name: "ocean", Values: attr.Bag{"titleColor": attr.Str("#036")}},
		Customizations: attr.Bag{
			"paddingTop": narrow, "paddingRight": narrow, "paddingBottom": narrow, "paddingLeft": narrow,
		},
	}
	sheet := Render(".acc", ctx, cascade.Names(ctx), family.AccordionElements, family.Accordion(),
		responsive.DefaultBreakpoints)
	rules := sheet.Rules()
	require.Len(t, rules, 4, "mobile inherits from tablet and needs no rule:\n%s", sheet)
	assert.Equal(t, ".acc", rules[0].Selector())
	assert.Equal(t, []string{"padding"}, rules[0].Properties())
	assert.Equal(t, "10px", rules[0].Value("padding"))

	require.True(t, rules[1].IsMedia())
	assert.Equal(t, "(max-width: 1024px)", rules[1].Selector())
	nested := rules[1].Nested()
	require.Len(t, nested, 1)
	assert.True(t, nested[0].Bag().Equal(attr.Bag{"padding": attr.Str("8px")}))
	assert.True(t, strings.Contains(sheet.String(), "@media (max-width: 1024px) {"), sheet.String())

	assert.Equal(t, ".acc .title", rules[2].Selector())
	assert.Equal(t, []string{"color", "padding"}, rules[2].Properties())
	assert.Equal(t, "#036", rules[2].Value("color"))
	assert.Equal(t, "5px", rules[2].Value("padding"))

	assert.Equal(t, ".acc .content", rules[3].Selector())
	assert.Equal(t, "2px", rules[3].Value("border-top-width"))

	parsed, err := Parse(sheet.String())
	require.NoError(t, err)
	assert.Len(t, parsed.Rules(), 4)
	assert.False(t, parsed.Empty())
}
