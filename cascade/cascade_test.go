package cascade

import (
	"testing"

	"github.com/npillmayer/boxstyle/attr"
	"github.com/npillmayer/boxstyle/maybe"
	"github.com/npillmayer/boxstyle/responsive"
	"github.com/npillmayer/boxstyle/theme"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestPrecedence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxstyle.cascade")
	defer teardown()
	//
	ctx := Context{
		Defaults:       attr.Bag{"x": attr.Int(1)},
		Theme:          &theme.Theme{Values: attr.Bag{"x": attr.Int(2)}},
		Customizations: attr.Bag{"x": attr.Int(3)},
	}
	if v := Resolve("x", ctx); !attr.Equal(v, attr.Int(3)) {
		t.Errorf("expected customization 3, is %s", v)
	}
	ctx.Customizations = ctx.Customizations.Without("x")
	if v := Resolve("x", ctx); !attr.Equal(v, attr.Int(2)) {
		t.Errorf("expected theme value 2, is %s", v)
	}
	ctx.Theme = nil
	if v := Resolve("x", ctx); !attr.Equal(v, attr.Int(1)) {
		t.Errorf("expected default 1, is %s", v)
	}
	if v := Resolve("y", ctx); !v.IsNone() {
		t.Errorf("expected unknown attribute to resolve to None, is %s", v)
	}
}

func TestDeviceResolution(t *testing.T) {
	padding := attr.ResponsiveOf(attr.Responsive{
		Base:   maybe.Just(attr.Str("10px")),
		Tablet: maybe.Just(attr.Str("8px")),
	})
	ctx := Context{
		Defaults:       attr.Bag{"padding": attr.Str("0"), "color": attr.Str("red")},
		Customizations: attr.Bag{"padding": padding},
	}
	for d, want := range map[responsive.Device]string{
		responsive.Base: "10px", responsive.Tablet: "8px", responsive.Mobile: "8px",
	} {
		ctx.Device = d
		assert.Equal(t, want, attr.Text(Resolve("padding", ctx), ""), "device %s", d)
		assert.Equal(t, "red", attr.Text(Resolve("color", ctx), ""), "device %s", d)
	}
}

func TestExplain(t *testing.T) {
	ctx := Context{
		Defaults: attr.Bag{"a": attr.Int(1), "b": attr.Int(1)},
		Theme:    &theme.Theme{Values: attr.Bag{"b": attr.Int(2), "c": attr.Null}},
	}
	assert.Equal(t, Default, Explain("a", ctx).Layer)
	assert.Equal(t, Theme, Explain("b", ctx).Layer)
	assert.Equal(t, Absent, Explain("c", ctx).Layer, "None values count as undefined")
	assert.Equal(t, "theme", Theme.String())
}

func TestResolveAll(t *testing.T) {
	ctx := Context{
		Defaults:       attr.Bag{"a": attr.Int(1), "b": attr.Int(1)},
		Theme:          &theme.Theme{Values: attr.Bag{"c": attr.Int(2)}},
		Customizations: attr.Bag{"d": attr.Int(3)},
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, Names(ctx))
	all := ResolveAll([]string{"a", "d", "zzz"}, ctx)
	assert.Equal(t, []string{"a", "d"}, all.Keys(), "None results are omitted")
	assert.Len(t, ResolveEverything(ctx), 4)
}

func TestNilDefaultsPanics(t *testing.T) {
	assert.Panics(t, func() { Resolve("x", Context{}) })
	assert.NotPanics(t, func() { Resolve("x", Context{Defaults: attr.Bag{}}) })
}
