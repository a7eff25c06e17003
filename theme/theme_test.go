package theme

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/boxstyle/attr"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const oceanYAML = `
name: ocean
values:
  titleColor: "#036"
  titleFontSize: 18
  padding:
    value: 16px
    mobile: 8px
  icon:
    kind: char
    value: "+"
`

func TestLoadYAML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxstyle.theme")
	defer teardown()
	//
	th, err := LoadYAML(strings.NewReader(oceanYAML))
	require.NoError(t, err)
	assert.Equal(t, "ocean", th.Name)
	assert.Len(t, th.Values, 4)
	assert.True(t, th.Values["padding"].IsResponsive())
	assert.Equal(t, attr.KindIcon, th.Values["icon"].Kind())
	if n, _ := th.Values["titleFontSize"].AsNumber(); n != 18 {
		t.Errorf("expected font size 18, is %v", n)
	}
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, th))
	again, err := LoadYAML(&buf)
	require.NoError(t, err)
	assert.True(t, again.Values.Equal(th.Values), "is %s", again)

	_, err = LoadYAML(strings.NewReader("values: {a: b}\n"))
	assert.Error(t, err, "a theme needs a name")
}

func TestLookup(t *testing.T) {
	var none *Theme
	assert.True(t, none.Lookup("x").IsNothing())
	th := &Theme{Name: "t", Values: attr.Bag{"x": attr.Int(2), "y": attr.Null}}
	assert.True(t, th.Lookup("x").IsJust())
	assert.True(t, th.Lookup("y").IsNothing(), "None counts as absent")
}

func TestFromBag(t *testing.T) {
	bag := attr.Bag{"titleColor": attr.Str("red"), "title": attr.Str("Hello"), "padding": attr.Str("4px")}
	th := FromBag("mine", bag, func(key string) bool { return key != "title" })
	assert.Equal(t, []string{"padding", "titleColor"}, th.Values.Keys())
	th.Values["padding"] = attr.Str("1px")
	assert.Equal(t, "4px", attr.Text(bag["padding"], ""), "source bag must not change")
}

func TestMemoryRegistry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxstyle.theme")
	defer teardown()
	//
	ctx := context.Background()
	reg := NewMemoryRegistry("accordion", Theme{Name: "plain", Values: attr.Bag{"x": attr.Int(1)}})
	require.NoError(t, reg.Put(ctx, Key("accordion", "ocean"), Theme{Name: "ocean", Values: attr.Bag{"x": attr.Int(2)}}))
	require.NoError(t, reg.Put(ctx, Key("tabs", "ocean"), Theme{Name: "ocean"}))
	names, err := reg.List(ctx, "accordion")
	require.NoError(t, err)
	assert.Equal(t, []string{"ocean", "plain"}, names)

	th, ok, err := reg.Get(ctx, Key("accordion", "ocean"))
	require.NoError(t, err)
	require.True(t, ok)
	th.Values["x"] = attr.Int(99)
	again, _, _ := reg.Get(ctx, Key("accordion", "ocean"))
	assert.True(t, attr.Equal(attr.Int(2), again.Values["x"]), "registry must hand out copies")

	require.NoError(t, reg.Delete(ctx, Key("accordion", "ocean")))
	_, ok, _ = reg.Get(ctx, Key("accordion", "ocean"))
	assert.False(t, ok)
	assert.Error(t, reg.Put(ctx, "no-slash", Theme{}))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, _, err = reg.Get(cancelled, Key("accordion", "plain"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryRegistryConcurrent(t *testing.T) {
	var reg MemoryRegistry
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := Key("accordion", string(rune('a'+i)))
			_ = reg.Put(ctx, key, Theme{Values: attr.Bag{"i": attr.Int(i)}})
			_, _, _ = reg.Get(ctx, key)
		}(i)
	}
	wg.Wait()
	names, _ := reg.List(ctx, "accordion")
	assert.Len(t, names, 8)
}
