package family

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(t Table) []string {
	r := make([]string, len(t))
	for i, f := range t {
		r[i] = f.ID
	}
	return r
}

func indexOf(t Table, id string) int {
	for i, f := range t {
		if f.ID == id {
			return i
		}
	}
	return -1
}

func TestKey(t *testing.T) {
	assert.Equal(t, "paddingTop", Key("", "padding", "Top"))
	assert.Equal(t, "titleBorderLeftColor", Key("title", "border", "Left", "color"))
	assert.Equal(t, "borderTopLeftRadius", Key("", "border", "TopLeft", "radius"))
}

func TestStandardIsValid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxstyle.family")
	defer teardown()
	//
	require.NoError(t, Standard("").Validate())
	require.NoError(t, Accordion().Validate())
	padding, ok := Standard("content").Lookup("contentPadding")
	require.True(t, ok)
	assert.Equal(t, []string{"contentPaddingTop", "contentPaddingRight",
		"contentPaddingBottom", "contentPaddingLeft"}, padding.AtomicKeys)
}

func TestOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxstyle.family")
	defer teardown()
	//
	order := Standard("").Order()
	require.Len(t, order, len(Standard("")))
	border := indexOf(order, "border")
	for _, side := range []string{"borderTop", "borderRight", "borderBottom", "borderLeft"} {
		assert.Less(t, indexOf(order, side), border, "%s must be compressed before border", side)
		assert.Less(t, indexOf(order, side), indexOf(order, "borderWidth"),
			"%s must claim width keys before borderWidth", side)
	}
	rev := Standard("").Reversed()
	assert.Equal(t, "border", rev[len(rev)-5].ID, "order is %v", ids(rev))
}

func TestValidationErrors(t *testing.T) {
	bad := Table{
		{ID: "p", Kind: Box, AtomicKeys: []string{"a", "b", "c"}, ShorthandKey: "p"},
		{ID: "q", Kind: "wedge", AtomicKeys: []string{"x"}, ShorthandKey: "x"},
		{ID: "p", Kind: BorderTriplet, AtomicKeys: []string{"w", "s", "c"}, ShorthandKey: "p"},
	}
	err := bad.Validate()
	require.Error(t, err)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	msg := err.Error()
	assert.Contains(t, msg, "expected 4 atomic keys")
	assert.Contains(t, msg, "must be one of")
	assert.Contains(t, msg, "also an atomic key")
	assert.Contains(t, msg, "duplicate family ID")
}

func TestUnitOf(t *testing.T) {
	table := Standard("title")
	assert.Equal(t, "px", table.UnitOf("titlePaddingLeft"))
	assert.Equal(t, "px", table.UnitOf("titleBorderRadius"))
	assert.Equal(t, "px", table.UnitOf("titleBorderTopWidth"))
	assert.Equal(t, "", table.UnitOf("titleBorderTopStyle"))
	assert.Equal(t, "", table.UnitOf("titleFontWeight"))
}

func TestCycle(t *testing.T) {
	cyclic := Table{
		{ID: "a", Kind: BorderSide, AtomicKeys: []string{"b", "x1", "x2", "x3"}, ShorthandKey: "a"},
		{ID: "b", Kind: BorderSide, AtomicKeys: []string{"a", "y1", "y2", "y3"}, ShorthandKey: "b"},
	}
	err := cyclic.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cycle")
	assert.Len(t, cyclic.Order(), 2, "cyclic families are still ordered")
}

func TestYAMLRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, Standard("title")))
	loaded, err := LoadYAML(&buf)
	require.NoError(t, err)
	assert.Equal(t, Standard("title"), loaded)

	_, err = LoadYAML(strings.NewReader("families:\n  - id: x\n    kind: box\n"))
	assert.Error(t, err)
}

func TestMerge(t *testing.T) {
	custom := Family{ID: "padding", Kind: Box, AtomicKeys: []string{"pt", "pr", "pb", "pl"}, ShorthandKey: "pad"}
	merged := Merge(Standard(""), Table{custom})
	assert.Len(t, merged, len(Standard("")))
	f, _ := merged.Lookup("padding")
	assert.Equal(t, "pad", f.ShorthandKey)
}
