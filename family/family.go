/*
Package family describes groups of atomic style attributes sharing a shorthand.

A family is a named group of related atomic attribute keys which collapse
into one shorthand key, e.g.

    paddingTop, paddingRight, paddingBottom, paddingLeft  ⇄  padding

Families are plain data, supplied by callers (derived from a block's style
schema), so the shorthand codec is generic over any schema instead of being
hard-coded for one block type. Families may build on each other: the
border-side family consumes the shorthand keys produced by the four
border-triplet families. Table.Order computes an order in which a family
always comes after the families it depends on.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package family

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxstyle.family'.
func tracer() tracing.Trace {
	return tracing.Select("boxstyle.family")
}

// Kind tells how a family's atomic values combine into a shorthand.
type Kind string

// Kinds of families.
const (
	// Box families hold four sides (top, right, bottom, left), e.g. padding.
	Box Kind = "box"
	// Corner families hold four corners (top-left, top-right, bottom-right,
	// bottom-left), e.g. border-radius.
	Corner Kind = "corner"
	// BorderTriplet families hold width, style and color of one border side.
	BorderTriplet Kind = "border-triplet"
	// BorderSide families hold the four border-side shorthands and collapse
	// only if all four are identical.
	BorderSide Kind = "border-side"
)

// Arity returns the number of atomic keys a family of kind k has.
func (k Kind) Arity() int {
	switch k {
	case Box, Corner, BorderSide:
		return 4
	case BorderTriplet:
		return 3
	}
	return 0
}

// rank orders kinds for families which are otherwise independent: triplets
// claim the per-side width/style/color keys before box families like
// borderWidth get to see them.
func (k Kind) rank() int {
	switch k {
	case BorderTriplet:
		return 0
	case BorderSide:
		return 1
	}
	return 2
}

// Family describes one group of atomic keys and its shorthand key.
//
// The order of AtomicKeys is significant: top, right, bottom, left for box
// and border-side families; top-left, top-right, bottom-right, bottom-left
// for corner families; width, style, color for border triplets.
type Family struct {
	ID           string   `yaml:"id" json:"id" validate:"required"`
	Kind         Kind     `yaml:"kind" json:"kind" validate:"required,oneof=box corner border-triplet border-side"`
	AtomicKeys   []string `yaml:"atomicKeys" json:"atomicKeys" validate:"required,dive,required"`
	ShorthandKey string   `yaml:"shorthandKey" json:"shorthandKey" validate:"required"`
	Unit         string   `yaml:"unit,omitempty" json:"unit,omitempty"` // appended to numeric values
}

func (f Family) String() string {
	return fmt.Sprintf("[%s %s: %v ⇄ %s]", f.Kind, f.ID, f.AtomicKeys, f.ShorthandKey)
}

// Table is a list of families.
type Table []Family

// Lookup finds a family by ID.
func (t Table) Lookup(id string) (Family, bool) {
	for _, f := range t {
		if f.ID == id {
			return f, true
		}
	}
	return Family{}, false
}

// UnitOf returns the unit for numeric values of key, taken from the first
// family having key as an atomic or shorthand key. Keys outside every
// family have no unit.
func (t Table) UnitOf(key string) string {
	for _, f := range t {
		if f.ShorthandKey == key {
			return f.Unit
		}
		for _, k := range f.AtomicKeys {
			if k == key {
				return f.Unit
			}
		}
	}
	return ""
}

// Order returns the families in compression order: every family comes after
// the families producing its atomic keys. Among independent families,
// border triplets come first, then border sides, then box and corner
// families; ties keep declaration order. Decompression uses the reverse
// order.
//
// Families caught in a dependency cycle (rejected by Validate) are appended
// in declaration order.
func (t Table) Order() Table {
	ordered, rest := t.topoSort()
	if len(rest) > 0 {
		tracer().Errorf("family table has a dependency cycle involving %v", rest)
		ordered = append(ordered, rest...)
	}
	return ordered
}

// Reversed returns the families in decompression order.
func (t Table) Reversed() Table {
	ordered := t.Order()
	r := make(Table, len(ordered))
	for i, f := range ordered {
		r[len(ordered)-1-i] = f
	}
	return r
}

// topoSort returns the families it could order and the ones left in a cycle.
func (t Table) topoSort() (Table, Table) {
	n := len(t)
	producer := make(map[string]int, n)
	for i, f := range t {
		producer[f.ShorthandKey] = i
	}
	indeg := make([]int, n)
	succ := make([][]int, n)
	for i, f := range t {
		for _, k := range f.AtomicKeys {
			if j, ok := producer[k]; ok && j != i {
				indeg[i]++
				succ[j] = append(succ[j], i)
			}
		}
	}
	done := make([]bool, n)
	ordered := make(Table, 0, n)
	for len(ordered) < n {
		next := -1
		for i := range t {
			if done[i] || indeg[i] > 0 {
				continue
			}
			if next < 0 || t[i].Kind.rank() < t[next].Kind.rank() {
				next = i
			}
		}
		if next < 0 {
			break
		}
		done[next] = true
		ordered = append(ordered, t[next])
		for _, s := range succ[next] {
			indeg[s]--
		}
	}
	var rest Table
	for i := range t {
		if !done[i] {
			rest = append(rest, t[i])
		}
	}
	return ordered, rest
}

// Merge concatenates tables. Later families replace earlier ones with the
// same ID.
func Merge(tables ...Table) Table {
	var merged Table
	index := map[string]int{}
	for _, t := range tables {
		for _, f := range t {
			if i, ok := index[f.ID]; ok {
				merged[i] = f
				continue
			}
			index[f.ID] = len(merged)
			merged = append(merged, f)
		}
	}
	return merged
}
