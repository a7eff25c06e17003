package codec

import (
	"strings"

	"github.com/npillmayer/boxstyle/attr"
	"github.com/npillmayer/boxstyle/box"
	"github.com/npillmayer/boxstyle/family"
	"github.com/npillmayer/boxstyle/maybe"
	"github.com/npillmayer/boxstyle/responsive"
)

// Compress folds the atomic keys of every complete family into the family's
// shorthand key. Families are processed in table.Order().
//
// If a member of a family is responsive, the shorthand is assembled per
// device: a device layer is emitted if every member defines it (a bare
// member defines the base layer only). If some members define a layer and
// others don't, the family cannot be compressed losslessly and is skipped.
//
// A shorthand already present in the bag is overwritten by a freshly
// compressed one.
//
// Decompress restores the original bag exactly if every member value is a
// string and the members of each family are either all bare or all
// responsive. Numeric members come back as strings carrying the family's
// unit (4 → "4px"), and bare members mixed with responsive ones come back
// as responsive values with a base layer only.
func Compress(bag attr.Bag, table family.Table) attr.Bag {
	out := bag.Clone()
	for _, f := range table.Order() {
		compressFamily(out, f)
	}
	return out
}

// compressFamily operates in place on a bag owned by Compress.
func compressFamily(bag attr.Bag, f family.Family) {
	members := make([]attr.Value, len(f.AtomicKeys))
	responsiveMembers := false
	for i, key := range f.AtomicKeys {
		v := bag[key]
		if v.IsNone() {
			if i > 0 {
				tracer().Debugf("family %s incomplete, %s missing", f.ID, key)
			}
			return
		}
		members[i] = v
		responsiveMembers = responsiveMembers || v.IsResponsive()
	}
	var short maybe.Maybe[attr.Value]
	if responsiveMembers {
		short = joinResponsive(f, members)
	} else {
		short = maybe.AndThen(join(f, members), func(s string) maybe.Maybe[attr.Value] {
			return maybe.Just(attr.Str(s))
		})
	}
	var v attr.Value
	switch m := short.Match(); m {
	case m.Just(&v):
		for _, key := range f.AtomicKeys {
			delete(bag, key)
		}
		bag[f.ShorthandKey] = v
		tracer().Debugf("compressed %s to %s = %s", f.ID, f.ShorthandKey, v)
	default:
		tracer().Debugf("family %s not compressible", f.ID)
	}
}

// joinResponsive assembles a responsive shorthand, layer by layer.
func joinResponsive(f family.Family, members []attr.Value) maybe.Maybe[attr.Value] {
	var r attr.Responsive
	layers := 0
	for _, d := range responsive.Devices() {
		values := make([]attr.Value, 0, len(members))
		for _, v := range members {
			if layer, ok := responsive.Layer(v, d).Get(); ok {
				values = append(values, layer)
			}
		}
		if len(values) == 0 {
			continue
		}
		if len(values) < len(members) {
			tracer().Debugf("family %s: layer %s set on some members only", f.ID, d)
			return maybe.Nothing[attr.Value]()
		}
		s, ok := join(f, values).Get()
		if !ok {
			return maybe.Nothing[attr.Value]()
		}
		layer := maybe.Just(attr.Str(s))
		switch d {
		case responsive.Base:
			r.Base = layer
		case responsive.Tablet:
			r.Tablet = layer
		case responsive.Mobile:
			r.Mobile = layer
		}
		layers++
	}
	if layers == 0 {
		return maybe.Nothing[attr.Value]()
	}
	return maybe.Just(attr.ResponsiveOf(r))
}

// join renders the (non-responsive) member values of a family as one
// shorthand string, with numbers in the family's unit. join fails for
// members whose text cannot be split off the shorthand again: empty or
// multi-token box sides, triplet widths and styles containing whitespace,
// and border sides which differ.
func join(f family.Family, members []attr.Value) maybe.Maybe[string] {
	texts := make([]string, len(members))
	for i, v := range members {
		texts[i] = attr.Text(v, f.Unit)
	}
	switch f.Kind {
	case family.Box, family.Corner:
		for _, t := range texts {
			if !box.IsSingleToken(t) {
				return maybe.Nothing[string]()
			}
		}
		if f.Kind == family.Corner {
			return maybe.Just(box.FormatCorners(attr.Corners{
				TopLeft:     attr.Str(texts[0]),
				TopRight:    attr.Str(texts[1]),
				BottomRight: attr.Str(texts[2]),
				BottomLeft:  attr.Str(texts[3]),
			}, ""))
		}
		return maybe.Just(box.Format(attr.Box{
			Top:    attr.Str(texts[0]),
			Right:  attr.Str(texts[1]),
			Bottom: attr.Str(texts[2]),
			Left:   attr.Str(texts[3]),
		}, ""))
	case family.BorderTriplet:
		// width and style are split off at whitespace when expanding,
		// the color takes the remainder
		if !isWord(texts[0]) || !isWord(texts[1]) || texts[2] == "" {
			return maybe.Nothing[string]()
		}
		if color := strings.Join(strings.Fields(texts[2]), " "); color != texts[2] {
			return maybe.Nothing[string]()
		}
		return maybe.Just(strings.Join(texts, " "))
	case family.BorderSide:
		for _, t := range texts[1:] {
			if t != texts[0] {
				return maybe.Nothing[string]()
			}
		}
		if texts[0] == "" {
			return maybe.Nothing[string]()
		}
		return maybe.Just(texts[0])
	}
	tracer().Errorf("family %s has unknown kind %q", f.ID, f.Kind)
	return maybe.Nothing[string]()
}

func isWord(s string) bool {
	fields := strings.Fields(s)
	return len(fields) == 1 && fields[0] == s
}
