package boxstyle

import (
	"errors"
	"fmt"

	"github.com/npillmayer/boxstyle/attr"
	"github.com/npillmayer/boxstyle/cascade"
	"github.com/npillmayer/boxstyle/codec"
	"github.com/npillmayer/boxstyle/cssom"
	"github.com/npillmayer/boxstyle/delta"
	"github.com/npillmayer/boxstyle/family"
	"github.com/npillmayer/boxstyle/responsive"
	"github.com/npillmayer/boxstyle/theme"
)

// Schema describes the style attributes of a block type. Elements are the
// key prefixes of the block's styled parts, e.g. "title" for titleColor.
type Schema struct {
	BlockType string
	Defaults  attr.Bag
	Families  family.Table
	Elements  []string
}

// Accordion returns a schema for the accordion block with the given
// defaults.
func Accordion(defaults attr.Bag) Schema {
	return Schema{
		BlockType: "accordion",
		Defaults:  defaults,
		Families:  family.Accordion(),
		Elements:  family.AccordionElements,
	}
}

// Validate checks the schema's family table.
func (s Schema) Validate() error {
	if s.Defaults == nil {
		return errors.New("schema has no defaults")
	}
	if err := s.Families.Validate(); err != nil {
		return fmt.Errorf("schema %q: %w", s.BlockType, err)
	}
	return nil
}

// Load turns stored block attributes into their atomic form, which the
// editing controls work on.
func (s Schema) Load(stored attr.Bag) attr.Bag {
	return codec.Decompress(stored, s.Families)
}

// Context prepares the layers of the cascade for a block instance, all in
// atomic form.
func (s Schema) Context(th *theme.Theme, customizations attr.Bag, d responsive.Device) cascade.Context {
	ctx := cascade.Context{
		Defaults:       s.Load(s.Defaults),
		Customizations: s.Load(customizations),
		Device:         d,
	}
	if th != nil {
		ctx.Theme = &theme.Theme{Name: th.Name, Values: s.Load(th.Values)}
	}
	return ctx
}

// Compose computes the effective attributes of a block instance for
// device d. th may be nil.
func (s Schema) Compose(th *theme.Theme, customizations attr.Bag, d responsive.Device) attr.Bag {
	return cascade.ResolveEverything(s.Context(th, customizations, d))
}

// Save computes the attributes to persist for a block instance: the
// attributes of current differing from theme and defaults, compressed to
// shorthands.
func (s Schema) Save(current attr.Bag, th *theme.Theme) attr.Bag {
	ctx := s.Context(th, nil, responsive.Base)
	custom := delta.Customizations(s.Load(current), ctx.Defaults, ctx.Theme)
	tracer().Debugf("%s: saving %d customizations", s.BlockType, len(custom))
	return codec.Compress(custom, s.Families)
}

// IsCustomized tells if attribute key of current differs from the theme or
// the defaults.
func (s Schema) IsCustomized(key string, current attr.Bag, th *theme.Theme) bool {
	ctx := s.Context(th, nil, responsive.Base)
	return delta.IsCustomized(key, s.Load(current), ctx.Theme, ctx.Defaults)
}

// Stylesheet renders the effective attributes of a block instance as CSS
// for selector, with one rule per element.
func (s Schema) Stylesheet(selector string, th *theme.Theme, customizations attr.Bag,
	bps responsive.Breakpoints) *cssom.Sheet {
	//
	ctx := s.Context(th, customizations, responsive.Base)
	return cssom.Render(selector, ctx, cascade.Names(ctx), s.Elements, s.Families, bps)
}
