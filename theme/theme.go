/*
Package theme holds named sets of style values shared between block instances.

A theme sits between a block type's schema defaults and the customizations
of a single block instance in the cascade. Themes are stored outside of this
module; Registry is the boundary to that key-value store, keyed by block
type and theme name. MemoryRegistry is an in-process implementation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package theme

import (
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/npillmayer/boxstyle/attr"
	"github.com/npillmayer/boxstyle/maybe"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer traces with key 'boxstyle.theme'.
func tracer() tracing.Trace {
	return tracing.Select("boxstyle.theme")
}

// Theme is a named set of attribute values.
type Theme struct {
	Name   string
	Values attr.Bag
}

// Lookup returns the theme's value for key. A nil theme has no values.
func (t *Theme) Lookup(key string) maybe.Maybe[attr.Value] {
	if t == nil {
		return maybe.Nothing[attr.Value]()
	}
	return t.Values.Lookup(key)
}

// Clone returns a copy of t with its own bag of values.
func (t Theme) Clone() Theme {
	return Theme{Name: t.Name, Values: t.Values.Clone()}
}

func (t Theme) String() string {
	return fmt.Sprintf("theme %q %s", t.Name, t.Values)
}

// FromBag creates a theme from the attributes of a block instance, keeping
// the keys for which themeable returns true. A nil themeable keeps every key.
func FromBag(name string, bag attr.Bag, themeable func(key string) bool) Theme {
	values := attr.Bag{}
	for k, v := range bag {
		if v.IsNone() || (themeable != nil && !themeable(k)) {
			continue
		}
		values[k] = v
	}
	return Theme{Name: name, Values: values}
}

// --- YAML ------------------------------------------------------------------

type themeDocument struct {
	Name   string                 `yaml:"name" validate:"required"`
	Values map[string]interface{} `yaml:"values"`
}

var validate = validator.New()

// LoadYAML reads a theme from a YAML document of the form
//
//     name: ocean
//     values:
//       titleColor: "#036"
//       padding: { value: 16px, mobile: 8px }
//
func LoadYAML(r io.Reader) (Theme, error) {
	var doc themeDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return Theme{}, fmt.Errorf("cannot read theme: %w", err)
	}
	if err := validate.Struct(doc); err != nil {
		return Theme{}, fmt.Errorf("invalid theme: %w", err)
	}
	t := Theme{Name: doc.Name, Values: attr.Bag{}}
	for k, x := range doc.Values {
		if v := attr.FromJSON(x); !v.IsNone() {
			t.Values[k] = v
		}
	}
	tracer().Debugf("loaded theme %q with %d values", t.Name, len(t.Values))
	return t, nil
}

// WriteYAML writes a theme in the format read by LoadYAML.
func WriteYAML(w io.Writer, t Theme) error {
	doc := themeDocument{Name: t.Name, Values: make(map[string]interface{}, len(t.Values))}
	for _, k := range t.Values.Keys() {
		if x := attr.ToJSON(t.Values[k]); x != nil {
			doc.Values[k] = x
		}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
