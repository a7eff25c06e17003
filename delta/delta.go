/*
Package delta computes the minimal set of attributes differing from a baseline.

A block instance persists only its customizations: the attributes whose
values differ from what the theme (or, without a theme, the schema
defaults) would give. Compute and Apply are inverse to each other:

    Apply(baseline, Compute(current, baseline))  ==  current

for every key of current.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package delta

import (
	"github.com/npillmayer/boxstyle/attr"
	"github.com/npillmayer/boxstyle/theme"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxstyle.delta'.
func tracer() tracing.Trace {
	return tracing.Select("boxstyle.delta")
}

// Compute returns the attributes of current which differ structurally from
// baseline. Keys missing from current are not part of the delta.
func Compute(current, baseline attr.Bag) attr.Bag {
	d := attr.Bag{}
	for k, v := range current {
		if v.IsNone() || attr.Equal(v, baseline[k]) {
			continue
		}
		d[k] = v
	}
	return d
}

// Apply merges a delta over a baseline. Values of the delta win.
func Apply(baseline, delta attr.Bag) attr.Bag {
	merged := baseline.Clone()
	for k, v := range delta {
		if v.IsNone() {
			continue
		}
		merged[k] = v
	}
	return merged
}

// Baseline is the bag a block instance starts from: the defaults with the
// theme's values laid over them. th may be nil.
func Baseline(defaults attr.Bag, th *theme.Theme) attr.Bag {
	if th == nil {
		return defaults.Clone()
	}
	return Apply(defaults, th.Values)
}

// IsCustomized tells if current[key] differs from the value the theme (if it
// has one for key) or else the defaults give. It does not look at stored
// customizations, which may be stale.
func IsCustomized(key string, current attr.Bag, th *theme.Theme, defaults attr.Bag) bool {
	base := th.Lookup(key).WithDefault(defaults[key])
	return !attr.Equal(current[key], base)
}

// Customizations computes the customizations to persist for a block
// instance.
func Customizations(current, defaults attr.Bag, th *theme.Theme) attr.Bag {
	return Compute(current, Baseline(defaults, th))
}

// Prune drops customizations which no longer differ from the baseline, e.g.
// after the theme has changed to the customized value.
func Prune(customizations, defaults attr.Bag, th *theme.Theme) attr.Bag {
	pruned := Compute(customizations, Baseline(defaults, th))
	if n := len(customizations) - len(pruned); n > 0 {
		tracer().Debugf("pruned %d stale customizations", n)
	}
	return pruned
}

// Reset removes customizations for keys, making them fall back to the theme
// or the defaults.
func Reset(customizations attr.Bag, keys ...string) attr.Bag {
	return customizations.Without(keys...)
}
