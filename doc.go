/*
Package boxstyle resolves and persists the style attributes of editor blocks.

An editor stores a small set of user customizations for a visual block
(accordion, tabs, table of contents). At render time, every style attribute
gets its effective value by merging layered sources:

    schema defaults  <  theme  <  customizations  <  device override

On saving, only the customizations are kept, in the most compact CSS
shorthand form. The data flow is

    Load  (decompress stored attributes)
      → Compose  (cascade, per device)
      → Save  (delta against theme and defaults, compress)

The sub-packages implement the pieces: attr (attribute values and bags),
box (four-sided values), responsive (per-device values), family (groups of
atomic keys sharing a shorthand), codec (shorthand compression), delta,
theme and cascade. cssom renders resolved attributes as CSS.

All functions are pure: they never modify the bags handed to them and
keep no state between calls.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package boxstyle

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'boxstyle'.
func tracer() tracing.Trace {
	return tracing.Select("boxstyle")
}
