/*
Package attr holds the data model for block style attributes.

A block instance stores its styling as a bag of named attribute values,
exchanged with the host editor as plain JSON. Attribute values are dynamically
typed in JSON (a padding may be a string, a number, an object with four sides,
or a wrapper carrying per-device overrides). This package turns them into an
explicit tagged union, Value, at the JSON boundary, so that the rest of the
module operates on one concrete shape per kind:

    None        absent value, JSON null
    String      "10px"
    Number      10
    Bool        true
    Box         {top, right, bottom, left, unit?, linked?}
    Corners     {topLeft, topRight, bottomRight, bottomLeft, unit?, linked?}
    Responsive  {value?, tablet?, mobile?}
    Icon        {kind: char|image|library, value}
    Object      any other JSON object, e.g. a measure {value: 10, unit: "px"}
    List        a JSON array

Values are immutable. Every operation of this module returns new values and
new bags and never modifies its arguments.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package attr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxstyle.attr'.
func tracer() tracing.Trace {
	return tracing.Select("boxstyle.attr")
}
