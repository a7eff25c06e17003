/*
Package box implements utilities for four-sided and four-cornered style values.

CSS knows a whole lot of properties with a value per side of a box
(padding, margin, border widths, …) or per corner (border radii). They may
be written as a shorthand of one to four tokens, distributing the tokens
to the sides like this:

    1 token:   all four sides
    2 tokens:  vertical horizontal
    3 tokens:  top horizontal bottom
    4 tokens:  top right bottom left

(for corners: top-left, top-right, bottom-right, bottom-left).
Format always emits the shortest of these forms and Parse is its exact
inverse. Together they are the geometric primitive of the shorthand codec.

No function of this package panics on unexpected input; odd shapes
degrade to default values.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package box

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxstyle.box'.
func tracer() tracing.Trace {
	return tracing.Select("boxstyle.box")
}
