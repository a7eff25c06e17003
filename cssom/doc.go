/*
Package cssom renders resolved style attributes as CSS and reads them back.

CSSOM is the "CSS Object Model", similar to the DOM for HTML. We do not
implement one ourselves but wrap the stylesheet model of
github.com/aymerick/douceur. Render produces a stylesheet for a block
instance: one rule for the base device, plus @media rules carrying only
the declarations which differ on tablets and mobile phones.

Attribute keys are camel-case (borderTopWidth), CSS properties kebab-case
(border-top-width). Kebab and Camel convert between the two.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'boxstyle.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("boxstyle.cssom")
}
