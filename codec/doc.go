/*
Package codec translates between atomic style attributes and CSS shorthands.

Compress folds every complete family of atomic keys into its shorthand key,
Decompress expands shorthands back into atomic keys. Both are driven by a
family.Table supplied by the caller:

    {paddingTop: 10px, paddingRight: 20px, …}  ⇄  {padding: "10px 20px"}

Families depending on other families' shorthands are processed after them
on compression (border{Side}Width/Style/Color → border{Side} → border) and
before them on decompression.

Both directions are all-or-nothing per family. A family with a missing
member, or with a member which cannot be rendered as a shorthand token, is
left in atomic form. A shorthand which cannot be expanded (too many
tokens, too few tokens for a border, a value which is not text) is left in
place. Neither function ever modifies its input bag.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package codec

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxstyle.codec'.
func tracer() tracing.Trace {
	return tracing.Select("boxstyle.codec")
}
