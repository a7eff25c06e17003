/*
Command boxstyle drives the style cascade and the shorthand codec on JSON
attribute files.

    boxstyle compress block.json
    boxstyle resolve --defaults defaults.json --theme ocean.yaml --custom block.json --device mobile
    boxstyle css --defaults defaults.json --custom block.json --selector .acc

Attribute bags are read from files (or stdin for "-") and written to stdout
as JSON. The optional configuration file sets breakpoints, the CSS selector,
the key prefixes of the block's elements and the family table:

    breakpoints: { mobile: 767, tablet: 1024 }
    selector: .wp-block-accordion
    blockType: accordion
    elements: [title, content, icon]
    families:
      - id: padding
        kind: box
        atomicKeys: [paddingTop, paddingRight, paddingBottom, paddingLeft]
        shorthandKey: padding

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxstyle.cli'.
func tracer() tracing.Trace {
	return tracing.Select("boxstyle.cli")
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
