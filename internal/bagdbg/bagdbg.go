/*
Package bagdbg implements helpers to debug attribute bags and the cascade.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package bagdbg

import (
	"fmt"
	"io"
	"text/template"

	"github.com/npillmayer/boxstyle/attr"
	"github.com/npillmayer/boxstyle/cascade"
	"github.com/npillmayer/boxstyle/family"
	"github.com/npillmayer/boxstyle/maybe"
	tp "github.com/xlab/treeprint"
)

// Tree prints a bag as a tree. Keys belonging to a family of table are
// grouped under the family; composite values are expanded.
func Tree(bag attr.Bag, table family.Table) string {
	printer := tp.New()
	printer.SetValue(fmt.Sprintf("bag (%d keys)", len(bag)))
	claimed := map[string]bool{}
	for _, f := range table {
		keys := familyKeys(bag, f)
		if len(keys) == 0 {
			continue
		}
		branch := printer.AddMetaBranch(f.Kind, f.ID)
		for _, k := range keys {
			printValue(branch, k, bag[k])
			claimed[k] = true
		}
	}
	for _, k := range bag.Keys() {
		if !claimed[k] {
			printValue(printer, k, bag[k])
		}
	}
	return printer.String()
}

func familyKeys(bag attr.Bag, f family.Family) []string {
	var keys []string
	if bag.Has(f.ShorthandKey) {
		keys = append(keys, f.ShorthandKey)
	}
	for _, k := range f.AtomicKeys {
		if bag.Has(k) {
			keys = append(keys, k)
		}
	}
	return keys
}

func printValue(printer tp.Tree, key string, v attr.Value) {
	switch v.Kind() {
	case attr.KindBox:
		b, _ := v.AsBox()
		branch := printer.AddMetaBranch(v.Kind(), key)
		branch.AddNode("top: " + b.Top.String())
		branch.AddNode("right: " + b.Right.String())
		branch.AddNode("bottom: " + b.Bottom.String())
		branch.AddNode("left: " + b.Left.String())
	case attr.KindCorners:
		c, _ := v.AsCorners()
		branch := printer.AddMetaBranch(v.Kind(), key)
		branch.AddNode("topLeft: " + c.TopLeft.String())
		branch.AddNode("topRight: " + c.TopRight.String())
		branch.AddNode("bottomRight: " + c.BottomRight.String())
		branch.AddNode("bottomLeft: " + c.BottomLeft.String())
	case attr.KindResponsive:
		r, _ := v.AsResponsive()
		branch := printer.AddMetaBranch(v.Kind(), key)
		printLayer(branch, "value", r.Base)
		printLayer(branch, "tablet", r.Tablet)
		printLayer(branch, "mobile", r.Mobile)
	default:
		printer.AddMetaNode(v.Kind(), key+" = "+v.String())
	}
}

func printLayer(branch tp.Tree, name string, layer maybe.Maybe[attr.Value]) {
	var v attr.Value
	switch m := layer.Match(); m {
	case m.Just(&v):
		branch.AddNode(name + ": " + v.String())
	case m.Nothing():
		branch.AddNode(name + ": –")
	}
}

// Explain prints, for every name, the values of all layers of the cascade,
// marking the one which wins.
func Explain(names []string, ctx cascade.Context) string {
	printer := tp.New()
	printer.SetValue(fmt.Sprintf("cascade for %s", ctx.Device))
	for _, name := range names {
		r := cascade.Explain(name, ctx)
		branch := printer.AddMetaBranch(r.Layer, fmt.Sprintf("%s = %s", name, r.Value))
		layer(branch, r, cascade.Customization, ctx.Customizations.Lookup(name))
		layer(branch, r, cascade.Theme, ctx.Theme.Lookup(name))
		layer(branch, r, cascade.Default, ctx.Defaults.Lookup(name))
	}
	return printer.String()
}

func layer(branch tp.Tree, r cascade.Resolution, l cascade.Layer, v maybe.Maybe[attr.Value]) {
	x, ok := v.Get()
	if !ok {
		return
	}
	mark := " "
	if r.Layer == l {
		mark = "✓"
	}
	branch.AddNode(fmt.Sprintf("%s %-13s %s", mark, l, x))
}

// --- GraphViz --------------------------------------------------------------

type graphParams struct {
	Fontname string
	Families []familyNode
	Loose    []keyNode
}

type familyNode struct {
	Name string
	ID   string
	Kind family.Kind
	Keys []keyNode
}

type keyNode struct {
	Name  string
	Key   string
	Value string
}

// ToGraphViz outputs a diagram of a bag in GraphViz (DOT) format, with a
// cluster for every family of table which has keys in the bag.
func ToGraphViz(bag attr.Bag, table family.Table, w io.Writer) error {
	tmpl, err := template.New("bag").Parse(graphTmpl)
	if err != nil {
		return err
	}
	params := graphParams{Fontname: "Helvetica"}
	claimed := map[string]bool{}
	n := 0
	newKey := func(k string) keyNode {
		n++
		claimed[k] = true
		return keyNode{Name: fmt.Sprintf("key%04d", n), Key: k, Value: bag[k].String()}
	}
	for i, f := range table {
		keys := familyKeys(bag, f)
		if len(keys) == 0 {
			continue
		}
		fn := familyNode{Name: fmt.Sprintf("family%03d", i), ID: f.ID, Kind: f.Kind}
		for _, k := range keys {
			fn.Keys = append(fn.Keys, newKey(k))
		}
		params.Families = append(params.Families, fn)
	}
	for _, k := range bag.Keys() {
		if !claimed[k] {
			params.Loose = append(params.Loose, newKey(k))
		}
	}
	return tmpl.Execute(w, params)
}

const graphTmpl = `digraph g {
  graph [fontname="{{.Fontname}}",fontsize=10];
  node [fontname="{{.Fontname}}",fontsize=10,shape=box,style=rounded];
{{range .Families}}  subgraph cluster_{{.Name}} {
    label={{printf "%q" (printf "%s (%s)" .ID .Kind)}};
{{range .Keys}}    {{.Name}} [label={{printf "%q" (printf "%s\n%s" .Key .Value)}}];
{{end}}  }
{{end}}{{range .Loose}}  {{.Name}} [label={{printf "%q" (printf "%s\n%s" .Key .Value)}}];
{{end}}}
`
