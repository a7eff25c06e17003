package main

import (
	"fmt"

	"github.com/npillmayer/boxstyle/cascade"
	"github.com/npillmayer/boxstyle/codec"
	"github.com/npillmayer/boxstyle/delta"
	"github.com/npillmayer/boxstyle/internal/bagdbg"
	"github.com/spf13/cobra"
)

func newCompressCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "compress <bag.json>",
		Short: "Fold atomic attributes into CSS shorthands",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bag, err := readBag(cmd, args[0])
			if err != nil {
				return err
			}
			return writeBag(cmd, codec.Compress(bag, root.config.Families))
		},
	}
}

func newDecompressCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "decompress <bag.json>",
		Short: "Expand CSS shorthands into atomic attributes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bag, err := readBag(cmd, args[0])
			if err != nil {
				return err
			}
			return writeBag(cmd, codec.Decompress(bag, root.config.Families))
		},
	}
}

func newResolveCmd(root *rootFlags) *cobra.Command {
	lf := &layerFlags{}
	cmd := &cobra.Command{
		Use:   "resolve [attribute...]",
		Short: "Compute effective attribute values for a device",
		Long: "Compute effective attribute values for a device. Without attribute names,\n" +
			"every attribute defined in any layer is resolved.",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := lf.load(cmd)
			if err != nil {
				return err
			}
			ctx := root.schema(l.defaults).Context(l.theme, l.custom, l.device)
			if len(args) == 0 {
				return writeBag(cmd, cascade.ResolveEverything(ctx))
			}
			return writeBag(cmd, cascade.ResolveAll(args, ctx))
		},
	}
	lf.register(cmd)
	return cmd
}

func newDeltaCmd(root *rootFlags) *cobra.Command {
	var compress bool
	cmd := &cobra.Command{
		Use:   "delta <current.json> <baseline.json>",
		Short: "Print the attributes of current differing from baseline",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := readBag(cmd, args[0])
			if err != nil {
				return err
			}
			baseline, err := readBag(cmd, args[1])
			if err != nil {
				return err
			}
			table := root.config.Families
			d := delta.Compute(codec.Decompress(current, table), codec.Decompress(baseline, table))
			if compress {
				d = codec.Compress(d, table)
			}
			return writeBag(cmd, d)
		},
	}
	cmd.Flags().BoolVar(&compress, "compress", true, "Write the delta with shorthands")
	return cmd
}

func newCSSCmd(root *rootFlags) *cobra.Command {
	lf := &layerFlags{}
	var selector string
	cmd := &cobra.Command{
		Use:   "css",
		Short: "Render the effective attributes as a CSS stylesheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := lf.load(cmd)
			if err != nil {
				return err
			}
			if selector == "" {
				selector = root.config.Selector
			}
			sheet := root.schema(l.defaults).Stylesheet(selector, l.theme, l.custom, root.config.Breakpoints)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), sheet.String())
			return err
		},
	}
	lf.register(cmd)
	cmd.Flags().StringVar(&selector, "selector", "", "CSS selector of the block (default from configuration)")
	return cmd
}

func newExplainCmd(root *rootFlags) *cobra.Command {
	lf := &layerFlags{}
	cmd := &cobra.Command{
		Use:   "explain [attribute...]",
		Short: "Show which layer of the cascade defines each attribute",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := lf.load(cmd)
			if err != nil {
				return err
			}
			ctx := root.schema(l.defaults).Context(l.theme, l.custom, l.device)
			names := args
			if len(names) == 0 {
				names = cascade.Names(ctx)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), bagdbg.Explain(names, ctx))
			return err
		},
	}
	lf.register(cmd)
	return cmd
}

func newDumpCmd(root *rootFlags) *cobra.Command {
	var dot bool
	cmd := &cobra.Command{
		Use:   "dump <bag.json>",
		Short: "Print an attribute bag as a tree, grouped by family",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bag, err := readBag(cmd, args[0])
			if err != nil {
				return err
			}
			if dot {
				return bagdbg.ToGraphViz(bag, root.config.Families, cmd.OutOrStdout())
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), bagdbg.Tree(bag, root.config.Families))
			return err
		},
	}
	cmd.Flags().BoolVar(&dot, "dot", false, "Write GraphViz DOT instead of a text tree")
	return cmd
}
