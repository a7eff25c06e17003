package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/boxstyle"
	"github.com/npillmayer/boxstyle/attr"
	"github.com/npillmayer/boxstyle/family"
	"github.com/npillmayer/boxstyle/responsive"
	"github.com/npillmayer/boxstyle/theme"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath   string
	familiesPath string
	config       Config
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "boxstyle",
		Short:         "Resolve and compress block style attributes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return flags.load()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Configuration file (YAML)")
	cmd.PersistentFlags().StringVar(&flags.familiesPath, "families", "", "Family table file (YAML), replaces the configured families")

	cmd.AddCommand(newCompressCmd(flags))
	cmd.AddCommand(newDecompressCmd(flags))
	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newDeltaCmd(flags))
	cmd.AddCommand(newCSSCmd(flags))
	cmd.AddCommand(newExplainCmd(flags))
	cmd.AddCommand(newDumpCmd(flags))

	return cmd
}

func (flags *rootFlags) load() error {
	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return err
	}
	if flags.familiesPath != "" {
		f, err := os.Open(flags.familiesPath)
		if err != nil {
			return fmt.Errorf("cannot open family table: %w", err)
		}
		defer f.Close()
		if cfg.Families, err = family.LoadYAML(f); err != nil {
			return err
		}
	}
	flags.config = cfg
	return nil
}

func (flags *rootFlags) schema(defaults attr.Bag) boxstyle.Schema {
	return boxstyle.Schema{
		BlockType: flags.config.BlockType,
		Defaults:  defaults,
		Families:  flags.config.Families,
		Elements:  flags.config.Elements,
	}
}

// layerFlags are the inputs of the cascade.
type layerFlags struct {
	defaults string
	theme    string
	custom   string
	device   string
}

func (lf *layerFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&lf.defaults, "defaults", "", "Schema defaults (JSON bag)")
	cmd.Flags().StringVar(&lf.theme, "theme", "", "Theme file (YAML)")
	cmd.Flags().StringVar(&lf.custom, "custom", "", "Customizations of the block instance (JSON bag)")
	cmd.Flags().StringVar(&lf.device, "device", "base", "Device: base, tablet or mobile")
	_ = cmd.MarkFlagRequired("defaults")
}

type layers struct {
	defaults attr.Bag
	theme    *theme.Theme
	custom   attr.Bag
	device   responsive.Device
}

func (lf *layerFlags) load(cmd *cobra.Command) (layers, error) {
	var l layers
	var err error
	if l.device, err = responsive.ParseDevice(lf.device); err != nil {
		return l, err
	}
	if l.defaults, err = readBag(cmd, lf.defaults); err != nil {
		return l, err
	}
	if lf.custom != "" {
		if l.custom, err = readBag(cmd, lf.custom); err != nil {
			return l, err
		}
	}
	if lf.theme != "" {
		f, err := os.Open(lf.theme)
		if err != nil {
			return l, fmt.Errorf("cannot open theme: %w", err)
		}
		defer f.Close()
		th, err := theme.LoadYAML(f)
		if err != nil {
			return l, err
		}
		l.theme = &th
	}
	return l, nil
}

// readBag reads a JSON attribute bag from a file, or from stdin for "-".
func readBag(cmd *cobra.Command, path string) (attr.Bag, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("cannot open attribute file: %w", err)
		}
		defer f.Close()
		r = f
	}
	bag, err := attr.ReadBag(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read attributes from %s: %w", path, err)
	}
	return bag, nil
}

func writeBag(cmd *cobra.Command, bag attr.Bag) error {
	return attr.WriteBag(cmd.OutOrStdout(), bag)
}
