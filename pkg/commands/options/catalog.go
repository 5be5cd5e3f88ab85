// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/nurhuda/pkg/catalog"
	"tableflip.dev/nurhuda/pkg/config"
)

// GlobalOptions are the persistent flags every command sees.
type GlobalOptions struct {
	ConfigDir string
	Catalog   string
	CardWidth int
	Debug     bool
	LogFile   string
}

// AddGlobalArgs registers the persistent flags on the root command.
func AddGlobalArgs(cmd *cobra.Command, o *GlobalOptions) {
	f := cmd.PersistentFlags()
	f.StringVar(&o.ConfigDir, "config", "",
		"Directory searched first for .nurhuda.yaml.")
	f.StringVar(&o.Catalog, "catalog", "",
		"Path to a YAML catalog. Defaults to the built-in catalog.")
	f.IntVar(&o.CardWidth, "card-width", config.DefaultCardWidth,
		"Width of a gallery card in columns.")
	f.BoolVar(&o.Debug, "debug", false,
		"Enable the in-app event log (toggle with `).")
	f.StringVar(&o.LogFile, "log-file", "",
		"Write logs to this file while the UI is running.")
}

// Resolve merges flags with env and config file values and loads the
// catalog they point at.
func (o *GlobalOptions) Resolve(cmd *cobra.Command) (*config.Config, *catalog.Catalog, error) {
	l := config.NewLoader()
	l.Dir = o.ConfigDir
	if err := l.BindFlags(cmd.Flags()); err != nil {
		return nil, nil, err
	}
	cfg, err := l.Load()
	if err != nil {
		return nil, nil, err
	}
	c, err := catalog.Open(cfg.Catalog)
	if err != nil {
		return nil, nil, err
	}
	return cfg, c, nil
}

// CatalogOptions selects a slice of the catalog for listing.
type CatalogOptions struct {
	Category string
	IDs      bool
}

// AddCatalogArgs wires listing flags on the provided command.
func AddCatalogArgs(cmd *cobra.Command, o *CatalogOptions) {
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Limit to one category: prophets or infallibles.")
	cmd.Flags().BoolVar(&o.IDs, "ids", false,
		"Print only entry ids.")
}
