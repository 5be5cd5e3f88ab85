package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/nurhuda/pkg/runner/glyphs"
)

func addGlyphs(topLevel *cobra.Command) {
	g := glyphs.Glyphs{}

	cmd := &cobra.Command{
		Use:   "glyphs",
		Short: "Print the glyph legend",
		Example: `
nurhuda glyphs
nurhuda glyphs --all
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.Do(contextOf(cmd))
		},
	}

	cmd.Flags().BoolVar(&g.All, "all", false, "Include the interface glyphs.")

	topLevel.AddCommand(cmd)
}
