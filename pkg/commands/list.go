package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/nurhuda/pkg/commands/options"
	"tableflip.dev/nurhuda/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	co := &options.CatalogOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog entries",
		Example: `
nurhuda list
nurhuda list --category infallibles
nurhuda list --ids
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, c, err := global.Resolve(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			l := list.List{
				Catalog:  c,
				Category: co.Category,
				JSON:     oo.JSON,
				IDs:      co.IDs,
			}
			return oo.HandleError(l.Do(contextOf(cmd)))
		},
	}

	options.AddCatalogArgs(cmd, co)
	options.AddOutputArg(cmd, oo)
	_ = cmd.RegisterFlagCompletionFunc("category", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return categoryCompletions(), cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}
