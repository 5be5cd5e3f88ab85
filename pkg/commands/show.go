package commands

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/nurhuda/pkg/commands/options"
	"tableflip.dev/nurhuda/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	width := 80

	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show the full story of one entry",
		Example: `
nurhuda show noah
nurhuda show fatima --json
nurhuda show
`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return idCompletions(cmd, toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, c, err := global.Resolve(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			var id string
			if len(args) == 1 {
				id = args[0]
			} else {
				if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) {
					return oo.HandleError(errors.New("show: an entry id is required when not running in a terminal"))
				}
				if id, err = show.Pick(c, os.Stdin, os.Stdout); err != nil {
					return oo.HandleError(err)
				}
			}
			s := show.Show{
				Catalog: c,
				ID:      id,
				JSON:    oo.JSON,
				Width:   width,
			}
			return oo.HandleError(s.Do(contextOf(cmd)))
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", width, "Wrap the rendered story at this width.")
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
