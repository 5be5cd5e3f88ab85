package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/nurhuda/pkg/catalog"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(nurhuda completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(nurhuda completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(cmd.OutOrStdout())
		},
	}

	topLevel.AddCommand(cmd)
}

func idCompletions(cmd *cobra.Command, toComplete string) []string {
	_, c, err := global.Resolve(cmd)
	if err != nil {
		return nil
	}
	ids := make([]string, 0, c.Len())
	for _, e := range c.Entries() {
		if strings.HasPrefix(e.ID, toComplete) {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

func categoryCompletions() []string {
	all := catalog.AllCategories()
	out := make([]string, 0, len(all))
	for _, c := range all {
		out = append(out, c.String())
	}
	return out
}
