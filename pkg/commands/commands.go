package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/nurhuda/pkg/commands/options"
	"tableflip.dev/nurhuda/pkg/runner/ui"
)

var (
	oo     = &options.OutputOptions{}
	global = &options.GlobalOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "nurhuda",
		Short: options.Wrap80("Stories of the prophets and the fourteen infallibles, in the terminal."),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd)
		},
		SilenceUsage: true,
	}
	options.AddGlobalArgs(cmd, global)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addList(topLevel)
	addShow(topLevel)
	addGlyphs(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
	addUpgrade(topLevel)
}

func runUI(cmd *cobra.Command) error {
	cfg, c, err := global.Resolve(cmd)
	if err != nil {
		return err
	}
	i := ui.UI{
		Catalog:   c,
		CardWidth: cfg.CardWidth,
		Debug:     cfg.Debug,
		LogFile:   cfg.LogFile,
	}
	return i.Do(contextOf(cmd))
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
