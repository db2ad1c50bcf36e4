package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/sommnus/pkg/commands/options"
)

var (
	debug = &options.DebugOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "sommnus",
		Short: base.Wrap80("Plan bed and wake times around whole sleep cycles."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddDebugArgs(cmd, debug)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addWake(topLevel)
	addBed(topLevel)
	addAsk(topLevel)
	addUI(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
