package commands

import (
	"time"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/sommnus/pkg/commands/options"
	"tableflip.dev/sommnus/pkg/timeutil"
	"tableflip.dev/sommnus/pkg/wizard"
)

func addAsk(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "ask",
		Short: "Answer a few questions, then list times.",
		Long: base.Wrap80("Ask whether you know your bedtime or your wake-up time, then " +
			"for the time, the time needed to fall asleep and the cycle length."),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := loadSession()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.close()

			start := s.config.Settings
			start.Target = timeutil.ClockOf(time.Now())
			w := &wizard.Wizard{In: cmd.InOrStdin(), Out: cmd.OutOrStdout(), AskMode: true}
			settings, err := w.Ask(start)
			if err != nil {
				return oo.HandleError(err)
			}
			return oo.HandleError(runPlan(cmd, s, settings, oo))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
