package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/sommnus/pkg/app"
	"tableflip.dev/sommnus/pkg/commands/options"
	"tableflip.dev/sommnus/pkg/runner/plan"
	"tableflip.dev/sommnus/pkg/wizard"
)

func addWake(topLevel *cobra.Command) {
	addPlan(topLevel, app.ModeSleep, &cobra.Command{
		Use:   "wake",
		Short: "List wake-up times for a bedtime.",
		Long: base.Wrap80("Given the time you go to bed, list the times to wake up " +
			"at the end of a sleep cycle. Five and six cycles are suggested."),
		Example: `
sommnus wake
sommnus wake --at 23:00
sommnus wake --at 23:30 --latency 30m --cycle 100 -o table
sommnus wake -i
`,
	}, "Bedtime, HH:MM. Defaults to now.")
}

func addBed(topLevel *cobra.Command) {
	addPlan(topLevel, app.ModeWake, &cobra.Command{
		Use:   "bed",
		Short: "List bedtimes for a wake-up time.",
		Long: base.Wrap80("Given the time you need to wake up, list the times to go " +
			"to bed so you wake at the end of a sleep cycle. Five and six cycles are suggested."),
		Example: `
sommnus bed --at 07:00
sommnus bed --at 6:30 --latency 0 -o json
`,
	}, "Wake-up time, HH:MM. Defaults to now.")
}

func addPlan(topLevel *cobra.Command, mode app.Mode, cmd *cobra.Command, atUsage string) {
	po := &options.PlanOptions{}
	i := &options.InteractiveOptions{}
	oo := &options.OutputOptions{}

	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		s, err := loadSession()
		if err != nil {
			return oo.HandleError(err)
		}
		defer s.close()

		settings, err := po.Settings(mode, s.config.Settings, time.Now())
		if err != nil {
			return oo.HandleError(err)
		}
		if i.Interactive {
			w := &wizard.Wizard{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
			if settings, err = w.Ask(settings); err != nil {
				return oo.HandleError(err)
			}
		}
		return oo.HandleError(runPlan(cmd, s, settings, oo))
	}

	options.AddPlanArgs(cmd, po, atUsage)
	options.AddInteractiveArgs(cmd, i)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func runPlan(cmd *cobra.Command, s *session, settings app.Settings, oo *options.OutputOptions) error {
	p := plan.Plan{
		Settings: settings,
		Format:   oo.Format,
		Out:      cmd.OutOrStdout(),
		Logger:   s.logger,
	}
	return p.Do(context.Background())
}
