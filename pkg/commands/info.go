package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/sommnus/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show where settings are read from and their resolved values.",
		Example: `
sommnus info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := loadSession()
			if err != nil {
				return err
			}
			defer s.close()
			n := info.Info{Config: s.config, Out: cmd.OutOrStdout()}
			return n.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
