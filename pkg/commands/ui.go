package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/sommnus/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
sommnus ui
sommnus ui --debug-log /tmp/sommnus.log
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession()
			if err != nil {
				return err
			}
			defer s.close()
			i := ui.UI{Config: s.config, Viper: s.viper, Logger: s.logger}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
