package options

import (
	"github.com/spf13/cobra"
)

// InteractiveOptions asks for plan settings on the terminal instead of
// reading them from flags.
type InteractiveOptions struct {
	Interactive bool
}

func AddInteractiveArgs(cmd *cobra.Command, o *InteractiveOptions) {
	cmd.Flags().BoolVarP(&o.Interactive, "interactive", "i", false,
		`Ask for the time, latency and cycle length, starting from the flag values.`)
}
