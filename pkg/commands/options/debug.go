package options

import (
	"github.com/spf13/cobra"
)

// DebugOptions
type DebugOptions struct {
	LogFile string
}

// AddDebugArgs registers the persistent debug log flag on the root command.
func AddDebugArgs(cmd *cobra.Command, o *DebugOptions) {
	cmd.PersistentFlags().StringVar(&o.LogFile, "debug-log", "",
		"Write JSON debug logs to this file. Overrides log.file from the config.")
}
