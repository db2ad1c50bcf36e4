package options

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/sommnus/pkg/printers"
)

// OutputOptions
type OutputOptions struct {
	Format string
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().StringVarP(&po.Format, "output", "o", printers.FormatText,
		fmt.Sprintf("Output format. One of %s.", strings.Join(printers.Formats, ", ")))
	_ = cmd.RegisterFlagCompletionFunc("output", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return printers.Formats, cobra.ShellCompDirectiveNoFileComp
	})
}

// JSON reports whether errors should be rendered as JSON.
func (o *OutputOptions) JSON() bool {
	return o.Format == printers.FormatJSON
}

func (o *OutputOptions) HandleError(err error) error {
	if o.JSON() && err != nil {
		out := map[string]string{
			"error": err.Error(),
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}
	return err
}
