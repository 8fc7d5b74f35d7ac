package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gui-factory/internal/gui"
)

// platformsCmd lists the platform names accepted on standard input.
var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List supported platforms",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, p := range gui.Platforms() {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), p)
		}
	},
}
