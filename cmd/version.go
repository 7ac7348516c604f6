package cmd

import (
	"fmt"

	"github.com/alexiusacademia/swbparts/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of swbparts",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, version.String())
		fmt.Fprintln(out, "Switchboard Sheet-Metal Parts Report")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
