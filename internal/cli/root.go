package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "fwctl",
	Short:        "FacilityWatch operator tool",
	Long:         `Inspect how report statuses and priorities are displayed, and list reports straight from the Report API.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(priorityCmd)
	rootCmd.AddCommand(reportsCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
