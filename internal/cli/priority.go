package cli

import (
	"fmt"

	"facilitywatch/internal/timeline"

	"github.com/spf13/cobra"
)

var priorityCmd = &cobra.Command{
	Use:   "priority <level>",
	Short: "Show how a priority is displayed",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p := timeline.PriorityBadge(args[0])
		label := badgeStyle(p.BadgeClass).Render(p.Label)
		if p.Pulse {
			label += " " + errorStyle.Bold(true).Render("(pulse)")
		}
		fmt.Fprintln(cmd.OutOrStdout(), label)
	},
}
