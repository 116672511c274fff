package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"facilitywatch/internal/timeline"

	"github.com/spf13/cobra"
)

var flagJSON bool

type statusOutput struct {
	Input      string `json:"input"`
	Stage      string `json:"stage"`
	Label      string `json:"label"`
	BadgeClass string `json:"badge_class"`
	BarClass   string `json:"bar_class"`
	Progress   int    `json:"progress"`
	Step2      string `json:"step2"`
	Step3      string `json:"step3"`
	Step2Label string `json:"step2_label"`
	Step3Label string `json:"step3_label"`
	Canonical  string `json:"canonical"`
}

var statusCmd = &cobra.Command{
	Use:   "status <text>",
	Short: "Show how a status string is displayed",
	Long:  `Classify a free-text status the same way the web pages do and print the resulting badge, progress and timeline steps.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := strings.Join(args, " ")
		d := timeline.Describe(raw)
		out := cmd.OutOrStdout()

		if flagJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(statusOutput{
				Input:      raw,
				Stage:      string(d.Stage),
				Label:      d.Label,
				BadgeClass: d.BadgeClass,
				BarClass:   d.BarClass,
				Progress:   d.Progress,
				Step2:      string(d.Step2),
				Step3:      string(d.Step3),
				Step2Label: d.Step2Label,
				Step3Label: d.Step3Label,
				Canonical:  timeline.ParseStatus(raw).String(),
			})
		}

		fmt.Fprintln(out, headerStyle.Render("Status"))
		fmt.Fprintf(out, "%s %s\n", labelStyle.Render("badge:   "), badgeStyle(d.BadgeClass).Render(d.Label))
		fmt.Fprintf(out, "%s %d%%\n", labelStyle.Render("progress:"), d.Progress)
		fmt.Fprintf(out, "%s %s - %s - %s\n", labelStyle.Render("steps:   "),
			successStyle.Render("(1)"), stepMark(d.Step2, d.Step2Label), stepMark(d.Step3, d.Step3Label))
		fmt.Fprintf(out, "%s %s\n", labelStyle.Render("stored:  "), timeline.ParseStatus(raw).String())
		return nil
	},
}

func init() {
	statusCmd.Flags().BoolVar(&flagJSON, "json", false, "Output as JSON")
}
