package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"facilitywatch/internal/api"
	"facilitywatch/internal/utils"

	"github.com/spf13/cobra"
)

var (
	flagSort    string
	flagAPI     string
	flagToken   string
	flagTimeout time.Duration
)

var reportsCmd = &cobra.Command{
	Use:     "reports",
	Short:   "List reports from the Report API",
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		base := flagAPI
		if base == "" {
			base = os.Getenv("API_URL")
		}
		if base == "" {
			base = "http://127.0.0.1:8000"
		}

		ctx, cancel := requestContext(cmd.Context(), flagTimeout)
		defer cancel()

		client := api.New(base)
		reports, err := client.ListReports(ctx, flagToken, flagSort)
		if err != nil {
			return fmt.Errorf("list reports: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(reports) == 0 {
			fmt.Fprintln(out, mutedStyle.Render("No reports."))
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, headerStyle.Render("ID")+"\t"+headerStyle.Render("STATUS")+"\t"+headerStyle.Render("PRIORITY")+"\t"+
			headerStyle.Render("LIKES")+"\t"+headerStyle.Render("DATE")+"\t"+headerStyle.Render("TITLE"))
		for _, r := range reports {
			d := r.Timeline()
			p := r.PriorityBadge()
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%s\n",
				r.ID,
				badgeStyle(d.BadgeClass).Render(d.Label),
				badgeStyle(p.BadgeClass).Render(p.Label),
				r.LikeCount(),
				utils.DateID(r.CreatedAt.OrNow()),
				r.Title,
			)
		}
		return w.Flush()
	},
}

// requestContext bounds the API call by timeout. Zero or less means no limit.
func requestContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}

func init() {
	reportsCmd.Flags().StringVar(&flagSort, "sort", "newest", "Sort order: newest, oldest, likes or priority")
	reportsCmd.Flags().StringVar(&flagAPI, "api", "", "Report API base URL (default $API_URL)")
	reportsCmd.Flags().StringVar(&flagToken, "token", "", "Bearer token for the API")
	reportsCmd.Flags().DurationVar(&flagTimeout, "timeout", 15*time.Second, "Request timeout, 0 for none")
}
