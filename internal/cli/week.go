package cli

import (
	"github.com/spf13/cobra"

	"github.com/jonaszobl/weight-loss-service/internal/tracker"
	"github.com/jonaszobl/weight-loss-service/internal/week"
)

var weekCmd = LeafCommand{
	Use:   "week",
	Short: "Show the calorie totals of the whole week",
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		return runWeek(cmd, a.tracker)
	}),
}.Build()

func runWeek(cmd *cobra.Command, tr *tracker.Tracker) error {
	writeWeekSummary(cmd.OutOrStdout(), week.Summarize(tr.Load()), week.Dates(tr.Now()))
	return nil
}
