package cli

import (
	"github.com/spf13/cobra"

	"github.com/jonaszobl/weight-loss-service/internal/tracker"
	"github.com/jonaszobl/weight-loss-service/internal/week"
)

var showCmd = LeafCommand{
	Use:   "show [day]",
	Short: "Show the meals of a day (default: today)",
	Args:  cobra.MaximumNArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		day := ""
		if len(args) > 0 {
			day = args[0]
		}
		return runShow(cmd, a.tracker, day)
	}),
}.Build()

func runShow(cmd *cobra.Command, tr *tracker.Tracker, dayArg string) error {
	d, err := chooseDay(dayArg, tr.Today(), nil)
	if err != nil {
		return err
	}
	dates := week.Dates(tr.Now())
	writeDay(cmd.OutOrStdout(), tr.Load(), d, dates[d])
	return nil
}
