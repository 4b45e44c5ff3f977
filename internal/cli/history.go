package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonaszobl/weight-loss-service/internal/history"
	"github.com/jonaszobl/weight-loss-service/internal/tracker"
	"github.com/jonaszobl/weight-loss-service/internal/week"
)

var historyCmd = GroupCommand{
	Use:   "history",
	Short: "Browse archived weeks",
	Subcommands: []*cobra.Command{
		historyListCmd,
		historyShowCmd,
	},
}.Build()

var historyListCmd = LeafCommand{
	Use:     "list",
	Short:   "List archived weeks, most recent first",
	Aliases: []string{"ls"},
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		return runHistoryList(cmd, a.tracker)
	}),
}.Build()

var historyShowCmd = LeafCommand{
	Use:   "show <id|position>",
	Short: "Show an archived week",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		return runHistoryShow(cmd, a.tracker, args[0])
	}),
}.Build()

func runHistoryList(cmd *cobra.Command, tr *tracker.Tracker) error {
	list, err := tr.History()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if err := tr.CheckHistory(); err != nil {
		_, _ = fmt.Fprintf(w, "%s\n", Warning("warning: archive unreadable, reset is refused until it is repaired: "+err.Error()))
	}
	if len(list) == 0 {
		_, _ = fmt.Fprintln(w, "no archived weeks")
		return nil
	}

	for _, s := range list {
		_, _ = fmt.Fprintf(w, "%s  %2d. %s  %s\n",
			Silent(s.ID),
			s.Position,
			Text(s.Date),
			Status(s.Status, fmt.Sprintf("%d kcal %s", s.Total, s.Status.Icon())),
		)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, tr *tracker.Tracker, ref string) error {
	entry, sum, err := tr.ArchivedWeek(ref)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s %s %s\n\n", Text("Archived week"), Primary(sum.Date), Silent("("+sum.ID+")"))

	dates := week.Dates(archiveAnchor(entry.Date, tr.Now()))
	for _, d := range week.Weekdays {
		if entry.Week.Day(d).Len() == 0 {
			continue
		}
		writeDay(w, entry.Week, d, dates[d])
		_, _ = fmt.Fprintln(w)
	}
	writeWeekSummary(w, week.Summarize(entry.Week), dates)
	return nil
}

// archiveAnchor returns a day inside the archived week. Weeks are usually
// reset on the following Monday, so the day before the archive date is used.
// A malformed date falls back.
func archiveAnchor(date string, fallback time.Time) time.Time {
	t, err := time.Parse(history.DateLayout, date)
	if err != nil {
		return fallback
	}
	return t.AddDate(0, 0, -1)
}
