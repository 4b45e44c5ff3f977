package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonaszobl/weight-loss-service/internal/tracker"
)

var resetCmd = LeafCommand{
	Use:   "reset",
	Short: "Archive the current week and start over from the standard plan",
	StrFlags: []StringFlag{
		{Name: "password", Shorthand: "p", Usage: "password (asked for if omitted)"},
	},
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "skip the confirmation"},
	},
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		passwordFlag, _ := cmd.Flags().GetString("password")
		yes, _ := cmd.Flags().GetBool("yes")
		kit := interactiveKit(cmd)
		if yes {
			kit.Confirm = AlwaysYes()
		}
		return runReset(cmd, a.tracker, passwordFlag, kit)
	}),
}.Build()

func runReset(cmd *cobra.Command, tr *tracker.Tracker, passwordFlag string, kit PromptKit) error {
	ok, err := confirmDestructive("Archive and reset the week?", passwordFlag, kit.Confirm)
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), Silent("reset cancelled"))
		return nil
	}

	password, err := askPassword(passwordFlag, kit.Password)
	if err != nil {
		return err
	}

	doc, entry, err := tr.ResetWeek(tr.Load(), password)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s %s\n", Text("archived week as"), Primary(entry.Date))
	if doc.IsEmpty() {
		_, _ = fmt.Fprintln(w, Text("new week started empty"))
	} else {
		_, _ = fmt.Fprintln(w, Text("new week started from the standard plan"))
	}
	return nil
}
