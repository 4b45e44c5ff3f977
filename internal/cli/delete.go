package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonaszobl/weight-loss-service/internal/tracker"
)

var deleteCmd = LeafCommand{
	Use:     "delete [name]",
	Short:   "Delete every meal with the given name from a day",
	Aliases: []string{"rm"},
	Args:    cobra.MaximumNArgs(1),
	StrFlags: []StringFlag{
		{Name: "day", Shorthand: "d", Usage: "weekday (default: today)"},
		{Name: "password", Shorthand: "p", Usage: "password (asked for if omitted)"},
	},
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		name := ""
		if len(args) > 0 {
			name = args[0]
		}
		dayFlag, _ := cmd.Flags().GetString("day")
		passwordFlag, _ := cmd.Flags().GetString("password")
		return runDelete(cmd, a.tracker, name, dayFlag, passwordFlag, interactiveKit(cmd))
	}),
}.Build()

func runDelete(cmd *cobra.Command, tr *tracker.Tracker, name, dayFlag, passwordFlag string, kit PromptKit) error {
	d, err := chooseDay(dayFlag, tr.Today(), nil)
	if err != nil {
		return err
	}

	doc := tr.Load()
	w := cmd.OutOrStdout()

	if name == "" {
		names := doc.Day(d).MealNames()
		if len(names) == 0 {
			_, _ = fmt.Fprintf(w, "no meals logged on %s\n", d)
			return nil
		}
		if kit.Select == nil {
			return fmt.Errorf("meal name is required")
		}
		i, err := kit.Select(fmt.Sprintf("Delete which meal from %s?", d), names, 0)
		if err != nil {
			return err
		}
		name = names[i]
	}

	password, err := askPassword(passwordFlag, kit.Password)
	if err != nil {
		return err
	}

	doc, removed, err := tr.DeleteByName(doc, d, name, password)
	if err != nil {
		return err
	}
	if removed == 0 {
		_, _ = fmt.Fprintf(w, "no meal named '%s' on %s\n", name, d)
		return nil
	}

	_, _ = fmt.Fprintf(w, "%s %d× %s from %s\n", Text("deleted"), removed, Primary(name), Info(d.String()))
	_, _ = fmt.Fprintf(w, "  %s\n", dayTotalLine(doc.Day(d)))
	return nil
}
