package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonaszobl/weight-loss-service/internal/tracker"
	"github.com/jonaszobl/weight-loss-service/internal/week"
)

var planCmd = GroupCommand{
	Use:   "plan",
	Short: "Manage the standard plan a reset starts from",
	Subcommands: []*cobra.Command{
		planShowCmd,
		planSaveCmd,
		planClearCmd,
	},
}.Build()

var planShowCmd = LeafCommand{
	Use:   "show",
	Short: "Show the standard plan",
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		return runPlanShow(cmd, a.tracker)
	}),
}.Build()

var planSaveCmd = LeafCommand{
	Use:   "save",
	Short: "Make the current week the standard plan",
	StrFlags: []StringFlag{
		{Name: "password", Shorthand: "p", Usage: "password (asked for if omitted)"},
	},
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		passwordFlag, _ := cmd.Flags().GetString("password")
		return runPlanSave(cmd, a.tracker, passwordFlag, interactiveKit(cmd))
	}),
}.Build()

var planClearCmd = LeafCommand{
	Use:   "clear",
	Short: "Empty the standard plan",
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
		return runPlanClear(cmd, a.tracker, passwordFlag, kit)
	}),
}.Build()

func runPlanShow(cmd *cobra.Command, tr *tracker.Tracker) error {
	plan := tr.Plan()
	w := cmd.OutOrStdout()

	if plan.IsEmpty() {
		_, _ = fmt.Fprintln(w, "the standard plan is empty")
		return nil
	}

	for _, d := range week.Weekdays {
		day := plan.Day(d)
		_, _ = fmt.Fprintln(w, Primary(d.String()))
		if day.Len() == 0 {
			_, _ = fmt.Fprintf(w, "  %s\n", Silent("No entries"))
			continue
		}
		planned := 0
		for _, c := range week.Categories {
			for _, m := range day.Meals(c) {
				_, _ = fmt.Fprintf(w, "  %s %s %s\n", padRight(c.String(), 15), padRight(m.Name, nameColWidth), Silent(fmt.Sprintf("%4d kcal", m.Calories)))
				planned += m.Calories
			}
		}
		_, _ = fmt.Fprintf(w, "  %s\n", Silent(fmt.Sprintf("planned: %d kcal", planned)))
	}
	return nil
}

func runPlanSave(cmd *cobra.Command, tr *tracker.Tracker, passwordFlag string, kit PromptKit) error {
	password, err := askPassword(passwordFlag, kit.Password)
	if err != nil {
		return err
	}
	plan, err := tr.SavePlan(tr.Load(), password)
	if err != nil {
		return err
	}

	count := 0
	for _, d := range week.Weekdays {
		count += plan.Day(d).Len()
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", Text("saved standard plan with"), Primary(fmt.Sprintf("%d meals", count)))
	return nil
}

func runPlanClear(cmd *cobra.Command, tr *tracker.Tracker, passwordFlag string, kit PromptKit) error {
	ok, err := confirmDestructive("Empty the standard plan?", passwordFlag, kit.Confirm)
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), Silent("plan left unchanged"))
		return nil
	}

	password, err := askPassword(passwordFlag, kit.Password)
	if err != nil {
		return err
	}
	if err := tr.ClearPlan(password); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), Text("standard plan cleared"))
	return nil
}
