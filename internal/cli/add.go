package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonaszobl/weight-loss-service/internal/tracker"
)

// addInput carries the raw flag values of the add command.
type addInput struct {
	Day      string
	Category string
	Name     string
	Kcal     string
}

var addCmd = LeafCommand{
	Use:   "add",
	Short: "Log a meal (missing values are asked for)",
	StrFlags: []StringFlag{
		{Name: "day", Shorthand: "d", Usage: "weekday (default: today)"},
		{Name: "category", Shorthand: "c", Usage: "breakfast, lunch, dinner or extra"},
		{Name: "name", Shorthand: "n", Usage: "meal name"},
		{Name: "kcal", Shorthand: "k", Usage: "calories (1-2000)"},
	},
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		in := addInput{}
		in.Day, _ = cmd.Flags().GetString("day")
		in.Category, _ = cmd.Flags().GetString("category")
		in.Name, _ = cmd.Flags().GetString("name")
		in.Kcal, _ = cmd.Flags().GetString("kcal")

		return runAdd(cmd, a.tracker, in, interactiveKit(cmd))
	}),
}.Build()

func runAdd(cmd *cobra.Command, tr *tracker.Tracker, in addInput, kit PromptKit) error {
	d, err := chooseDay(in.Day, tr.Today(), kit.Select)
	if err != nil {
		return err
	}
	c, err := chooseCategory(in.Category, kit.Select)
	if err != nil {
		return err
	}

	name := in.Name
	if strings.TrimSpace(name) == "" {
		if kit.Prompt == nil {
			return fmt.Errorf("--name is required")
		}
		if name, err = kit.Prompt("Meal"); err != nil {
			return err
		}
	}

	var kcal int
	if in.Kcal != "" {
		kcal, err = strconv.Atoi(strings.TrimSpace(in.Kcal))
		if err != nil {
			return fmt.Errorf("invalid --kcal value %q (expected a number)", in.Kcal)
		}
	} else {
		if kit.Prompt == nil {
			return fmt.Errorf("--kcal is required")
		}
		if kcal, err = promptInt(kit.Prompt, "Calories"); err != nil {
			return err
		}
	}

	doc, err := tr.AddMeal(tr.Load(), d, c, name, kcal)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s %s (%d kcal) to %s / %s\n",
		Text("added"), Primary(strings.TrimSpace(name)), kcal, Info(d.String()), Info(c.String()))
	_, _ = fmt.Fprintf(w, "  %s\n", dayTotalLine(doc.Day(d)))
	return nil
}
