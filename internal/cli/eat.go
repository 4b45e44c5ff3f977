package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jonaszobl/weight-loss-service/internal/tracker"
	"github.com/jonaszobl/weight-loss-service/internal/week"
)

type eatMode int

const (
	eatSet eatMode = iota
	eatUnset
	eatToggle
)

var (
	eatCmd    = newEatenCmd("eat", "Mark a meal as eaten", eatSet)
	uneatCmd  = newEatenCmd("uneat", "Mark a meal as not eaten", eatUnset)
	toggleCmd = newEatenCmd("toggle", "Flip the eaten flag of a meal", eatToggle)
)

func newEatenCmd(use, short string, mode eatMode) *cobra.Command {
	return LeafCommand{
		Use:   use + " <day> <category> <index>",
		Short: short,
		Args:  cobra.ExactArgs(3),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			return runSetEaten(cmd, a.tracker, args, mode)
		}),
	}.Build()
}

// runSetEaten resolves a meal by day, category and 1-based position and
// updates its eaten flag.
func runSetEaten(cmd *cobra.Command, tr *tracker.Tracker, args []string, mode eatMode) error {
	d, err := week.ParseWeekday(args[0])
	if err != nil {
		return err
	}
	c, err := week.ParseCategory(args[1])
	if err != nil {
		return err
	}
	pos, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("%w: %q is not a number", week.ErrInvalidIndex, args[2])
	}
	index := pos - 1

	doc := tr.Load()
	switch mode {
	case eatSet:
		doc, err = tr.SetEaten(doc, d, c, index, true)
	case eatUnset:
		doc, err = tr.SetEaten(doc, d, c, index, false)
	default:
		doc, err = tr.ToggleEaten(doc, d, c, index)
	}
	if err != nil {
		return err
	}

	m := doc.Day(d).Meals(c)[index]
	state := "eaten"
	if !m.Eaten {
		state = "not eaten"
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s %s %s\n", checkbox(m.Eaten), Primary(m.Name), Text("marked as "+state))
	_, _ = fmt.Fprintf(w, "  %s\n", dayTotalLine(doc.Day(d)))
	return nil
}
