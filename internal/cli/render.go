package cli

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jonaszobl/weight-loss-service/internal/week"
)

const nameColWidth = 28

func checkbox(eaten bool) string {
	if eaten {
		return "[x]"
	}
	return "[ ]"
}

func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return string([]rune(s)[:width])
	}
	return s + strings.Repeat(" ", width-n)
}

func mealLine(i int, m week.Meal) string {
	return fmt.Sprintf("  %2d. %s %s %s", i+1, checkbox(m.Eaten), padRight(m.Name, nameColWidth), Silent(fmt.Sprintf("%4d kcal", m.Calories)))
}

// remainingText describes how far a total is from its goal.
func remainingText(total, goal int) string {
	r := week.Remaining(total, goal)
	if r >= 0 {
		return fmt.Sprintf("%d kcal left", r)
	}
	return fmt.Sprintf("%d kcal over", -r)
}

func dayTotalLine(d week.Day) string {
	total := week.DayTotal(d)
	s := week.Evaluate(total, week.DailyGoal)
	return fmt.Sprintf("%s %s",
		Status(s, fmt.Sprintf("Total: %d / %d kcal %s", total, week.DailyGoal, s.Icon())),
		Silent("("+remainingText(total, week.DailyGoal)+")"),
	)
}

func weekTotalLine(sum week.Summary) string {
	return fmt.Sprintf("%s %s",
		Status(sum.Status, fmt.Sprintf("Week total: %d / %d kcal %s", sum.Total, sum.WeeklyGoal, sum.Status.Icon())),
		Silent("("+remainingText(sum.Total, sum.WeeklyGoal)+")"),
	)
}

func dayHeading(d week.Weekday, date time.Time) string {
	return fmt.Sprintf("%s %s", d, date.Format("02.01."))
}

// writeDay prints the meals of a day grouped by category, followed by the
// day total.
func writeDay(w io.Writer, doc week.Week, d week.Weekday, date time.Time) {
	day := doc.Day(d)
	_, _ = fmt.Fprintln(w, Primary(dayHeading(d, date)))

	if day.Len() == 0 {
		_, _ = fmt.Fprintf(w, "  %s\n", Silent("No entries"))
	}
	for _, c := range week.Categories {
		meals := day.Meals(c)
		if len(meals) == 0 {
			continue
		}
		_, _ = fmt.Fprintf(w, " %s\n", Info(c.String()))
		for i, m := range meals {
			_, _ = fmt.Fprintln(w, mealLine(i, m))
		}
	}
	_, _ = fmt.Fprintf(w, "  %s\n", dayTotalLine(day))
}

// writeWeekSummary prints one line per day and the week total.
func writeWeekSummary(w io.Writer, sum week.Summary, dates [7]time.Time) {
	_, _ = fmt.Fprintln(w, Primary(fmt.Sprintf("Week %s – %s", dates[0].Format("02.01.2006"), dates[6].Format("02.01.2006"))))
	for _, d := range week.Weekdays {
		ds := sum.Days[d]
		_, _ = fmt.Fprintf(w, "  %s %s %s\n",
			padRight(dayHeading(d, dates[d]), 18),
			fmt.Sprintf("%5d kcal", ds.Total),
			Status(ds.Status, ds.Status.Icon()),
		)
	}
	_, _ = fmt.Fprintf(w, "  %s\n", weekTotalLine(sum))
}

// chooseDay resolves a weekday from a flag, falling back to a picker with
// today preselected, or to today when no picker is available.
func chooseDay(flag string, today week.Weekday, sel SelectFunc) (week.Weekday, error) {
	if flag != "" {
		return week.ParseWeekday(flag)
	}
	if sel == nil {
		return today, nil
	}
	options := make([]string, len(week.Weekdays))
	for i, d := range week.Weekdays {
		options[i] = d.String()
	}
	i, err := sel("Day", options, int(today))
	if err != nil {
		return 0, err
	}
	return week.Weekday(i), nil
}

func chooseCategory(flag string, sel SelectFunc) (week.Category, error) {
	if flag != "" {
		return week.ParseCategory(flag)
	}
	if sel == nil {
		return 0, fmt.Errorf("--category is required")
	}
	options := make([]string, len(week.Categories))
	for i, c := range week.Categories {
		options[i] = c.String()
	}
	i, err := sel("Category", options, 0)
	if err != nil {
		return 0, err
	}
	return week.Category(i), nil
}

// confirmDestructive asks before an action that cannot be undone. A password
// given as a flag counts as consent, and so does a kit without a confirm.
func confirmDestructive(prompt, passwordFlag string, confirm ConfirmFunc) (bool, error) {
	if passwordFlag != "" || confirm == nil {
		return true, nil
	}
	return confirm(prompt)
}

// askPassword returns the flag value or asks for it with a masked prompt.
func askPassword(flag string, password PasswordFunc) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if password == nil {
		return "", fmt.Errorf("--password is required")
	}
	return password("Password")
}
