package week

const (
	DailyGoal  = 1200
	WeeklyGoal = 8400
)

// Status is the outcome of comparing a calorie total with its goal.
type Status int

const (
	// Good means the total stayed strictly below the goal.
	Good Status = iota
	Over
)

func (s Status) String() string {
	if s == Good {
		return "good"
	}
	return "over"
}

// Icon returns the marker shown next to a total.
func (s Status) Icon() string {
	if s == Good {
		return "✅"
	}
	return "❌"
}

// Evaluate compares a total with a goal. Only total < goal counts as Good.
func Evaluate(total, goal int) Status {
	if total < goal {
		return Good
	}
	return Over
}

// Remaining returns how many calories are left before the goal; negative
// once the goal is exceeded.
func Remaining(total, goal int) int {
	return goal - total
}

// DayTotal sums the calories of the eaten meals of a day.
func DayTotal(d Day) int {
	total := 0
	for _, meals := range d.slots {
		for _, m := range meals {
			if m.Eaten {
				total += m.Calories
			}
		}
	}
	return total
}

// WeekTotal sums DayTotal over the seven days.
func WeekTotal(w Week) int {
	total := 0
	for _, d := range Weekdays {
		total += DayTotal(w.days[d])
	}
	return total
}

// DaySummary is the total and goal status of one day.
type DaySummary struct {
	Weekday Weekday `json:"-"`
	Name    string  `json:"day"`
	Total   int     `json:"total"`
	Status  Status  `json:"-"`
	Good    bool    `json:"good"`
}

// Summary collects every total shown for a week.
type Summary struct {
	Days       [7]DaySummary `json:"days"`
	Total      int           `json:"total"`
	Status     Status        `json:"-"`
	Good       bool          `json:"good"`
	DailyGoal  int           `json:"daily_goal"`
	WeeklyGoal int           `json:"weekly_goal"`
}

// Summarize computes all per-day totals and the week total of w.
func Summarize(w Week) Summary {
	s := Summary{DailyGoal: DailyGoal, WeeklyGoal: WeeklyGoal}
	for _, d := range Weekdays {
		total := DayTotal(w.days[d])
		status := Evaluate(total, DailyGoal)
		s.Days[d] = DaySummary{
			Weekday: d,
			Name:    d.String(),
			Total:   total,
			Status:  status,
			Good:    status == Good,
		}
		s.Total += total
	}
	s.Status = Evaluate(s.Total, WeeklyGoal)
	s.Good = s.Status == Good
	return s
}
