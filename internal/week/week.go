package week

import (
	"fmt"
	"strconv"
	"strings"
)

// Weekday is one of the seven fixed days of a tracked week. Monday is 0.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// Weekdays lists all days in canonical order.
var Weekdays = [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var weekdayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// weekdayLabels are the keys used in the stored documents.
var weekdayLabels = [7]string{"Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag", "Sonntag"}

func (d Weekday) Valid() bool { return d >= Monday && d <= Sunday }

func (d Weekday) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// Label returns the storage key of the day.
func (d Weekday) Label() string {
	if !d.Valid() {
		return d.String()
	}
	return weekdayLabels[d]
}

// ParseWeekday accepts the English name, the stored German name or the
// 1-based position in the week (1 = Monday). Matching ignores case.
func ParseWeekday(s string) (Weekday, error) {
	s = strings.TrimSpace(s)
	for _, d := range Weekdays {
		if strings.EqualFold(s, weekdayNames[d]) || strings.EqualFold(s, weekdayLabels[d]) {
			return d, nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= 7 {
		return Weekday(n - 1), nil
	}
	return 0, fmt.Errorf("%w: weekday %q", ErrInvalidKey, s)
}

// Category is one of the four fixed meal slots of a day.
type Category int

const (
	Breakfast Category = iota
	Lunch
	Dinner
	Extra
)

// Categories lists all meal slots in display order.
var Categories = [4]Category{Breakfast, Lunch, Dinner, Extra}

var categoryNames = [4]string{"Breakfast", "Lunch", "Dinner", "Extra-Calories"}

var categoryLabels = [4]string{"Frühstück", "Mittagessen", "Abendessen", "Zusatzkalorien"}

var categoryAliases = map[string]Category{
	"breakfast":      Breakfast,
	"lunch":          Lunch,
	"dinner":         Dinner,
	"extra":          Extra,
	"extra-calories": Extra,
	"extras":         Extra,
	"snack":          Extra,
}

func (c Category) Valid() bool { return c >= Breakfast && c <= Extra }

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// Label returns the storage key of the category.
func (c Category) Label() string {
	if !c.Valid() {
		return c.String()
	}
	return categoryLabels[c]
}

// ParseCategory accepts the English name (or a short alias) and the stored
// German name. Matching ignores case.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if c, ok := categoryAliases[strings.ToLower(s)]; ok {
		return c, nil
	}
	for _, c := range Categories {
		if strings.EqualFold(s, categoryLabels[c]) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: category %q", ErrInvalidKey, s)
}

// Meal is a single logged dish or snack.
type Meal struct {
	Name     string `json:"name"`
	Calories int    `json:"kalorien"`
	Eaten    bool   `json:"gegessen"`
}

// Day holds the meals of one weekday, grouped by category in insertion order.
type Day struct {
	slots [4][]Meal
}

// Meals returns the meals logged under a category. The returned slice must
// not be modified.
func (d Day) Meals(c Category) []Meal {
	if !c.Valid() {
		return nil
	}
	return d.slots[c]
}

// Len returns the number of meals across all categories.
func (d Day) Len() int {
	n := 0
	for _, meals := range d.slots {
		n += len(meals)
	}
	return n
}

// MealNames lists the meal names of the day in display order.
func (d Day) MealNames() []string {
	names := make([]string, 0, d.Len())
	for _, c := range Categories {
		for _, m := range d.slots[c] {
			names = append(names, m.Name)
		}
	}
	return names
}

func (d Day) clone() Day {
	var out Day
	for i, meals := range d.slots {
		out.slots[i] = make([]Meal, len(meals))
		copy(out.slots[i], meals)
	}
	return out
}

// Week is the tracked document: seven days, each with all four categories.
type Week struct {
	days [7]Day
}

// Empty returns a week with every day and category present and empty.
func Empty() Week {
	var w Week
	for i := range w.days {
		for j := range w.days[i].slots {
			w.days[i].slots[j] = []Meal{}
		}
	}
	return w
}

// Day returns the record of the given weekday.
func (w Week) Day(d Weekday) Day {
	if !d.Valid() {
		return Day{}
	}
	return w.days[d]
}

// Clone returns a deep copy that shares no slices with w.
func (w Week) Clone() Week {
	var out Week
	for i, d := range w.days {
		out.days[i] = d.clone()
	}
	return out
}

// Backfilled returns a copy of w with every missing category present.
func (w Week) Backfilled() Week {
	out := w.Clone()
	out.normalize()
	return out
}

// IsEmpty reports whether no meal is logged anywhere in the week.
func (w Week) IsEmpty() bool {
	for _, d := range w.days {
		if d.Len() > 0 {
			return false
		}
	}
	return true
}

// normalize replaces nil category slices with empty ones.
func (w *Week) normalize() {
	for i := range w.days {
		for j := range w.days[i].slots {
			if w.days[i].slots[j] == nil {
				w.days[i].slots[j] = []Meal{}
			}
		}
	}
}
