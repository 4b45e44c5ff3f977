package week

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayTotalCountsOnlyEaten(t *testing.T) {
	w, _ := AddMeal(Empty(), Monday, Breakfast, "Oatmeal", 300)
	w, _ = ToggleEaten(w, Monday, Breakfast, 0)
	assert.Equal(t, 300, DayTotal(w.Day(Monday)))

	w, _ = AddMeal(w, Monday, Breakfast, "Juice", 150)
	assert.Equal(t, 300, DayTotal(w.Day(Monday)))

	w, _ = ToggleEaten(w, Monday, Breakfast, 1)
	assert.Equal(t, 450, DayTotal(w.Day(Monday)))
}

func TestDayTotalIsOrderIndependent(t *testing.T) {
	a := Empty()
	a, _ = AddMeal(a, Friday, Lunch, "A", 100)
	a, _ = AddMeal(a, Friday, Lunch, "B", 250)
	a, _ = markAllEaten(t, a, Friday, Lunch)

	b := Empty()
	b, _ = AddMeal(b, Friday, Lunch, "B", 250)
	b, _ = AddMeal(b, Friday, Lunch, "A", 100)
	b, _ = markAllEaten(t, b, Friday, Lunch)

	assert.Equal(t, DayTotal(a.Day(Friday)), DayTotal(b.Day(Friday)))
}

func TestWeekTotalIsSumOfDays(t *testing.T) {
	w := Empty()
	for i, d := range Weekdays {
		for _, c := range Categories {
			var err error
			w, err = AddMeal(w, d, c, "Meal", 100+i*10+int(c))
			require.NoError(t, err)
			if (i+int(c))%2 == 0 {
				w, err = ToggleEaten(w, d, c, 0)
				require.NoError(t, err)
			}
		}
	}

	sum := 0
	for _, d := range Weekdays {
		sum += DayTotal(w.Day(d))
	}
	assert.Equal(t, sum, WeekTotal(w))
	assert.Positive(t, sum)
}

func TestEvaluateIsStrictLessThan(t *testing.T) {
	assert.Equal(t, Good, Evaluate(0, DailyGoal))
	assert.Equal(t, Good, Evaluate(1199, DailyGoal))
	assert.Equal(t, Over, Evaluate(1200, DailyGoal))
	assert.Equal(t, Over, Evaluate(1201, DailyGoal))
	assert.Equal(t, Good, Evaluate(8399, WeeklyGoal))
	assert.Equal(t, Over, Evaluate(8400, WeeklyGoal))
}

func TestStatusIcon(t *testing.T) {
	assert.Equal(t, "✅", Good.Icon())
	assert.Equal(t, "❌", Over.Icon())
	assert.Equal(t, "over", Over.String())
}

func TestRemaining(t *testing.T) {
	assert.Equal(t, 900, Remaining(300, DailyGoal))
	assert.Equal(t, -100, Remaining(1300, DailyGoal))
}

func TestSummarize(t *testing.T) {
	w, _ := AddMeal(Empty(), Monday, Dinner, "Pizza", 1300)
	w, _ = ToggleEaten(w, Monday, Dinner, 0)
	w, _ = AddMeal(w, Wednesday, Lunch, "Salad", 400)
	w, _ = ToggleEaten(w, Wednesday, Lunch, 0)

	s := Summarize(w)

	assert.Equal(t, 1300, s.Days[Monday].Total)
	assert.Equal(t, Over, s.Days[Monday].Status)
	assert.False(t, s.Days[Monday].Good)
	assert.Equal(t, 400, s.Days[Wednesday].Total)
	assert.True(t, s.Days[Wednesday].Good)
	assert.Equal(t, "Wednesday", s.Days[Wednesday].Name)
	assert.Equal(t, 1700, s.Total)
	assert.Equal(t, Good, s.Status)
	assert.Equal(t, DailyGoal, s.DailyGoal)
	assert.Equal(t, WeeklyGoal, s.WeeklyGoal)
}

// markAllEaten marks every meal of a category as eaten.
func markAllEaten(t *testing.T, w Week, d Weekday, c Category) (Week, error) {
	t.Helper()
	for i := range w.Day(d).Meals(c) {
		var err error
		w, _, err = SetEaten(w, d, c, i, true)
		if err != nil {
			return w, err
		}
	}
	return w, nil
}
