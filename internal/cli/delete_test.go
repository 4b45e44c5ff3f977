package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonaszobl/weight-loss-service/internal/tracker"
	"github.com/jonaszobl/weight-loss-service/internal/week"
)

func TestDeleteRemovesAllMatches(t *testing.T) {
	tr := setupTracker(t)
	logMeal(t, tr, week.Friday, week.Extra, "Beer", 150, true)
	logMeal(t, tr, week.Friday, week.Dinner, "Beer", 150, false)
	logMeal(t, tr, week.Friday, week.Dinner, "Pizza", 800, true)
	cmd, buf := newTestCmd()

	require.NoError(t, runDelete(cmd, tr, "Beer", "friday", testPassword, PromptKit{}))

	assert.Contains(t, buf.String(), "deleted 2× Beer from Friday")
	assert.Equal(t, []string{"Pizza"}, tr.Load().Day(week.Friday).MealNames())
}

func TestDeleteWrongPassword(t *testing.T) {
	tr := setupTracker(t)
	logMeal(t, tr, week.Wednesday, week.Lunch, "Soup", 200, false)
	cmd, _ := newTestCmd()

	err := runDelete(cmd, tr, "Soup", "", "guess", PromptKit{})
	assert.ErrorIs(t, err, tracker.ErrAuthentication)
	assert.Equal(t, 1, tr.Load().Day(week.Wednesday).Len())
}

func TestDeleteNoMatch(t *testing.T) {
	tr := setupTracker(t)
	logMeal(t, tr, week.Wednesday, week.Lunch, "Soup", 200, false)
	cmd, buf := newTestCmd()

	require.NoError(t, runDelete(cmd, tr, "Cake", "", testPassword, PromptKit{}))
	assert.Contains(t, buf.String(), "no meal named 'Cake' on Wednesday")
	assert.Equal(t, 1, tr.Load().Day(week.Wednesday).Len())
}

func TestDeletePicksNameAndAsksPassword(t *testing.T) {
	tr := setupTracker(t)
	logMeal(t, tr, week.Wednesday, week.Breakfast, "Toast", 200, false)
	logMeal(t, tr, week.Wednesday, week.Lunch, "Soup", 300, false)
	cmd, _ := newTestCmd()

	var offered []string
	kit := PromptKit{
		Select: func(_ string, options []string, _ int) (int, error) {
			offered = options
			return 1, nil
		},
		Password: func(string) (string, error) { return testPassword, nil },
	}

	require.NoError(t, runDelete(cmd, tr, "", "", "", kit))

	assert.Equal(t, []string{"Toast", "Soup"}, offered)
	assert.Equal(t, []string{"Toast"}, tr.Load().Day(week.Wednesday).MealNames())
}

func TestDeleteEmptyDay(t *testing.T) {
	tr := setupTracker(t)
	cmd, buf := newTestCmd()

	require.NoError(t, runDelete(cmd, tr, "", "sunday", "", PromptKit{}))
	assert.Contains(t, buf.String(), "no meals logged on Sunday")
}

func TestDeleteRequiresPasswordWhenNotInteractive(t *testing.T) {
	tr := setupTracker(t)
	logMeal(t, tr, week.Wednesday, week.Lunch, "Soup", 300, false)
	cmd, _ := newTestCmd()

	err := runDelete(cmd, tr, "Soup", "", "", PromptKit{})
	assert.EqualError(t, err, "--password is required")
}
