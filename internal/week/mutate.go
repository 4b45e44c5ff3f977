package week

import (
	"fmt"
	"strings"
)

// MaxCalories is the largest calorie value accepted for a single meal.
const MaxCalories = 2000

// ValidateMeal checks the user-supplied name and calorie value of a new meal.
func ValidateMeal(name string, calories int) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if calories <= 0 {
		return &ValidationError{Field: "calories", Reason: "must be a positive number"}
	}
	if calories > MaxCalories {
		return &ValidationError{Field: "calories", Reason: fmt.Sprintf("must not exceed %d", MaxCalories)}
	}
	return nil
}

// AddMeal appends an uneaten meal to the end of a category. On error the
// input week is returned unchanged.
func AddMeal(w Week, d Weekday, c Category, name string, calories int) (Week, error) {
	if err := checkKeys(d, c); err != nil {
		return w, err
	}
	if err := ValidateMeal(name, calories); err != nil {
		return w, err
	}

	out := w.Clone()
	out.days[d].slots[c] = append(out.days[d].slots[c], Meal{
		Name:     strings.TrimSpace(name),
		Calories: calories,
	})
	return out, nil
}

// SetEaten sets the eaten flag of the meal at index. The returned bool is
// false when the flag already had the requested value.
func SetEaten(w Week, d Weekday, c Category, index int, eaten bool) (Week, bool, error) {
	if err := checkKeys(d, c); err != nil {
		return w, false, err
	}
	meals := w.days[d].slots[c]
	if index < 0 || index >= len(meals) {
		return w, false, fmt.Errorf("%w: %d (%s has %d meals on %s)", ErrInvalidIndex, index, c, len(meals), d)
	}
	if meals[index].Eaten == eaten {
		return w, false, nil
	}

	out := w.Clone()
	out.days[d].slots[c][index].Eaten = eaten
	return out, true, nil
}

// ToggleEaten flips the eaten flag of the meal at index.
func ToggleEaten(w Week, d Weekday, c Category, index int) (Week, error) {
	if err := checkKeys(d, c); err != nil {
		return w, err
	}
	meals := w.days[d].slots[c]
	if index < 0 || index >= len(meals) {
		return w, fmt.Errorf("%w: %d (%s has %d meals on %s)", ErrInvalidIndex, index, c, len(meals), d)
	}
	out, _, err := SetEaten(w, d, c, index, !meals[index].Eaten)
	return out, err
}

// DeleteByName removes every meal of the day whose name equals name, across
// all categories, and returns how many were removed. name is trimmed the
// same way AddMeal trims stored names.
func DeleteByName(w Week, d Weekday, name string) (Week, int, error) {
	if !d.Valid() {
		return w, 0, fmt.Errorf("%w: weekday %d", ErrInvalidKey, int(d))
	}
	name = strings.TrimSpace(name)

	out := w.Clone()
	removed := 0
	for _, c := range Categories {
		kept := make([]Meal, 0, len(out.days[d].slots[c]))
		for _, m := range out.days[d].slots[c] {
			if m.Name == name {
				removed++
				continue
			}
			kept = append(kept, m)
		}
		out.days[d].slots[c] = kept
	}
	return out, removed, nil
}
