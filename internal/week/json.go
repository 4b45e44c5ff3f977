package week

import "encoding/json"

// dayJSON fixes the key order of a stored day.
type dayJSON struct {
	Breakfast []Meal `json:"Frühstück"`
	Lunch     []Meal `json:"Mittagessen"`
	Dinner    []Meal `json:"Abendessen"`
	Extra     []Meal `json:"Zusatzkalorien"`
}

// weekJSON fixes the key order of a stored week.
type weekJSON struct {
	Monday    Day `json:"Montag"`
	Tuesday   Day `json:"Dienstag"`
	Wednesday Day `json:"Mittwoch"`
	Thursday  Day `json:"Donnerstag"`
	Friday    Day `json:"Freitag"`
	Saturday  Day `json:"Samstag"`
	Sunday    Day `json:"Sonntag"`
}

func nonNil(meals []Meal) []Meal {
	if meals == nil {
		return []Meal{}
	}
	return meals
}

func (d Day) MarshalJSON() ([]byte, error) {
	return json.Marshal(dayJSON{
		Breakfast: nonNil(d.slots[Breakfast]),
		Lunch:     nonNil(d.slots[Lunch]),
		Dinner:    nonNil(d.slots[Dinner]),
		Extra:     nonNil(d.slots[Extra]),
	})
}

// UnmarshalJSON reads a stored day. Missing categories become empty and
// unknown keys are dropped.
func (d *Day) UnmarshalJSON(data []byte) error {
	var raw dayJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.slots = [4][]Meal{
		nonNil(raw.Breakfast),
		nonNil(raw.Lunch),
		nonNil(raw.Dinner),
		nonNil(raw.Extra),
	}
	return nil
}

func (w Week) MarshalJSON() ([]byte, error) {
	return json.Marshal(weekJSON{
		Monday:    w.days[Monday],
		Tuesday:   w.days[Tuesday],
		Wednesday: w.days[Wednesday],
		Thursday:  w.days[Thursday],
		Friday:    w.days[Friday],
		Saturday:  w.days[Saturday],
		Sunday:    w.days[Sunday],
	})
}

// UnmarshalJSON reads a stored week and backfills every missing day and
// category, so a decoded Week always has the full shape.
func (w *Week) UnmarshalJSON(data []byte) error {
	var raw weekJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	w.days = [7]Day{raw.Monday, raw.Tuesday, raw.Wednesday, raw.Thursday, raw.Friday, raw.Saturday, raw.Sunday}
	w.normalize()
	return nil
}
