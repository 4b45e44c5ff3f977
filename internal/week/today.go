package week

import (
	"time"

	"github.com/teambition/rrule-go"
)

// FromTime maps a date to its weekday without going through locale names.
// Anything outside Monday..Sunday resolves to Monday.
func FromTime(t time.Time) Weekday {
	d := Weekday((int(t.Weekday()) + 6) % 7)
	if !d.Valid() {
		return Monday
	}
	return d
}

// Today resolves the current weekday from the given clock.
func Today(now func() time.Time) Weekday {
	if now == nil {
		now = time.Now
	}
	return FromTime(now())
}

// StartOfWeek returns midnight of the Monday of the week containing t.
func StartOfWeek(t time.Time) time.Time {
	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -int(FromTime(t)))
}

// Dates returns the calendar dates Monday through Sunday of the week
// containing t.
func Dates(t time.Time) [7]time.Time {
	monday := StartOfWeek(t)

	var out [7]time.Time
	r, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.DAILY,
		Count:   7,
		Dtstart: monday,
	})
	if err != nil {
		for i := range out {
			out[i] = monday.AddDate(0, 0, i)
		}
		return out
	}
	for i, d := range r.All() {
		if i < len(out) {
			out[i] = d
		}
	}
	return out
}
