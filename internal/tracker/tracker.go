package tracker

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jonaszobl/weight-loss-service/internal/history"
	"github.com/jonaszobl/weight-loss-service/internal/store"
	"github.com/jonaszobl/weight-loss-service/internal/week"
)

// ErrAuthentication is returned when the password for a destructive action
// does not match the configured secret.
var ErrAuthentication = errors.New("wrong password")

// Tracker runs the user actions against a store. It keeps no document of
// its own: every action takes the current week and returns the new one,
// which has already been persisted when the error is nil.
type Tracker struct {
	store  store.Store
	secret string
	now    func() time.Time
	logger *log.Logger
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock replaces time.Now, e.g. for archive dates in tests.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithLogger sets the logger used for degraded reads.
func WithLogger(l *log.Logger) Option {
	return func(t *Tracker) { t.logger = l }
}

func New(s store.Store, secret string, opts ...Option) *Tracker {
	t := &Tracker{
		store:  s,
		secret: secret,
		now:    time.Now,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Store returns the underlying store.
func (t *Tracker) Store() store.Store { return t.store }

// Now returns the tracker's current time.
func (t *Tracker) Now() time.Time { return t.now() }

// Today resolves the current weekday.
func (t *Tracker) Today() week.Weekday { return week.Today(t.now) }

// Load returns the current week. Unreadable storage is logged and replaced
// by the starting week so the session can continue.
func (t *Tracker) Load() week.Week {
	w, err := t.store.LoadWeek()
	if err != nil {
		t.logger.Warn("current week unreadable, starting from default", "err", err)
	}
	return w
}

// Plan returns the standard plan, falling back to an empty week.
func (t *Tracker) Plan() week.Week {
	w, err := t.store.LoadPlan()
	if err != nil {
		t.logger.Warn("standard plan unreadable, using empty plan", "err", err)
	}
	return w
}

// Authenticate checks password against the configured secret.
func (t *Tracker) Authenticate(password string) error {
	if password != t.secret {
		return ErrAuthentication
	}
	return nil
}

// AddMeal validates and appends a new uneaten meal, then persists.
func (t *Tracker) AddMeal(doc week.Week, d week.Weekday, c week.Category, name string, calories int) (week.Week, error) {
	next, err := week.AddMeal(doc, d, c, name, calories)
	if err != nil {
		return doc, err
	}
	if err := t.store.SaveWeek(next); err != nil {
		return next, err
	}
	t.logger.Debug("meal added", "day", d, "category", c, "name", name, "kcal", calories)
	return next, nil
}

// SetEaten sets the eaten flag of a meal and persists only if it changed.
func (t *Tracker) SetEaten(doc week.Week, d week.Weekday, c week.Category, index int, eaten bool) (week.Week, error) {
	next, changed, err := week.SetEaten(doc, d, c, index, eaten)
	if err != nil {
		return doc, err
	}
	if !changed {
		return doc, nil
	}
	if err := t.store.SaveWeek(next); err != nil {
		return next, err
	}
	return next, nil
}

// ToggleEaten flips the eaten flag of a meal and persists.
func (t *Tracker) ToggleEaten(doc week.Week, d week.Weekday, c week.Category, index int) (week.Week, error) {
	next, err := week.ToggleEaten(doc, d, c, index)
	if err != nil {
		return doc, err
	}
	if err := t.store.SaveWeek(next); err != nil {
		return next, err
	}
	return next, nil
}

// DeleteByName removes every meal called name from a day after checking the
// password. The document is persisted once, after all removals.
func (t *Tracker) DeleteByName(doc week.Week, d week.Weekday, name, password string) (week.Week, int, error) {
	if err := t.Authenticate(password); err != nil {
		return doc, 0, err
	}
	next, removed, err := week.DeleteByName(doc, d, name)
	if err != nil {
		return doc, 0, err
	}
	if err := t.store.SaveWeek(next); err != nil {
		return next, removed, err
	}
	t.logger.Debug("meals deleted", "day", d, "name", name, "count", removed)
	return next, removed, nil
}

// ResetWeek archives doc, replaces it with a fresh copy of the standard plan
// and persists the result. Nothing changes if archiving fails.
func (t *Tracker) ResetWeek(doc week.Week, password string) (week.Week, store.HistoryEntry, error) {
	if err := t.Authenticate(password); err != nil {
		return doc, store.HistoryEntry{}, err
	}

	entry, err := history.Archive(t.store, doc, t.now())
	if err != nil {
		return doc, store.HistoryEntry{}, err
	}

	next := t.Plan().Clone()
	if err := t.store.SaveWeek(next); err != nil {
		return next, entry, err
	}
	t.logger.Info("week reset", "archived", entry.Date)
	return next, entry, nil
}

// SavePlan makes doc the standard plan. Eaten flags are cleared so a reset
// starts with nothing eaten.
func (t *Tracker) SavePlan(doc week.Week, password string) (week.Week, error) {
	if err := t.Authenticate(password); err != nil {
		return week.Week{}, err
	}
	plan := doc.Clone()
	for _, d := range week.Weekdays {
		for _, c := range week.Categories {
			for i := range plan.Day(d).Meals(c) {
				plan, _, _ = week.SetEaten(plan, d, c, i, false)
			}
		}
	}
	if err := t.store.SavePlan(plan); err != nil {
		return plan, err
	}
	return plan, nil
}

// ClearPlan replaces the standard plan with an empty week.
func (t *Tracker) ClearPlan(password string) error {
	if err := t.Authenticate(password); err != nil {
		return err
	}
	return t.store.SavePlan(week.Empty())
}

// History lists the archived weeks, most recent first. An unreadable
// archive is logged and shown as empty.
func (t *Tracker) History() ([]history.Summary, error) {
	list, err := history.List(t.store)
	if store.IsDegraded(err) {
		t.logger.Warn("history unreadable", "err", err)
		return []history.Summary{}, nil
	}
	return list, err
}

// CheckHistory reports why the archive cannot be read, or nil. Archiving
// refuses to overwrite an unreadable archive, so reset fails until it is
// repaired.
func (t *Tracker) CheckHistory() error {
	_, err := t.store.LoadHistory()
	if store.IsDegraded(err) {
		return err
	}
	return nil
}

// ArchivedWeek returns a single archived week by ID or list position.
func (t *Tracker) ArchivedWeek(ref string) (store.HistoryEntry, history.Summary, error) {
	return history.Find(t.store, ref)
}
