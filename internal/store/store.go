package store

import (
	"errors"
	"fmt"

	"github.com/jonaszobl/weight-loss-service/internal/config"
	"github.com/jonaszobl/weight-loss-service/internal/week"
)

// HistoryEntry is one archived week.
type HistoryEntry struct {
	Date string    `json:"datum"` // "2025-02-20"
	Week week.Week `json:"daten"`
}

// Store persists the current week, the standard plan and the history archive.
// Every write replaces the whole document.
type Store interface {
	// LoadWeek returns the current week. A missing document yields the
	// starting week; an unreadable one yields the starting week together
	// with a degraded *Error.
	LoadWeek() (week.Week, error)
	SaveWeek(w week.Week) error

	// LoadPlan returns the standard plan, or an empty week if none is stored.
	LoadPlan() (week.Week, error)
	SavePlan(w week.Week) error

	LoadHistory() ([]HistoryEntry, error)
	AppendHistory(e HistoryEntry) error

	Close() error
}

// Options control how a store synthesizes missing documents.
type Options struct {
	// StartFromPlan makes a missing current week start as a copy of the
	// standard plan instead of an empty week.
	StartFromPlan bool
}

// Error describes a failed storage operation.
type Error struct {
	Op       string
	Path     string
	Err      error
	degraded bool
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Degraded reports whether the failed read was replaced by a default document.
func (e *Error) Degraded() bool { return e.degraded }

// IsDegraded reports whether err is a read failure that a default document
// already stands in for.
func IsDegraded(err error) bool {
	var se *Error
	return errors.As(err, &se) && se.degraded
}

func degraded(op, path string, err error) *Error {
	return &Error{Op: op, Path: path, Err: err, degraded: true}
}

// startingWeek is what a session starts with when no current week exists.
func startingWeek(s Store, opts Options) (week.Week, error) {
	if !opts.StartFromPlan {
		return week.Empty(), nil
	}
	return s.LoadPlan()
}

// Open returns the store selected by the configuration.
func Open(cfg config.Config) (Store, error) {
	opts := Options{StartFromPlan: cfg.StartFromPlan}
	switch cfg.Backend {
	case config.BackendFile, "":
		return NewFileStore(cfg.DataDir, opts), nil
	case config.BackendSQLite:
		return OpenSQLStore(cfg.DatabasePath(), opts)
	}
	return nil, fmt.Errorf("unsupported backend %q", cfg.Backend)
}
