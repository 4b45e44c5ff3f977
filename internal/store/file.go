package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/jonaszobl/weight-loss-service/internal/week"
)

const (
	WeekFile    = "kalorien_data.json"
	PlanFile    = "standard_plan.json"
	HistoryFile = "kalorien_history.json"
)

// FileStore keeps each document in its own JSON file inside one directory.
type FileStore struct {
	dir  string
	opts Options
}

func NewFileStore(dir string, opts Options) *FileStore {
	return &FileStore{dir: dir, opts: opts}
}

func (s *FileStore) WeekPath() string    { return filepath.Join(s.dir, WeekFile) }
func (s *FileStore) PlanPath() string    { return filepath.Join(s.dir, PlanFile) }
func (s *FileStore) HistoryPath() string { return filepath.Join(s.dir, HistoryFile) }

func (s *FileStore) LoadWeek() (week.Week, error) {
	path := s.WeekPath()
	w, err := readWeek(path)
	if errors.Is(err, os.ErrNotExist) {
		return startingWeek(s, s.opts)
	}
	if err != nil {
		start, _ := startingWeek(s, s.opts)
		return start, degraded("load week", path, err)
	}
	return w, nil
}

func (s *FileStore) SaveWeek(w week.Week) error {
	if err := writeJSON(s.dir, s.WeekPath(), w); err != nil {
		return &Error{Op: "save week", Path: s.WeekPath(), Err: err}
	}
	return nil
}

func (s *FileStore) LoadPlan() (week.Week, error) {
	path := s.PlanPath()
	w, err := readWeek(path)
	if errors.Is(err, os.ErrNotExist) {
		return week.Empty(), nil
	}
	if err != nil {
		return week.Empty(), degraded("load plan", path, err)
	}
	return w, nil
}

func (s *FileStore) SavePlan(w week.Week) error {
	if err := writeJSON(s.dir, s.PlanPath(), w); err != nil {
		return &Error{Op: "save plan", Path: s.PlanPath(), Err: err}
	}
	return nil
}

func (s *FileStore) LoadHistory() ([]HistoryEntry, error) {
	path := s.HistoryPath()
	entries, err := readHistory(path)
	if errors.Is(err, os.ErrNotExist) {
		return []HistoryEntry{}, nil
	}
	if err != nil {
		return []HistoryEntry{}, degraded("load history", path, err)
	}
	return entries, nil
}

// AppendHistory rewrites the history file with e added at the end. An
// unreadable history file is left alone rather than overwritten.
func (s *FileStore) AppendHistory(e HistoryEntry) error {
	path := s.HistoryPath()
	entries, err := readHistory(path)
	if errors.Is(err, os.ErrNotExist) {
		entries = []HistoryEntry{}
	} else if err != nil {
		return &Error{Op: "append history", Path: path, Err: err}
	}

	entries = append(entries, HistoryEntry{Date: e.Date, Week: e.Week.Clone()})
	if err := writeJSON(s.dir, path, entries); err != nil {
		return &Error{Op: "append history", Path: path, Err: err}
	}
	return nil
}

func (s *FileStore) Close() error { return nil }

func readWeek(path string) (week.Week, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return week.Week{}, err
	}
	var w week.Week
	if err := json.Unmarshal(data, &w); err != nil {
		return week.Week{}, err
	}
	return w, nil
}

func readHistory(path string) ([]HistoryEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []HistoryEntry{}
	}
	for i := range entries {
		entries[i].Week = entries[i].Week.Backfilled()
	}
	return entries, nil
}

func writeJSON(dir, path string, v any) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
