package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/jonaszobl/weight-loss-service/internal/week"
)

const (
	kindWeek = "week"
	kindPlan = "plan"
)

// documentRow holds one whole week document as JSON.
type documentRow struct {
	Kind      string `gorm:"primaryKey"`
	Data      string
	UpdatedAt time.Time
}

func (documentRow) TableName() string { return "documents" }

// historyRow is one archived week; ID order is archive order.
type historyRow struct {
	ID    uint   `gorm:"primaryKey;autoIncrement"`
	Datum string `gorm:"index"`
	Daten string
}

func (historyRow) TableName() string { return "history_entries" }

// SQLStore keeps the documents in a SQLite database. Rows carry the same
// JSON as the file backend so data can move between the two.
type SQLStore struct {
	db   *gorm.DB
	path string
	opts Options
}

// OpenSQLStore opens (and migrates) the SQLite database at path.
func OpenSQLStore(path string, opts Options) (*SQLStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, &Error{Op: "open database", Path: path, Err: err}
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, &Error{Op: "open database", Path: path, Err: err}
	}
	if err := db.AutoMigrate(&documentRow{}, &historyRow{}); err != nil {
		return nil, &Error{Op: "migrate database", Path: path, Err: err}
	}
	return &SQLStore{db: db, path: path, opts: opts}, nil
}

func (s *SQLStore) LoadWeek() (week.Week, error) {
	w, err := s.readDocument(kindWeek)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return startingWeek(s, s.opts)
	}
	if err != nil {
		start, _ := startingWeek(s, s.opts)
		return start, degraded("load week", s.path, err)
	}
	return w, nil
}

func (s *SQLStore) SaveWeek(w week.Week) error {
	if err := s.writeDocument(kindWeek, w); err != nil {
		return &Error{Op: "save week", Path: s.path, Err: err}
	}
	return nil
}

func (s *SQLStore) LoadPlan() (week.Week, error) {
	w, err := s.readDocument(kindPlan)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return week.Empty(), nil
	}
	if err != nil {
		return week.Empty(), degraded("load plan", s.path, err)
	}
	return w, nil
}

func (s *SQLStore) SavePlan(w week.Week) error {
	if err := s.writeDocument(kindPlan, w); err != nil {
		return &Error{Op: "save plan", Path: s.path, Err: err}
	}
	return nil
}

func (s *SQLStore) LoadHistory() ([]HistoryEntry, error) {
	var rows []historyRow
	if err := s.db.Order("id asc").Find(&rows).Error; err != nil {
		return []HistoryEntry{}, degraded("load history", s.path, err)
	}

	entries := make([]HistoryEntry, 0, len(rows))
	for _, r := range rows {
		var w week.Week
		if err := json.Unmarshal([]byte(r.Daten), &w); err != nil {
			return []HistoryEntry{}, degraded("load history", s.path, fmt.Errorf("entry %d: %w", r.ID, err))
		}
		entries = append(entries, HistoryEntry{Date: r.Datum, Week: w})
	}
	return entries, nil
}

func (s *SQLStore) AppendHistory(e HistoryEntry) error {
	data, err := json.Marshal(e.Week)
	if err != nil {
		return &Error{Op: "append history", Path: s.path, Err: err}
	}
	if err := s.db.Create(&historyRow{Datum: e.Date, Daten: string(data)}).Error; err != nil {
		return &Error{Op: "append history", Path: s.path, Err: err}
	}
	return nil
}

func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *SQLStore) readDocument(kind string) (week.Week, error) {
	var row documentRow
	if err := s.db.Where("kind = ?", kind).First(&row).Error; err != nil {
		return week.Week{}, err
	}
	var w week.Week
	if err := json.Unmarshal([]byte(row.Data), &w); err != nil {
		return week.Week{}, err
	}
	return w, nil
}

func (s *SQLStore) writeDocument(kind string, w week.Week) error {
	data, err := json.Marshal(w)
	if err != nil {
		return err
	}
	row := documentRow{Kind: kind, Data: string(data), UpdatedAt: time.Now().UTC()}
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
}
