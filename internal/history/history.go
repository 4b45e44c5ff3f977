package history

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jonaszobl/weight-loss-service/internal/hashutil"
	"github.com/jonaszobl/weight-loss-service/internal/store"
	"github.com/jonaszobl/weight-loss-service/internal/week"
)

// DateLayout is the format of archive dates.
const DateLayout = "2006-01-02"

// Summary describes one archived week for listing. Totals are recomputed
// from the snapshot every time; they are never stored.
type Summary struct {
	ID       string      `json:"id"`
	Position int         `json:"position"` // 1 = most recently archived
	Date     string      `json:"date"`
	Total    int         `json:"total"`
	Status   week.Status `json:"-"`
	Good     bool        `json:"good"`
}

// Archive appends a copy of current, dated today, to the archive. Entries
// for the same date are never merged.
func Archive(s store.Store, current week.Week, today time.Time) (store.HistoryEntry, error) {
	entry := store.HistoryEntry{
		Date: today.Format(DateLayout),
		Week: current.Clone(),
	}
	if err := s.AppendHistory(entry); err != nil {
		return store.HistoryEntry{}, err
	}
	return entry, nil
}

// List returns every archived week, most recently archived first.
func List(s store.Store) ([]Summary, error) {
	entries, err := s.LoadHistory()
	if err != nil {
		return nil, err
	}
	return summarize(entries), nil
}

// Find returns the archived week referenced by ref, which is either a
// snapshot ID or the 1-based position shown by List.
func Find(s store.Store, ref string) (store.HistoryEntry, Summary, error) {
	entries, err := s.LoadHistory()
	if err != nil {
		return store.HistoryEntry{}, Summary{}, err
	}

	ref = strings.TrimSpace(ref)
	summaries := summarize(entries)
	for _, sum := range summaries {
		if sum.ID == ref {
			return entries[len(entries)-sum.Position], sum, nil
		}
	}
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(summaries) {
		sum := summaries[n-1]
		return entries[len(entries)-sum.Position], sum, nil
	}
	return store.HistoryEntry{}, Summary{}, fmt.Errorf("archived week '%s' not found", ref)
}

func summarize(entries []store.HistoryEntry) []Summary {
	out := make([]Summary, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		total := week.WeekTotal(e.Week)
		status := week.Evaluate(total, week.WeeklyGoal)
		out = append(out, Summary{
			ID:       hashutil.SnapshotID(e.Date, i),
			Position: len(entries) - i,
			Date:     e.Date,
			Total:    total,
			Status:   status,
			Good:     status == week.Good,
		})
	}
	return out
}
