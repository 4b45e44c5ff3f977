package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonaszobl/weight-loss-service/internal/hashutil"
	"github.com/jonaszobl/weight-loss-service/internal/store"
	"github.com/jonaszobl/weight-loss-service/internal/week"
)

func eatenWeek(t *testing.T, calories int) week.Week {
	t.Helper()
	w, err := week.AddMeal(week.Empty(), week.Monday, week.Dinner, "Dinner", calories)
	require.NoError(t, err)
	w, err = week.ToggleEaten(w, week.Monday, week.Dinner, 0)
	require.NoError(t, err)
	return w
}

func TestArchiveAppendsDatedCopy(t *testing.T) {
	s := store.NewFileStore(t.TempDir(), store.Options{})
	w := eatenWeek(t, 500)

	entry, err := Archive(s, w, time.Date(2025, 6, 15, 21, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2025-06-15", entry.Date)

	entries, err := s.LoadHistory()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, w, entries[0].Week)
}

func TestArchiveSameDayTwice(t *testing.T) {
	s := store.NewFileStore(t.TempDir(), store.Options{})
	day := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

	_, err := Archive(s, eatenWeek(t, 100), day)
	require.NoError(t, err)
	_, err = Archive(s, eatenWeek(t, 200), day.Add(time.Hour))
	require.NoError(t, err)

	list, err := List(s)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.NotEqual(t, list[0].ID, list[1].ID)
}

func TestListMostRecentFirstWithRecomputedTotals(t *testing.T) {
	s := store.NewFileStore(t.TempDir(), store.Options{})

	_, err := Archive(s, eatenWeek(t, 1000), time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = Archive(s, eatenWeek(t, 1500), time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	list, err := List(s)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "2025-06-08", list[0].Date)
	assert.Equal(t, 1500, list[0].Total)
	assert.Equal(t, 1, list[0].Position)
	assert.Equal(t, hashutil.SnapshotID("2025-06-08", 1), list[0].ID)

	assert.Equal(t, "2025-06-01", list[1].Date)
	assert.Equal(t, 1000, list[1].Total)
	assert.Equal(t, 2, list[1].Position)
	assert.True(t, list[1].Good)
}

func TestListEmpty(t *testing.T) {
	s := store.NewFileStore(t.TempDir(), store.Options{})

	list, err := List(s)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFindByIDAndPosition(t *testing.T) {
	s := store.NewFileStore(t.TempDir(), store.Options{})
	_, err := Archive(s, eatenWeek(t, 1000), time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = Archive(s, eatenWeek(t, 1500), time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	list, err := List(s)
	require.NoError(t, err)

	entry, sum, err := Find(s, list[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", entry.Date)
	assert.Equal(t, 1000, sum.Total)

	entry, sum, err = Find(s, "1")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-08", entry.Date)
	assert.Equal(t, list[0].ID, sum.ID)

	_, _, err = Find(s, "3")
	assert.Error(t, err)
	_, _, err = Find(s, "abcdefg")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
