package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonaszobl/weight-loss-service/internal/store"
	"github.com/jonaszobl/weight-loss-service/internal/tracker"
	"github.com/jonaszobl/weight-loss-service/internal/week"
)

const testSecret = "jonas"

// 2025-06-18 is a Wednesday.
var fixedNow = time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC)

func setupServer(t *testing.T) (*Server, store.Store) {
	t.Helper()
	s := store.NewFileStore(t.TempDir(), store.Options{})
	tr := tracker.New(s, testSecret, tracker.WithClock(func() time.Time { return fixedNow }))
	return New(tr, log.New(io.Discard)), s
}

func do(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	srv, _ := setupServer(t)
	rec := do(t, srv, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode(t, rec)["status"])
}

func TestGetWeekEmpty(t *testing.T) {
	srv, _ := setupServer(t)
	rec := do(t, srv, http.MethodGet, "/api/week", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	weekDoc := body["week"].(map[string]any)
	assert.Len(t, weekDoc, 7)
	assert.Contains(t, weekDoc, "Montag")

	summary := body["summary"].(map[string]any)
	assert.Equal(t, float64(0), summary["total"])
	assert.Equal(t, true, summary["good"])
	assert.Equal(t, float64(8400), summary["weekly_goal"])
}

func TestAddMealPersists(t *testing.T) {
	srv, s := setupServer(t)
	rec := do(t, srv, http.MethodPost, "/api/meals", `{"day":"Monday","category":"breakfast","name":"Oatmeal","kcal":300}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := decode(t, rec)
	assert.Equal(t, "Monday", body["day"])
	assert.Equal(t, float64(0), body["total"])

	w, err := s.LoadWeek()
	require.NoError(t, err)
	require.Len(t, w.Day(week.Monday).Meals(week.Breakfast), 1)
	assert.Equal(t, week.Meal{Name: "Oatmeal", Calories: 300}, w.Day(week.Monday).Meals(week.Breakfast)[0])
}

func TestAddMealErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"too many calories", `{"day":"Monday","category":"lunch","name":"Feast","kcal":2001}`, http.StatusUnprocessableEntity},
		{"zero calories", `{"day":"Monday","category":"lunch","name":"Water","kcal":0}`, http.StatusUnprocessableEntity},
		{"empty name", `{"day":"Monday","category":"lunch","name":"  ","kcal":100}`, http.StatusUnprocessableEntity},
		{"unknown day", `{"day":"Funday","category":"lunch","name":"Soup","kcal":100}`, http.StatusBadRequest},
		{"unknown category", `{"day":"Monday","category":"brunch","name":"Soup","kcal":100}`, http.StatusBadRequest},
		{"invalid json", `{"day":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, s := setupServer(t)
			rec := do(t, srv, http.MethodPost, "/api/meals", tt.body)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())

			w, err := s.LoadWeek()
			require.NoError(t, err)
			assert.True(t, w.IsEmpty())
		})
	}
}

func TestToggleMeal(t *testing.T) {
	srv, _ := setupServer(t)
	do(t, srv, http.MethodPost, "/api/meals", `{"day":"Montag","category":"Frühstück","name":"Oatmeal","kcal":300}`)

	rec := do(t, srv, http.MethodPost, "/api/meals/toggle", `{"day":"Monday","category":"breakfast","index":0}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, float64(300), decode(t, rec)["total"])

	rec = do(t, srv, http.MethodPost, "/api/meals/toggle", `{"day":"Monday","category":"breakfast","index":3}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetDay(t *testing.T) {
	srv, _ := setupServer(t)
	do(t, srv, http.MethodPost, "/api/meals", `{"day":"Tuesday","category":"dinner","name":"Pasta","kcal":1200}`)
	do(t, srv, http.MethodPost, "/api/meals/toggle", `{"day":"Tuesday","category":"dinner","index":0}`)

	rec := do(t, srv, http.MethodGet, "/api/week/tuesday", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Dienstag", body["label"])
	assert.Equal(t, float64(1200), body["total"])
	assert.Equal(t, float64(0), body["remaining"])
	assert.Equal(t, false, body["good"])

	rec = do(t, srv, http.MethodGet, "/api/week/someday", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteMealsRequiresPassword(t *testing.T) {
	srv, s := setupServer(t)
	do(t, srv, http.MethodPost, "/api/meals", `{"day":"Friday","category":"extra","name":"Beer","kcal":150}`)
	do(t, srv, http.MethodPost, "/api/meals", `{"day":"Friday","category":"dinner","name":"Beer","kcal":150}`)

	rec := do(t, srv, http.MethodDelete, "/api/meals", `{"day":"Friday","name":"Beer","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	w, err := s.LoadWeek()
	require.NoError(t, err)
	assert.Equal(t, 2, w.Day(week.Friday).Len())

	rec = do(t, srv, http.MethodDelete, "/api/meals", `{"day":"Friday","name":"Beer","password":"jonas"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, float64(2), decode(t, rec)["removed"])

	w, err = s.LoadWeek()
	require.NoError(t, err)
	assert.Equal(t, 0, w.Day(week.Friday).Len())
}

func TestResetArchivesWeek(t *testing.T) {
	srv, s := setupServer(t)
	do(t, srv, http.MethodPost, "/api/meals", `{"day":"Monday","category":"lunch","name":"Salad","kcal":400}`)

	rec := do(t, srv, http.MethodPost, "/api/reset", `{"password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	entries, err := s.LoadHistory()
	require.NoError(t, err)
	assert.Empty(t, entries)

	rec = do(t, srv, http.MethodPost, "/api/reset", `{"password":"jonas"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "2025-06-18", decode(t, rec)["archived"])

	w, err := s.LoadWeek()
	require.NoError(t, err)
	assert.True(t, w.IsEmpty())

	rec = do(t, srv, http.MethodGet, "/api/history", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "2025-06-18", list[0]["date"])
	assert.Equal(t, float64(1), list[0]["position"])
}

func TestGetToday(t *testing.T) {
	srv, _ := setupServer(t)
	rec := do(t, srv, http.MethodGet, "/api/today", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "Wednesday", body["day"])
	assert.Equal(t, "Mittwoch", body["label"])
	assert.Equal(t, "2025-06-18", body["date"])
}

func TestErrorStatus(t *testing.T) {
	assert.Equal(t, http.StatusUnprocessableEntity, errorStatus(&week.ValidationError{Field: "name", Reason: "empty"}))
	assert.Equal(t, http.StatusBadRequest, errorStatus(week.ErrInvalidIndex))
	assert.Equal(t, http.StatusUnauthorized, errorStatus(tracker.ErrAuthentication))
	assert.Equal(t, http.StatusInternalServerError, errorStatus(&store.Error{Op: "save week", Err: io.ErrUnexpectedEOF}))
}
