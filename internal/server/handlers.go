package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jonaszobl/weight-loss-service/internal/history"
	"github.com/jonaszobl/weight-loss-service/internal/tracker"
	"github.com/jonaszobl/weight-loss-service/internal/week"
)

type addMealRequest struct {
	Day      string `json:"day"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Calories int    `json:"kcal"`
}

type toggleRequest struct {
	Day      string `json:"day"`
	Category string `json:"category"`
	Index    int    `json:"index"`
}

type deleteRequest struct {
	Day      string `json:"day"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type resetRequest struct {
	Password string `json:"password"`
}

type weekResponse struct {
	Week    week.Week    `json:"week"`
	Summary week.Summary `json:"summary"`
}

type dayResponse struct {
	Day       string   `json:"day"`
	Label     string   `json:"label"`
	Meals     week.Day `json:"meals"`
	Total     int      `json:"total"`
	Goal      int      `json:"goal"`
	Remaining int      `json:"remaining"`
	Good      bool     `json:"good"`
}

func newDayResponse(w week.Week, d week.Weekday) dayResponse {
	day := w.Day(d)
	total := week.DayTotal(day)
	return dayResponse{
		Day:       d.String(),
		Label:     d.Label(),
		Meals:     day,
		Total:     total,
		Goal:      week.DailyGoal,
		Remaining: week.Remaining(total, week.DailyGoal),
		Good:      week.Evaluate(total, week.DailyGoal) == week.Good,
	}
}

// errorStatus maps domain errors to HTTP status codes.
func errorStatus(err error) int {
	switch {
	case week.IsValidation(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, week.ErrInvalidKey), errors.Is(err, week.ErrInvalidIndex):
		return http.StatusBadRequest
	case errors.Is(err, tracker.ErrAuthentication):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

func (s *Server) fail(c echo.Context, err error) error {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", c.Path(), "err", err)
	}
	return c.JSON(status, echo.Map{"error": err.Error()})
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (s *Server) getWeek(c echo.Context) error {
	w := s.tracker.Load()
	return c.JSON(http.StatusOK, weekResponse{Week: w, Summary: week.Summarize(w)})
}

func (s *Server) getDay(c echo.Context) error {
	d, err := week.ParseWeekday(c.Param("day"))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, newDayResponse(s.tracker.Load(), d))
}

func (s *Server) getToday(c echo.Context) error {
	now := s.tracker.Now()
	d := week.FromTime(now)
	return c.JSON(http.StatusOK, echo.Map{
		"day":   d.String(),
		"label": d.Label(),
		"date":  now.Format(history.DateLayout),
	})
}

func (s *Server) addMeal(c echo.Context) error {
	var in addMealRequest
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	d, err := week.ParseWeekday(in.Day)
	if err != nil {
		return s.fail(c, err)
	}
	cat, err := week.ParseCategory(in.Category)
	if err != nil {
		return s.fail(c, err)
	}

	w, err := s.tracker.AddMeal(s.tracker.Load(), d, cat, in.Name, in.Calories)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, newDayResponse(w, d))
}

func (s *Server) toggleMeal(c echo.Context) error {
	var in toggleRequest
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	d, err := week.ParseWeekday(in.Day)
	if err != nil {
		return s.fail(c, err)
	}
	cat, err := week.ParseCategory(in.Category)
	if err != nil {
		return s.fail(c, err)
	}

	w, err := s.tracker.ToggleEaten(s.tracker.Load(), d, cat, in.Index)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, newDayResponse(w, d))
}

func (s *Server) deleteMeals(c echo.Context) error {
	var in deleteRequest
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	d, err := week.ParseWeekday(in.Day)
	if err != nil {
		return s.fail(c, err)
	}

	w, removed, err := s.tracker.DeleteByName(s.tracker.Load(), d, in.Name, in.Password)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"removed": removed,
		"day":     newDayResponse(w, d),
	})
}

func (s *Server) reset(c echo.Context) error {
	var in resetRequest
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}

	w, entry, err := s.tracker.ResetWeek(s.tracker.Load(), in.Password)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"archived": entry.Date,
		"week":     weekResponse{Week: w, Summary: week.Summarize(w)},
	})
}

func (s *Server) listHistory(c echo.Context) error {
	list, err := s.tracker.History()
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
