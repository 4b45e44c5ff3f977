package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/jonaszobl/weight-loss-service/internal/tracker"
)

// Server exposes the tracker as a JSON API.
type Server struct {
	tracker *tracker.Tracker
	echo    *echo.Echo
	logger  *log.Logger
}

func New(t *tracker.Tracker, logger *log.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{tracker: t, echo: e, logger: logger}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Debug("request", "method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency)
			return nil
		},
	}))

	s.register()
	return s
}

func (s *Server) register() {
	s.echo.GET("/healthz", s.health)

	g := s.echo.Group("/api")
	g.GET("/week", s.getWeek)
	g.GET("/week/:day", s.getDay)
	g.GET("/today", s.getToday)
	g.POST("/meals", s.addMeal)
	g.POST("/meals/toggle", s.toggleMeal)
	g.DELETE("/meals", s.deleteMeals)
	g.POST("/reset", s.reset)
	g.GET("/history", s.listHistory)
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler { return s.echo }

// Start listens on addr until Shutdown is called.
func (s *Server) Start(addr string) error {
	s.logger.Info("listening", "addr", addr)
	err := s.echo.Start(addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Run starts the server and shuts it down when ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	errc := make(chan error, 1)
	go func() { errc <- s.Start(addr) }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-errc
	}
}
