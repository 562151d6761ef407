// Package httpapi serves the calendar views and the feed store over JSON.
package httpapi

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/alexanderramin/syllabus/internal/domain"
	"github.com/alexanderramin/syllabus/internal/logger"
	"github.com/alexanderramin/syllabus/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Options configures a Server.
type Options struct {
	Address        string
	Calendar       service.CalendarService
	Feeds          service.FeedService
	Teacher        string
	Location       *time.Location
	Debug          bool
	DisableReqLogs bool
}

// Server is the echo application behind `syllabus serve`.
type Server struct {
	opts Options
	app  *echo.Echo

	// loadMu keeps a load and the view read after it together, so
	// concurrent requests for different months do not see each other's model.
	loadMu sync.Mutex
}

// NewServer builds the routes. Call Start to listen.
func NewServer(opts Options) *Server {
	opts.Location = domain.LocationOrLocal(opts.Location)
	s := &Server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *Server) setup() {
	s.app.HideBanner = true
	s.app.HidePort = true
	s.app.Debug = s.opts.Debug

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(requestLogger())
	}
	// do not recover in debug mode
	if !s.opts.Debug {
		s.app.Use(middleware.Recover())
	}
	s.app.HTTPErrorHandler = httpErrorHandler

	s.app.GET("/healthz", healthz)

	v1 := s.app.Group("/v1")
	v1.GET("/calendar", s.getCalendar)
	v1.POST("/calendar/navigate", s.navigate)
	v1.GET("/planning", s.getPlanning)
	v1.POST("/feeds", s.importFeeds)
	v1.GET("/calendar-feeds", s.exportFeeds)
}

// Start listens on the configured address until Stop is called.
func (s *Server) Start() error {
	logger.Info("http server listening", "addr", s.opts.Address)
	err := s.app.Start(s.opts.Address)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.app.ServeHTTP(w, r)
}

func healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}
			req := c.Request()
			logger.Info("http request",
				"method", req.Method,
				"path", req.URL.Path,
				"status", c.Response().Status,
				"duration", time.Since(start),
			)
			return nil
		}
	}
}
