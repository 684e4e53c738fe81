package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/robgonnella/yunmon/internal/logger"
)

// Server read-only json api exposing the device snapshot, wifi status and
// device history
type Server struct {
	echo    *echo.Echo
	backend Backend
	listen  string
	log     logger.Logger
}

// NewServer returns a new instance of Server
func NewServer(listen string, backend Backend) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:    e,
		backend: backend,
		listen:  listen,
		log:     logger.New().With("api"),
	}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.log.Debug().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Str("latency", v.Latency.String()).
				Msg("request")
			return nil
		},
	}))

	e.GET("/devices", s.getDevices)
	e.GET("/devices/:key", s.getDevice)
	e.GET("/wifi", s.getWifi)
	e.GET("/history", s.getHistory)
	e.GET("/history/latest", s.getLatestSnapshot)

	return s
}

// Handler returns the http handler serving the api
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start blocks serving the api until Shutdown is called
func (s *Server) Start() error {
	s.log.Info().Str("listen", s.listen).Msg("Starting api server")

	if err := s.echo.Start(s.listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Shutdown gracefully stops the api server
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second*5)
	defer cancel()

	return s.echo.Shutdown(ctx)
}
