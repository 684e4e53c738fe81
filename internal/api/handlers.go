package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/robgonnella/yunmon/internal/device"
	"github.com/robgonnella/yunmon/internal/discovery"
	"github.com/robgonnella/yunmon/internal/exception"
)

// WifiErrorResponse returned along with a 502 when the remote device could
// not report its wifi status
type WifiErrorResponse struct {
	Error string             `json:"error"`
	Wifi  discovery.WifiInfo `json:"wifi"`
}

// SnapshotResponse a recorded snapshot and the time it was taken
type SnapshotResponse struct {
	TakenAt time.Time          `json:"takenAt"`
	Devices discovery.Snapshot `json:"devices"`
}

func (s *Server) getDevices(c echo.Context) error {
	return c.JSON(http.StatusOK, s.backend.Snapshot())
}

func (s *Server) getDevice(c echo.Context) error {
	key := c.Param("key")

	d, ok := s.backend.Snapshot()[key]

	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "device not found: "+key)
	}

	return c.JSON(http.StatusOK, d)
}

func (s *Server) getWifi(c echo.Context) error {
	info, err := s.backend.Wifi(c.Request().Context())

	if err != nil {
		return c.JSON(http.StatusBadGateway, WifiErrorResponse{
			Error: err.Error(),
			Wifi:  info,
		})
	}

	return c.JSON(http.StatusOK, info)
}

func (s *Server) getHistory(c echo.Context) error {
	history, err := s.backend.History()

	if err != nil {
		return historyError(err)
	}

	targets := c.QueryParams()["target"]

	var records []*device.Record

	if len(targets) == 0 {
		records, err = history.GetAll()
	} else {
		records, err = history.GetAllInTargets(targets)

		if errors.Is(err, exception.ErrInvalidTarget) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}

	if err != nil {
		return historyError(err)
	}

	return c.JSON(http.StatusOK, records)
}

func (s *Server) getLatestSnapshot(c echo.Context) error {
	history, err := s.backend.History()

	if err != nil {
		return historyError(err)
	}

	snapshot, takenAt, err := history.LatestSnapshot()

	if err != nil {
		return historyError(err)
	}

	return c.JSON(http.StatusOK, SnapshotResponse{
		TakenAt: takenAt,
		Devices: snapshot,
	})
}

func historyError(err error) error {
	switch {
	case errors.Is(err, exception.ErrHistoryDisabled),
		errors.Is(err, exception.ErrRecordNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
