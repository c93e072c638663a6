package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// StatusGet reports the run's current state, progress string, and results.
// The front end polls this while a dub is in flight.
func StatusGet(c echo.Context) error {
	return c.JSON(http.StatusOK, currentRun(c).Snapshot())
}
