package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"dubby-site/dubbing"
)

// DubPost kicks off the dubbing pipeline for the session's staged media.
// A second post while a run is in flight is a no-op (the orchestrator's
// latch refuses it); the client keeps polling /api/status either way.
func DubPost(c echo.Context) error {
	run := currentRun(c)

	if !run.HasMedia() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": dubbing.ErrNoMedia.Error()})
	}

	language := dubbing.ParseLanguage(c.FormValue("language"))
	voice := dubbing.ParseVoice(c.FormValue("voice"))

	go orchestrator.Dub(context.Background(), run, language, voice)

	return c.JSON(http.StatusAccepted, run.Snapshot())
}
