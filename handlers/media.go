package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"dubby-site/dubbing"
)

// MediaPost stages the uploaded video for the session's run.
func MediaPost(c echo.Context) error {
	run := currentRun(c)

	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing file"})
	}

	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "unable to open upload"})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "unable to read upload"})
	}

	asset := dubbing.MediaAsset{
		Name:     fh.Filename,
		MIMEType: fh.Header.Get("Content-Type"),
		Size:     fh.Size,
		Data:     data,
	}

	if err := run.SelectMedia(asset); err != nil {
		if errors.Is(err, dubbing.ErrDubInProgress) {
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	log.Infof("staged %q (%d bytes) for run %s", asset.Name, asset.Size, run.Token)
	return c.JSON(http.StatusOK, run.Snapshot())
}

// MediaDelete removes the staged video and clears any results.
func MediaDelete(c echo.Context) error {
	run := currentRun(c)

	if err := run.RemoveMedia(); err != nil {
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, run.Snapshot())
}
