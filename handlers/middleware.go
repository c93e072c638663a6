package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"dubby-site/dubbing"
)

const sessionName = "session"
const runTokenKey = "run_token"

// RunMiddleware binds the browser session to its in-memory dub run,
// creating one on first contact. The run lands in the echo context.
func RunMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, err := store.Get(c.Request(), sessionName)
		if err != nil {
			// a stale or tampered cookie just gets a fresh session
			log.Warnf("resetting session: %v", err)
		}

		var run *dubbing.Run
		if token, ok := session.Values[runTokenKey].(string); ok {
			run, _ = registry.Get(token)
		}
		if run == nil {
			run = registry.Create()
			session.Values[runTokenKey] = run.Token
			if err := session.Save(c.Request(), c.Response().Writer); err != nil {
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": "unable to save session"})
			}
			log.Debugf("created run %s", run.Token)
		}

		c.Set("run", run)
		return next(c)
	}
}

func currentRun(c echo.Context) *dubbing.Run {
	return c.Get("run").(*dubbing.Run)
}
