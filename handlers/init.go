package handlers

import (
	"dubby-site/config"
	"dubby-site/dubbing"

	"github.com/gorilla/sessions"
	"github.com/sirupsen/logrus"
)

var log *logrus.Logger
var store *sessions.CookieStore
var registry *dubbing.Registry
var orchestrator *dubbing.Orchestrator

func Init(logger *logrus.Logger, reg *dubbing.Registry, orch *dubbing.Orchestrator) error {
	log = logger.WithFields(logrus.Fields{
		"component": "handlers",
	}).Logger
	registry = reg
	orchestrator = orch

	// create the cookie store
	key, err := config.GetSessionAuthKey()
	if err != nil {
		return err
	}
	store = sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   24 * 60 * 60, // seconds; runs are session-scoped
		HttpOnly: true,
		Secure:   config.GetSecure(),
	}

	return nil
}

func Fini() {}
