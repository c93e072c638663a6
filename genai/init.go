package genai

import "github.com/sirupsen/logrus"

var log = logrus.StandardLogger()

func Init(logger *logrus.Logger) error {
	log = logger.WithFields(logrus.Fields{
		"component": "genai",
	}).Logger
	return nil
}
