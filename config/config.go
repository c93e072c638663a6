package config

import (
	"fmt"
	"os"
	"strings"
)

var gitSHA string
var buildDate string

// GetAPIKey is the single credential the remote inference service needs.
func GetAPIKey() (string, error) {
	key := "DUBBY_SITE_API_KEY"
	value, exists := os.LookupEnv(key)
	if exists {
		return value, nil
	}
	return "", fmt.Errorf("please set %s", key)
}

func GetSessionAuthKey() ([]byte, error) {
	key := "DUBBY_SITE_SESSION_AUTH_KEY"
	value, exists := os.LookupEnv(key)
	if exists {
		return []byte(value), nil
	}
	return []byte{}, fmt.Errorf("please set %s", key)
}

func GetAddr() string {
	value, exists := os.LookupEnv("DUBBY_SITE_ADDR")
	if exists {
		return value
	}
	return ":8080"
}

func GetSecure() bool {
	key := "DUBBY_SITE_SECURE"
	if value, exists := os.LookupEnv(key); exists {
		lower := strings.ToLower(value)
		if lower == "on" || lower == "1" || lower == "true" || lower == "yes" {
			return true
		}
	}
	return false
}

func GetGitSHA() string {
	if gitSHA == "" {
		return "<not provided>"
	}
	return gitSHA
}

func GetBuildDate() string {
	if buildDate == "" {
		return "<not provided>"
	}
	return buildDate
}
