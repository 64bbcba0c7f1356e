// Package config exposes build metadata and environment-driven settings
// for the support rota panel.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("ROTA_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("ROTA_DEBUG") == "true"
}

func GetListen() string {
	return os.Getenv("ROTA_LISTEN")
}

func GetPort() int {
	port, err := strconv.Atoi(os.Getenv("ROTA_PORT"))
	if err != nil || port <= 0 || port > 65535 {
		return 8080
	}
	return port
}

// GetBasePath returns the URL prefix all routes are mounted under,
// normalized to carry both a leading and a trailing slash.
func GetBasePath() string {
	basePath := os.Getenv("ROTA_BASE_PATH")
	if basePath == "" {
		return "/"
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	if !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}
	return basePath
}

// GetSessionSecret returns the cookie-store secret, empty when unset.
// The web server generates a per-process secret when empty.
func GetSessionSecret() string {
	return os.Getenv("ROTA_SESSION_SECRET")
}

// GetSessionMaxAge returns the session lifetime in minutes.
func GetSessionMaxAge() int {
	maxAge, err := strconv.Atoi(os.Getenv("ROTA_SESSION_MAX_AGE"))
	if err != nil || maxAge <= 0 {
		return 60
	}
	return maxAge
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("ROTA_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "/etc/rota"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("ROTA_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "/var/log"
	}
	return logFolderPath
}
