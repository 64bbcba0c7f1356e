// Package global holds the running web server so the signal loop in main can
// restart it.
package global

import (
	"context"

	"github.com/robfig/cron/v3"
)

var webServer WebServer

type WebServer interface {
	GetCron() *cron.Cron
	GetCtx() context.Context
}

func SetWebServer(s WebServer) {
	webServer = s
}

func GetWebServer() WebServer {
	return webServer
}
