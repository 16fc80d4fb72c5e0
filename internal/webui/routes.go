package webui

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"carbontradle.org/internal/app"
)

// WebUI serves read-only debug pages.
type WebUI struct {
	*app.Application
}

func SetWebUIRoutes(router *httprouter.Router, webUI *WebUI) {
	router.HandlerFunc(http.MethodGet, "/debug/", webUI.debugIndexHandler)
}
