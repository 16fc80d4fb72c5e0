package restapi

import (
	"log/slog"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"carbontradle.org/internal/appconf"
	"carbontradle.org/internal/webui"
)

// SetRoutes registers every endpoint and the router's error handlers.
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodPost, "/get_fun_fact", api.funFactHandler)
	router.HandlerFunc(http.MethodPost, "/get_emission_tip", api.emissionTipHandler)
	router.HandlerFunc(http.MethodPost, "/get_hint", api.hintHandler)
	router.HandlerFunc(http.MethodPost, "/get_guess_feedback", api.guessFeedbackHandler)

	router.HandlerFunc(http.MethodGet, "/healthz", api.healthHandler)
	router.Handler(http.MethodGet, "/metrics", api.Metrics.Handler())

	// The debug pages expose configuration and stay out of production
	if api.Config.Env != appconf.Production {
		webui.SetWebUIRoutes(router, &webui.WebUI{Application: api.Application})
	}

	router.NotFound = http.HandlerFunc(api.routeNotFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(api.methodNotAllowedResponse)
	router.PanicHandler = api.panicResponse
}

// Handler returns the router wrapped in the middleware stack.
func (api *RestAPI) Handler() http.Handler {
	router := httprouter.New()
	api.SetRoutes(router)

	routeOf := func(r *http.Request) string {
		if h, _, _ := router.Lookup(r.Method, r.URL.Path); h != nil {
			return r.URL.Path
		}
		return "unmatched"
	}

	logger := api.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var handler http.Handler = router
	handler = NewCompressionMiddleware(DefaultCompressionConfig(), logger)(handler)
	handler = securityHeaders(handler)
	handler = NewRequestLoggingMiddleware(logger, api.Metrics, routeOf)(handler)
	return handler
}
