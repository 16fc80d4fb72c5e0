package restapi

import (
	"fmt"
	"log/slog"
	"net/http"

	"carbontradle.org/internal/logging"
)

type errorBody struct {
	Error string `json:"error"`
}

func (api *RestAPI) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	api.sendJSON(w, r, status, errorBody{Error: message})
}

// badRequestResponse sends a 400 with the endpoint's own message
func (api *RestAPI) badRequestResponse(w http.ResponseWriter, r *http.Request, message string) {
	api.errorResponse(w, r, http.StatusBadRequest, message)
}

// serverErrorResponse logs err and sends it back as a 500
func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(logging.FromContext(r.Context()), "request failed", err,
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path))
	api.errorResponse(w, r, http.StatusInternalServerError, err.Error())
}

func (api *RestAPI) notFoundResponse(w http.ResponseWriter, r *http.Request, message string) {
	api.errorResponse(w, r, http.StatusNotFound, message)
}

func (api *RestAPI) serviceUnavailableResponse(w http.ResponseWriter, r *http.Request, message string) {
	api.errorResponse(w, r, http.StatusServiceUnavailable, message)
}

func (api *RestAPI) unprocessableResponse(w http.ResponseWriter, r *http.Request, message string) {
	api.errorResponse(w, r, http.StatusUnprocessableEntity, message)
}

func (api *RestAPI) routeNotFoundResponse(w http.ResponseWriter, r *http.Request) {
	api.notFoundResponse(w, r, "The requested resource could not be found.")
}

func (api *RestAPI) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	api.errorResponse(w, r, http.StatusMethodNotAllowed,
		fmt.Sprintf("The %s method is not supported for this resource.", r.Method))
}

// panicResponse is the router's panic handler
func (api *RestAPI) panicResponse(w http.ResponseWriter, r *http.Request, recovered any) {
	logging.LogError(logging.FromContext(r.Context()), "recovered from panic", fmt.Errorf("%v", recovered),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path))
	w.Header().Set("Connection", "close")
	api.errorResponse(w, r, http.StatusInternalServerError, "internal server error")
}
