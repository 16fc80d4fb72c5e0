package restapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"carbontradle.org/internal/logging"
)

// sendJSON writes data as a JSON response with the given status
func (api *RestAPI) sendJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.LogError(logging.FromContext(r.Context()), "failed to encode response", err,
			slog.String("path", r.URL.Path))
	}
}
