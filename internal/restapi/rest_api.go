package restapi

import (
	"carbontradle.org/internal/app"
)

// RestAPI serves the assistant relay and guess feedback endpoints.
type RestAPI struct {
	*app.Application
}

// NewRestAPI creates a new RestAPI instance
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{Application: app}
}
