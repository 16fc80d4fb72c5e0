package restapi

import (
	"errors"
	"net/http"

	"carbontradle.org/internal/game"
)

const guessFeedbackFieldsMessage = "Both 'guess' and 'target' are required."

func (api *RestAPI) guessFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	if !api.GuessFeedbackEnabled() {
		api.serviceUnavailableResponse(w, r, "Guess feedback is unavailable: no country coordinates are loaded.")
		return
	}

	var req guessFeedbackRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		api.badRequestResponse(w, r, guessFeedbackFieldsMessage)
		return
	}

	feedback, err := api.Coordinates.Evaluate(req.Guess, req.Target)
	switch {
	case errors.Is(err, game.ErrUnknownCountry):
		api.notFoundResponse(w, r, err.Error())
		return
	case errors.Is(err, game.ErrNoRange):
		api.unprocessableResponse(w, r, err.Error())
		return
	case err != nil:
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendJSON(w, r, http.StatusOK, feedback)
}
