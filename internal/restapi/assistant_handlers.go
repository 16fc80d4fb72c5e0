package restapi

import (
	"net/http"
	"time"

	"carbontradle.org/internal/assistant"
	"carbontradle.org/internal/utils"
)

// Messages returned when a required field is missing.
const (
	funFactFieldsMessage     = "Parameter 'subsector' is required."
	emissionTipFieldsMessage = "Parameters 'country', 'subsector', and 'emissions_info' are required."
	hintFieldsMessage        = "Both 'guess' and 'country' are required."
)

// complete relays messages to the assistant and writes {key: reply}.
func (api *RestAPI) complete(w http.ResponseWriter, r *http.Request, endpoint, key string, messages []assistant.Message) {
	start := time.Now()
	reply, err := api.Assistant.Complete(r.Context(), messages)
	api.Metrics.ObserveCompletion(endpoint, err, time.Since(start))
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendJSON(w, r, http.StatusOK, map[string]string{key: reply})
}

func (api *RestAPI) funFactHandler(w http.ResponseWriter, r *http.Request) {
	var req funFactRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		api.badRequestResponse(w, r, funFactFieldsMessage)
		return
	}

	api.complete(w, r, "fun_fact", "fun_fact",
		assistant.FunFactPrompt(utils.SanitizePromptField(req.Subsector)))
}

func (api *RestAPI) emissionTipHandler(w http.ResponseWriter, r *http.Request) {
	var req emissionTipRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		api.badRequestResponse(w, r, emissionTipFieldsMessage)
		return
	}

	api.complete(w, r, "emission_tip", "tip", assistant.EmissionTipPrompt(
		utils.SanitizePromptField(req.Country),
		utils.SanitizePromptField(req.Subsector),
		utils.SanitizePromptField(assistant.FormatEmissionsInfo(req.EmissionsInfo)),
	))
}

func (api *RestAPI) hintHandler(w http.ResponseWriter, r *http.Request) {
	var req hintRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		api.badRequestResponse(w, r, hintFieldsMessage)
		return
	}

	api.complete(w, r, "hint", "suggestion", assistant.HintPrompt(
		utils.SanitizePromptField(req.Guess),
		utils.SanitizePromptField(req.Country),
	))
}
