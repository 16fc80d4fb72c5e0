package restapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

var validate *validator.Validate

func init() {
	validate = validator.New()
	if err := validate.RegisterValidation("truthy_json", truthyJSON); err != nil {
		panic(err)
	}
}

// truthyJSON rejects JSON values a client would consider empty: null,
// false, 0, "", [] and {}.
func truthyJSON(fl validator.FieldLevel) bool {
	raw := bytes.TrimSpace(fl.Field().Bytes())
	if len(raw) == 0 {
		return false
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	case []any:
		return len(x) > 0
	case map[string]any:
		return len(x) > 0
	}
	return true
}

type funFactRequest struct {
	Subsector string `json:"subsector" validate:"required"`
}

type emissionTipRequest struct {
	Country       string          `json:"country" validate:"required"`
	Subsector     string          `json:"subsector" validate:"required"`
	EmissionsInfo json.RawMessage `json:"emissions_info" validate:"required,truthy_json"`
}

type hintRequest struct {
	Guess   string `json:"guess" validate:"required"`
	Country string `json:"country" validate:"required"`
}

type guessFeedbackRequest struct {
	Guess  string `json:"guess" validate:"required"`
	Target string `json:"target" validate:"required"`
}

// decodeAndValidate reads a JSON body into dst and checks its struct tags.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return fmt.Errorf("decoding request body: %w", err)
	}

	return validate.Struct(dst)
}
