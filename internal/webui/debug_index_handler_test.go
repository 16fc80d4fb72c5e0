package webui

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"

	"carbontradle.org/internal/app"
	"carbontradle.org/internal/game"
)

func serveDebug(t *testing.T, application *app.Application, query string) *httptest.ResponseRecorder {
	t.Helper()
	router := httprouter.New()
	SetWebUIRoutes(router, &WebUI{Application: application})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/"+query, nil))
	return rec
}

func TestDebugIndexHandler(t *testing.T) {
	application := &app.Application{
		Config: app.Config{Port: 4000, Model: "o3-mini", APIKey: "sk-secret"},
		Coordinates: game.Coordinates{
			"france": {Lat: 46.2276, Lon: 2.2137},
		},
	}

	tests := []struct {
		query    string
		title    string
		contains string
	}{
		{query: "?dataType=sectors", title: "Taxonomy - Subsectors by Sector", contains: "electricity-generation"},
		{query: "?dataType=subsectors", title: "Taxonomy - Sector of each Subsector", contains: "forestry-and-land-use"},
		{query: "?dataType=countries", title: "Taxonomy - Countries", contains: "Afghanistan"},
		{query: "?dataType=coordinates", title: "Guess Feedback - Country Coordinates", contains: "46.2276"},
		{query: "?dataType=config", title: "Relay Server - Configuration", contains: "[redacted]"},
		{query: "", title: "Choose a data type", contains: "Please use one of the following"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			rec := serveDebug(t, application, tt.query)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			body := rec.Body.String()
			assert.Contains(t, body, "<title>"+tt.title+"</title>")
			assert.Contains(t, body, tt.contains)
			assert.NotContains(t, body, "sk-secret")
		})
	}
}
