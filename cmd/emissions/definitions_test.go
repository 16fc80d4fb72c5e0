package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitionsCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/v6/definitions/sectors":
			_, _ = w.Write([]byte(`["power", "manufacturing", "space"]`))
		case "/v6/definitions/subsectors":
			_, _ = w.Write([]byte(`["cement", "space-tourism", "heat-plants"]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	stdout, _, err := execute(t, "definitions", "--base-url", srv.URL)
	require.NoError(t, err)

	assert.Equal(t, "3 sectors, 3 subsectors from the API\n"+
		"unknown sector: space\n"+
		"unmapped subsector: space-tourism\n", stdout)
}

func TestDefinitionsCommandUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, stderr, err := execute(t, "definitions", "--base-url", srv.URL)
	require.Error(t, err)
	assert.Contains(t, stderr, "failed to fetch sector definitions")
}
