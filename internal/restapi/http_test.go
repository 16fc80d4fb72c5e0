package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"carbontradle.org/internal/app"
	"carbontradle.org/internal/appconf"
	"carbontradle.org/internal/assistant"
	"carbontradle.org/internal/game"
	"carbontradle.org/internal/logging"
	"carbontradle.org/internal/metrics"
)

// fakeCompleter records the conversations it receives and answers with a
// fixed reply or error.
type fakeCompleter struct {
	mu    sync.Mutex
	calls [][]assistant.Message
	reply string
	err   error
}

func (f *fakeCompleter) Complete(ctx context.Context, messages []assistant.Message) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, messages)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeCompleter) lastCall() []assistant.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return nil
	}
	return f.calls[len(f.calls)-1]
}

var testCoordinates = game.Coordinates{
	"france":    {Lat: 46.2276, Lon: 2.2137},
	"germany":   {Lat: 51.1657, Lon: 10.4515},
	"australia": {Lat: -25.2744, Lon: 133.7751},
}

// createTestApi creates a RestAPI backed by a fake completer, with logs
// captured in the returned buffer.
func createTestApi(t *testing.T, completer *fakeCompleter) (*RestAPI, *bytes.Buffer) {
	t.Helper()

	var logs bytes.Buffer
	application := &app.Application{
		Config: app.Config{
			Env:   appconf.EnvFlagToEnvironment("test"),
			Model: assistant.DefaultModel,
		},
		Logger:      logging.NewStructuredLogger(&logs, slog.LevelDebug),
		Assistant:   completer,
		Metrics:     metrics.New(),
		Coordinates: testCoordinates,
	}

	return NewRestAPI(application), &logs
}

// postJSON sends body to endpoint through the full middleware stack and
// decodes the JSON response.
func postJSON(t *testing.T, api *RestAPI, endpoint, body string) (*http.Response, map[string]any) {
	t.Helper()

	server := httptest.NewServer(api.Handler())
	defer server.Close()

	resp, err := http.Post(server.URL+endpoint, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded), string(raw))
	return resp, decoded
}

var errUpstream = errors.New("upstream model is overloaded")
