package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"cairometro/internal/app"
	"cairometro/internal/appconf"
	"cairometro/internal/logging"
	"cairometro/internal/metrics"
	"cairometro/internal/metro"
	"cairometro/internal/models"
)

// createTestApi creates a new RestAPI over the Cairo network for use in tests.
func createTestApi(t *testing.T) *RestAPI {
	t.Helper()
	return createTestApiWithConfig(t, appconf.Config{
		Env:           appconf.EnvFlagToEnvironment("test"),
		ApiKeys:       []string{"TEST"},
		RateLimit:     100,
		RouteCacheTTL: time.Minute,
	})
}

func createTestApiWithConfig(t *testing.T, cfg appconf.Config) *RestAPI {
	t.Helper()
	network, err := metro.DefaultNetwork()
	require.NoError(t, err)

	logger := logging.NewStructuredLogger(io.Discard, slog.LevelInfo)
	api := NewRestAPI(app.New(cfg, logger, network, metrics.NewCollector()))
	t.Cleanup(api.Close)
	return api
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the specified endpoint, and returns the response
// and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	resp, body := serveApiAndRetrieveBody(t, api, endpoint)

	var response models.ResponseModel
	err := json.Unmarshal(body, &response)
	require.NoError(t, err)

	return resp, response
}

func serveApiAndRetrieveBody(t *testing.T, api *RestAPI, endpoint string) (*http.Response, []byte) {
	t.Helper()
	mux := http.NewServeMux()
	api.SetRoutes(mux)
	server := httptest.NewServer(mux)
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

// entryOf digs data.entry out of a decoded envelope.
func entryOf(t *testing.T, model models.ResponseModel) map[string]interface{} {
	t.Helper()
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "data should be an object")
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok, "entry should be an object")
	return entry
}

func listOf(t *testing.T, model models.ResponseModel) []interface{} {
	t.Helper()
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "data should be an object")
	list, ok := data["list"].([]interface{})
	require.True(t, ok, "list should be an array")
	return list
}
