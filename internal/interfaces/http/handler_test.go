package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRoutes(r, NewHandler("immo_assistant_bot"))
	return r
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "ok", body["status"])
}

func TestStatusEndpoint(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status        string `json:"status"`
		Bot           string `json:"bot"`
		UptimeSeconds int64  `json:"uptime_seconds"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "ok", body.Status)
	require.Equal(t, "@immo_assistant_bot", body.Bot)
	require.GreaterOrEqual(t, body.UptimeSeconds, int64(0))
}

func TestRunBackgroundReportsListenFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRoutes(r, NewHandler("immo_assistant_bot"))

	failed := make(chan error, 1)
	RunBackground(r, "invalid-address:-1", func(err error) {
		failed <- err
	})

	select {
	case err := <-failed:
		require.Error(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("listen failure was not reported")
	}
}

func TestUnknownRouteNotFound(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}
