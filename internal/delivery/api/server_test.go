package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"gazexpress/config"
	"gazexpress/internal/delivery/api/middleware"
	"gazexpress/internal/delivery/api/router"
	"gazexpress/internal/delivery/api/router/handler"
	deliverycontext "gazexpress/internal/delivery/context"
	"gazexpress/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

// newTestServer wires the real router with handlers whose usecases are never
// reached by the requests below.
func newTestServer(t *testing.T, metricsEnabled bool) *apiServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.HTTP.AllowOrigins = []string{"*"}
	cfg.Metrics = &config.MetricsConfig{Enabled: metricsEnabled, Path: "/metrics"}

	reg := prometheus.NewRegistry()
	recorder, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	lc := fxtest.NewLifecycle(t)
	srv, err := NewServer(ServerParams{
		Lc:       lc,
		Cfg:      cfg,
		Logger:   logger,
		Registry: reg,
		Metrics:  recorder,
		RouterParams: router.RouterParams{
			AccountHandler: handler.NewAccountHandler(handler.AccountHandlerParams{Logger: logger}),
			AdminHandler:   handler.NewAdminHandler(handler.AdminHandlerParams{Logger: logger}),
			StationHandler: handler.NewStationHandler(handler.StationHandlerParams{Logger: logger}),
			CourierHandler: handler.NewCourierHandler(handler.CourierHandlerParams{Logger: logger}),
			ZoneHandler:    handler.NewZoneHandler(handler.ZoneHandlerParams{Logger: logger}),
			ProductHandler: handler.NewProductHandler(handler.ProductHandlerParams{Logger: logger}),
			OrderHandler:   handler.NewOrderHandler(handler.OrderHandlerParams{Logger: logger}),
			PaymentHandler: handler.NewPaymentHandler(handler.PaymentHandlerParams{Logger: logger}),
			AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{Logger: logger}),
		},
	})
	require.NoError(t, err)

	lc.RequireStart()
	t.Cleanup(func() { lc.RequireStop() })

	api, ok := srv.(*apiServer)
	require.True(t, ok)

	return api
}

func serve(s *apiServer, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.server.ServeHTTP(rec, httptest.NewRequest(method, target, nil))

	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error.Code
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(t, false)

	for _, target := range []string{"/health", "/health/"} {
		rec := serve(s, http.MethodGet, target)

		assert.Equal(t, http.StatusOK, rec.Code, target)
		assert.JSONEq(t, `{"status":"ok","message":"GazExpress API is running"}`, rec.Body.String())
		assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
	}
}

func TestServer_RequestIDIsEchoed(t *testing.T) {
	s := newTestServer(t, false)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()

	s.server.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_ProtectedRoutesRequireToken(t *testing.T) {
	s := newTestServer(t, false)

	tests := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/commandes"},
		{http.MethodGet, "/commandes/"},
		{http.MethodPost, "/paiements"},
		{http.MethodGet, "/zones"},
		{http.MethodGet, "/auth/profile"},
		{http.MethodGet, "/admin/dashboard"},
		{http.MethodGet, "/livreurs/disponibles"},
		{http.MethodPost, "/bouteilles"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := serve(s, tt.method, tt.target)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "UNAUTHENTICATED", errorCode(t, rec))
		})
	}
}

func TestServer_UnknownRoute(t *testing.T) {
	s := newTestServer(t, false)

	rec := serve(s, http.MethodGet, "/nowhere")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, rec))
}

func TestServer_Metrics(t *testing.T) {
	s := newTestServer(t, true)

	serve(s, http.MethodGet, "/commandes")
	rec := serve(s, http.MethodGet, "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",path="/commandes",status="401"} 1`)
}

func TestServer_MetricsDisabled(t *testing.T) {
	s := newTestServer(t, false)

	rec := serve(s, http.MethodGet, "/metrics")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
