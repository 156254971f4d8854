package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "gazexpress/internal/delivery/context"
	"gazexpress/internal/delivery/api/response"
	"gazexpress/internal/delivery/api/validator"
	"gazexpress/internal/domain/entity"
	"gazexpress/internal/domain/policy"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type request struct {
	method string
	path   string
	body   string
	caller policy.Caller
	params map[string]string
	query  string
}

func newContext(r request) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	target := r.path
	if r.query != "" {
		target += "?" + r.query
	}
	req := httptest.NewRequest(r.method, target, strings.NewReader(r.body))
	if r.body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	names := make([]string, 0, len(r.params))
	values := make([]string, 0, len(r.params))
	for name, value := range r.params {
		names = append(names, name)
		values = append(values, value)
	}
	// Echo sizes a context's param slots from its registered routes.
	if len(names) > 0 {
		e.Add(r.method, "/:"+strings.Join(names, "/:"), func(echo.Context) error { return nil })
	}

	c := e.NewContext(req, rec)
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	deliverycontext.SetCaller(c, r.caller)

	return c, rec
}

// dataOf decodes the success envelope and returns its data member.
func dataOf(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body struct {
		Data map[string]any     `json:"data"`
		Meta response.MetaInfo `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Meta.RequestID)

	return body.Data
}

func listOf(t *testing.T, rec *httptest.ResponseRecorder) []map[string]any {
	t.Helper()

	var body struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Data
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) *response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error
}

func adminCaller() policy.Caller {
	return policy.NewCaller(&entity.Account{ID: uuid.New(), Role: entity.RoleAdmin, IsActive: true, IsApproved: true})
}

func clientCaller() policy.Caller {
	return policy.NewCaller(&entity.Account{ID: uuid.New(), Role: entity.RoleClient, IsActive: true, IsApproved: true})
}

func stationCaller() policy.Caller {
	return policy.NewCaller(&entity.Account{ID: uuid.New(), Role: entity.RoleStation, IsActive: true, IsApproved: true})
}
