package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zofmath/zof/internal/logging"
)

func newTestHandler() http.Handler {
	return NewHandler(nil, logging.NewNop())
}

func postSolve(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/solve", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestSolve_Success(t *testing.T) {
	rr := postSolve(t, newTestHandler(),
		`{"method": "bisection", "function": "x**2 - 4", "a": 0, "b": 3}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Bisection Method", resp["method"])
	assert.InDelta(t, 2.0, resp["root"].(float64), 1e-5)
	assert.NotEmpty(t, resp["iteration_data"])
	assert.NotContains(t, resp, "error")
}

func TestSolve_StringNumbersCoerced(t *testing.T) {
	// Numeric fields often arrive as strings from form-driven clients.
	rr := postSolve(t, newTestHandler(),
		`{"method": "newton_raphson", "function": "x**2 - 4", "x0": "3", "tolerance": "1e-8"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.InDelta(t, 2.0, resp["root"].(float64), 1e-6)
}

func TestSolve_SolverFailureIsOKWithErrorField(t *testing.T) {
	// A bad bracket is a legitimate answer, not a transport failure.
	rr := postSolve(t, newTestHandler(),
		`{"method": "bisection", "function": "x**2 - 4", "a": 3, "b": 5}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "opposite signs")
}

func TestSolve_ValidationFailure(t *testing.T) {
	rr := postSolve(t, newTestHandler(), `{"method": "bisection", "function": "x**2 - 4"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])
}

func TestSolve_UndecodableBody(t *testing.T) {
	rr := postSolve(t, newTestHandler(), `{"method": `)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestMethods(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/methods", nil)
	rr := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var methods []methodInfo
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &methods))
	require.Len(t, methods, 6)
	assert.Equal(t, "bisection", methods[0].ID)
	assert.Equal(t, "Bisection Method", methods[0].Name)
	assert.Equal(t, []string{"a", "b"}, methods[0].Params)
}

func TestHealth(t *testing.T) {
	req := httptest.NewRequest("GET", "/healthz", nil)
	rr := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.NotEmpty(t, resp["version"])
}

func TestMetricsEndpoint(t *testing.T) {
	handler := newTestHandler()
	postSolve(t, handler, `{"method": "secant", "function": "cos(x) - x", "x0": 0, "x1": 1}`)

	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "zof_solve_requests_total")
}
