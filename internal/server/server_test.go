package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/investment-calculator/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) (*Server, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	return New(Options{Logger: zerolog.New(&logs)}), &logs
}

func do(t *testing.T, s *Server, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	s, _ := newTestServer(t)
	w := do(t, s, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","service":"invcalc"}`, w.Body.String())
}

func TestPostProjection(t *testing.T) {
	s, logs := newTestServer(t)
	body, err := json.Marshal(domain.DefaultInputs())
	require.NoError(t, err)

	w := do(t, s, http.MethodPost, "/api/v1/projections", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp ProjectionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Result)
	assert.Equal(t, 2146000.0, resp.Result.TBillFinalValue)
	assert.Equal(t, 71250.0, resp.Result.StockAnnualReturn)
	assert.Len(t, resp.Result.Comparison, 6)
	assert.Equal(t, domain.StrategyTBills, resp.Analysis.BestFinalValue)
	assert.Contains(t, logs.String(), `"path":"/api/v1/projections"`)
}

func TestPostProjection_PartialBodyUsesDefaults(t *testing.T) {
	s, _ := newTestServer(t)
	w := do(t, s, http.MethodPost, "/api/v1/projections", []byte(`{"years": 10}`))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp ProjectionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 10, resp.Result.Inputs.Years)
	assert.Equal(t, 1000000.0, resp.Result.Inputs.Principal)
	assert.Len(t, resp.Result.TBillSeries, 11)
}

func TestPostProjection_Invalid(t *testing.T) {
	s, logs := newTestServer(t)

	w := do(t, s, http.MethodPost, "/api/v1/projections", []byte(`{"principal": 1000}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "principal must be at least 50000")
	assert.Contains(t, logs.String(), `"level":"warn"`)

	w = do(t, s, http.MethodPost, "/api/v1/projections", []byte(`{not json`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"error"`)
}

func TestGetProjection_Query(t *testing.T) {
	s, _ := newTestServer(t)
	w := do(t, s, http.MethodGet, "/api/v1/projections?portfolio_split_pct=100&years=abc", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp ProjectionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.Result.Inputs.Years, "unparseable values fall back to defaults")
	assert.Equal(t, resp.Result.TBillFinalValue, resp.Result.MixedFinalValue)
}

func TestGetProjection_OutOfRange(t *testing.T) {
	s, _ := newTestServer(t)
	w := do(t, s, http.MethodGet, "/api/v1/projections?years=31", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "years must be between 1 and 30")
}

func TestGetFormatted(t *testing.T) {
	s, _ := newTestServer(t)

	tests := []struct {
		format      string
		contentType string
		contains    string
	}{
		{"markdown", "text/markdown", "## Savings"},
		{"md", "text/markdown", "| T-Bills | KES 165,000 | KES 13,750 | KES 2,146,000 |"},
		{"html", "text/html", "<h2>Savings</h2>"},
		{"csv", "text/csv", "Savings,KES,1000000,5,50"},
		{"detailed-csv", "text/csv", "Savings,5,Year 5,2146000"},
		{"json", "application/json", `"name": "Savings"`},
		{"console-lite", "text/plain", "Savings: Principal=KES 1,000,000"},
		{"console", "text/plain", "Savings"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			w := do(t, s, http.MethodGet, "/api/v1/formats/"+tt.format+"?name=Savings", nil)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), tt.contentType), w.Header().Get("Content-Type"))
			assert.Contains(t, w.Body.String(), tt.contains)
		})
	}
}

func TestGetFormatted_Errors(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodGet, "/api/v1/formats/pdf", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "unsupported output format")

	w = do(t, s, http.MethodGet, "/api/v1/formats/json?tbill_yield_pct=16.25", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "tbill_yield_pct must be in steps of 0.5")
}

func TestMetrics(t *testing.T) {
	s, _ := newTestServer(t)
	do(t, s, http.MethodGet, "/api/v1/projections", nil)
	do(t, s, http.MethodGet, "/api/v1/formats/csv", nil)

	w := do(t, s, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `invcalc_http_requests_total{method="GET",path="/api/v1/projections",status="200"} 1`)
	assert.Contains(t, body, `invcalc_projections_total{format="csv"} 1`)
	assert.Contains(t, body, `invcalc_projections_total{format="json"} 1`)
	assert.Contains(t, body, "invcalc_http_request_duration_seconds_bucket")
}

func TestServersHaveIndependentRegistries(t *testing.T) {
	a, _ := newTestServer(t)
	b, _ := newTestServer(t)
	do(t, a, http.MethodGet, "/healthz", nil)

	w := do(t, b, http.MethodGet, "/metrics", nil)
	assert.NotContains(t, w.Body.String(), `path="/healthz"`)
}
