package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Maxime2/interpolation/internal/config"
	"github.com/Maxime2/interpolation/internal/logging"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const squaresJSON = `[{"x":0,"y":0},{"x":1,"y":1},{"x":2,"y":4},{"x":3,"y":9}]`

func newTestApp() *fiber.App {
	return newTestAppWithConfig(config.DefaultConfig())
}

func newTestAppWithConfig(cfg *config.Config) *fiber.App {
	logger := logging.NewWithWriter(io.Discard, zerolog.InfoLevel)
	return New(logger, cfg, "test")
}

func do(t *testing.T, app *fiber.App, method, path, body string, out interface{}) int {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	var resp HealthResponse
	code := do(t, newTestApp(), http.MethodGet, "/health", "", &resp)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "test", resp.Version)
}

func TestMethods(t *testing.T) {
	var resp MethodsResponse
	code := do(t, newTestApp(), http.MethodGet, "/v1/methods", "", &resp)
	assert.Equal(t, http.StatusOK, code)
	require.Len(t, resp.Methods, 4)
	assert.Equal(t, "lagrange", resp.Methods[0].Method)
	assert.Equal(t, "newton-divided", resp.Methods[3].Method)
}

func TestEvaluate(t *testing.T) {
	app := newTestApp()
	for _, x := range []string{`1.5`, `"1.5"`} {
		var resp EvaluateResponse
		code := do(t, app, http.MethodPost, "/v1/evaluate",
			`{"points":`+squaresJSON+`,"x":`+x+`}`, &resp)
		require.Equal(t, http.StatusOK, code, x)
		assert.Equal(t, 1.5, resp.X)
		require.Len(t, resp.Results, 4)
		for _, r := range resp.Results {
			require.NotNil(t, r.Value, r.Method)
			assert.InDelta(t, 2.25, *r.Value, 1e-9, r.Method)
			assert.Equal(t, "2.250000", r.Display)
		}
	}
}

func TestEvaluateSelectedMethods(t *testing.T) {
	var resp EvaluateResponse
	code := do(t, newTestApp(), http.MethodPost, "/v1/evaluate",
		`{"points":`+squaresJSON+`,"x":0.5,"methods":["newton-backward"]}`, &resp)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "newton-backward", resp.Results[0].Method)
	assert.InDelta(t, 0.25, *resp.Results[0].Value, 1e-9)
}

func TestEvaluateUndefined(t *testing.T) {
	var resp EvaluateResponse
	code := do(t, newTestApp(), http.MethodPost, "/v1/evaluate",
		`{"points":[{"x":1,"y":2},{"x":1,"y":5}],"x":1.5,"methods":["lagrange"]}`, &resp)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, resp.Results, 1)
	assert.Nil(t, resp.Results[0].Value)
	assert.Equal(t, "undefined", resp.Results[0].Display)
}

func TestEvaluateBadRequest(t *testing.T) {
	app := newTestApp()
	tests := map[string]string{
		"missing x":      `{"points":` + squaresJSON + `}`,
		"bad x":          `{"points":` + squaresJSON + `,"x":"abc"}`,
		"NaN x":          `{"points":` + squaresJSON + `,"x":"NaN"}`,
		"Inf x":          `{"points":` + squaresJSON + `,"x":"-Inf"}`,
		"empty x":        `{"points":` + squaresJSON + `,"x":""}`,
		"bool x":         `{"points":` + squaresJSON + `,"x":true}`,
		"object x":       `{"points":` + squaresJSON + `,"x":{"v":1}}`,
		"unknown method": `{"points":` + squaresJSON + `,"x":1,"methods":["spline"]}`,
		"malformed":      `{"points":`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			var resp ErrorResponse
			code := do(t, app, http.MethodPost, "/v1/evaluate", body, &resp)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.Equal(t, "BAD_REQUEST", resp.Error.Code)
			assert.NotEmpty(t, resp.Error.Message)
		})
	}
}

func TestCurve(t *testing.T) {
	var resp CurveResponse
	code := do(t, newTestApp(), http.MethodPost, "/v1/curve",
		`{"points":`+squaresJSON+`,"method":"newton-divided","resolution":10}`, &resp)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "newton-divided", resp.Method)
	require.Len(t, resp.Points, 11)
	assert.InDelta(t, -0.3, resp.Points[0].X, 1e-9)
	assert.InDelta(t, 3.3, resp.Points[10].X, 1e-9)
	for _, p := range resp.Points {
		assert.InDelta(t, p.X*p.X, p.Y, 1e-9)
	}
}

func TestCurveTooFewPoints(t *testing.T) {
	var resp CurveResponse
	code := do(t, newTestApp(), http.MethodPost, "/v1/curve",
		`{"points":[{"x":1,"y":1}],"method":"lagrange"}`, &resp)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, resp.Points)
}

func TestCurveBadRequest(t *testing.T) {
	app := newTestApp()
	for _, body := range []string{
		`{"points":` + squaresJSON + `,"method":"cubic"}`,
		`{"points":` + squaresJSON + `,"method":"lagrange","resolution":0}`,
		`{"points":` + squaresJSON + `,"method":"lagrange","resolution":"many"}`,
		`{"points":` + squaresJSON + `,"method":"lagrange","resolution":1e12}`,
		`{"points":` + squaresJSON + `,"method":"lagrange","resolution":10001}`,
		`{"points":` + squaresJSON + `,"method":"lagrange","resolution":2.5}`,
		`{"points":` + squaresJSON + `,"method":"lagrange","resolution":true}`,
	} {
		var resp ErrorResponse
		code := do(t, app, http.MethodPost, "/v1/curve", body, &resp)
		assert.Equal(t, http.StatusBadRequest, code, body)
		assert.Equal(t, "BAD_REQUEST", resp.Error.Code)
	}
}

func TestErrorMetrics(t *testing.T) {
	var resp ErrorMetricsResponse
	code := do(t, newTestApp(), http.MethodPost, "/v1/error",
		`{"points":`+squaresJSON+`}`, &resp)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, resp.Metrics, 4)
	for _, m := range resp.Metrics {
		require.NotNil(t, m.MaxError, m.Method)
		assert.Less(t, *m.MaxError, 1e-9)
		assert.Less(t, *m.AvgError, 1e-9)
		assert.Less(t, *m.RMSError, 1e-9)
	}
}

func TestNotFound(t *testing.T) {
	var resp ErrorResponse
	code := do(t, newTestApp(), http.MethodGet, "/v1/spline", "", &resp)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestCurveMaxResolution(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Curve.Resolution = 10
	cfg.Curve.MaxResolution = 20
	app := newTestAppWithConfig(cfg)

	var resp CurveResponse
	code := do(t, app, http.MethodPost, "/v1/curve",
		`{"points":`+squaresJSON+`,"method":"lagrange","resolution":"20"}`, &resp)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, resp.Points, 21)

	var errResp ErrorResponse
	code = do(t, app, http.MethodPost, "/v1/curve",
		`{"points":`+squaresJSON+`,"method":"lagrange","resolution":21}`, &errResp)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "resolution must not exceed 20", errResp.Error.Message)
}
