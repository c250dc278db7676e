package api

import "github.com/Maxime2/interpolation"

// ErrorResponse is the body of every non-2xx reply
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type MethodInfo struct {
	Method      string `json:"method"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type MethodsResponse struct {
	Methods []MethodInfo `json:"methods"`
}

// EvaluateRequest carries x as any JSON scalar; "1.5" and 1.5 are both
// accepted.
type EvaluateRequest struct {
	Points  []interpolation.Point `json:"points"`
	X       interface{}           `json:"x"`
	Methods []string              `json:"methods,omitempty"`
}

// Value is null when the result is not finite; Display then reads
// "undefined".
type MethodValue struct {
	Method  string   `json:"method"`
	Value   *float64 `json:"value"`
	Display string   `json:"display"`
}

type EvaluateResponse struct {
	X       float64       `json:"x"`
	Results []MethodValue `json:"results"`
}

type CurveRequest struct {
	Points     []interpolation.Point `json:"points"`
	Method     string                `json:"method"`
	Resolution interface{}           `json:"resolution,omitempty"`
}

type CurveResponse struct {
	Method string                `json:"method"`
	Points []interpolation.Point `json:"points"`
}

type ErrorRequest struct {
	Points  []interpolation.Point `json:"points"`
	Methods []string              `json:"methods,omitempty"`
}

type MethodMetrics struct {
	Method   string   `json:"method"`
	MaxError *float64 `json:"maxError"`
	AvgError *float64 `json:"avgError"`
	RMSError *float64 `json:"rmsError"`
}

type ErrorMetricsResponse struct {
	Metrics []MethodMetrics `json:"metrics"`
}

func finite(v float64) *float64 {
	if !interpolation.IsFinite(v) {
		return nil
	}
	return &v
}
