package api

import (
	"fmt"
	"math"
	"strings"

	"github.com/Maxime2/interpolation"
	"github.com/Maxime2/interpolation/internal/config"
	"github.com/Maxime2/interpolation/internal/logging"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cast"
)

// Handler contains all HTTP handlers
type Handler struct {
	logger  *logging.Logger
	cfg     *config.Config
	version string
}

func NewHandler(logger *logging.Logger, cfg *config.Config, version string) *Handler {
	return &Handler{logger: logger, cfg: cfg, version: version}
}

// Health handles GET /health
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{Status: "ok", Version: h.version})
}

// Methods handles GET /v1/methods
func (h *Handler) Methods(c *fiber.Ctx) error {
	resp := MethodsResponse{}
	for _, m := range interpolation.Methods() {
		resp.Methods = append(resp.Methods, MethodInfo{
			Method:      m.String(),
			Name:        m.Name(),
			Description: m.Description(),
		})
	}
	return c.JSON(resp)
}

// Evaluate handles POST /v1/evaluate
func (h *Handler) Evaluate(c *fiber.Ctx) error {
	var req EvaluateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}
	x, err := parseX(req.X)
	if err != nil {
		return err
	}
	methods, err := h.methods(req.Methods)
	if err != nil {
		return err
	}

	values := interpolation.EvaluateAll(req.Points, x)
	resp := EvaluateResponse{X: x, Results: make([]MethodValue, 0, len(methods))}
	for _, m := range methods {
		v := values[m]
		resp.Results = append(resp.Results, MethodValue{
			Method:  m.String(),
			Value:   finite(v),
			Display: interpolation.Format(v),
		})
	}

	h.logger.Debug("Evaluated", "points", len(req.Points), "x", x, "methods", len(methods))
	return c.JSON(resp)
}

// Curve handles POST /v1/curve
func (h *Handler) Curve(c *fiber.Ctx) error {
	var req CurveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}
	m, err := interpolation.ParseMethod(req.Method)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	opts := h.cfg.CurveOptions()
	if req.Resolution != nil {
		res, err := parseResolution(req.Resolution, h.cfg.Curve.MaxResolution)
		if err != nil {
			return err
		}
		opts.Resolution = res
	}

	resp := CurveResponse{Method: m.String(), Points: make([]interpolation.Point, 0)}
	for p := range interpolation.Curve(req.Points, m, opts) {
		resp.Points = append(resp.Points, p)
	}
	return c.JSON(resp)
}

// Error handles POST /v1/error
func (h *Handler) Error(c *fiber.Ctx) error {
	var req ErrorRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}
	methods, err := h.methods(req.Methods)
	if err != nil {
		return err
	}

	resp := ErrorMetricsResponse{Metrics: make([]MethodMetrics, 0, len(methods))}
	for _, m := range methods {
		e := interpolation.CalculateError(req.Points, m)
		resp.Metrics = append(resp.Metrics, MethodMetrics{
			Method:   m.String(),
			MaxError: finite(e.Max),
			AvgError: finite(e.Mean),
			RMSError: finite(e.RMS),
		})
	}
	return c.JSON(resp)
}

// methods resolves the requested methods, falling back to the configured set.
func (h *Handler) methods(tags []string) ([]interpolation.Method, error) {
	if len(tags) == 0 {
		return h.cfg.ActiveMethods(), nil
	}
	ms, err := interpolation.ParseMethods(tags)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return ms, nil
}

// parseX accepts x as a JSON number or a numeric string. Empty strings,
// other JSON types and non-finite values are rejected.
func parseX(v interface{}) (float64, error) {
	switch t := v.(type) {
	case nil:
		return 0, fiber.NewError(fiber.StatusBadRequest, "x is required")
	case float64:
	case string:
		if strings.TrimSpace(t) == "" {
			return 0, fiber.NewError(fiber.StatusBadRequest, "x is required")
		}
	default:
		return 0, fiber.NewError(fiber.StatusBadRequest, "x must be a number")
	}
	x, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid x: "+err.Error())
	}
	if !interpolation.IsFinite(x) {
		return 0, fiber.NewError(fiber.StatusBadRequest, "x must be a finite number")
	}
	return x, nil
}

// parseResolution accepts a JSON number or numeric string in [1, max].
func parseResolution(v interface{}, limit int) (int, error) {
	switch v.(type) {
	case float64, string:
	default:
		return 0, fiber.NewError(fiber.StatusBadRequest, "resolution must be a positive integer")
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || !interpolation.IsFinite(f) || f < 1 || f != math.Trunc(f) {
		return 0, fiber.NewError(fiber.StatusBadRequest, "resolution must be a positive integer")
	}
	if f > float64(limit) {
		return 0, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("resolution must not exceed %d", limit))
	}
	return int(f), nil
}
