package api

import (
	"github.com/Maxime2/interpolation/internal/config"
	"github.com/Maxime2/interpolation/internal/logging"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// ErrorHandler logs the failure and writes an ErrorResponse
func ErrorHandler(logger *logging.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		}

		logger.Error("Request error",
			"path", c.Path(),
			"method", c.Method(),
			"status", code,
			"error", err,
		)

		errCode := "ERROR"
		switch code {
		case fiber.StatusBadRequest:
			errCode = "BAD_REQUEST"
		case fiber.StatusNotFound:
			errCode = "NOT_FOUND"
		}
		return c.Status(code).JSON(ErrorResponse{
			Error: ErrorDetail{Code: errCode, Message: message},
		})
	}
}

// New builds the fiber application with every route registered
func New(logger *logging.Logger, cfg *config.Config, version string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "interpviz",
		ErrorHandler:          ErrorHandler(logger),
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logging.FiberMiddleware(logger))

	h := NewHandler(logger, cfg, version)
	app.Get("/health", h.Health)

	v1 := app.Group("/v1")
	v1.Get("/methods", h.Methods)
	v1.Post("/evaluate", h.Evaluate)
	v1.Post("/curve", h.Curve)
	v1.Post("/error", h.Error)

	return app
}
