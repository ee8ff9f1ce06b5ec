package routes

import (
	"errors"
	"strings"

	"github.com/DedS3t/monopoly-simulator/app/controllers"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp wires every route onto a fresh fiber app.
func NewApp(h *controllers.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler:          errorHandler,
		DisableStartupMessage: !h.Config.Debug,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(h.Config.AllowedOrigins, ","),
	}))

	app.Get("/", h.Root)
	app.Get("/health", h.Health)

	api := app.Group(h.Config.APIPrefix)
	GameRoutes(api, h)
	HistoryRoutes(api, h, h.Config.SecretKey)

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
