package routes

import (
	"github.com/DedS3t/monopoly-simulator/app/controllers"
	"github.com/gofiber/fiber/v2"
)

func GameRoutes(a fiber.Router, h *controllers.Handler) {
	route := a.Group("/game")
	route.Get("/simulate", h.SimulateGame)
	route.Get("/simulate/multiple", h.SimulateMultiple)
	route.Get("/board", h.GetBoard)
	route.Get("/board/:key", h.GetProperty)
	route.Get("/stats", h.GetStats)
}
