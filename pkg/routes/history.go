package routes

import (
	"github.com/DedS3t/monopoly-simulator/app/controllers"
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
)

// HistoryRoutes are only reachable with a bearer token signed by secret.
func HistoryRoutes(a fiber.Router, h *controllers.Handler, secret string) {
	route := a.Group("/history", jwtware.New(jwtware.Config{
		SigningKey: []byte(secret),
	}))
	route.Get("/matches", h.ListMatches)
	route.Get("/batches", h.ListBatches)
	route.Delete("/stats", h.ResetStats)
}
