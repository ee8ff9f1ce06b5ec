package controllers

import "github.com/gofiber/fiber/v2"

func (h *Handler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":     "Welcome to " + h.Config.ProjectName + "!",
		"version":     h.Config.Version,
		"environment": h.Config.Environment,
		"simulate":    h.Config.APIPrefix + "/game/simulate",
	})
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
