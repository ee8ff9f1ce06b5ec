package controllers

import (
	"strconv"

	jwt "github.com/form3tech-oss/jwt-go"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) ListMatches(c *fiber.Ctx) error {
	if h.History == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "history storage is not configured")
	}
	records, err := h.History.ListMatches(queryLimit(c))
	if err != nil {
		h.Log.WithError(err).Error("failed listing matches")
		return fiber.NewError(fiber.StatusServiceUnavailable, "history storage is unavailable")
	}
	return c.JSON(fiber.Map{"requested_by": subject(c), "matches": records})
}

func (h *Handler) ListBatches(c *fiber.Ctx) error {
	if h.History == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "history storage is not configured")
	}
	records, err := h.History.ListBatches(queryLimit(c))
	if err != nil {
		h.Log.WithError(err).Error("failed listing batches")
		return fiber.NewError(fiber.StatusServiceUnavailable, "history storage is unavailable")
	}
	return c.JSON(fiber.Map{"requested_by": subject(c), "batches": records})
}

// ResetStats clears the running strategy totals.
func (h *Handler) ResetStats(c *fiber.Ctx) error {
	if h.Stats == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "stats storage is not configured")
	}
	if err := h.Stats.Reset(); err != nil {
		h.Log.WithError(err).Error("failed resetting stats")
		return fiber.NewError(fiber.StatusServiceUnavailable, "stats storage is unavailable")
	}
	h.Log.WithField("requested_by", subject(c)).Info("reset stats")
	return c.SendStatus(fiber.StatusNoContent)
}

// subject reads the "sub" claim of the token the jwt middleware verified.
func subject(c *fiber.Ctx) string {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	sub, _ := claims["sub"].(string)
	return sub
}

func queryLimit(c *fiber.Ctx) int {
	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil {
		return 20
	}
	return limit
}
