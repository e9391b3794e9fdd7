package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// Seeder resets the catalog to its demo dataset. *seed.Loader implements it.
type Seeder interface {
	Run(ctx context.Context) (string, error)
}

// SeedHandler exposes the seed loader over HTTP.
type SeedHandler struct {
	seeder Seeder
}

// NewSeedHandler creates a new SeedHandler.
func NewSeedHandler(seeder Seeder) *SeedHandler {
	return &SeedHandler{seeder: seeder}
}

// RegisterRoutes registers GET /seed on router.
func (h *SeedHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/seed", h.HandleSeed)
}

// HandleSeed replaces every product with the seed dataset.
func (h *SeedHandler) HandleSeed(c *fiber.Ctx) error {
	message, err := h.seeder.Run(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": message})
}
