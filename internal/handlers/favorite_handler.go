package handlers

import (
	"github.com/gofiber/fiber/v2"

	"favorites/internal/middleware"
	"favorites/internal/services"
)

// FavoriteHandler handles favorite mutations for the acting user.
type FavoriteHandler struct {
	service *services.FavoriteService
}

// NewFavoriteHandler creates a new FavoriteHandler.
func NewFavoriteHandler(service *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		service: service,
	}
}

// RegisterRoutes registers the favorite routes under /favorite. principal
// is the middleware that places the acting user in the locals, normally
// middleware.ActingUser.
func (h *FavoriteHandler) RegisterRoutes(router fiber.Router, principal fiber.Handler) {
	favoriteRoutes := router.Group("/favorite", principal)
	favoriteRoutes.Post("/planet/:id", h.HandleAddPlanet)
	favoriteRoutes.Delete("/planets/:id", h.HandleRemovePlanet)
	favoriteRoutes.Post("/people/:id", h.HandleAddCharacter)
	favoriteRoutes.Delete("/people/:id", h.HandleRemoveCharacter)
}

// HandleAddPlanet adds a planet to the acting user's favorites.
func (h *FavoriteHandler) HandleAddPlanet(c *fiber.Ctx) error {
	principal, id, err := favoriteTarget(c, "planet")
	if err != nil {
		return err
	}
	planet, err := h.service.AddPlanet(c.UserContext(), principal, id)
	if err != nil {
		return err
	}
	return c.JSON(planet)
}

// HandleRemovePlanet removes a planet from the acting user's favorites.
func (h *FavoriteHandler) HandleRemovePlanet(c *fiber.Ctx) error {
	principal, id, err := favoriteTarget(c, "planet")
	if err != nil {
		return err
	}
	planet, err := h.service.RemovePlanet(c.UserContext(), principal, id)
	if err != nil {
		return err
	}
	return c.JSON(planet)
}

// HandleAddCharacter adds a character to the acting user's favorites.
func (h *FavoriteHandler) HandleAddCharacter(c *fiber.Ctx) error {
	principal, id, err := favoriteTarget(c, "character")
	if err != nil {
		return err
	}
	character, err := h.service.AddCharacter(c.UserContext(), principal, id)
	if err != nil {
		return err
	}
	return c.JSON(character)
}

// HandleRemoveCharacter removes a character from the acting user's favorites.
func (h *FavoriteHandler) HandleRemoveCharacter(c *fiber.Ctx) error {
	principal, id, err := favoriteTarget(c, "character")
	if err != nil {
		return err
	}
	character, err := h.service.RemoveCharacter(c.UserContext(), principal, id)
	if err != nil {
		return err
	}
	return c.JSON(character)
}

func favoriteTarget(c *fiber.Ctx, resource string) (principal, id uint, err error) {
	if principal, err = middleware.Principal(c); err != nil {
		return 0, 0, err
	}
	if id, err = idParam(c, resource); err != nil {
		return 0, 0, err
	}
	return principal, id, nil
}
