package handlers

import (
	"github.com/gofiber/fiber/v2"

	"favorites/internal/services"
)

// CatalogHandler handles HTTP requests for planets and characters.
type CatalogHandler struct {
	service *services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		service: service,
	}
}

// RegisterRoutes registers the catalog routes. Characters are served under
// /people.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/people", h.HandleGetCharacters)
	router.Get("/people/:id", h.HandleGetCharacter)
	router.Get("/planets", h.HandleGetPlanets)
	router.Get("/planets/:id", h.HandleGetPlanet)
}

// HandleGetCharacters lists all characters.
func (h *CatalogHandler) HandleGetCharacters(c *fiber.Ctx) error {
	characters, err := h.service.GetAllCharacters(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(characters)
}

// HandleGetCharacter returns one character or 404.
func (h *CatalogHandler) HandleGetCharacter(c *fiber.Ctx) error {
	id, err := idParam(c, "character")
	if err != nil {
		return err
	}
	character, err := h.service.GetCharacterByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(character)
}

// HandleGetPlanets lists all planets.
func (h *CatalogHandler) HandleGetPlanets(c *fiber.Ctx) error {
	planets, err := h.service.GetAllPlanets(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(planets)
}

// HandleGetPlanet returns one planet or 404.
func (h *CatalogHandler) HandleGetPlanet(c *fiber.Ctx) error {
	id, err := idParam(c, "planet")
	if err != nil {
		return err
	}
	planet, err := h.service.GetPlanetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(planet)
}
