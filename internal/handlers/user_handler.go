package handlers

import (
	"github.com/gofiber/fiber/v2"

	"favorites/internal/services"
)

// Greeting is the body of GET /user.
const Greeting = "Hello, this is your GET /user response "

// UserHandler handles HTTP requests for users and demo seeding.
type UserHandler struct {
	service *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// RegisterRoutes registers the user routes.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/user", h.HandleHello)
	router.Get("/create", h.HandleSeed)
	router.Get("/users", h.HandleGetUsers)
	router.Get("/users/:id/favorites", h.HandleGetFavorites)
}

// HandleHello answers with a static greeting.
func (h *UserHandler) HandleHello(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"msg": Greeting,
	})
}

// HandleSeed creates the demo user with its favorites and answers with an
// empty list.
func (h *UserHandler) HandleSeed(c *fiber.Ctx) error {
	if _, err := h.service.SeedDemo(c.UserContext()); err != nil {
		return err
	}
	return c.JSON([]interface{}{})
}

// HandleGetUsers lists all users without passwords or favorites.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// HandleGetFavorites returns the names of the user's favorite characters and
// planets.
func (h *UserHandler) HandleGetFavorites(c *fiber.Ctx) error {
	id, err := idParam(c, "user")
	if err != nil {
		return err
	}
	names, err := h.service.GetFavoriteNames(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(names)
}
