package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"favorites/internal/apperror"
	"favorites/internal/models"
	"favorites/internal/repositories"
	"favorites/pkg/logger"
)

// UserService handles user listing, favorite lookups and demo seeding.
type UserService struct {
	users    repositories.UserRepository
	validate *validator.Validate
}

// NewUserService creates a new UserService.
func NewUserService(users repositories.UserRepository) *UserService {
	return &UserService{
		users:    users,
		validate: validator.New(),
	}
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.users.GetAll(ctx)
}

// GetFavoriteNames returns the names of the user's favorite characters
// followed by their favorite planets.
func (s *UserService) GetFavoriteNames(ctx context.Context, userID uint) ([]string, error) {
	user, err := s.users.GetWithFavorites(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.FavoriteNames(), nil
}

// DemoUser builds the demo user created by SeedDemo: Karina with Earth and
// Pluton as favorite planets and Luke Skywalker and Princess Leia as
// favorite characters.
func DemoUser() *models.User {
	return &models.User{
		Username: "Karina",
		Email:    "prueba@example.com",
		Password: "1",
		FavoritePlanets: []models.Planet{
			{Name: "Earth"},
			{Name: "Pluton"},
		},
		FavoriteCharacters: []models.Character{
			{Name: "Luke Skywalker"},
			{Name: "Princess Leia"},
		},
	}
}

// CreateUser validates user and everything in its favorite collections, then
// persists them in one insert.
func (s *UserService) CreateUser(ctx context.Context, user *models.User) error {
	if err := s.validateUser(user); err != nil {
		return err
	}
	return s.users.Create(ctx, user)
}

// SeedDemo creates a fresh demo user with its favorites. Every call creates
// new rows.
func (s *UserService) SeedDemo(ctx context.Context) (*models.User, error) {
	user := DemoUser()
	if err := s.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to seed demo user: %w", err)
	}
	logger.Info().
		Uint("user_id", user.ID).
		Int("planets", len(user.FavoritePlanets)).
		Int("characters", len(user.FavoriteCharacters)).
		Msg("seeded demo user")
	return user, nil
}

func (s *UserService) validateUser(user *models.User) error {
	if err := s.validate.Struct(user); err != nil {
		return validationError(err)
	}
	for i := range user.FavoritePlanets {
		if err := s.validate.Struct(user.FavoritePlanets[i]); err != nil {
			return validationError(err)
		}
	}
	for i := range user.FavoriteCharacters {
		if err := s.validate.Struct(user.FavoriteCharacters[i]); err != nil {
			return validationError(err)
		}
	}
	return nil
}

// validationError flattens validator errors into a single ValidationFailed.
func validationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.ValidationFailed(err.Error())
	}
	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Namespace(), e.Tag()))
	}
	return apperror.ValidationFailed(strings.Join(messages, "; "))
}
