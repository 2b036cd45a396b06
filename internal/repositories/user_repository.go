package repositories

import (
	"context"

	"favorites/internal/models"
)

// UserRepository defines the interface for user data access, including the
// two favorite join relations.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetWithFavorites(ctx context.Context, id uint) (*models.User, error)

	AddFavoritePlanet(ctx context.Context, userID, planetID uint) error
	RemoveFavoritePlanet(ctx context.Context, userID, planetID uint) error
	IsFavoritePlanet(ctx context.Context, userID, planetID uint) (bool, error)

	AddFavoriteCharacter(ctx context.Context, userID, characterID uint) error
	RemoveFavoriteCharacter(ctx context.Context, userID, characterID uint) error
	IsFavoriteCharacter(ctx context.Context, userID, characterID uint) (bool, error)
}
