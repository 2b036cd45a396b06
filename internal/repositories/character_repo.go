package repositories

import (
	"context"

	"favorites/internal/models"
)

// CharacterRepository defines the interface for character data access.
type CharacterRepository interface {
	GetAll(ctx context.Context) ([]models.Character, error)
	GetByID(ctx context.Context, id uint) (*models.Character, error)
	Create(ctx context.Context, character *models.Character) error
}
