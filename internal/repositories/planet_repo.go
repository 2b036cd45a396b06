package repositories

import (
	"context"

	"favorites/internal/models"
)

// PlanetRepository defines the interface for planet data access.
type PlanetRepository interface {
	GetAll(ctx context.Context) ([]models.Planet, error)
	GetByID(ctx context.Context, id uint) (*models.Planet, error)
	Create(ctx context.Context, planet *models.Planet) error
}
