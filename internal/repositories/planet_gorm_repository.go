package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"favorites/internal/apperror"
	"favorites/internal/models"
)

// GORMPlanetRepository is a GORM implementation of PlanetRepository.
type GORMPlanetRepository struct {
	db *gorm.DB
}

// NewGORMPlanetRepository creates a new instance of GORMPlanetRepository.
func NewGORMPlanetRepository(db *gorm.DB) *GORMPlanetRepository {
	return &GORMPlanetRepository{
		db: db,
	}
}

// GetAll retrieves all planets ordered by ID.
func (r *GORMPlanetRepository) GetAll(ctx context.Context) ([]models.Planet, error) {
	planets := []models.Planet{}
	if err := r.db.WithContext(ctx).Order("id").Find(&planets).Error; err != nil {
		return nil, fmt.Errorf("failed to get all planets: %w", err)
	}
	return planets, nil
}

// GetByID retrieves a single planet. A missing row is reported as
// apperror.ErrNotFound.
func (r *GORMPlanetRepository) GetByID(ctx context.Context, id uint) (*models.Planet, error) {
	var planet models.Planet
	if err := r.db.WithContext(ctx).First(&planet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("planet", id)
		}
		return nil, fmt.Errorf("failed to get planet by ID %d: %w", id, err)
	}
	return &planet, nil
}

// Create inserts planet and sets its ID.
func (r *GORMPlanetRepository) Create(ctx context.Context, planet *models.Planet) error {
	if err := r.db.WithContext(ctx).Create(planet).Error; err != nil {
		return fmt.Errorf("failed to create planet: %w", err)
	}
	return nil
}
