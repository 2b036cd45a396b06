package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"favorites/internal/apperror"
	"favorites/internal/models"
)

// GORMCharacterRepository is a GORM implementation of CharacterRepository.
type GORMCharacterRepository struct {
	db *gorm.DB
}

// NewGORMCharacterRepository creates a new instance of GORMCharacterRepository.
func NewGORMCharacterRepository(db *gorm.DB) *GORMCharacterRepository {
	return &GORMCharacterRepository{
		db: db,
	}
}

// GetAll retrieves all characters ordered by ID.
func (r *GORMCharacterRepository) GetAll(ctx context.Context) ([]models.Character, error) {
	characters := []models.Character{}
	if err := r.db.WithContext(ctx).Order("id").Find(&characters).Error; err != nil {
		return nil, fmt.Errorf("failed to get all characters: %w", err)
	}
	return characters, nil
}

// GetByID retrieves a single character.
func (r *GORMCharacterRepository) GetByID(ctx context.Context, id uint) (*models.Character, error) {
	var character models.Character
	if err := r.db.WithContext(ctx).First(&character, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("character", id)
		}
		return nil, fmt.Errorf("failed to get character by ID %d: %w", id, err)
	}
	return &character, nil
}

// Create inserts character and sets its ID.
func (r *GORMCharacterRepository) Create(ctx context.Context, character *models.Character) error {
	if err := r.db.WithContext(ctx).Create(character).Error; err != nil {
		return fmt.Errorf("failed to create character: %w", err)
	}
	return nil
}
