package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"favorites/internal/apperror"
	"favorites/internal/models"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create inserts user. Planets and characters already listed in its favorite
// collections are created with it, together with the join rows.
func (r *GORMUserRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetAll retrieves all users ordered by ID, without their favorites.
func (r *GORMUserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to get all users: %w", err)
	}
	return users, nil
}

// GetByID retrieves a user by their ID from the database.
func (r *GORMUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return r.first(r.db.WithContext(ctx), id)
}

// GetWithFavorites retrieves a user with both favorite collections loaded,
// each ordered by ID.
func (r *GORMUserRepository) GetWithFavorites(ctx context.Context, id uint) (*models.User, error) {
	tx := r.db.WithContext(ctx).
		Preload("FavoriteCharacters", func(db *gorm.DB) *gorm.DB {
			return db.Order("characters.id")
		}).
		Preload("FavoritePlanets", func(db *gorm.DB) *gorm.DB {
			return db.Order("planets.id")
		})
	return r.first(tx, id)
}

func (r *GORMUserRepository) first(tx *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := tx.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("user", id)
		}
		return nil, fmt.Errorf("failed to get user by ID %d: %w", id, err)
	}
	return &user, nil
}

// AddFavoritePlanet inserts the (user, planet) pair. Adding an existing pair
// is a no-op.
func (r *GORMUserRepository) AddFavoritePlanet(ctx context.Context, userID, planetID uint) error {
	row := favoritePlanet{UserID: userID, PlanetID: planetID}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to add favorite planet %d for user %d: %w", planetID, userID, err)
	}
	return nil
}

// RemoveFavoritePlanet deletes the (user, planet) pair, reporting an invalid
// association if it was not there.
func (r *GORMUserRepository) RemoveFavoritePlanet(ctx context.Context, userID, planetID uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND planet_id = ?", userID, planetID).
		Delete(&favoritePlanet{})
	if res.Error != nil {
		return fmt.Errorf("failed to remove favorite planet %d for user %d: %w", planetID, userID, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.InvalidAssociation("planet", planetID, userID)
	}
	return nil
}

// IsFavoritePlanet reports whether the (user, planet) pair exists.
func (r *GORMUserRepository) IsFavoritePlanet(ctx context.Context, userID, planetID uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&favoritePlanet{}).
		Where("user_id = ? AND planet_id = ?", userID, planetID).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("failed to look up favorite planet %d for user %d: %w", planetID, userID, err)
	}
	return n > 0, nil
}

// AddFavoriteCharacter inserts the (user, character) pair. Adding an existing
// pair is a no-op.
func (r *GORMUserRepository) AddFavoriteCharacter(ctx context.Context, userID, characterID uint) error {
	row := favoriteCharacter{UserID: userID, CharacterID: characterID}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to add favorite character %d for user %d: %w", characterID, userID, err)
	}
	return nil
}

// RemoveFavoriteCharacter deletes the (user, character) pair.
func (r *GORMUserRepository) RemoveFavoriteCharacter(ctx context.Context, userID, characterID uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND character_id = ?", userID, characterID).
		Delete(&favoriteCharacter{})
	if res.Error != nil {
		return fmt.Errorf("failed to remove favorite character %d for user %d: %w", characterID, userID, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.InvalidAssociation("character", characterID, userID)
	}
	return nil
}

// IsFavoriteCharacter reports whether the (user, character) pair exists.
func (r *GORMUserRepository) IsFavoriteCharacter(ctx context.Context, userID, characterID uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&favoriteCharacter{}).
		Where("user_id = ? AND character_id = ?", userID, characterID).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("failed to look up favorite character %d for user %d: %w", characterID, userID, err)
	}
	return n > 0, nil
}
