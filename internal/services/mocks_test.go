package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"favorites/internal/models"
)

// MockPlanetRepository is a mock implementation of repositories.PlanetRepository
type MockPlanetRepository struct {
	mock.Mock
}

func (m *MockPlanetRepository) GetAll(ctx context.Context) ([]models.Planet, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Planet), args.Error(1)
}

func (m *MockPlanetRepository) GetByID(ctx context.Context, id uint) (*models.Planet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Planet), args.Error(1)
}

func (m *MockPlanetRepository) Create(ctx context.Context, planet *models.Planet) error {
	return m.Called(ctx, planet).Error(0)
}

// MockCharacterRepository is a mock implementation of repositories.CharacterRepository
type MockCharacterRepository struct {
	mock.Mock
}

func (m *MockCharacterRepository) GetAll(ctx context.Context) ([]models.Character, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Character), args.Error(1)
}

func (m *MockCharacterRepository) GetByID(ctx context.Context, id uint) (*models.Character, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Character), args.Error(1)
}

func (m *MockCharacterRepository) Create(ctx context.Context, character *models.Character) error {
	return m.Called(ctx, character).Error(0)
}

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetWithFavorites(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) AddFavoritePlanet(ctx context.Context, userID, planetID uint) error {
	return m.Called(ctx, userID, planetID).Error(0)
}

func (m *MockUserRepository) RemoveFavoritePlanet(ctx context.Context, userID, planetID uint) error {
	return m.Called(ctx, userID, planetID).Error(0)
}

func (m *MockUserRepository) IsFavoritePlanet(ctx context.Context, userID, planetID uint) (bool, error) {
	args := m.Called(ctx, userID, planetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) AddFavoriteCharacter(ctx context.Context, userID, characterID uint) error {
	return m.Called(ctx, userID, characterID).Error(0)
}

func (m *MockUserRepository) RemoveFavoriteCharacter(ctx context.Context, userID, characterID uint) error {
	return m.Called(ctx, userID, characterID).Error(0)
}

func (m *MockUserRepository) IsFavoriteCharacter(ctx context.Context, userID, characterID uint) (bool, error) {
	args := m.Called(ctx, userID, characterID)
	return args.Bool(0), args.Error(1)
}

// MockPublisher is a mock implementation of services.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishFavoriteEvent(event models.FavoriteEvent) error {
	return m.Called(event).Error(0)
}
