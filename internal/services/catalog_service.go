package services

import (
	"context"

	"favorites/internal/models"
	"favorites/internal/repositories"
)

// CatalogService serves the read side of planets and characters.
type CatalogService struct {
	planets    repositories.PlanetRepository
	characters repositories.CharacterRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(planets repositories.PlanetRepository, characters repositories.CharacterRepository) *CatalogService {
	return &CatalogService{
		planets:    planets,
		characters: characters,
	}
}

// GetAllPlanets retrieves all planets.
func (s *CatalogService) GetAllPlanets(ctx context.Context) ([]models.Planet, error) {
	return s.planets.GetAll(ctx)
}

// GetPlanetByID retrieves a single planet by its ID.
func (s *CatalogService) GetPlanetByID(ctx context.Context, id uint) (*models.Planet, error) {
	return s.planets.GetByID(ctx, id)
}

// GetAllCharacters retrieves all characters.
func (s *CatalogService) GetAllCharacters(ctx context.Context) ([]models.Character, error) {
	return s.characters.GetAll(ctx)
}

// GetCharacterByID retrieves a single character by its ID.
func (s *CatalogService) GetCharacterByID(ctx context.Context, id uint) (*models.Character, error) {
	return s.characters.GetByID(ctx, id)
}
