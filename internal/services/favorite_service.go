package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"favorites/internal/models"
	"favorites/internal/repositories"
	"favorites/pkg/logger"
	"favorites/pkg/metrics"
)

// EventPublisher delivers favorite events to the broker.
type EventPublisher interface {
	PublishFavoriteEvent(event models.FavoriteEvent) error
}

// FavoriteService adds and removes favorites on behalf of a principal user.
// Every target id is resolved to an entity before the join relation is
// touched.
type FavoriteService struct {
	users      repositories.UserRepository
	planets    repositories.PlanetRepository
	characters repositories.CharacterRepository
	publisher  EventPublisher
	metrics    *metrics.Recorder
	now        func() time.Time
}

// NewFavoriteService creates a new FavoriteService. publisher and recorder
// may be nil.
func NewFavoriteService(
	users repositories.UserRepository,
	planets repositories.PlanetRepository,
	characters repositories.CharacterRepository,
	publisher EventPublisher,
	recorder *metrics.Recorder,
) *FavoriteService {
	return &FavoriteService{
		users:      users,
		planets:    planets,
		characters: characters,
		publisher:  publisher,
		metrics:    recorder,
		now:        time.Now,
	}
}

// AddPlanet marks planetID as a favorite of principal and returns the planet.
func (s *FavoriteService) AddPlanet(ctx context.Context, principal, planetID uint) (*models.Planet, error) {
	if _, err := s.users.GetByID(ctx, principal); err != nil {
		return nil, err
	}
	planet, err := s.planets.GetByID(ctx, planetID)
	if err != nil {
		return nil, err
	}
	if err := s.users.AddFavoritePlanet(ctx, principal, planet.ID); err != nil {
		return nil, err
	}
	s.emit(models.ActionAdded, models.KindPlanet, principal, planet.ID)
	return planet, nil
}

// RemovePlanet drops planetID from principal's favorites and returns the
// planet. A planet that is not a favorite is reported as not found.
func (s *FavoriteService) RemovePlanet(ctx context.Context, principal, planetID uint) (*models.Planet, error) {
	if _, err := s.users.GetByID(ctx, principal); err != nil {
		return nil, err
	}
	planet, err := s.planets.GetByID(ctx, planetID)
	if err != nil {
		return nil, err
	}
	if err := s.users.RemoveFavoritePlanet(ctx, principal, planet.ID); err != nil {
		return nil, err
	}
	s.emit(models.ActionRemoved, models.KindPlanet, principal, planet.ID)
	return planet, nil
}

// AddCharacter marks characterID as a favorite of principal.
func (s *FavoriteService) AddCharacter(ctx context.Context, principal, characterID uint) (*models.Character, error) {
	if _, err := s.users.GetByID(ctx, principal); err != nil {
		return nil, err
	}
	character, err := s.characters.GetByID(ctx, characterID)
	if err != nil {
		return nil, err
	}
	if err := s.users.AddFavoriteCharacter(ctx, principal, character.ID); err != nil {
		return nil, err
	}
	s.emit(models.ActionAdded, models.KindCharacter, principal, character.ID)
	return character, nil
}

// RemoveCharacter drops characterID from principal's favorites.
func (s *FavoriteService) RemoveCharacter(ctx context.Context, principal, characterID uint) (*models.Character, error) {
	if _, err := s.users.GetByID(ctx, principal); err != nil {
		return nil, err
	}
	character, err := s.characters.GetByID(ctx, characterID)
	if err != nil {
		return nil, err
	}
	if err := s.users.RemoveFavoriteCharacter(ctx, principal, character.ID); err != nil {
		return nil, err
	}
	s.emit(models.ActionRemoved, models.KindCharacter, principal, character.ID)
	return character, nil
}

// emit records the mutation and publishes its event. Publishing failures are
// logged only; the mutation has already been committed.
func (s *FavoriteService) emit(action models.FavoriteAction, kind models.FavoriteKind, userID, targetID uint) {
	s.metrics.FavoriteMutated(string(kind), string(action))

	if s.publisher == nil {
		return
	}
	event := models.FavoriteEvent{
		ID:         uuid.NewString(),
		Action:     action,
		Kind:       kind,
		UserID:     userID,
		TargetID:   targetID,
		OccurredAt: s.now().UTC(),
	}
	if err := s.publisher.PublishFavoriteEvent(event); err != nil {
		logger.Warn().Err(err).Str("event_id", event.ID).Msg("failed to publish favorite event")
	}
}
