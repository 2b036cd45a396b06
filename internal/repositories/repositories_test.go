package repositories_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"favorites/internal/apperror"
	"favorites/internal/database"
	"favorites/internal/models"
	"favorites/internal/repositories"
)

type repos struct {
	planets    *repositories.GORMPlanetRepository
	characters *repositories.GORMCharacterRepository
	users      *repositories.GORMUserRepository
}

func setupRepos(t *testing.T) repos {
	t.Helper()
	db, err := database.OpenInMemory(uuid.NewString())
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return repos{
		planets:    repositories.NewGORMPlanetRepository(db),
		characters: repositories.NewGORMCharacterRepository(db),
		users:      repositories.NewGORMUserRepository(db),
	}
}

func newUser(t *testing.T, r repos) *models.User {
	t.Helper()
	user := &models.User{Username: "Karina", Email: "prueba@example.com", Password: "1"}
	require.NoError(t, r.users.Create(context.Background(), user))
	return user
}

func TestPlanetRepository(t *testing.T) {
	ctx := context.Background()
	r := setupRepos(t)

	planets, err := r.planets.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, planets)

	earth := &models.Planet{Name: "Earth"}
	pluton := &models.Planet{Name: "Pluton"}
	require.NoError(t, r.planets.Create(ctx, earth))
	require.NoError(t, r.planets.Create(ctx, pluton))
	assert.NotZero(t, earth.ID)

	planets, err = r.planets.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, planets, 2)
	assert.Equal(t, "Earth", planets[0].Name)

	got, err := r.planets.GetByID(ctx, pluton.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pluton", got.Name)

	_, err = r.planets.GetByID(ctx, 999)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestCharacterRepository(t *testing.T) {
	ctx := context.Background()
	r := setupRepos(t)

	luke := &models.Character{Name: "Luke Skywalker"}
	require.NoError(t, r.characters.Create(ctx, luke))

	got, err := r.characters.GetByID(ctx, luke.ID)
	require.NoError(t, err)
	assert.Equal(t, "Luke Skywalker", got.Name)
	assert.Nil(t, got.Gender)

	all, err := r.characters.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = r.characters.GetByID(ctx, 42)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestUserCreateWithFavorites(t *testing.T) {
	ctx := context.Background()
	r := setupRepos(t)

	user := &models.User{
		Username:           "Karina",
		Email:              "prueba@example.com",
		Password:           "1",
		FavoritePlanets:    []models.Planet{{Name: "Earth"}, {Name: "Pluton"}},
		FavoriteCharacters: []models.Character{{Name: "Luke Skywalker"}},
	}
	require.NoError(t, r.users.Create(ctx, user))

	loaded, err := r.users.GetWithFavorites(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Luke Skywalker", "Earth", "Pluton"}, loaded.FavoriteNames())

	plain, err := r.users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, plain.FavoritePlanets)

	users, err := r.users.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	_, err = r.users.GetWithFavorites(ctx, 77)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestFavoritePlanetIsASet(t *testing.T) {
	ctx := context.Background()
	r := setupRepos(t)
	user := newUser(t, r)
	earth := &models.Planet{Name: "Earth"}
	require.NoError(t, r.planets.Create(ctx, earth))

	require.NoError(t, r.users.AddFavoritePlanet(ctx, user.ID, earth.ID))
	require.NoError(t, r.users.AddFavoritePlanet(ctx, user.ID, earth.ID))

	loaded, err := r.users.GetWithFavorites(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Earth"}, loaded.FavoriteNames())

	ok, err := r.users.IsFavoritePlanet(ctx, user.ID, earth.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, r.users.RemoveFavoritePlanet(ctx, user.ID, earth.ID))
	ok, err = r.users.IsFavoritePlanet(ctx, user.ID, earth.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	err = r.users.RemoveFavoritePlanet(ctx, user.ID, earth.ID)
	assert.True(t, errors.Is(err, apperror.ErrInvalidAssociation))
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestFavoriteCharacterAddRemove(t *testing.T) {
	ctx := context.Background()
	r := setupRepos(t)
	user := newUser(t, r)
	leia := &models.Character{Name: "Princess Leia"}
	require.NoError(t, r.characters.Create(ctx, leia))

	err := r.users.RemoveFavoriteCharacter(ctx, user.ID, leia.ID)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))

	require.NoError(t, r.users.AddFavoriteCharacter(ctx, user.ID, leia.ID))
	require.NoError(t, r.users.AddFavoriteCharacter(ctx, user.ID, leia.ID))
	ok, err := r.users.IsFavoriteCharacter(ctx, user.ID, leia.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, r.users.RemoveFavoriteCharacter(ctx, user.ID, leia.ID))
	loaded, err := r.users.GetWithFavorites(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, loaded.FavoriteNames())
}
