package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"favorites/internal/models"
)

func keysOf(t *testing.T, v interface{}) []string {
	t.Helper()
	body, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &m))
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func TestUserSerializationOmitsPasswordAndFavorites(t *testing.T) {
	user := models.User{
		ID:              1,
		Username:        "Karina",
		Email:           "prueba@example.com",
		Password:        "1",
		FavoritePlanets: []models.Planet{{ID: 1, Name: "Earth"}},
	}

	assert.ElementsMatch(t, []string{"id", "username", "email"}, keysOf(t, user))
}

func TestPlanetSerializationKeySet(t *testing.T) {
	rotation, orbital := 24, 365
	planet := models.Planet{ID: 1, Name: "Earth", RotationPeriod: &rotation, OrbitalPeriod: &orbital}

	assert.ElementsMatch(t, []string{
		"id", "name", "population", "rotation_period", "orbital_period",
		"surface_water", "climate", "terrain", "gravity",
	}, keysOf(t, planet))

	body, err := json.Marshal(planet)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"orbital_period":365`)
	assert.Contains(t, string(body), `"population":null`)
}

func TestCharacterSerializationKeySet(t *testing.T) {
	assert.ElementsMatch(t, []string{
		"id", "name", "mass", "hair_color", "skin_color",
		"eye_color", "birth_year", "gender",
	}, keysOf(t, models.Character{ID: 2, Name: "Luke Skywalker"}))
}

func TestFavoriteNamesListsCharactersBeforePlanets(t *testing.T) {
	user := models.User{
		FavoritePlanets:    []models.Planet{{Name: "Earth"}, {Name: "Pluton"}},
		FavoriteCharacters: []models.Character{{Name: "Luke Skywalker"}},
	}

	assert.Equal(t, []string{"Luke Skywalker", "Earth", "Pluton"}, user.FavoriteNames())
	assert.Empty(t, (&models.User{}).FavoriteNames())
}

func TestFavoriteEventRoutingKey(t *testing.T) {
	event := models.FavoriteEvent{Kind: models.KindPlanet, Action: models.ActionRemoved}
	assert.Equal(t, "favorite.planet.removed", event.RoutingKey())
}
