package models

import "time"

// FavoriteKind names which join relation a favorite lives in.
type FavoriteKind string

const (
	KindPlanet    FavoriteKind = "planet"
	KindCharacter FavoriteKind = "character"
)

// FavoriteAction is the mutation recorded in a FavoriteEvent.
type FavoriteAction string

const (
	ActionAdded   FavoriteAction = "added"
	ActionRemoved FavoriteAction = "removed"
)

// FavoriteEvent is published to the broker after a favorite mutation commits.
type FavoriteEvent struct {
	ID         string         `json:"id"`
	Action     FavoriteAction `json:"action"`
	Kind       FavoriteKind   `json:"kind"`
	UserID     uint           `json:"user_id"`
	TargetID   uint           `json:"target_id"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// RoutingKey is the routing key the event is published under,
// e.g. "favorite.planet.added".
func (e FavoriteEvent) RoutingKey() string {
	return "favorite." + string(e.Kind) + "." + string(e.Action)
}
