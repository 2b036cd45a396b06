package repositories

// favoritePlanet is a row of the favorite_planets join table. The table
// itself is created from the many2many tag on models.User.
type favoritePlanet struct {
	UserID   uint `gorm:"primaryKey"`
	PlanetID uint `gorm:"primaryKey"`
}

func (favoritePlanet) TableName() string {
	return "favorite_planets"
}

// favoriteCharacter is a row of the favorite_characters join table.
type favoriteCharacter struct {
	UserID      uint `gorm:"primaryKey"`
	CharacterID uint `gorm:"primaryKey"`
}

func (favoriteCharacter) TableName() string {
	return "favorite_characters"
}
