package models

// User is the owner of the two favorite collections.
type User struct {
	ID                 uint        `json:"id" gorm:"primaryKey"`
	Username           string      `json:"username" gorm:"type:varchar(250);not null" validate:"required,max=250"`
	Email              string      `json:"email" gorm:"type:varchar(250);not null" validate:"required,email,max=250"`
	Password           string      `json:"-" gorm:"type:varchar(250);not null" validate:"required,max=250"` // No json tag for security
	FavoritePlanets    []Planet    `json:"-" gorm:"many2many:favorite_planets;constraint:OnDelete:CASCADE"`
	FavoriteCharacters []Character `json:"-" gorm:"many2many:favorite_characters;constraint:OnDelete:CASCADE"`
}

// FavoriteNames returns the names of the user's favorite characters followed
// by the names of their favorite planets.
func (u *User) FavoriteNames() []string {
	names := make([]string, 0, len(u.FavoriteCharacters)+len(u.FavoritePlanets))
	for _, c := range u.FavoriteCharacters {
		names = append(names, c.Name)
	}
	for _, p := range u.FavoritePlanets {
		names = append(names, p.Name)
	}
	return names
}
