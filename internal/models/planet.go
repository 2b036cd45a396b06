package models

// Planet is a catalog entry users can mark as favorite.
type Planet struct {
	ID             uint    `json:"id" gorm:"primaryKey"`
	Name           string  `json:"name" gorm:"type:varchar(250);not null" validate:"required,max=250"`
	Population     *string `json:"population" gorm:"type:varchar(250)" validate:"omitempty,max=250"`
	RotationPeriod *int    `json:"rotation_period"`
	OrbitalPeriod  *int    `json:"orbital_period"`
	SurfaceWater   *int    `json:"surface_water"`
	Climate        *string `json:"climate" gorm:"type:varchar(250)" validate:"omitempty,max=250"`
	Terrain        *string `json:"terrain" gorm:"type:varchar(250)" validate:"omitempty,max=250"`
	Gravity        *string `json:"gravity" gorm:"type:varchar(250)" validate:"omitempty,max=250"`
}
