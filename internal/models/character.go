package models

// Character is a catalog entry users can mark as favorite. It is served
// under the /people routes.
type Character struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	Name      string  `json:"name" gorm:"type:varchar(250);not null" validate:"required,max=250"`
	Mass      *string `json:"mass" gorm:"type:varchar(250)" validate:"omitempty,max=250"`
	HairColor *string `json:"hair_color" gorm:"type:varchar(250)" validate:"omitempty,max=250"`
	SkinColor *string `json:"skin_color" gorm:"type:varchar(250)" validate:"omitempty,max=250"`
	EyeColor  *string `json:"eye_color" gorm:"type:varchar(250)" validate:"omitempty,max=250"`
	BirthYear *string `json:"birth_year" gorm:"type:varchar(250)" validate:"omitempty,max=250"`
	Gender    *string `json:"gender" gorm:"type:varchar(250)" validate:"omitempty,max=250"`
}
