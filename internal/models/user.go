package models

import "time"

type User struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:120;uniqueIndex;not null" json:"email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserDietaryRestriction links a user to a restriction they require.
type UserDietaryRestriction struct {
	UserID               uint `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	DietaryRestrictionID uint `gorm:"primaryKey;autoIncrement:false" json:"dietary_restriction_id"`
}

func (UserDietaryRestriction) TableName() string {
	return "user_dietary_restrictions"
}
