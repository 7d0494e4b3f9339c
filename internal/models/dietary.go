package models

// DietaryRestriction and Endorsement share one name space: a restaurant
// endorsed "Vegan-Friendly" serves a user restricted to "Vegan-Friendly".

type DietaryRestriction struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Category string `gorm:"size:50" json:"category,omitempty"`
}

type Endorsement struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Category string `gorm:"size:50" json:"category,omitempty"`
}
