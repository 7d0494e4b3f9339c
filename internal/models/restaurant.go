package models

import "time"

type Restaurant struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Address string `gorm:"size:200;not null" json:"address"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RestaurantEndorsement struct {
	RestaurantID  uint `gorm:"primaryKey;autoIncrement:false" json:"restaurant_id"`
	EndorsementID uint `gorm:"primaryKey;autoIncrement:false" json:"endorsement_id"`
}

func (RestaurantEndorsement) TableName() string {
	return "restaurant_endorsements"
}

type Table struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	RestaurantID uint `gorm:"index;not null" json:"restaurant_id"`
	Capacity     int  `gorm:"not null" json:"capacity"`
}
