package models

import "time"

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TableID   uint      `gorm:"index;not null" json:"table_id"`
	StartTime time.Time `gorm:"index;not null" json:"start_time"`

	// Guests without a user account; not counted against table capacity.
	AdditionalGuests int `gorm:"not null;default:0" json:"additional_guests"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ReservationUser struct {
	ReservationID uint `gorm:"primaryKey;autoIncrement:false" json:"reservation_id"`
	UserID        uint `gorm:"primaryKey;autoIncrement:false;index" json:"user_id"`
}

func (ReservationUser) TableName() string {
	return "reservation_users"
}
