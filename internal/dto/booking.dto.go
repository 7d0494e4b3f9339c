package dto

type TableDTO struct {
	ID       uint `json:"id"`
	Capacity int  `json:"capacity"`
}

type ConflictDTO struct {
	Restaurant string `json:"restaurant"`
	Datetime   string `json:"datetime"`
}

type RestaurantMatchDTO struct {
	ID             uint                   `json:"id"`
	Name           string                 `json:"name"`
	Endorsements   []string               `json:"endorsements"`
	AvailableTable TableDTO               `json:"available_table"`
	UserConflicts  map[uint][]ConflictDTO `json:"user_conflicts,omitempty"`
}

type UserSummaryDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ReservationDTO struct {
	ID               uint             `json:"id"`
	Restaurant       string           `json:"restaurant"`
	Table            TableDTO         `json:"table"`
	Datetime         string           `json:"datetime"`
	Users            []UserSummaryDTO `json:"users"`
	AdditionalGuests int              `json:"additional_guests"`
}
