package booking

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/table-booking/internal/models"
)

var ErrRecordNotFound = errors.New("record not found")

// UserReservation is one reservation a user takes part in, with the name of
// the restaurant that owns its table.
type UserReservation struct {
	UserID         uint
	ReservationID  uint
	StartTime      time.Time
	RestaurantName string
}

// Repository exposes every cross-entity lookup explicitly; join tables are
// queried by id pairs, never loaded implicitly.
type Repository interface {
	// -------- Transactions --------
	WithinTransaction(
		ctx context.Context,
		fn func(tx Repository) error,
	) error

	// -------- Users --------
	FindUsersByIDs(
		ctx context.Context,
		ids []uint,
	) ([]models.User, error)

	ListRestrictionNames(
		ctx context.Context,
		userIDs []uint,
	) ([]string, error)

	// -------- Restaurants --------

	// LockRestaurant loads the restaurant and holds a row lock on it until
	// the surrounding transaction ends.
	LockRestaurant(
		ctx context.Context,
		id uint,
	) (*models.Restaurant, error)

	ListRestaurants(
		ctx context.Context,
	) ([]models.Restaurant, error)

	ListRestaurantsEndorsedFor(
		ctx context.Context,
		names []string,
	) ([]models.Restaurant, error)

	ListEndorsementNames(
		ctx context.Context,
		restaurantID uint,
	) ([]string, error)

	// -------- Tables --------
	ListTablesWithCapacity(
		ctx context.Context,
		restaurantID uint,
		minCapacity int,
	) ([]models.Table, error)

	// -------- Reservations --------
	CountTableReservationsStartingWithin(
		ctx context.Context,
		tableID uint,
		from time.Time,
		to time.Time,
	) (int64, error)

	ListUserReservationsStartingWithin(
		ctx context.Context,
		userIDs []uint,
		from time.Time,
		to time.Time,
	) ([]UserReservation, error)

	CreateReservation(
		ctx context.Context,
		r *models.Reservation,
		userIDs []uint,
	) error

	GetReservationByID(
		ctx context.Context,
		id uint,
	) (*models.Reservation, error)

	DeleteReservation(
		ctx context.Context,
		id uint,
	) error
}
