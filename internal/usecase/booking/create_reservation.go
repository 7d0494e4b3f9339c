package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/table-booking/internal/audit"
	domain "github.com/BruksfildServices01/table-booking/internal/domain/booking"
	"github.com/BruksfildServices01/table-booking/internal/dto"
	"github.com/BruksfildServices01/table-booking/internal/lock"
	"github.com/BruksfildServices01/table-booking/internal/models"
	"github.com/BruksfildServices01/table-booking/internal/timezone"
	"github.com/BruksfildServices01/table-booking/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	RestaurantID     uint
	UserIDs          []uint
	Datetime         string
	AdditionalGuests int
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo         domain.Repository
	availability *AvailabilityChecker
	locker       lock.Locker
	audit        *audit.Dispatcher
	loc          *time.Location
}

func NewCreateReservation(
	repo domain.Repository,
	availability *AvailabilityChecker,
	locker lock.Locker,
	audit *audit.Dispatcher,
	loc *time.Location,
) *CreateReservation {
	return &CreateReservation{
		repo:         repo,
		availability: availability,
		locker:       locker,
		audit:        audit,
		loc:          loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*dto.ReservationDTO, error) {

	// --------------------------------------------------
	// 1. Input
	// --------------------------------------------------
	if in.RestaurantID == 0 || len(in.UserIDs) == 0 || strings.TrimSpace(in.Datetime) == "" {
		return nil, domain.ErrMissingFields
	}
	if in.AdditionalGuests < 0 {
		return nil, domain.ErrInvalidGuests
	}

	start, err := timezone.ParseISO(in.Datetime, uc.loc)
	if err != nil {
		return nil, domain.ErrInvalidDatetime
	}

	ids := validators.UniqueIDs(in.UserIDs)

	// --------------------------------------------------
	// 2. Users
	// --------------------------------------------------
	users, err := uc.repo.FindUsersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(users) != len(ids) {
		return nil, domain.ErrUsersNotFound
	}

	// --------------------------------------------------
	// 3. Table pick + insert, serialised per restaurant
	//    (process or redis lock, plus a row lock on the restaurant)
	// --------------------------------------------------
	release, err := uc.locker.Lock(ctx, fmt.Sprintf("restaurant:%d", in.RestaurantID))
	if err != nil {
		return nil, err
	}
	defer release()

	var (
		table       *models.Table
		restaurant  *models.Restaurant
		reservation *models.Reservation
	)

	err = uc.repo.WithinTransaction(ctx, func(tx domain.Repository) error {
		var err error
		restaurant, err = tx.LockRestaurant(ctx, in.RestaurantID)
		if errors.Is(err, domain.ErrRecordNotFound) {
			// an unknown restaurant has no table of any size
			return domain.ErrNoSuitableTable
		}
		if err != nil {
			return err
		}

		tables, err := tx.ListTablesWithCapacity(ctx, in.RestaurantID, len(users))
		if err != nil {
			return err
		}
		if len(tables) == 0 {
			return domain.ErrNoSuitableTable
		}

		checker := uc.availability.WithRepository(tx)
		for i := range tables {
			ok, err := checker.IsAvailable(ctx, tables[i].ID, start)
			if err != nil {
				return err
			}
			if ok {
				table = &tables[i]
				break
			}
		}
		if table == nil {
			return domain.ErrNoAvailableTable
		}

		reservation = &models.Reservation{
			TableID:          table.ID,
			StartTime:        start,
			AdditionalGuests: in.AdditionalGuests,
		}
		return tx.CreateReservation(ctx, reservation, ids)
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: &reservation.ID,
		Metadata: map[string]any{
			"restaurant_id": restaurant.ID,
			"table_id":      table.ID,
			"user_ids":      ids,
			"start":         reservation.StartTime,
		},
	})

	out := &dto.ReservationDTO{
		ID:         reservation.ID,
		Restaurant: restaurant.Name,
		Table: dto.TableDTO{
			ID:       table.ID,
			Capacity: table.Capacity,
		},
		Datetime:         timezone.FormatISO(reservation.StartTime, uc.loc),
		Users:            make([]dto.UserSummaryDTO, 0, len(users)),
		AdditionalGuests: reservation.AdditionalGuests,
	}
	for _, u := range users {
		out.Users = append(out.Users, dto.UserSummaryDTO{ID: u.ID, Name: u.Name})
	}

	return out, nil
}
