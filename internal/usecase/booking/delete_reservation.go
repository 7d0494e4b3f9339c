package booking

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/table-booking/internal/audit"
	domain "github.com/BruksfildServices01/table-booking/internal/domain/booking"
)

const MessageReservationDeleted = "Reservation deleted successfully"

type DeleteReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteReservation {
	return &DeleteReservation{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteReservation) Execute(
	ctx context.Context,
	reservationID uint,
) error {

	err := uc.repo.WithinTransaction(ctx, func(tx domain.Repository) error {
		res, err := tx.GetReservationByID(ctx, reservationID)
		if err != nil {
			return err
		}

		return tx.DeleteReservation(ctx, res.ID)
	})
	if errors.Is(err, domain.ErrRecordNotFound) {
		return domain.ErrReservationMissing
	}
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "reservation_deleted",
		Entity:   "reservation",
		EntityID: &reservationID,
	})

	return nil
}
