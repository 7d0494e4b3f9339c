package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/table-booking/internal/domain/booking"
	"github.com/BruksfildServices01/table-booking/internal/dto"
	"github.com/BruksfildServices01/table-booking/internal/timezone"
)

// ConflictDetector lists, per user, the reservations that overlap a
// candidate interval, whatever table or restaurant they are on.
type ConflictDetector struct {
	repo     domain.Repository
	duration time.Duration
	loc      *time.Location
}

func NewConflictDetector(
	repo domain.Repository,
	duration time.Duration,
	loc *time.Location,
) *ConflictDetector {
	return &ConflictDetector{
		repo:     repo,
		duration: duration,
		loc:      loc,
	}
}

// Detect omits users without conflicts; the result is empty, never nil.
func (d *ConflictDetector) Detect(
	ctx context.Context,
	userIDs []uint,
	start time.Time,
) (map[uint][]dto.ConflictDTO, error) {

	from, to := domain.OverlapWindow(start, d.duration)

	rows, err := d.repo.ListUserReservationsStartingWithin(ctx, userIDs, from, to)
	if err != nil {
		return nil, err
	}

	conflicts := make(map[uint][]dto.ConflictDTO)
	for _, row := range rows {
		if !domain.Overlaps(row.StartTime, start, d.duration) {
			continue
		}
		conflicts[row.UserID] = append(conflicts[row.UserID], dto.ConflictDTO{
			Restaurant: row.RestaurantName,
			Datetime:   timezone.FormatISO(row.StartTime, d.loc),
		})
	}

	return conflicts, nil
}
