package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/table-booking/internal/domain/booking"
)

// AvailabilityChecker answers whether a single table is free for
// [start, start+duration).
type AvailabilityChecker struct {
	repo     domain.Repository
	duration time.Duration
}

func NewAvailabilityChecker(
	repo domain.Repository,
	duration time.Duration,
) *AvailabilityChecker {
	return &AvailabilityChecker{
		repo:     repo,
		duration: duration,
	}
}

func (c *AvailabilityChecker) IsAvailable(
	ctx context.Context,
	tableID uint,
	start time.Time,
) (bool, error) {

	from, to := domain.OverlapWindow(start, c.duration)

	count, err := c.repo.CountTableReservationsStartingWithin(ctx, tableID, from, to)
	if err != nil {
		return false, err
	}

	return count == 0, nil
}

// WithRepository returns a checker bound to repo, e.g. a transaction.
func (c *AvailabilityChecker) WithRepository(repo domain.Repository) *AvailabilityChecker {
	return &AvailabilityChecker{
		repo:     repo,
		duration: c.duration,
	}
}
