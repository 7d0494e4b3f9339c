package booking

import (
	"context"
	"log"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/table-booking/internal/domain/booking"
	"github.com/BruksfildServices01/table-booking/internal/dto"
	"github.com/BruksfildServices01/table-booking/internal/models"
	"github.com/BruksfildServices01/table-booking/internal/timezone"
	"github.com/BruksfildServices01/table-booking/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type SearchRestaurantsInput struct {
	UserIDs  string // comma-separated
	Datetime string // ISO-8601
}

type SearchOptions struct {
	// MatchUnrestrictedGroups lets a group with no dietary restrictions
	// match every restaurant instead of none.
	MatchUnrestrictedGroups bool
}

// ======================================================
// USE CASE
// ======================================================

type SearchRestaurants struct {
	repo         domain.Repository
	availability *AvailabilityChecker
	conflicts    *ConflictDetector
	loc          *time.Location
	opts         SearchOptions
}

func NewSearchRestaurants(
	repo domain.Repository,
	availability *AvailabilityChecker,
	conflicts *ConflictDetector,
	loc *time.Location,
	opts SearchOptions,
) *SearchRestaurants {
	return &SearchRestaurants{
		repo:         repo,
		availability: availability,
		conflicts:    conflicts,
		loc:          loc,
		opts:         opts,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *SearchRestaurants) Execute(
	ctx context.Context,
	in SearchRestaurantsInput,
) ([]dto.RestaurantMatchDTO, error) {

	// --------------------------------------------------
	// 1. Input
	// --------------------------------------------------
	if strings.TrimSpace(in.UserIDs) == "" {
		return nil, domain.ErrMissingUserIDs
	}
	if strings.TrimSpace(in.Datetime) == "" {
		return nil, domain.ErrMissingDatetime
	}

	ids, err := validators.ParseIDList(in.UserIDs)
	if err != nil {
		return nil, domain.ErrInvalidUserIDs
	}
	ids = validators.UniqueIDs(ids)

	start, err := timezone.ParseISO(in.Datetime, uc.loc)
	if err != nil {
		return nil, domain.ErrInvalidDatetime
	}

	// --------------------------------------------------
	// 2. Users
	// --------------------------------------------------
	users, err := uc.repo.FindUsersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(users) != len(ids) {
		log.Printf("search: some users not found, requested %v, found %d", ids, len(users))
		return nil, domain.ErrUsersNotFound
	}
	groupSize := len(users)

	// --------------------------------------------------
	// 3. Group requirements (union)
	// --------------------------------------------------
	names, err := uc.repo.ListRestrictionNames(ctx, ids)
	if err != nil {
		return nil, err
	}
	requirements := domain.GroupRequirements(names)

	// --------------------------------------------------
	// 4. Candidate restaurants
	// --------------------------------------------------
	var candidates []models.Restaurant
	if len(requirements) == 0 && uc.opts.MatchUnrestrictedGroups {
		candidates, err = uc.repo.ListRestaurants(ctx)
	} else {
		candidates, err = uc.repo.ListRestaurantsEndorsedFor(ctx, requirements)
	}
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. First free table per restaurant
	// --------------------------------------------------
	results := make([]dto.RestaurantMatchDTO, 0, len(candidates))
	var groupConflicts map[uint][]dto.ConflictDTO

	for _, restaurant := range candidates {
		table, err := uc.firstAvailableTable(ctx, restaurant.ID, groupSize, start)
		if err != nil {
			return nil, err
		}
		if table == nil {
			continue
		}

		endorsements, err := uc.repo.ListEndorsementNames(ctx, restaurant.ID)
		if err != nil {
			return nil, err
		}

		// conflicts depend only on the users and the interval
		if groupConflicts == nil {
			groupConflicts, err = uc.conflicts.Detect(ctx, ids, start)
			if err != nil {
				return nil, err
			}
		}

		match := dto.RestaurantMatchDTO{
			ID:           restaurant.ID,
			Name:         restaurant.Name,
			Endorsements: endorsements,
			AvailableTable: dto.TableDTO{
				ID:       table.ID,
				Capacity: table.Capacity,
			},
		}
		if len(groupConflicts) > 0 {
			match.UserConflicts = groupConflicts
		}

		results = append(results, match)
	}

	log.Printf("search: %d users, %d requirements, %d of %d restaurants available",
		groupSize, len(requirements), len(results), len(candidates))

	return results, nil
}

func (uc *SearchRestaurants) firstAvailableTable(
	ctx context.Context,
	restaurantID uint,
	groupSize int,
	start time.Time,
) (*models.Table, error) {

	tables, err := uc.repo.ListTablesWithCapacity(ctx, restaurantID, groupSize)
	if err != nil {
		return nil, err
	}

	for i := range tables {
		ok, err := uc.availability.IsAvailable(ctx, tables[i].ID, start)
		if err != nil {
			return nil, err
		}
		if ok {
			return &tables[i], nil
		}
	}

	return nil, nil
}
