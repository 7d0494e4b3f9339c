package booking_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/table-booking/internal/audit"
	dbpkg "github.com/BruksfildServices01/table-booking/internal/db"
	"github.com/BruksfildServices01/table-booking/internal/infra/repository"
	"github.com/BruksfildServices01/table-booking/internal/lock"
	"github.com/BruksfildServices01/table-booking/internal/models"
	"github.com/BruksfildServices01/table-booking/internal/seed"
	ucBooking "github.com/BruksfildServices01/table-booking/internal/usecase/booking"
)

const duration = 2 * time.Hour

var at1930 = time.Date(2024, 3, 20, 19, 30, 0, 0, time.UTC)

type fixture struct {
	db       *gorm.DB
	repo     *repository.BookingGormRepository
	seeded   *seed.Result
	audit    *audit.Dispatcher
	search   *ucBooking.SearchRestaurants
	create   *ucBooking.CreateReservation
	remove   *ucBooking.DeleteReservation
	detector *ucBooking.ConflictDetector
	checker  *ucBooking.AvailabilityChecker
}

// setupTestDB opens a private in-memory SQLite database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := dbpkg.OpenSQLite("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("could not open database: %v", err)
	}
	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("could not migrate: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// Two users (Gluten Free, Vegetarian) and one restaurant endorsed for both
// with tables [4, 6]; a third user without restrictions; a Paleo-only
// restaurant with a single table of 8.
func testDataset() seed.Dataset {
	return seed.Dataset{
		Restrictions: []string{"Gluten Free", "Vegetarian", "Paleo"},
		Endorsements: []string{"Gluten Free", "Vegetarian", "Paleo"},
		Users: []seed.UserSeed{
			{Name: "Test User 1", Email: "test1@example.com", Restrictions: []string{"Gluten Free"}},
			{Name: "Test User 2", Email: "test2@example.com", Restrictions: []string{"Vegetarian"}},
			{Name: "Test User 3", Email: "test3@example.com"},
		},
		Restaurants: []seed.RestaurantSeed{
			{Name: "Test Restaurant", Address: "123 Test St", Endorsements: []string{"Gluten Free", "Vegetarian"}, Tables: []int{4, 6}},
			{Name: "Steak House", Address: "1 Grill Rd", Endorsements: []string{"Paleo"}, Tables: []int{8}},
		},
	}
}

func setupFixture(t *testing.T, opts ucBooking.SearchOptions) *fixture {
	t.Helper()

	db := setupTestDB(t)
	seeded, err := seed.Apply(context.Background(), db, testDataset())
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	repo := repository.NewBookingGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db), nil)
	t.Cleanup(dispatcher.Close)

	checker := ucBooking.NewAvailabilityChecker(repo, duration)
	detector := ucBooking.NewConflictDetector(repo, duration, time.UTC)

	return &fixture{
		db:       db,
		repo:     repo,
		seeded:   seeded,
		audit:    dispatcher,
		search:   ucBooking.NewSearchRestaurants(repo, checker, detector, time.UTC, opts),
		create:   ucBooking.NewCreateReservation(repo, checker, lock.NewLocal(), dispatcher, time.UTC),
		remove:   ucBooking.NewDeleteReservation(repo, dispatcher),
		detector: detector,
		checker:  checker,
	}
}

func (f *fixture) restaurantID(i int) uint {
	return f.seeded.RestaurantIDs[i]
}

func (f *fixture) tableID(restaurant, table int) uint {
	return f.seeded.TableIDs[f.restaurantID(restaurant)][table]
}

func (f *fixture) user(i int) uint {
	return f.seeded.UserIDs[i]
}

// book inserts a reservation directly, bypassing the use case.
func (f *fixture) book(t *testing.T, tableID uint, start time.Time, users ...uint) *models.Reservation {
	t.Helper()

	res := &models.Reservation{TableID: tableID, StartTime: start}
	if err := f.repo.CreateReservation(context.Background(), res, users); err != nil {
		t.Fatalf("book failed: %v", err)
	}
	return res
}
