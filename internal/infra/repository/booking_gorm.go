package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/table-booking/internal/domain/booking"
	"github.com/BruksfildServices01/table-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Transactions
// --------------------------------------------------

func (r *BookingGormRepository) WithinTransaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *BookingGormRepository) FindUsersByIDs(
	ctx context.Context,
	ids []uint,
) ([]models.User, error) {

	users := []models.User{}
	if len(ids) == 0 {
		return users, nil
	}

	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *BookingGormRepository) ListRestrictionNames(
	ctx context.Context,
	userIDs []uint,
) ([]string, error) {

	names := []string{}
	if len(userIDs) == 0 {
		return names, nil
	}

	if err := r.db.WithContext(ctx).
		Model(&models.DietaryRestriction{}).
		Joins("JOIN user_dietary_restrictions udr ON udr.dietary_restriction_id = dietary_restrictions.id").
		Where("udr.user_id IN ?", userIDs).
		Order("dietary_restrictions.name ASC").
		Pluck("dietary_restrictions.name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

// --------------------------------------------------
// Restaurants
// --------------------------------------------------

func (r *BookingGormRepository) LockRestaurant(
	ctx context.Context,
	id uint,
) (*models.Restaurant, error) {

	q := r.db.WithContext(ctx)
	// SQLite has no row locks; a single writer already serialises it
	if q.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var restaurant models.Restaurant
	if err := q.First(&restaurant, id).Error; err != nil {
		return nil, translate(err)
	}
	return &restaurant, nil
}

func (r *BookingGormRepository) ListRestaurants(
	ctx context.Context,
) ([]models.Restaurant, error) {

	var restaurants []models.Restaurant
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *BookingGormRepository) ListRestaurantsEndorsedFor(
	ctx context.Context,
	names []string,
) ([]models.Restaurant, error) {

	restaurants := []models.Restaurant{}
	if len(names) == 0 {
		return restaurants, nil
	}

	endorsed := r.db.
		Table("restaurant_endorsements re").
		Select("re.restaurant_id").
		Joins("JOIN endorsements e ON e.id = re.endorsement_id").
		Where("e.name IN ?", names)

	if err := r.db.WithContext(ctx).
		Where("id IN (?)", endorsed).
		Order("id ASC").
		Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *BookingGormRepository) ListEndorsementNames(
	ctx context.Context,
	restaurantID uint,
) ([]string, error) {

	names := []string{}
	if err := r.db.WithContext(ctx).
		Model(&models.Endorsement{}).
		Joins("JOIN restaurant_endorsements re ON re.endorsement_id = endorsements.id").
		Where("re.restaurant_id = ?", restaurantID).
		Order("endorsements.id ASC").
		Pluck("endorsements.name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

// --------------------------------------------------
// Tables
// --------------------------------------------------

func (r *BookingGormRepository) ListTablesWithCapacity(
	ctx context.Context,
	restaurantID uint,
	minCapacity int,
) ([]models.Table, error) {

	var tables []models.Table
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND capacity >= ?", restaurantID, minCapacity).
		Order("id ASC").
		Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

// --------------------------------------------------
// Reservations
// --------------------------------------------------

func (r *BookingGormRepository) CountTableReservationsStartingWithin(
	ctx context.Context,
	tableID uint,
	from time.Time,
	to time.Time,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where(
			"table_id = ? AND start_time > ? AND start_time < ?",
			tableID,
			from.UTC(),
			to.UTC(),
		).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *BookingGormRepository) ListUserReservationsStartingWithin(
	ctx context.Context,
	userIDs []uint,
	from time.Time,
	to time.Time,
) ([]domain.UserReservation, error) {

	rows := []domain.UserReservation{}
	if len(userIDs) == 0 {
		return rows, nil
	}

	if err := r.db.WithContext(ctx).
		Table("reservation_users ru").
		Select(
			"ru.user_id AS user_id, r.id AS reservation_id, " +
				"r.start_time AS start_time, rs.name AS restaurant_name",
		).
		Joins("JOIN reservations r ON r.id = ru.reservation_id").
		Joins("JOIN tables t ON t.id = r.table_id").
		Joins("JOIN restaurants rs ON rs.id = t.restaurant_id").
		Where(
			"ru.user_id IN ? AND r.start_time > ? AND r.start_time < ?",
			userIDs,
			from.UTC(),
			to.UTC(),
		).
		Order("r.start_time ASC, r.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *BookingGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
	userIDs []uint,
) error {

	db := r.db.WithContext(ctx)

	res.StartTime = res.StartTime.UTC()
	if err := db.Create(res).Error; err != nil {
		return err
	}

	if len(userIDs) == 0 {
		return nil
	}

	links := make([]models.ReservationUser, 0, len(userIDs))
	for _, id := range userIDs {
		links = append(links, models.ReservationUser{
			ReservationID: res.ID,
			UserID:        id,
		})
	}

	return db.Create(&links).Error
}

func (r *BookingGormRepository) GetReservationByID(
	ctx context.Context,
	id uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).First(&res, id).Error; err != nil {
		return nil, translate(err)
	}
	return &res, nil
}

func (r *BookingGormRepository) DeleteReservation(
	ctx context.Context,
	id uint,
) error {

	db := r.db.WithContext(ctx)

	if err := db.
		Where("reservation_id = ?", id).
		Delete(&models.ReservationUser{}).Error; err != nil {
		return err
	}

	result := db.Delete(&models.Reservation{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrRecordNotFound
	}
	return err
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
