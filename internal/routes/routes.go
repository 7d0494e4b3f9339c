package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/table-booking/internal/audit"
	"github.com/BruksfildServices01/table-booking/internal/config"
	"github.com/BruksfildServices01/table-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/table-booking/internal/infra/repository"
	"github.com/BruksfildServices01/table-booking/internal/lock"
	"github.com/BruksfildServices01/table-booking/internal/middleware"
	"github.com/BruksfildServices01/table-booking/internal/timezone"
	ucBooking "github.com/BruksfildServices01/table-booking/internal/usecase/booking"
)

// Deps are the process-wide collaborators built in main.
type Deps struct {
	Locker lock.Locker
	Audit  *audit.Dispatcher
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, deps Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	loc := timezone.Location(cfg.Timezone)

	// ======================================================
	// USE CASES
	// ======================================================
	availability := ucBooking.NewAvailabilityChecker(bookingRepo, cfg.ReservationDuration)
	conflicts := ucBooking.NewConflictDetector(bookingRepo, cfg.ReservationDuration, loc)

	searchUC := ucBooking.NewSearchRestaurants(
		bookingRepo,
		availability,
		conflicts,
		loc,
		ucBooking.SearchOptions{
			MatchUnrestrictedGroups: cfg.MatchUnrestrictedGroups,
		},
	)

	createReservationUC := ucBooking.NewCreateReservation(
		bookingRepo,
		availability,
		deps.Locker,
		deps.Audit,
		loc,
	)

	deleteReservationUC := ucBooking.NewDeleteReservation(
		bookingRepo,
		deps.Audit,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	restaurantHandler := handlers.NewRestaurantHandler(searchUC)
	reservationHandler := handlers.NewReservationHandler(
		createReservationUC,
		deleteReservationUC,
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/restaurants/search", restaurantHandler.Search)

		api.POST("/reservations", reservationHandler.Create)
		api.DELETE("/reservations/:id", reservationHandler.Delete)
	}
}
