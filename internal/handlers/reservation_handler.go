package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/table-booking/internal/domain/booking"
	"github.com/BruksfildServices01/table-booking/internal/httperr"
	"github.com/BruksfildServices01/table-booking/internal/httpresp"
	ucBooking "github.com/BruksfildServices01/table-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	create *ucBooking.CreateReservation
	remove *ucBooking.DeleteReservation
}

func NewReservationHandler(
	create *ucBooking.CreateReservation,
	remove *ucBooking.DeleteReservation,
) *ReservationHandler {
	return &ReservationHandler{
		create: create,
		remove: remove,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	RestaurantID     uint   `json:"restaurant_id" binding:"required"`
	UserIDs          []uint `json:"user_ids" binding:"required,min=1"`
	Datetime         string `json:"datetime" binding:"required"`
	AdditionalGuests *int   `json:"additional_guests"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, domain.ErrMissingFields)
		return
	}

	guests := 0
	if req.AdditionalGuests != nil {
		guests = *req.AdditionalGuests
	}

	out, err := h.create.Execute(
		c.Request.Context(),
		ucBooking.CreateReservationInput{
			RestaurantID:     req.RestaurantID,
			UserIDs:          req.UserIDs,
			Datetime:         req.Datetime,
			AdditionalGuests: guests,
		},
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, out)
}

// ======================================================
// DELETE
// ======================================================

func (h *ReservationHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.Respond(c, domain.ErrReservationMissing)
		return
	}

	if err := h.remove.Execute(c.Request.Context(), uint(id)); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, ucBooking.MessageReservationDeleted)
}
