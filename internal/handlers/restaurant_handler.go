package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/table-booking/internal/httperr"
	"github.com/BruksfildServices01/table-booking/internal/httpresp"
	ucBooking "github.com/BruksfildServices01/table-booking/internal/usecase/booking"
)

type RestaurantHandler struct {
	search *ucBooking.SearchRestaurants
}

func NewRestaurantHandler(search *ucBooking.SearchRestaurants) *RestaurantHandler {
	return &RestaurantHandler{search: search}
}

// GET /api/restaurants/search?user_ids=1,2&datetime=2024-03-20T19:30:00
func (h *RestaurantHandler) Search(c *gin.Context) {
	results, err := h.search.Execute(
		c.Request.Context(),
		ucBooking.SearchRestaurantsInput{
			UserIDs:  c.Query("user_ids"),
			Datetime: c.Query("datetime"),
		},
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, results)
}
