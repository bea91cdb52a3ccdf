package api

import (
	"net/http"

	"barista-cafe-api/internal/domain/booking"
	resdto "barista-cafe-api/internal/handler/dto/response"
	"barista-cafe-api/internal/handler/httperr"
	"barista-cafe-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Available slots
// @Description Half-hourly slots from 09:00 to 21:00 with their non-cancelled booking counts
// @Tags bookings
// @Produce json
// @Param date path string true "Calendar date, YYYY-MM-DD"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /available-slots/{date} [get]
func (h *AvailabilityHandler) List(c *gin.Context) {
	date, err := booking.ParseDate(c.Param("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Valid date is required", nil)
		return
	}

	slots, err := h.q.GetAvailableSlots(c.Request.Context(), date)
	if err != nil {
		abortWithStorageError(c, err, "Failed to fetch available slots")
		return
	}
	c.JSON(http.StatusOK, resdto.FromTimeSlots(slots))
}
