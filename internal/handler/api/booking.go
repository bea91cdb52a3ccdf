package api

import (
	"net/http"

	"barista-cafe-api/internal/domain/booking"
	reqdto "barista-cafe-api/internal/handler/dto/request"
	resdto "barista-cafe-api/internal/handler/dto/response"
	"barista-cafe-api/internal/handler/httperr"
	"barista-cafe-api/internal/pkg/errs"
	"barista-cafe-api/internal/usecase/commands"
	"barista-cafe-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary List bookings
// @Description List all bookings, newest date and time first
// @Tags bookings
// @Produce json
// @Success 200 {array} resdto.BookingResponse
// @Failure 500 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithStorageError(c, err, "Failed to fetch bookings")
		return
	}

	resp, err := resdto.FromBookingViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch bookings", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Create booking
// @Description Create a pending booking if the slot has capacity
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}

	input, fieldErrs := req.ToInput()
	if len(fieldErrs) > 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.ErrDomainValidation, msgValidationFailed, fieldErrs)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), input)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrCapacityExceeded):
			httperr.AbortWithError(c, http.StatusConflict, err, msgSlotFullyBooked, nil)
		case errs.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, msgValidationFailed, nil)
		default:
			abortWithStorageError(c, err, "Failed to create booking")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateBookingResponse{
		Message:   "Booking created successfully",
		BookingID: result.BookingID,
	})
}

// @Summary Get booking
// @Description Get a booking by ID
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, msgBookingNotFound, nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, msgBookingNotFound, nil)
			return
		}
		abortWithStorageError(c, err, "Failed to fetch booking")
		return
	}

	resp, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch booking", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Update booking status
// @Description Move a booking to any of pending, confirmed, cancelled, completed
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "New status"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	status, err := booking.ParseStatus(req.Status)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidStatus, nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, msgBookingNotFound, nil)
		return
	}

	if err := h.cmds.UpdateStatus(c.Request.Context(), id, status.String()); err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidStatus):
			httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidStatus, nil)
		case errs.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, msgBookingNotFound, nil)
		default:
			abortWithStorageError(c, err, "Failed to update booking status")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Booking status updated successfully"})
}
