package api

import (
	"log/slog"
	"net/http"

	"barista-cafe-api/internal/handler/httperr"
	"barista-cafe-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "Invalid request format"
	msgValidationFailed = "Validation failed"
	msgBookingNotFound  = "Booking not found"
	msgSlotFullyBooked  = "This time slot is fully booked. Please choose another time."
	msgInvalidStatus    = "Invalid status"
)

// abortWithStorageError answers 500 with the route's fallback message.
// Timeouts are logged apart from other storage failures.
func abortWithStorageError(c *gin.Context, err error, fallback string) {
	if errs.Is(err, errs.ErrStorageTimeout) {
		slog.WarnContext(c.Request.Context(), "storage timeout",
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()))
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
}
