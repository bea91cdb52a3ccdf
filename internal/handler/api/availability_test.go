//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"barista-cafe-api/internal/domain/booking"
	"barista-cafe-api/internal/handler/api"
	"barista-cafe-api/internal/handler/middleware"
	resdto "barista-cafe-api/internal/handler/dto/response"
	"barista-cafe-api/internal/pkg/errs"
	"barista-cafe-api/tests/common/httptest"
	queriesmock "barista-cafe-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.router.GET("/api/available-slots/:date", api.NewAvailabilityHandler(s.mockQueries).List)
	s.router.GET("/api/health", api.Health)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestList() {
	ten, _ := booking.ParseTimeOfDay("10:00")

	s.Run("success: returns the full grid", func() {
		date, _ := booking.ParseDate("2025-06-01")
		slots := booking.ComputeAvailability(map[booking.TimeOfDay]int{ten: booking.SlotCapacity})
		s.mockQueries.EXPECT().GetAvailableSlots(gomock.Any(), date).Return(slots, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/available-slots/2025-06-01", nil)

		var body []resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 25)
		s.Equal(resdto.SlotResponse{Time: "09:00", Available: true, BookingsCount: 0}, body[0])
		s.Equal(resdto.SlotResponse{Time: "10:00", Available: false, BookingsCount: 5}, body[2])
		s.Equal("21:00", body[24].Time)
	})

	s.Run("error: malformed date returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/available-slots/june-first", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Valid date is required")
	})

	s.Run("error: storage failure returns 500", func() {
		s.mockQueries.EXPECT().GetAvailableSlots(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errDBDown, errs.ErrStorageFailure)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/available-slots/2025-06-01", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to fetch available slots")
	})

	s.Run("error: storage timeout returns 500 with fallback message", func() {
		s.mockQueries.EXPECT().GetAvailableSlots(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(context.DeadlineExceeded, errs.ErrStorageTimeout)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/available-slots/2025-06-01", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to fetch available slots")
	})
}

func (s *AvailabilityHandlerTestSuite) TestHealth() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/health", nil)

	var body api.HealthResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal("OK", body.Status)
	s.Equal("Barista Cafe API is running", body.Message)
}
