//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"barista-cafe-api/internal/domain/menu"
	"barista-cafe-api/internal/handler/api"
	"barista-cafe-api/internal/handler/middleware"
	resdto "barista-cafe-api/internal/handler/dto/response"
	"barista-cafe-api/internal/pkg/errs"
	"barista-cafe-api/internal/usecase/queries"
	"barista-cafe-api/tests/common/builder"
	"barista-cafe-api/tests/common/httptest"
	queriesmock "barista-cafe-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MenuHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockMenuQueries
}

func (s *MenuHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockMenuQueries(s.mockCtrl)
	s.router.GET("/api/menu", api.NewMenuHandler(s.mockQueries).List)
}

func (s *MenuHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMenuHandlerSuite(t *testing.T) {
	suite.Run(t, new(MenuHandlerTestSuite))
}

func (s *MenuHandlerTestSuite) TestList() {
	s.Run("success: prices are rendered as two-decimal strings", func() {
		items := []*queries.MenuItemView{
			builder.NewMenuItemBuilder().WithName("Espresso").WithPriceCents(350).BuildView(),
			builder.NewMenuItemBuilder().WithName("Croissant").WithPriceCents(400).WithCategory(menu.CategoryDessert).AsRecommended().BuildView(),
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/menu", nil)

		var body []resdto.MenuItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal("3.50", body[0].Price)
		s.Equal("coffee", body[0].Category)
		s.Equal("4.00", body[1].Price)
		s.Equal("dessert", body[1].Category)
		s.True(body[1].IsRecommended)
		httptest.AssertHeaders(s.T(), rec, map[string]string{api.CacheHeader: "MISS"})
	})

	s.Run("success: cache hit is reported in header", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).
			DoAndReturn(func(ctx context.Context) ([]*queries.MenuItemView, error) {
				queries.ReportCacheHit(ctx, true)
				return []*queries.MenuItemView{}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/menu", nil)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		httptest.AssertHeaders(s.T(), rec, map[string]string{api.CacheHeader: "HIT"})
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: storage failure returns 500", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return(nil, errs.Mark(errDBDown, errs.ErrStorageFailure)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/menu", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to fetch menu items")
	})
}
