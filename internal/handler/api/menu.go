package api

import (
	"net/http"

	resdto "barista-cafe-api/internal/handler/dto/response"
	"barista-cafe-api/internal/handler/httperr"
	"barista-cafe-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const CacheHeader = "X-Cache"

type MenuHandler struct {
	q queries.MenuQueries
}

func NewMenuHandler(q queries.MenuQueries) *MenuHandler {
	return &MenuHandler{q: q}
}

// @Summary List menu
// @Description List every menu item ordered by category and name
// @Tags menu
// @Produce json
// @Success 200 {array} resdto.MenuItemResponse
// @Header 200 {string} X-Cache "HIT or MISS when the Redis cache is enabled"
// @Failure 500 {object} httperr.Response
// @Router /menu [get]
func (h *MenuHandler) List(c *gin.Context) {
	ctx, hit := queries.WithCacheStatus(c.Request.Context())

	items, err := h.q.List(ctx)
	if err != nil {
		abortWithStorageError(c, err, "Failed to fetch menu items")
		return
	}

	resp, err := resdto.FromMenuItemViews(items)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch menu items", nil)
		return
	}

	if *hit {
		c.Header(CacheHeader, "HIT")
	} else {
		c.Header(CacheHeader, "MISS")
	}
	c.JSON(http.StatusOK, resp)
}
