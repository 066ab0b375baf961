package dashboard

import (
	"net/http"

	"membertrack/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{
		repo: repo,
	}
}

// @Summary      Dashboard statistics
// @Description  Member counts plus payments due in the next 30 days and overdue payments
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} dashboard.Stats
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/dashboard/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()
	stats, err := h.repo.GetStats(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch dashboard stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
