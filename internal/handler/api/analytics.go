package api

import (
	"context"
	"net/http"
	"time"

	reqdto "parking-engine/internal/handler/dto/request"
	"parking-engine/internal/handler/httperr"
	"parking-engine/internal/usecase"
	"parking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AnalyticsHandler struct {
	q     queries.AnalyticsQueries
	authz usecase.Authorizer
}

func NewAnalyticsHandler(q queries.AnalyticsQueries, authz usecase.Authorizer) *AnalyticsHandler {
	return &AnalyticsHandler{q: q, authz: authz}
}

func lotStats[V any](h *AnalyticsHandler, c *gin.Context, fetch func(ctx context.Context, lotID uuid.UUID, from, to time.Time) (V, error)) {
	p, ok := principal(c)
	if !ok {
		return
	}
	lotID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var window reqdto.StatsWindowQuery
	if err := c.ShouldBindQuery(&window); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid stats window", nil)
		return
	}
	if err := h.authz.ManageLot(p, lotID); err != nil {
		httperr.FromError(c, err)
		return
	}
	view, err := fetch(c.Request.Context(), lotID, window.From, window.To)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Occupancy statistics
// @Description Space usage, average stay and hourly entries of a lot over [from, to)
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lot ID"
// @Param from query string true "RFC3339 start"
// @Param to query string true "RFC3339 end"
// @Success 200 {object} queries.OccupancyStatsView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /lots/{id}/stats/occupancy [get]
func (h *AnalyticsHandler) Occupancy(c *gin.Context) {
	lotStats(h, c, h.q.OccupancyStats)
}

// @Summary Violation statistics
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lot ID"
// @Param from query string true "RFC3339 start"
// @Param to query string true "RFC3339 end"
// @Success 200 {object} queries.ViolationStatsView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /lots/{id}/stats/violations [get]
func (h *AnalyticsHandler) Violations(c *gin.Context) {
	lotStats(h, c, h.q.ViolationStats)
}

// @Summary Revenue statistics
// @Description Settled payments of a lot split by target type, with a monthly breakdown
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lot ID"
// @Param from query string true "RFC3339 start"
// @Param to query string true "RFC3339 end"
// @Success 200 {object} queries.RevenueStatsView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /lots/{id}/stats/revenue [get]
func (h *AnalyticsHandler) Revenue(c *gin.Context) {
	lotStats(h, c, h.q.RevenueStats)
}
