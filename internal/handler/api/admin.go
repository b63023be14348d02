package api

import (
	"net/http"

	resdto "parking-engine/internal/handler/dto/response"
	"parking-engine/internal/handler/httperr"
	"parking-engine/internal/pkg/clock"
	"parking-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	sweeper commands.Sweeper
	clock   clock.Clock
}

func NewAdminHandler(sweeper commands.Sweeper, clk clock.Clock) *AdminHandler {
	return &AdminHandler{sweeper: sweeper, clock: clk}
}

// @Summary Run policy sweep
// @Description Apply no-show, completion and escalation rules now instead of waiting for the scheduler
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SweepResponse
// @Failure 403 {object} httperr.Response
// @Router /admin/sweep [post]
func (h *AdminHandler) Sweep(c *gin.Context) {
	report, err := h.sweeper.Run(c.Request.Context(), h.clock.Now())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSweepReport(report))
}
