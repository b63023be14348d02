package api

import (
	"net/http"

	reqdto "parking-engine/internal/handler/dto/request"
	resdto "parking-engine/internal/handler/dto/response"
	"parking-engine/internal/handler/httperr"
	"parking-engine/internal/usecase"
	"parking-engine/internal/usecase/commands"
	"parking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LotHandler struct {
	cmds  commands.LotCommands
	alloc commands.AllocatorCommands
	q     queries.LotQueries
	authz usecase.Authorizer
}

func NewLotHandler(cmds commands.LotCommands, alloc commands.AllocatorCommands, q queries.LotQueries, authz usecase.Authorizer) *LotHandler {
	return &LotHandler{cmds: cmds, alloc: alloc, q: q, authz: authz}
}

// @Summary Create lot
// @Description Create a lot and materialise one space per unit of capacity
// @Tags lots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateLotRequest true "Create lot request"
// @Success 201 {object} queries.LotView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /lots [post]
func (h *LotHandler) Create(c *gin.Context) {
	var req reqdto.CreateLotRequest
	if !bindJSON(c, &req) {
		return
	}
	l, err := h.cmds.CreateLot(c.Request.Context(), req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	view, err := h.q.GetLot(c.Request.Context(), l.ID())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Header("Location", "/api/lots/"+l.ID().String())
	c.JSON(http.StatusCreated, view)
}

// @Summary List lots
// @Tags lots
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ListResponse[queries.LotView]
// @Router /lots [get]
func (h *LotHandler) List(c *gin.Context) {
	views, err := h.q.ListLots(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewList(views))
}

// @Summary Get lot
// @Tags lots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lot ID"
// @Success 200 {object} queries.LotView
// @Failure 404 {object} httperr.Response
// @Router /lots/{id} [get]
func (h *LotHandler) Get(c *gin.Context) {
	lotID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetLot(c.Request.Context(), lotID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Delete lot
// @Description Refused while a session is active or a reservation still holds capacity
// @Tags lots
// @Security BearerAuth
// @Param id path string true "Lot ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /lots/{id} [delete]
func (h *LotHandler) Delete(c *gin.Context) {
	lotID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeleteLot(c.Request.Context(), lotID); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Add spaces
// @Tags lots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lot ID"
// @Param request body reqdto.AddSpacesRequest true "Add spaces request"
// @Success 200 {object} queries.LotView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /lots/{id}/spaces [post]
func (h *LotHandler) AddSpaces(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	lotID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.authz.ManageLot(p, lotID); err != nil {
		httperr.FromError(c, err)
		return
	}
	var req reqdto.AddSpacesRequest
	if !bindJSON(c, &req) {
		return
	}
	if _, err := h.cmds.AddSpaces(c.Request.Context(), lotID, req); err != nil {
		httperr.FromError(c, err)
		return
	}
	view, err := h.q.GetLot(c.Request.Context(), lotID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary List spaces
// @Tags lots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lot ID"
// @Success 200 {object} resdto.ListResponse[queries.SpaceView]
// @Failure 404 {object} httperr.Response
// @Router /lots/{id}/spaces [get]
func (h *LotHandler) ListSpaces(c *gin.Context) {
	lotID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	views, err := h.q.ListSpaces(c.Request.Context(), lotID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewList(views))
}

// @Summary Update hourly rate
// @Description Applies to fees computed after the change
// @Tags lots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lot ID"
// @Param request body reqdto.UpdateRateRequest true "Update rate request"
// @Success 200 {object} queries.LotView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /lots/{id}/rate [patch]
func (h *LotHandler) UpdateRate(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	lotID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.authz.ManageLot(p, lotID); err != nil {
		httperr.FromError(c, err)
		return
	}
	var req reqdto.UpdateRateRequest
	if !bindJSON(c, &req) {
		return
	}
	rate, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid hourly_rate", nil)
		return
	}
	if _, err = h.cmds.UpdateRate(c.Request.Context(), lotID, rate); err != nil {
		httperr.FromError(c, err)
		return
	}
	view, err := h.q.GetLot(c.Request.Context(), lotID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Lot occupancy
// @Description Occupied, total and free spaces per space type
// @Tags lots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lot ID"
// @Success 200 {object} map[string]queries.OccupancyView
// @Failure 404 {object} httperr.Response
// @Router /lots/{id}/occupancy [get]
func (h *LotHandler) Occupancy(c *gin.Context) {
	lotID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	occ, err := h.q.Occupancy(c.Request.Context(), lotID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, occ)
}

// @Summary Acquire space
// @Description Mark the lowest-numbered free space of a type occupied
// @Tags spaces
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lot ID"
// @Param request body reqdto.AcquireSpaceRequest true "Acquire request"
// @Success 200 {object} queries.SpaceView
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /lots/{id}/spaces/acquire [post]
func (h *LotHandler) AcquireSpace(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	lotID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.authz.ManageLot(p, lotID); err != nil {
		httperr.FromError(c, err)
		return
	}
	var req reqdto.AcquireSpaceRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}
	s, err := h.alloc.AcquireSpace(c.Request.Context(), lotID, req.SpaceType)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, queries.NewSpaceView(s))
}

// @Summary Release space
// @Tags spaces
// @Produce json
// @Security BearerAuth
// @Param id path int true "Space ID"
// @Success 200 {object} queries.SpaceView
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /spaces/{id}/release [post]
func (h *LotHandler) ReleaseSpace(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	spaceID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	if err := h.authz.ManageSpace(c.Request.Context(), p, spaceID); err != nil {
		httperr.FromError(c, err)
		return
	}
	s, err := h.alloc.ReleaseSpace(c.Request.Context(), spaceID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, queries.NewSpaceView(s))
}
