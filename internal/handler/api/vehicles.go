package api

import (
	"net/http"

	"parking-engine/internal/domain/user"
	reqdto "parking-engine/internal/handler/dto/request"
	resdto "parking-engine/internal/handler/dto/response"
	"parking-engine/internal/handler/httperr"
	"parking-engine/internal/usecase"
	"parking-engine/internal/usecase/commands"
	"parking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	cmds     commands.VehicleCommands
	q        queries.VehicleQueries
	sessions queries.SessionQueries
	billing  queries.BillingQueries
	authz    usecase.Authorizer
}

func NewVehicleHandler(
	cmds commands.VehicleCommands,
	q queries.VehicleQueries,
	sessions queries.SessionQueries,
	billing queries.BillingQueries,
	authz usecase.Authorizer,
) *VehicleHandler {
	return &VehicleHandler{cmds: cmds, q: q, sessions: sessions, billing: billing, authz: authz}
}

// @Summary Register vehicle
// @Tags vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.VehicleRequest true "Vehicle"
// @Success 201 {object} queries.VehicleView
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /vehicles [post]
func (h *VehicleHandler) Register(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req reqdto.VehicleRequest
	if !bindJSON(c, &req) {
		return
	}
	v, err := h.cmds.RegisterVehicle(c.Request.Context(), p.UserID, req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Header("Location", "/api/vehicles/"+v.ID().String())
	c.JSON(http.StatusCreated, queries.NewVehicleView(v))
}

// @Summary List own vehicles
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ListResponse[queries.VehicleView]
// @Router /vehicles [get]
func (h *VehicleHandler) List(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	views, err := h.q.ListVehicles(c.Request.Context(), p.UserID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewList(views))
}

// @Summary Find vehicles by plate
// @Description Admins see every match. Other callers only see their own vehicles.
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Param plate path string true "Licence plate"
// @Success 200 {object} resdto.ListResponse[queries.VehicleView]
// @Failure 400 {object} httperr.Response
// @Router /vehicles/plate/{plate} [get]
func (h *VehicleHandler) FindByPlate(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	views, err := h.q.FindVehiclesByPlate(c.Request.Context(), c.Param("plate"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	if p.Role == user.RoleUser {
		own := views[:0]
		for _, v := range views {
			if v.OwnerID == p.UserID {
				own = append(own, v)
			}
		}
		views = own
	}
	c.JSON(http.StatusOK, resdto.NewList(views))
}

// @Summary Get vehicle
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Success 200 {object} queries.VehicleView
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /vehicles/{id} [get]
func (h *VehicleHandler) Get(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	vehicleID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.authz.Vehicle(c.Request.Context(), p, vehicleID); err != nil {
		httperr.FromError(c, err)
		return
	}
	view, err := h.q.GetVehicle(c.Request.Context(), vehicleID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Update vehicle
// @Tags vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Param request body reqdto.VehicleRequest true "Vehicle"
// @Success 200 {object} queries.VehicleView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /vehicles/{id} [put]
func (h *VehicleHandler) Update(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	vehicleID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.authz.OwnVehicle(c.Request.Context(), p, vehicleID); err != nil {
		httperr.FromError(c, err)
		return
	}
	var req reqdto.VehicleRequest
	if !bindJSON(c, &req) {
		return
	}
	v, err := h.cmds.UpdateVehicle(c.Request.Context(), vehicleID, req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, queries.NewVehicleView(v))
}

// @Summary Delete vehicle
// @Description Refused while the vehicle is parked or holds a reservation
// @Tags vehicles
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /vehicles/{id} [delete]
func (h *VehicleHandler) Delete(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	vehicleID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.authz.OwnVehicle(c.Request.Context(), p, vehicleID); err != nil {
		httperr.FromError(c, err)
		return
	}
	if err := h.cmds.DeleteVehicle(c.Request.Context(), vehicleID); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Active session
// @Description The session the vehicle is currently parked under, if any
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Success 200 {object} resdto.ActiveSessionResponse
// @Failure 403 {object} httperr.Response
// @Router /vehicles/{id}/session [get]
func (h *VehicleHandler) ActiveSession(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	vehicleID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.authz.Vehicle(c.Request.Context(), p, vehicleID); err != nil {
		httperr.FromError(c, err)
		return
	}
	view, err := h.sessions.ActiveSessionFor(c.Request.Context(), vehicleID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromActiveSession(view))
}

// @Summary Session history
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Success 200 {object} resdto.ListResponse[queries.SessionView]
// @Router /vehicles/{id}/sessions [get]
func (h *VehicleHandler) Sessions(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	vehicleID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.authz.OwnVehicle(c.Request.Context(), p, vehicleID); err != nil {
		httperr.FromError(c, err)
		return
	}
	views, err := h.sessions.ListSessionsByVehicle(c.Request.Context(), vehicleID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewList(views))
}

// @Summary Vehicle violations
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Success 200 {object} resdto.ListResponse[queries.ViolationView]
// @Router /vehicles/{id}/violations [get]
func (h *VehicleHandler) Violations(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	vehicleID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.authz.Vehicle(c.Request.Context(), p, vehicleID); err != nil {
		httperr.FromError(c, err)
		return
	}
	views, err := h.billing.ListViolationsByVehicle(c.Request.Context(), vehicleID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewList(views))
}
