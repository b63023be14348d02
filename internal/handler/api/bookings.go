package api

import (
	"context"
	"net/http"

	"parking-engine/internal/domain/booking"
	reqdto "parking-engine/internal/handler/dto/request"
	resdto "parking-engine/internal/handler/dto/response"
	"parking-engine/internal/handler/httperr"
	"parking-engine/internal/usecase"
	"parking-engine/internal/usecase/commands"
	"parking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds  commands.BookingCommands
	q     queries.BookingQueries
	authz usecase.Authorizer
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries, authz usecase.Authorizer) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q, authz: authz}
}

// @Summary Create reservation
// @Description Reserve a space type in a lot for [start_time, end_time)
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} queries.BookingView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.authz.OwnVehicle(c.Request.Context(), p, req.VehicleID); err != nil {
		httperr.FromError(c, err)
		return
	}
	o, err := h.cmds.CreateBooking(c.Request.Context(), p.UserID, req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Header("Location", "/api/bookings/"+o.ID().String())
	c.JSON(http.StatusCreated, queries.NewBookingView(o))
}

// @Summary List own reservations
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ListResponse[queries.BookingView]
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	views, err := h.q.ListBookingsByUser(c.Request.Context(), p.UserID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewList(views))
}

// @Summary Get reservation
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} queries.BookingView
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	orderID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.authz.Booking(c.Request.Context(), p, orderID); err != nil {
		httperr.FromError(c, err)
		return
	}
	view, err := h.q.GetBooking(c.Request.Context(), orderID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Get reservation by code
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param code path string true "Reservation code"
// @Success 200 {object} queries.BookingView
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/code/{code} [get]
func (h *BookingHandler) GetByCode(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	view, err := h.q.GetBookingByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	if err := h.authz.Booking(c.Request.Context(), p, view.ID); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Cancel reservation
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} queries.BookingView
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cmds.CancelBooking)
}

// @Summary Complete reservation
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} queries.BookingView
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/complete [post]
func (h *BookingHandler) Complete(c *gin.Context) {
	h.transition(c, h.cmds.CompleteBooking)
}

func (h *BookingHandler) transition(c *gin.Context, apply func(ctx context.Context, orderID uuid.UUID) (*booking.Order, error)) {
	p, ok := principal(c)
	if !ok {
		return
	}
	orderID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.authz.Booking(c.Request.Context(), p, orderID); err != nil {
		httperr.FromError(c, err)
		return
	}
	o, err := apply(c.Request.Context(), orderID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, queries.NewBookingView(o))
}
