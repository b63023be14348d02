package api

import (
	"net/http"

	"parking-engine/internal/domain/billing"
	reqdto "parking-engine/internal/handler/dto/request"
	resdto "parking-engine/internal/handler/dto/response"
	"parking-engine/internal/handler/httperr"
	"parking-engine/internal/usecase"
	"parking-engine/internal/usecase/commands"
	"parking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BillingHandler struct {
	cmds     commands.BillingCommands
	q        queries.BillingQueries
	sessions queries.SessionQueries
	authz    usecase.Authorizer
}

func NewBillingHandler(cmds commands.BillingCommands, q queries.BillingQueries, sessions queries.SessionQueries, authz usecase.Authorizer) *BillingHandler {
	return &BillingHandler{cmds: cmds, q: q, sessions: sessions, authz: authz}
}

// @Summary Record violation
// @Description Attach a violation to a session; only admins of the session's lot may record one
// @Tags violations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RecordViolationRequest true "Violation"
// @Success 201 {object} queries.ViolationView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /violations [post]
func (h *BillingHandler) RecordViolation(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req reqdto.RecordViolationRequest
	if !bindJSON(c, &req) {
		return
	}
	s, err := h.sessions.GetSession(c.Request.Context(), req.SessionID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	if err = h.authz.ManageLot(p, s.LotID); err != nil {
		httperr.FromError(c, err)
		return
	}
	v, err := h.cmds.RecordViolation(c.Request.Context(), req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Header("Location", "/api/violations/"+v.ID().String())
	c.JSON(http.StatusCreated, queries.NewViolationView(v))
}

// @Summary Get violation
// @Tags violations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Violation ID"
// @Success 200 {object} queries.ViolationView
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /violations/{id} [get]
func (h *BillingHandler) GetViolation(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	violationID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.authz.Violation(c.Request.Context(), p, violationID); err != nil {
		httperr.FromError(c, err)
		return
	}
	view, err := h.q.GetViolation(c.Request.Context(), violationID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Pay fine
// @Description Pay the outstanding fine of a violation; an amount, when given, must match it exactly
// @Tags violations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Violation ID"
// @Param request body reqdto.PayFineRequest true "Payment"
// @Success 201 {object} queries.PaymentView
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /violations/{id}/pay [post]
func (h *BillingHandler) PayFine(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	violationID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.authz.Violation(c.Request.Context(), p, violationID); err != nil {
		httperr.FromError(c, err)
		return
	}
	var req reqdto.PayFineRequest
	if !bindJSON(c, &req) {
		return
	}
	pay, err := h.cmds.PayFine(c.Request.Context(), violationID, req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, queries.NewPaymentView(pay))
}

// @Summary Settle payment
// @Description Pay a session fee, reservation fee or violation fine
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SettlePaymentRequest true "Payment"
// @Success 201 {object} queries.PaymentView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /payments [post]
func (h *BillingHandler) Settle(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req reqdto.SettlePaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	tt, err := billing.NewTargetType(req.TargetType)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid target_type", nil)
		return
	}
	if err = h.authz.Target(c.Request.Context(), p, tt, req.TargetID); err != nil {
		httperr.FromError(c, err)
		return
	}
	pay, err := h.cmds.SettlePayment(c.Request.Context(), req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, queries.NewPaymentView(pay))
}

// @Summary List payments
// @Description Payments recorded against one billable target
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param target_type query string true "SESSION, RESERVATION or VIOLATION"
// @Param target_id query string true "Target ID"
// @Success 200 {object} resdto.ListResponse[queries.PaymentView]
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /payments [get]
func (h *BillingHandler) ListPayments(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	tt, err := billing.NewTargetType(c.Query("target_type"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid target_type", nil)
		return
	}
	targetID, err := uuid.Parse(c.Query("target_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid target_id", nil)
		return
	}
	if err = h.authz.Target(c.Request.Context(), p, tt, targetID); err != nil {
		httperr.FromError(c, err)
		return
	}
	views, err := h.q.ListPaymentsByTarget(c.Request.Context(), targetID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewList(views))
}

// @Summary Own payment history
// @Description Payments for the caller's reservations and for the sessions and violations of the caller's vehicles
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ListResponse[queries.PaymentView]
// @Router /payments/mine [get]
func (h *BillingHandler) MyPayments(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	views, err := h.q.ListPaymentsByUser(c.Request.Context(), p.UserID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewList(views))
}
