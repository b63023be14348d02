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

type SessionHandler struct {
	cmds  commands.SessionCommands
	q     queries.SessionQueries
	authz usecase.Authorizer
}

func NewSessionHandler(cmds commands.SessionCommands, q queries.SessionQueries, authz usecase.Authorizer) *SessionHandler {
	return &SessionHandler{cmds: cmds, q: q, authz: authz}
}

// @Summary Enter lot
// @Description Open a session; a reservation for the vehicle and lot covering now is claimed
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.EnterRequest true "Enter request"
// @Success 201 {object} queries.SessionView
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /sessions/enter [post]
func (h *SessionHandler) Enter(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req reqdto.EnterRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.authz.Enter(c.Request.Context(), p, req.VehicleID, req.LotID); err != nil {
		httperr.FromError(c, err)
		return
	}
	s, err := h.cmds.Enter(c.Request.Context(), req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Header("Location", "/api/sessions/"+s.ID().String())
	c.JSON(http.StatusCreated, queries.NewSessionView(s))
}

// @Summary Exit lot
// @Description Close the active session, compute its fee and release the space
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ExitRequest true "Exit request"
// @Success 200 {object} resdto.ExitResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /sessions/exit [post]
func (h *SessionHandler) Exit(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req reqdto.ExitRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.authz.Exit(c.Request.Context(), p, req.VehicleID); err != nil {
		httperr.FromError(c, err)
		return
	}
	result, err := h.cmds.Exit(c.Request.Context(), req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromExitResult(result))
}

// @Summary Get session
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} queries.SessionView
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /sessions/{id} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	sessionID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.authz.Session(c.Request.Context(), p, sessionID); err != nil {
		httperr.FromError(c, err)
		return
	}
	view, err := h.q.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
