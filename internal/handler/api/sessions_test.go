//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"parking-engine/internal/domain/billing"
	"parking-engine/internal/domain/lot"
	"parking-engine/internal/domain/session"
	"parking-engine/internal/domain/user"
	"parking-engine/internal/handler/api"
	reqdto "parking-engine/internal/handler/dto/request"
	"parking-engine/internal/pkg/errs"
	"parking-engine/internal/usecase/commands"
	"parking-engine/internal/usecase/queries"
	"parking-engine/tests/common/httptest"
	"parking-engine/tests/common/testutil"
	commandsmock "parking-engine/tests/mock/commands"
	queriesmock "parking-engine/tests/mock/queries"
	usecasemock "parking-engine/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SessionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSessionCommands
	mockQueries  *queriesmock.MockSessionQueries
	mockAuthz    *usecasemock.MockAuthorizer
	principal    user.Principal
}

func (s *SessionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSessionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSessionQueries(s.mockCtrl)
	s.mockAuthz = usecasemock.NewMockAuthorizer(s.mockCtrl)
	s.principal = driver()
	h := api.NewSessionHandler(s.mockCommands, s.mockQueries, s.mockAuthz)

	auth := fakeAuth(s.principal)
	s.router.POST("/sessions/enter", auth, h.Enter)
	s.router.POST("/sessions/exit", auth, h.Exit)
	s.router.GET("/sessions/:id", auth, h.Get)
}

func (s *SessionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSessionHandlerSuite(t *testing.T) {
	suite.Run(t, new(SessionHandlerTestSuite))
}

func openSession(vehicleID, lotID uuid.UUID) *session.Session {
	return session.Open(vehicleID, lotID, 7, lot.DefaultSpaceType, nil, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
}

// ================================================================================
// TestEnter
// ================================================================================

func (s *SessionHandlerTestSuite) TestEnter() {
	url := "/sessions/enter"
	req := reqdto.EnterRequest{VehicleID: uuid.New(), LotID: uuid.New()}

	s.Run("success: 201 with the opened session", func() {
		opened := openSession(req.VehicleID, req.LotID)
		s.mockAuthz.EXPECT().Enter(gomock.Any(), s.principal, req.VehicleID, req.LotID).Return(nil)
		s.mockCommands.EXPECT().Enter(gomock.Any(), req).Return(opened, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, bearer)

		var body queries.SessionView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(opened.ID(), body.ID)
		s.Equal(int64(7), body.SpaceID)
		s.Equal("ACTIVE", body.Status)
		s.Equal("0.00", body.Fee)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/sessions/" + opened.ID().String()})
	})

	s.Run("error: 400 when a required field is missing", func() {
		for _, field := range []string{"vehicle_id", "lot_id"} {
			body := testutil.DtoMap(s.T(), req, testutil.Field(field, nil))
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, bearer)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		}
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: 403 when the caller may not park the vehicle", func() {
		s.mockAuthz.EXPECT().Enter(gomock.Any(), s.principal, req.VehicleID, req.LotID).
			Return(errs.Wrap(errs.ErrForbidden, "not the owner"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "not permitted")
	})

	rejections := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"already parked", errs.Mark(errs.New("vehicle has an active session"), errs.ErrAlreadyParked), http.StatusConflict, "ALREADY_PARKED"},
		{"lot full", errs.Mark(errs.New("no free EV space"), errs.ErrNoCapacity), http.StatusConflict, "NO_CAPACITY"},
		{"unknown lot", errs.Mark(errs.New("lot missing"), errs.ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"store failure", errs.New("connection reset"), http.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range rejections {
		s.Run("error: "+tc.name, func() {
			s.mockAuthz.EXPECT().Enter(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			s.mockCommands.EXPECT().Enter(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, bearer)
			httptest.AssertErrorResponse(s.T(), rec, tc.status, "")
			s.Contains(rec.Body.String(), `"code":"`+tc.code+`"`)
			s.NotContains(rec.Body.String(), "connection reset")
		})
	}
}

// ================================================================================
// TestExit
// ================================================================================

func (s *SessionHandlerTestSuite) TestExit() {
	url := "/sessions/exit"
	req := reqdto.ExitRequest{VehicleID: uuid.New()}

	s.Run("success: returns the closed session and the overstay fine", func() {
		lotID := uuid.New()
		closed := openSession(req.VehicleID, lotID)
		sessionID := closed.ID()
		ref := billing.ViolationRef{SessionID: &sessionID, VehicleID: req.VehicleID, LotID: lotID}
		fine, err := billing.NewViolation(ref, billing.ViolationOverstay, "", decimal.RequireFromString("12"), time.Now())
		s.Require().NoError(err)

		s.mockAuthz.EXPECT().Exit(gomock.Any(), s.principal, req.VehicleID).Return(nil)
		s.mockCommands.EXPECT().Exit(gomock.Any(), req).
			Return(&commands.ExitResult{Session: closed, Violation: fine, Completed: true}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, bearer)

		var body struct {
			Session              queries.SessionView    `json:"session"`
			Violation            *queries.ViolationView `json:"violation"`
			ReservationCompleted bool                   `json:"reservation_completed"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(closed.ID(), body.Session.ID)
		s.Require().NotNil(body.Violation)
		s.Equal("12.00", body.Violation.Fine)
		s.True(body.ReservationCompleted)
	})

	s.Run("error: 404 when the vehicle is not parked", func() {
		s.mockAuthz.EXPECT().Exit(gomock.Any(), s.principal, req.VehicleID).Return(nil)
		s.mockCommands.EXPECT().Exit(gomock.Any(), req).
			Return(nil, errs.Mark(errs.New("no active session"), errs.ErrNotParked))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not parked")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *SessionHandlerTestSuite) TestGet() {
	s.Run("error: 400 on a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sessions/not-a-uuid", nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("success: authorised before loading", func() {
		view := queries.NewSessionView(openSession(uuid.New(), uuid.New()))
		gomock.InOrder(
			s.mockAuthz.EXPECT().Session(gomock.Any(), s.principal, view.ID).Return(nil),
			s.mockQueries.EXPECT().GetSession(gomock.Any(), view.ID).Return(view, nil),
		)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sessions/"+view.ID.String(), nil, bearer)

		var body queries.SessionView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
	})
}
