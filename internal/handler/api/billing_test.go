//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"parking-engine/internal/domain/billing"
	"parking-engine/internal/domain/user"
	"parking-engine/internal/handler/api"
	reqdto "parking-engine/internal/handler/dto/request"
	"parking-engine/internal/pkg/errs"
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

type BillingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBillingCommands
	mockQueries  *queriesmock.MockBillingQueries
	mockSessions *queriesmock.MockSessionQueries
	mockAuthz    *usecasemock.MockAuthorizer
	principal    user.Principal
}

func (s *BillingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBillingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBillingQueries(s.mockCtrl)
	s.mockSessions = queriesmock.NewMockSessionQueries(s.mockCtrl)
	s.mockAuthz = usecasemock.NewMockAuthorizer(s.mockCtrl)
	s.principal = driver()
	h := api.NewBillingHandler(s.mockCommands, s.mockQueries, s.mockSessions, s.mockAuthz)

	auth := fakeAuth(s.principal)
	s.router.POST("/violations", auth, h.RecordViolation)
	s.router.POST("/violations/:id/pay", auth, h.PayFine)
	s.router.POST("/payments", auth, h.Settle)
	s.router.GET("/payments", auth, h.ListPayments)
	s.router.GET("/payments/mine", auth, h.MyPayments)
}

func (s *BillingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBillingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BillingHandlerTestSuite))
}

func paid(targetID uuid.UUID, tt billing.TargetType, amount string) *billing.Payment {
	p, err := billing.NewPayment(targetID, tt, uuid.New(), decimal.RequireFromString(amount), billing.MethodCash, "", time.Now())
	if err != nil {
		panic(err)
	}
	return p
}

// ================================================================================
// TestSettle
// ================================================================================

func (s *BillingHandlerTestSuite) TestSettle() {
	url := "/payments"
	req := reqdto.SettlePaymentRequest{
		TargetID:   uuid.New(),
		TargetType: "session",
		Amount:     "18.75",
		Method:     "cash",
	}

	s.Run("success: 201 with the recorded payment", func() {
		s.mockAuthz.EXPECT().Target(gomock.Any(), s.principal, billing.TargetSession, req.TargetID).Return(nil)
		s.mockCommands.EXPECT().SettlePayment(gomock.Any(), req).
			Return(paid(req.TargetID, billing.TargetSession, "18.75"), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, bearer)

		var body queries.PaymentView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("18.75", body.Amount)
		s.Equal("SESSION", body.TargetType)
		s.Equal("SUCCEEDED", body.Status)
		s.NotEmpty(body.TransactionNo)
	})

	s.Run("error: 400 on an unknown target type, before any lookup", func() {
		body := testutil.DtoMap(s.T(), req, testutil.Field("target_type", "parking_permit"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "target_type")
	})

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"amount mismatch", errs.Mark(billing.ErrAmountMismatch, errs.ErrAmountMismatch), http.StatusUnprocessableEntity},
		{"already paid", errs.Mark(errs.New("session fee is already paid"), errs.ErrAlreadyPaid), http.StatusConflict},
		{"session still active", errs.Mark(errs.New("session is still active"), errs.ErrInvalidState), http.StatusConflict},
		{"non-positive amount", errs.Mark(errs.New("amount must be positive"), errs.ErrValidation), http.StatusBadRequest},
	}
	for _, tc := range cases {
		s.Run("error: "+tc.name, func() {
			s.mockAuthz.EXPECT().Target(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			s.mockCommands.EXPECT().SettlePayment(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, bearer)
			httptest.AssertErrorResponse(s.T(), rec, tc.status, "")
		})
	}
}

// ================================================================================
// TestRecordViolation
// ================================================================================

func (s *BillingHandlerTestSuite) TestRecordViolation() {
	url := "/violations"
	lotID := uuid.New()
	sessionView := &queries.SessionView{ID: uuid.New(), LotID: lotID, VehicleID: uuid.New()}
	req := reqdto.RecordViolationRequest{SessionID: sessionView.ID, Type: "unauthorized", Fine: "50"}

	s.Run("error: 403 for an admin of another lot", func() {
		s.mockSessions.EXPECT().GetSession(gomock.Any(), sessionView.ID).Return(sessionView, nil)
		s.mockAuthz.EXPECT().ManageLot(s.principal, lotID).Return(errs.ErrForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("success: 201 with the violation", func() {
		v, err := billing.NewViolation(billing.ViolationRef{SessionID: &sessionView.ID, VehicleID: sessionView.VehicleID, LotID: lotID},
			billing.ViolationUnauthorized, "", decimal.RequireFromString("50"), time.Now())
		s.Require().NoError(err)
		s.mockSessions.EXPECT().GetSession(gomock.Any(), sessionView.ID).Return(sessionView, nil)
		s.mockAuthz.EXPECT().ManageLot(s.principal, lotID).Return(nil)
		s.mockCommands.EXPECT().RecordViolation(gomock.Any(), req).Return(v, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, bearer)

		var body queries.ViolationView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("50.00", body.Fine)
		s.Equal("UNPAID", body.Status)
	})
}

// ================================================================================
// TestPayFine / TestListPayments
// ================================================================================

func (s *BillingHandlerTestSuite) TestPayFine() {
	violationID := uuid.New()
	url := "/violations/" + violationID.String() + "/pay"

	s.Run("success: omitted amount pays the outstanding fine", func() {
		s.mockAuthz.EXPECT().Violation(gomock.Any(), s.principal, violationID).Return(nil)
		s.mockCommands.EXPECT().PayFine(gomock.Any(), violationID, reqdto.PayFineRequest{Method: "wallet"}).
			Return(paid(violationID, billing.TargetViolation, "6"), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"method": "wallet"}, bearer)

		var body queries.PaymentView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("6.00", body.Amount)
	})

	s.Run("error: 400 without a method", func() {
		s.mockAuthz.EXPECT().Violation(gomock.Any(), s.principal, violationID).Return(nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *BillingHandlerTestSuite) TestListPayments() {
	targetID := uuid.New()

	s.Run("success: lists payments of the target", func() {
		s.mockAuthz.EXPECT().Target(gomock.Any(), s.principal, billing.TargetReservation, targetID).Return(nil)
		s.mockQueries.EXPECT().ListPaymentsByTarget(gomock.Any(), targetID).
			Return([]*queries.PaymentView{queries.NewPaymentView(paid(targetID, billing.TargetReservation, "20"))}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments?target_type=RESERVATION&target_id="+targetID.String(), nil, bearer)

		var body struct {
			Items []queries.PaymentView `json:"items"`
			Count int                   `json:"count"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(1, body.Count)
		s.Equal("20.00", body.Items[0].Amount)
	})

	s.Run("error: 400 on a malformed target id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments?target_type=SESSION&target_id=x", nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "target_id")
	})
}

func (s *BillingHandlerTestSuite) TestMyPayments() {
	s.Run("success: lists the caller's payments", func() {
		targetID := uuid.New()
		s.mockQueries.EXPECT().ListPaymentsByUser(gomock.Any(), s.principal.UserID).
			Return([]*queries.PaymentView{queries.NewPaymentView(paid(targetID, billing.TargetSession, "7.5"))}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments/mine", nil, bearer)

		var body struct {
			Items []queries.PaymentView `json:"items"`
			Count int                   `json:"count"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(1, body.Count)
		s.Equal(targetID, body.Items[0].TargetID)
		s.Equal("7.50", body.Items[0].Amount)
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments/mine", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
