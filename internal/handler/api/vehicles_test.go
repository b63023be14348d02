//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"parking-engine/internal/domain/user"
	"parking-engine/internal/handler/api"
	"parking-engine/internal/pkg/errs"
	"parking-engine/internal/usecase/queries"
	"parking-engine/tests/common/httptest"
	queriesmock "parking-engine/tests/mock/queries"
	usecasemock "parking-engine/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VehicleHandlerTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockVehicleQueries
	mockAuthz   *usecasemock.MockAuthorizer
	handler     *api.VehicleHandler
}

func (s *VehicleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockVehicleQueries(s.mockCtrl)
	s.mockAuthz = usecasemock.NewMockAuthorizer(s.mockCtrl)
	s.handler = api.NewVehicleHandler(nil, s.mockQueries, nil, nil, s.mockAuthz)
}

func (s *VehicleHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVehicleHandlerSuite(t *testing.T) {
	suite.Run(t, new(VehicleHandlerTestSuite))
}

func (s *VehicleHandlerTestSuite) routerFor(p user.Principal) *gin.Engine {
	router := gin.New()
	router.GET("/vehicles/plate/:plate", fakeAuth(p), s.handler.FindByPlate)
	return router
}

func plateMatch(owner uuid.UUID) *queries.VehicleView {
	now := time.Now()
	return &queries.VehicleView{ID: uuid.New(), OwnerID: owner, Plate: "AB123", CreatedAt: now, UpdatedAt: now}
}

type vehicleList struct {
	Items []queries.VehicleView `json:"items"`
	Count int                   `json:"count"`
}

func (s *VehicleHandlerTestSuite) TestFindByPlate() {
	me := driver()
	stranger := uuid.New()

	s.Run("success: a driver only sees own vehicles", func() {
		s.mockQueries.EXPECT().FindVehiclesByPlate(gomock.Any(), "ab123").
			Return([]*queries.VehicleView{plateMatch(stranger), plateMatch(me.UserID)}, nil)

		rec := httptest.PerformRequest(s.T(), s.routerFor(me), http.MethodGet, "/vehicles/plate/ab123", nil, bearer)

		var body vehicleList
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(1, body.Count)
		s.Equal(me.UserID, body.Items[0].OwnerID)
	})

	s.Run("success: an admin sees every match", func() {
		admin := lotAdmin(uuid.New())
		s.mockQueries.EXPECT().FindVehiclesByPlate(gomock.Any(), "AB123").
			Return([]*queries.VehicleView{plateMatch(stranger), plateMatch(me.UserID)}, nil)

		rec := httptest.PerformRequest(s.T(), s.routerFor(admin), http.MethodGet, "/vehicles/plate/AB123", nil, bearer)

		var body vehicleList
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(2, body.Count)
	})

	s.Run("error: 400 on an invalid plate", func() {
		s.mockQueries.EXPECT().FindVehiclesByPlate(gomock.Any(), "x").
			Return(nil, errs.Mark(errs.New("plate"), errs.ErrValidation))

		rec := httptest.PerformRequest(s.T(), s.routerFor(me), http.MethodGet, "/vehicles/plate/x", nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
