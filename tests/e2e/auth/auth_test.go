//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"parking-engine/internal/domain/user"
	"parking-engine/internal/handler/dto/request"
	"parking-engine/internal/usecase/queries"
	"parking-engine/tests/common/authtest"
	"parking-engine/tests/common/httptest"
	"parking-engine/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	meURL       = "/api/auth/me"
	adminsURL   = "/api/admin/users"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupTest() {
	s.SharedSuite.SetupTest()
	authtest.RegisterAndLogin(s.T(), s.Router, "driver", "driver-password")
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		username       string
		password       string
		expectedStatus int
	}{
		{"valid driver credentials", "driver", "driver-password", http.StatusOK},
		{"seeded administrator", e2e.AdminUsername, e2e.AdminPassword, http.StatusOK},
		{"unknown user", "nobody", "driver-password", http.StatusUnauthorized},
		{"wrong password", "driver", "wrong-password", http.StatusUnauthorized},
		{"missing password", "driver", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Username: tt.username, Password: tt.password}, "")
			s.Equal(tt.expectedStatus, rec.Code, rec.Body.String())
		})
	}
}

func (s *authSuite) TestRegister() {
	s.Run("duplicate username", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL,
			request.RegisterRequest{Username: "driver", Password: "another-password"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("short password", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL,
			request.RegisterRequest{Username: "shorty", Password: "123"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *authSuite) TestMe() {
	token := authtest.LoginUser(s.T(), s.Router, "driver", "driver-password")

	s.Run("current user", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		var me queries.UserView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &me)
		s.Equal("driver", me.Username)
		s.Equal(string(user.RoleUser), me.Role)
	})

	s.Run("expired token", func() {
		expired := s.jwt.CreateExpiredToken(s.T(), user.Principal{UserID: uuid.New(), Role: user.RoleUser})
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, expired)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *authSuite) TestCreateLotAdmin() {
	admin := authtest.LoginUser(s.T(), s.Router, e2e.AdminUsername, e2e.AdminPassword)
	var lotView queries.LotView
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/lots", map[string]any{
		"name": "North", "location": "9 North Rd", "hourly_rate": "5", "capacities": map[string]int{"standard": 3},
	}, admin)
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &lotView)

	req := request.CreateAdminRequest{
		Username: "north-admin",
		Password: "north-password",
		Role:     string(user.RoleLotAdmin),
		LotID:    &lotView.ID,
	}

	s.Run("drivers cannot create administrators", func() {
		token := authtest.LoginUser(s.T(), s.Router, "driver", "driver-password")
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, adminsURL, req, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("lot admin token carries the lot", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, adminsURL, req, admin)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

		token := authtest.LoginUser(s.T(), s.Router, "north-admin", "north-password")
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			"/api/lots/"+lotView.ID.String()+"/spaces", request.AddSpacesRequest{Count: 2}, token)
		var updated queries.LotView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &updated)
		s.Equal(5, updated.TotalCapacity)

		other := uuid.New()
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			"/api/lots/"+other.String()+"/spaces", request.AddSpacesRequest{Count: 1}, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}
