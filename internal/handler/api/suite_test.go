//go:build unit

package api_test

import (
	"net/http"

	"parking-engine/internal/domain/user"
	"parking-engine/internal/handler/httperr"
	"parking-engine/internal/handler/middleware"
	"parking-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const bearer = "bearer-token"

// fakeAuth stands in for RequireAuth: any bearer token authenticates as p.
func fakeAuth(p user.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthorized, "Unauthorized", nil)
			return
		}
		middleware.SetPrincipal(c, p)
		c.Next()
	}
}

func driver() user.Principal {
	return user.Principal{UserID: uuid.New(), Role: user.RoleUser}
}

func lotAdmin(lotID uuid.UUID) user.Principal {
	return user.Principal{UserID: uuid.New(), Role: user.RoleLotAdmin, LotID: &lotID}
}
