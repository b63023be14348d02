package request

import (
	"strings"

	"parking-engine/internal/domain/user"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Phone    string `json:"phone" binding:"omitempty,max=20"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateAdminRequest struct {
	Username string     `json:"username" binding:"required,min=3,max=50"`
	Password string     `json:"password" binding:"required,min=8,max=72"`
	Phone    string     `json:"phone" binding:"omitempty,max=20"`
	Role     string     `json:"role" binding:"required"`
	LotID    *uuid.UUID `json:"lot_id,omitempty"`
}

func (r CreateAdminRequest) ToDomain() (user.Role, error) {
	return user.NewRole(strings.TrimSpace(r.Role))
}
