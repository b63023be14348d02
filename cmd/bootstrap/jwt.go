package bootstrap

import (
	"parking-engine/internal/pkg/config"
	"parking-engine/internal/pkg/jwt"
	"parking-engine/internal/pkg/password"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
		NewPasswordHasher,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration)
}

func NewPasswordHasher() password.Hasher {
	return password.NewHasher(password.DefaultCost)
}
