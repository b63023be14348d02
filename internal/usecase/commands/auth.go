package commands

import (
	"context"
	"log/slog"
	"strings"

	"parking-engine/internal/domain/user"
	reqdto "parking-engine/internal/handler/dto/request"
	"parking-engine/internal/infra"
	"parking-engine/internal/pkg/clock"
	"parking-engine/internal/pkg/errs"
	"parking-engine/internal/pkg/jwt"
	"parking-engine/internal/pkg/password"
	"parking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.New("invalid username or password")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	User        *user.User
	AccessToken string
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*user.User, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	CreateAdmin(ctx context.Context, req reqdto.CreateAdminRequest) (*user.User, error)
	// EnsureSystemAdmin creates the bootstrap administrator unless the username is taken.
	EnsureSystemAdmin(ctx context.Context, username, plain string) error
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	hasher     password.Hasher
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, hasher password.Hasher, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		hasher:     hasher,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*user.User, error) {
	return a.createUser(ctx, req.Username, req.Password, req.Phone, user.RoleUser, nil)
}

func (a *authCommandsImpl) CreateAdmin(ctx context.Context, req reqdto.CreateAdminRequest) (*user.User, error) {
	role, err := req.ToDomain()
	if err != nil {
		return nil, fail(err, errs.ErrValidation)
	}
	if !role.IsAdmin() {
		return nil, errs.Wrapf(errs.ErrValidation, "role %s is not an administrator role", role)
	}
	return a.createUser(ctx, req.Username, req.Password, req.Phone, role, req.LotID)
}

func (a *authCommandsImpl) createUser(ctx context.Context, username, plain, phone string, role user.Role, lotID *uuid.UUID) (*user.User, error) {
	if err := user.ValidatePassword(plain); err != nil {
		return nil, fail(err, errs.ErrValidation)
	}
	hash, err := a.hasher.Hash(plain)
	if err != nil {
		return nil, errs.Wrap(err, "hash password")
	}
	u, err := user.NewUser(username, hash, phone, role, lotID, a.clock.Now())
	if err != nil {
		return nil, fail(err, errs.ErrValidation)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Lock(ctx, shared.NameLock("user", strings.ToLower(u.Username()))); err != nil {
			return storeErr(err, "lock username")
		}
		if lotID != nil {
			if _, err := tx.Lots().FindByID(ctx, *lotID); err != nil {
				return storeErr(err, "find lot")
			}
		}
		if _, err := tx.Users().FindByUsername(ctx, u.Username()); err == nil {
			return errs.Wrapf(errs.ErrConflict, "username %s is taken", u.Username())
		} else if !infra.IsNotFound(err) {
			return storeErr(err, "find user")
		}
		return storeErr(tx.Users().Create(ctx, u), "create user")
	})
	if err != nil {
		return nil, err
	}

	slog.Info("user created", "user_id", u.ID(), "username", u.Username(), "role", u.Role())
	return u, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	var found *user.User
	err := a.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByUsername(ctx, strings.TrimSpace(req.Username))
		if err != nil {
			return err
		}
		found = u
		return nil
	})
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		if infra.IsNotFound(err) {
			return nil, errs.Mark(ErrInvalidCredentials, errs.ErrUnauthorized)
		}
		return nil, storeErr(err, "find user")
	}

	if err := a.hasher.Compare(found.PasswordHash(), req.Password); err != nil {
		return nil, errs.Mark(ErrInvalidCredentials, errs.ErrUnauthorized)
	}

	token, err := a.jwtService.GenerateToken(found.Principal())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	slog.Info("user logged in", "user_id", found.ID(), "role", found.Role())
	return &LoginResult{User: found, AccessToken: token}, nil
}

func (a *authCommandsImpl) EnsureSystemAdmin(ctx context.Context, username, plain string) error {
	_, err := a.createUser(ctx, username, plain, "", user.RoleSystemAdmin, nil)
	if errs.Is(err, errs.ErrConflict) {
		slog.Info("bootstrap administrator already present", "username", username)
		return nil
	}
	return err
}
