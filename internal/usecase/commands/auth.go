package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"cuponera/internal/domain/user"
	"cuponera/internal/infra"
	"cuponera/internal/pkg/errs"
	"cuponera/internal/pkg/jwt"
	"cuponera/internal/pkg/password"
	"cuponera/internal/usecase/shared"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrEmailAlreadyTaken    = errs.New("email already registered")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type RegisterUserCommand struct {
	Username    *string
	Name        string
	LastName    *string
	Email       string
	Password    string
	DUI         *string
	DateOfBirth *time.Time
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	UserID    uuid.UUID
	Role      user.Role
	TokenPair *TokenPair
}

type AuthCommands interface {
	Register(ctx context.Context, cmd RegisterUserCommand) (uuid.UUID, error)
	Login(ctx context.Context, credentials user.Credentials) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, cmd RegisterUserCommand) (uuid.UUID, error) {
	name, err := user.NewName(cmd.Name)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "invalid name")
	}
	email, err := user.NewEmail(cmd.Email)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "invalid email")
	}
	pass, err := user.NewPassword(cmd.Password)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "invalid password")
	}

	hash, err := password.HashPassword(pass.Value())
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to hash password")
	}

	newUser := user.NewUser(name, email, hash).
		WithProfile(cmd.Username, cmd.LastName, cmd.DUI, cmd.DateOfBirth)

	var id uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.Users().Create(ctx, newUser)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.Mark(err, ErrEmailAlreadyTaken)
		}
		return uuid.Nil, errs.Wrap(err, "failed to register user")
	}
	return id, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, credentials user.Credentials) (*LoginResult, error) {
	var account *user.User
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Users().FindByEmail(ctx, credentials.Email())
		if err != nil {
			// Same error as a password mismatch to prevent user enumeration
			return ErrInvalidCredentials
		}
		if !found.IsActive() {
			return ErrUserInactive
		}
		if err := password.ComparePassword(found.PasswordHash(), credentials.Password().Value()); err != nil {
			return ErrInvalidCredentials
		}

		if err := tx.Users().UpdateLastLogin(ctx, found.ID()); err != nil {
			slog.Warn("failed to update last login", "user_id", found.ID(), "error", err.Error())
			// Not critical, login still succeeds
		}
		account = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	tokenPair, err := a.issueTokens(account.ID(), account.Role())
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		UserID:    account.ID(),
		Role:      account.Role(),
		TokenPair: tokenPair,
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	// The user must still exist and be active to rotate tokens
	err = a.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Users().FindByID(ctx, claims.UserID)
		if err != nil {
			return ErrUserNotFound
		}
		if !found.IsActive() {
			return ErrUserInactive
		}
		role = found.Role()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return a.issueTokens(claims.UserID, role)
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
