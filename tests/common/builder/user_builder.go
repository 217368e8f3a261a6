//go:build unit || e2e

package builder

import (
	"time"

	"cuponera/internal/domain/user"
	"cuponera/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UserBuilder struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         string
	FeePercent   *decimal.Decimal
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         "user",
		IsActive:     true,
	}
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	name, err := user.NewName(u.Name)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return user.ReconstructUser(
		u.ID, nil, name, nil, email, nil, nil,
		u.PasswordHash, role, u.FeePercent, u.IsActive, nil, now, now,
	), nil
}

func (u *UserBuilder) BuildAuthorizedView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       u.ID,
		Email:    u.Email,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}

func (u *UserBuilder) BuildAccountView() *queries.AccountView {
	return &queries.AccountView{
		ID:                 u.ID,
		Name:               u.Name,
		Email:              u.Email,
		Role:               u.Role,
		PlatformFeePercent: u.FeePercent,
		IsActive:           u.IsActive,
		CreatedAt:          time.Now(),
	}
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithFeePercent(pct decimal.Decimal) *UserBuilder {
	u.FeePercent = &pct
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
