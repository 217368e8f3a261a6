package user

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User entity. Single-role model: a user holds exactly one of
// user/business/admin, audited in role_changes on every transition.
type User struct {
	id                 uuid.UUID
	username           *string
	name               Name
	lastName           *string
	email              Email
	dui                *string
	dateOfBirth        *time.Time
	passwordHash       string
	role               Role
	platformFeePercent *decimal.Decimal
	isActive           bool
	lastLogin          *time.Time
	createdAt          time.Time
	updatedAt          time.Time
}

func NewUser(name Name, email Email, passwordHash string) *User {
	return &User{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         RoleUser,
		isActive:     true,
	}
}

func ReconstructUser(
	id uuid.UUID,
	username *string,
	name Name,
	lastName *string,
	email Email,
	dui *string,
	dateOfBirth *time.Time,
	passwordHash string,
	role Role,
	platformFeePercent *decimal.Decimal,
	isActive bool,
	lastLogin *time.Time,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:                 id,
		username:           username,
		name:               name,
		lastName:           lastName,
		email:              email,
		dui:                dui,
		dateOfBirth:        dateOfBirth,
		passwordHash:       passwordHash,
		role:               role,
		platformFeePercent: platformFeePercent,
		isActive:           isActive,
		lastLogin:          lastLogin,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

func (u *User) WithProfile(username, lastName, dui *string, dateOfBirth *time.Time) *User {
	u.username = username
	u.lastName = lastName
	u.dui = dui
	u.dateOfBirth = dateOfBirth
	return u
}

func (u *User) IsBusiness() bool { return u.role == RoleBusiness }
func (u *User) IsAdmin() bool    { return u.role == RoleAdmin }

func (u *User) ID() uuid.UUID                        { return u.id }
func (u *User) Username() *string                    { return u.username }
func (u *User) Name() Name                           { return u.name }
func (u *User) LastName() *string                    { return u.lastName }
func (u *User) Email() Email                         { return u.email }
func (u *User) DUI() *string                         { return u.dui }
func (u *User) DateOfBirth() *time.Time              { return u.dateOfBirth }
func (u *User) PasswordHash() string                 { return u.passwordHash }
func (u *User) Role() Role                           { return u.role }
func (u *User) PlatformFeePercent() *decimal.Decimal { return u.platformFeePercent }
func (u *User) IsActive() bool                       { return u.isActive }
func (u *User) LastLogin() *time.Time                { return u.lastLogin }
func (u *User) CreatedAt() time.Time                 { return u.createdAt }
func (u *User) UpdatedAt() time.Time                 { return u.updatedAt }
