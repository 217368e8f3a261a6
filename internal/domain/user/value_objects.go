package user

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrInvalidRole        = errors.New("invalid role")
	ErrPasswordTooWeak    = errors.New("password must be at least 8 characters long")
	ErrInvalidName        = errors.New("name is required and must be at most 255 characters")
	ErrInvalidFeePercent  = errors.New("platform fee percent must be between 0 and 100")
	ErrBusinessPromotion  = errors.New("business accounts cannot be promoted to admin")
	ErrLastAdminProtected = errors.New("at least one admin must remain")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 255 {
		return Name{}, ErrInvalidName
	}
	return Name{value: s}, nil
}

func (n Name) Value() string {
	return n.value
}

// FeePercent is the platform's cut of each sale, 0-100 with two decimal places.
type FeePercent struct {
	value decimal.Decimal
}

func NewFeePercent(v decimal.Decimal) (FeePercent, error) {
	if v.IsNegative() || v.GreaterThan(decimal.NewFromInt(100)) {
		return FeePercent{}, ErrInvalidFeePercent
	}
	return FeePercent{value: v.Round(2)}, nil
}

func (f FeePercent) Value() decimal.Decimal {
	return f.value
}

type Credentials struct {
	email    Email
	password Password
}

func NewCredentials(email Email, password Password) Credentials {
	return Credentials{email: email, password: password}
}

func (c Credentials) Email() Email       { return c.email }
func (c Credentials) Password() Password { return c.password }
