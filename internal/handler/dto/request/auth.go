package request

import (
	"time"

	"cuponera/internal/domain/user"
	"cuponera/internal/usecase/commands"
)

type RegisterRequest struct {
	Username    *string `json:"username,omitempty"`
	Name        string  `json:"name" binding:"required,max=255"`
	LastName    *string `json:"last_name,omitempty"`
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,min=8"`
	DUI         *string `json:"dui,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
}

func (r *RegisterRequest) ToCommand() (commands.RegisterUserCommand, error) {
	var dob *time.Time
	if r.DateOfBirth != nil {
		parsed, err := time.Parse(time.DateOnly, *r.DateOfBirth)
		if err != nil {
			return commands.RegisterUserCommand{}, err
		}
		dob = &parsed
	}
	return commands.RegisterUserCommand{
		Username:    r.Username,
		Name:        r.Name,
		LastName:    r.LastName,
		Email:       r.Email,
		Password:    r.Password,
		DUI:         r.DUI,
		DateOfBirth: dob,
	}, nil
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return user.Credentials{}, err
	}
	password, err := user.NewPassword(r.Password)
	if err != nil {
		return user.Credentials{}, err
	}
	return user.NewCredentials(email, password), nil
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
