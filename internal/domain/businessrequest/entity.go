package businessrequest

import (
	"errors"
	"strings"
	"time"

	"cuponera/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrInvalidCompanyName = errors.New("company name is required")
	ErrNotPending         = errors.New("request is not pending")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

// Company is the metadata a user proposes when applying for the business role.
type Company struct {
	Name        string
	NIT         *string
	Email       *string
	Phone       *string
	Address     *string
	Description *string
}

func NewCompany(name string, nit, email, phone, address, description *string) (Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Company{}, ErrInvalidCompanyName
	}
	return Company{
		Name:        name,
		NIT:         nit,
		Email:       email,
		Phone:       phone,
		Address:     address,
		Description: description,
	}, nil
}

// BusinessRequest is one onboarding application. A pending request moves to
// approved or rejected, both terminal; at most one pending per user
// (partial unique index).
type BusinessRequest struct {
	id         uuid.UUID
	userID     uuid.UUID
	status     Status
	company    Company
	feePercent user.FeePercent
	decidedBy  *uuid.UUID
	decidedAt  *time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

func NewBusinessRequest(userID uuid.UUID, company Company, feePercent user.FeePercent) *BusinessRequest {
	return &BusinessRequest{
		id:         uuid.New(),
		userID:     userID,
		status:     StatusPending,
		company:    company,
		feePercent: feePercent,
	}
}

func ReconstructBusinessRequest(
	id, userID uuid.UUID,
	status Status,
	company Company,
	feePercent user.FeePercent,
	decidedBy *uuid.UUID,
	decidedAt *time.Time,
	createdAt, updatedAt time.Time,
) *BusinessRequest {
	return &BusinessRequest{
		id:         id,
		userID:     userID,
		status:     status,
		company:    company,
		feePercent: feePercent,
		decidedBy:  decidedBy,
		decidedAt:  decidedAt,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (r *BusinessRequest) Approve(adminID uuid.UUID, at time.Time) error {
	if r.status != StatusPending {
		return ErrNotPending
	}
	r.status = StatusApproved
	r.decidedBy = &adminID
	r.decidedAt = &at
	return nil
}

func (r *BusinessRequest) Reject(adminID uuid.UUID, at time.Time) error {
	if r.status != StatusPending {
		return ErrNotPending
	}
	r.status = StatusRejected
	r.decidedBy = &adminID
	r.decidedAt = &at
	return nil
}

func (r *BusinessRequest) IsPending() bool { return r.status == StatusPending }

func (r *BusinessRequest) ID() uuid.UUID               { return r.id }
func (r *BusinessRequest) UserID() uuid.UUID           { return r.userID }
func (r *BusinessRequest) Status() Status              { return r.status }
func (r *BusinessRequest) Company() Company            { return r.company }
func (r *BusinessRequest) FeePercent() user.FeePercent { return r.feePercent }
func (r *BusinessRequest) DecidedBy() *uuid.UUID       { return r.decidedBy }
func (r *BusinessRequest) DecidedAt() *time.Time       { return r.decidedAt }
func (r *BusinessRequest) CreatedAt() time.Time        { return r.createdAt }
func (r *BusinessRequest) UpdatedAt() time.Time        { return r.updatedAt }
