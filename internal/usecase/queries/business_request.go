package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BusinessRequestView struct {
	ID                 uuid.UUID       `json:"id"`
	UserID             uuid.UUID       `json:"user_id"`
	ApplicantName      string          `json:"applicant_name"`
	ApplicantEmail     string          `json:"applicant_email"`
	CompanyName        string          `json:"company_name"`
	NIT                *string         `json:"nit,omitempty"`
	ContactEmail       *string         `json:"contact_email,omitempty"`
	ContactPhone       *string         `json:"contact_phone,omitempty"`
	Address            *string         `json:"address,omitempty"`
	Description        *string         `json:"description,omitempty"`
	PlatformFeePercent decimal.Decimal `json:"platform_fee_percent"`
	Status             string          `json:"status"`
	DecidedBy          *uuid.UUID      `json:"decided_by,omitempty"`
	DecidedAt          *time.Time      `json:"decided_at,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

type BusinessRequestQueries interface {
	// List returns all requests, optionally filtered by status, newest first.
	List(ctx context.Context, status *string) ([]*BusinessRequestView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BusinessRequestView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*BusinessRequestView, error)
}

type BusinessRequestReadStore interface {
	FindAll(ctx context.Context, status *string) ([]*BusinessRequestView, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*BusinessRequestView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*BusinessRequestView, error)
}

type businessRequestQueriesImpl struct {
	store BusinessRequestReadStore
}

func NewBusinessRequestQueries(store BusinessRequestReadStore) BusinessRequestQueries {
	return &businessRequestQueriesImpl{store: store}
}

func (q *businessRequestQueriesImpl) List(ctx context.Context, status *string) ([]*BusinessRequestView, error) {
	return q.store.FindAll(ctx, status)
}

func (q *businessRequestQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BusinessRequestView, error) {
	return q.store.FindByUser(ctx, userID)
}

func (q *businessRequestQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BusinessRequestView, error) {
	return q.store.FindByID(ctx, id)
}
