package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AuthorizedUserView carries the minimum the auth middleware needs.
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type AccountView struct {
	ID                 uuid.UUID        `json:"id"`
	Username           *string          `json:"username,omitempty"`
	Name               string           `json:"name"`
	LastName           *string          `json:"last_name,omitempty"`
	Email              string           `json:"email"`
	DUI                *string          `json:"dui,omitempty"`
	DateOfBirth        *time.Time       `json:"date_of_birth,omitempty"`
	Role               string           `json:"role"`
	PlatformFeePercent *decimal.Decimal `json:"platform_fee_percent,omitempty"`
	IsActive           bool             `json:"is_active"`
	LastLogin          *time.Time       `json:"last_login,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
}

type UserListItem struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type UserQueries interface {
	GetAccount(ctx context.Context, id uuid.UUID) (*AccountView, error)
	List(ctx context.Context, after *Cursor, limit int) ([]*UserListItem, *Cursor, error)
}

type UserReadStore interface {
	FindAuthorizedByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindAccountByID(ctx context.Context, id uuid.UUID) (*AccountView, error)
	FindAll(ctx context.Context, afterAt time.Time, afterID uuid.UUID, limit int32) ([]*UserListItem, error)
}

type userQueriesImpl struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueriesImpl{store: store}
}

func (q *userQueriesImpl) GetAccount(ctx context.Context, id uuid.UUID) (*AccountView, error) {
	return q.store.FindAccountByID(ctx, id)
}

func (q *userQueriesImpl) List(ctx context.Context, after *Cursor, limit int) ([]*UserListItem, *Cursor, error) {
	limit = ValidateLimit(limit)

	afterAt := time.Time{}
	afterID := uuid.Nil
	if after != nil && after.After != "" {
		var err error
		afterAt, afterID, err = DecodeAfterCursor(after.After)
		if err != nil {
			return nil, nil, err
		}
	}

	rows, err := q.store.FindAll(ctx, afterAt, afterID, int32(limit))
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) == limit {
		last := rows[len(rows)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}
	return rows, next, nil
}
