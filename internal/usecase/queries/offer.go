package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)
type OfferView struct {
	ID              uuid.UUID       `json:"id"`
	BusinessID      uuid.UUID       `json:"business_id"`
	BusinessName    string          `json:"business_name"`
	Title           string          `json:"title"`
	Description     *string         `json:"description,omitempty"`
	RegularPrice    decimal.Decimal `json:"regular_price"`
	OfferPrice      decimal.Decimal `json:"offer_price"`
	DiscountPercent int             `json:"discount_percent"`
	StartsAt        time.Time       `json:"starts_at"`
	EndsAt          time.Time       `json:"ends_at"`
	RedeemBy        time.Time       `json:"redeem_by"`
	Quantity        *int32          `json:"quantity,omitempty"`
	PurchasesCount  int64           `json:"purchases_count"`
	TicketsSold     int64           `json:"tickets_sold"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Remaining reports how many coupons can still be sold. Nil for
// unlimited offers.
func (v *OfferView) Remaining() *int32 {
	if v.Quantity == nil {
		return nil
	}
	left := *v.Quantity - int32(v.TicketsSold)
	if left < 0 {
		left = 0
	}
	return &left
}

type OfferListItem struct {
	ID              uuid.UUID       `json:"id"`
	BusinessName    string          `json:"business_name"`
	Title           string          `json:"title"`
	RegularPrice    decimal.Decimal `json:"regular_price"`
	OfferPrice      decimal.Decimal `json:"offer_price"`
	DiscountPercent int             `json:"discount_percent"`
	EndsAt          time.Time       `json:"ends_at"`
	CreatedAt       time.Time       `json:"created_at"`
}

type OfferQueries interface {
	// ListVisible returns the public catalog: available offers inside
	// their sale window and not sold out, optionally narrowed by a
	// case-insensitive title substring.
	ListVisible(ctx context.Context, now time.Time, search string, after *Cursor, limit int) ([]*OfferListItem, *Cursor, error)
	GetVisible(ctx context.Context, id uuid.UUID, now time.Time) (*OfferView, error)
	// GetByID skips the visibility filter; callers gate access.
	GetByID(ctx context.Context, id uuid.UUID) (*OfferView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*OfferView, error)
}

type OfferReadStore interface {
	FindVisible(ctx context.Context, now time.Time, search string, afterAt time.Time, afterID uuid.UUID, limit int32) ([]*OfferListItem, error)
	FindVisibleByID(ctx context.Context, id uuid.UUID, now time.Time) (*OfferView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*OfferView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*OfferView, error)
}

type offerQueriesImpl struct {
	store OfferReadStore
}

func NewOfferQueries(store OfferReadStore) OfferQueries {
	return &offerQueriesImpl{store: store}
}

func (q *offerQueriesImpl) ListVisible(ctx context.Context, now time.Time, search string, after *Cursor, limit int) ([]*OfferListItem, *Cursor, error) {
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

	rows, err := q.store.FindVisible(ctx, now, search, afterAt, afterID, int32(limit))
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

func (q *offerQueriesImpl) GetVisible(ctx context.Context, id uuid.UUID, now time.Time) (*OfferView, error) {
	return q.store.FindVisibleByID(ctx, id, now)
}

func (q *offerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*OfferView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *offerQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*OfferView, error) {
	return q.store.FindByOwner(ctx, ownerID)
}
