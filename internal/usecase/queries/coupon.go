package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CouponView struct {
	ID                 uuid.UUID       `json:"id"`
	Code               string          `json:"code"`
	ReceiptNo          string          `json:"receipt_no"`
	Status             string          `json:"status"`
	OfferID            uuid.UUID       `json:"offer_id"`
	OfferTitle         string          `json:"offer_title"`
	BusinessName       string          `json:"business_name"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	PlatformFeePercent decimal.Decimal `json:"platform_fee_percent"`
	PlatformFeeAmount  decimal.Decimal `json:"platform_fee_amount"`
	BusinessAmount     decimal.Decimal `json:"business_amount"`
	CardBrand          string          `json:"card_brand"`
	CardLast4          string          `json:"card_last4"`
	RedeemBy           time.Time       `json:"redeem_by"`
	PaidAt             time.Time       `json:"paid_at"`
}

type CouponQueries interface {
	// ListByBuyer returns one page of the buyer's coupons, optionally
	// filtered by status, newest purchase first.
	ListByBuyer(ctx context.Context, buyerID uuid.UUID, status *string, after *Cursor, limit int) ([]*CouponView, *Cursor, error)
	// GetForBuyer returns a coupon only when it belongs to the buyer.
	GetForBuyer(ctx context.Context, buyerID, id uuid.UUID) (*CouponView, error)
}

type CouponReadStore interface {
	FindByBuyer(ctx context.Context, buyerID uuid.UUID, status *string, afterAt time.Time, afterID uuid.UUID, limit int32) ([]*CouponView, error)
	FindByIDForBuyer(ctx context.Context, buyerID, id uuid.UUID) (*CouponView, error)
}

type couponQueriesImpl struct {
	store CouponReadStore
}

func NewCouponQueries(store CouponReadStore) CouponQueries {
	return &couponQueriesImpl{store: store}
}

func (q *couponQueriesImpl) ListByBuyer(ctx context.Context, buyerID uuid.UUID, status *string, after *Cursor, limit int) ([]*CouponView, *Cursor, error) {
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

	rows, err := q.store.FindByBuyer(ctx, buyerID, status, afterAt, afterID, int32(limit))
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) == limit {
		last := rows[len(rows)-1]
		next = &Cursor{After: EncodeAfterCursor(last.PaidAt, last.ID)}
	}
	return rows, next, nil
}

func (q *couponQueriesImpl) GetForBuyer(ctx context.Context, buyerID, id uuid.UUID) (*CouponView, error) {
	return q.store.FindByIDForBuyer(ctx, buyerID, id)
}
