package repository

import (
	"context"

	"github.com/google/uuid"

	"cuponera/internal/domain/coupon"
	"cuponera/internal/infra"
	"cuponera/internal/infra/db"
)

type CouponRepository struct {
	db db.DBTX
}

func NewCouponRepository(dbtx db.DBTX) *CouponRepository {
	return &CouponRepository{db: dbtx}
}

func (r *CouponRepository) Create(ctx context.Context, c *coupon.Coupon) error {
	const q = `
		INSERT INTO coupons (
			id, offer_id, user_id, code, receipt_no, status,
			unit_price, platform_fee_percent, platform_fee_amount, business_amount,
			card_brand, card_last4, paid_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	split := c.Split()
	_, err := r.db.Exec(ctx, q,
		c.ID(), c.OfferID(), c.BuyerID(), c.Code(), c.ReceiptNo(), c.Status().String(),
		split.UnitPrice().String(), split.FeePercent().String(), split.FeeAmount().String(), split.BusinessAmount().String(),
		c.CardBrand(), c.CardLast4(), c.PaidAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create coupon", err)
	}
	return nil
}

func (r *CouponRepository) CountByOffer(ctx context.Context, offerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM coupons WHERE offer_id = $1`, offerID,
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count coupons", err)
	}
	return count, nil
}

func (r *CouponRepository) CountActiveByBuyerAndOffer(ctx context.Context, buyerID, offerID uuid.UUID) (int64, error) {
	const q = `
		SELECT COUNT(*) FROM coupons
		WHERE user_id = $1 AND offer_id = $2 AND status = 'active'`

	var count int64
	if err := r.db.QueryRow(ctx, q, buyerID, offerID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count active coupons", err)
	}
	return count, nil
}
