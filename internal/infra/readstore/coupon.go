package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"cuponera/internal/infra"
	"cuponera/internal/infra/db"
	"cuponera/internal/pkg/errs"
	"cuponera/internal/pkg/pgconv"
	"cuponera/internal/usecase/queries"
)

type CouponReadStore struct {
	db db.DBTX
}

func NewCouponReadStore(dbtx db.DBTX) *CouponReadStore {
	return &CouponReadStore{db: dbtx}
}

const couponViewColumns = `
	c.id, c.code, c.receipt_no, c.status,
	c.offer_id, o.title, u.name,
	c.unit_price, c.platform_fee_percent, c.platform_fee_amount, c.business_amount,
	c.card_brand, c.card_last4,
	o.redeem_by, c.paid_at`

func (s *CouponReadStore) FindByBuyer(ctx context.Context, buyerID uuid.UUID, status *string, afterAt time.Time, afterID uuid.UUID, limit int32) ([]*queries.CouponView, error) {
	q := `
		SELECT ` + couponViewColumns + `
		FROM coupons c
		JOIN offers o ON o.id = c.offer_id
		JOIN users u ON u.id = o.user_id
		WHERE c.user_id = $1
		  AND ($2::text IS NULL OR c.status = $2)
		  AND ($3::timestamptz = 'epoch'::timestamptz OR (c.paid_at, c.id) < ($3, $4))
		ORDER BY c.paid_at DESC, c.id DESC
		LIMIT $5`

	cursorAt := afterAt
	if cursorAt.IsZero() {
		cursorAt = time.Unix(0, 0).UTC()
	}
	rows, err := s.db.Query(ctx, q, buyerID, status, cursorAt, afterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons", err)
	}
	defer rows.Close()

	var views []*queries.CouponView
	for rows.Next() {
		view, err := scanCouponView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read coupon rows", err)
	}
	return views, nil
}

func (s *CouponReadStore) FindByIDForBuyer(ctx context.Context, buyerID, id uuid.UUID) (*queries.CouponView, error) {
	q := `
		SELECT ` + couponViewColumns + `
		FROM coupons c
		JOIN offers o ON o.id = c.offer_id
		JOIN users u ON u.id = o.user_id
		WHERE c.id = $1 AND c.user_id = $2`

	return scanCouponView(s.db.QueryRow(ctx, q, id, buyerID))
}

func scanCouponView(row rowScanner) (*queries.CouponView, error) {
	var (
		view       queries.CouponView
		unitPrice  pgtype.Numeric
		feePercent pgtype.Numeric
		feeAmount  pgtype.Numeric
		bizAmount  pgtype.Numeric
		redeemBy   pgtype.Date
		paidAt     pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.Code, &view.ReceiptNo, &view.Status,
		&view.OfferID, &view.OfferTitle, &view.BusinessName,
		&unitPrice, &feePercent, &feeAmount, &bizAmount,
		&view.CardBrand, &view.CardLast4,
		&redeemBy, &paidAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon", err)
	}

	if view.UnitPrice, err = pgconv.DecimalFromNumeric(unitPrice); err != nil {
		return nil, errs.Wrap(err, "failed to convert unit price")
	}
	if view.PlatformFeePercent, err = pgconv.DecimalFromNumeric(feePercent); err != nil {
		return nil, errs.Wrap(err, "failed to convert fee percent")
	}
	if view.PlatformFeeAmount, err = pgconv.DecimalFromNumeric(feeAmount); err != nil {
		return nil, errs.Wrap(err, "failed to convert fee amount")
	}
	if view.BusinessAmount, err = pgconv.DecimalFromNumeric(bizAmount); err != nil {
		return nil, errs.Wrap(err, "failed to convert business amount")
	}
	view.RedeemBy = redeemBy.Time
	view.PaidAt = paidAt.Time
	return &view, nil
}
