package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"cuponera/internal/domain/offer"
	"cuponera/internal/infra"
	"cuponera/internal/infra/db"
	"cuponera/internal/pkg/errs"
	"cuponera/internal/pkg/pgconv"
	"cuponera/internal/usecase/shared"
)

type OfferRepository struct {
	db db.DBTX
}

func NewOfferRepository(dbtx db.DBTX) *OfferRepository {
	return &OfferRepository{db: dbtx}
}

func (r *OfferRepository) Create(ctx context.Context, o *offer.Offer) error {
	const q = `
		INSERT INTO offers (
			id, user_id, title, description,
			regular_price, offer_price,
			starts_at, ends_at, redeem_by,
			quantity, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(ctx, q,
		o.ID(), o.OwnerID(), o.Title().Value(), o.Description(),
		o.Pricing().RegularPrice().String(), o.Pricing().OfferPrice().String(),
		o.Window().StartsAt(), o.Window().EndsAt(), o.Window().RedeemBy(),
		o.Quantity(), o.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create offer", err)
	}
	return nil
}

func (r *OfferRepository) Update(ctx context.Context, o *offer.Offer) error {
	const q = `
		UPDATE offers SET
			title = $2, description = $3,
			regular_price = $4, offer_price = $5,
			starts_at = $6, ends_at = $7, redeem_by = $8,
			quantity = $9, status = $10,
			updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q,
		o.ID(), o.Title().Value(), o.Description(),
		o.Pricing().RegularPrice().String(), o.Pricing().OfferPrice().String(),
		o.Window().StartsAt(), o.Window().EndsAt(), o.Window().RedeemBy(),
		o.Quantity(), o.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update offer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OfferRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM offers WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete offer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OfferRepository) FindByID(ctx context.Context, id uuid.UUID) (*offer.Offer, error) {
	const q = `
		SELECT id, user_id, title, description,
		       regular_price, offer_price,
		       starts_at, ends_at, redeem_by,
		       quantity, status, created_at, updated_at
		FROM offers
		WHERE id = $1`

	var row struct {
		id           uuid.UUID
		ownerID      uuid.UUID
		title        string
		description  pgtype.Text
		regularPrice pgtype.Numeric
		offerPrice   pgtype.Numeric
		startsAt     pgtype.Date
		endsAt       pgtype.Date
		redeemBy     pgtype.Date
		quantity     pgtype.Int4
		status       string
		createdAt    pgtype.Timestamptz
		updatedAt    pgtype.Timestamptz
	}
	err := r.db.QueryRow(ctx, q, id).Scan(
		&row.id, &row.ownerID, &row.title, &row.description,
		&row.regularPrice, &row.offerPrice,
		&row.startsAt, &row.endsAt, &row.redeemBy,
		&row.quantity, &row.status, &row.createdAt, &row.updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find offer", err)
	}

	title, err := offer.NewTitle(row.title)
	if err != nil {
		return nil, errs.Wrap(err, "stored offer title is invalid")
	}
	regular, err := pgconv.DecimalFromNumeric(row.regularPrice)
	if err != nil {
		return nil, errs.Wrap(err, "failed to convert regular price")
	}
	offered, err := pgconv.DecimalFromNumeric(row.offerPrice)
	if err != nil {
		return nil, errs.Wrap(err, "failed to convert offer price")
	}
	pricing, err := offer.NewPricing(regular, offered)
	if err != nil {
		return nil, errs.Wrap(err, "stored offer pricing is invalid")
	}
	window, err := offer.NewWindow(row.startsAt.Time, row.endsAt.Time, row.redeemBy.Time)
	if err != nil {
		return nil, errs.Wrap(err, "stored offer window is invalid")
	}
	status, err := offer.NewStatus(row.status)
	if err != nil {
		return nil, errs.Wrap(err, "stored offer status is invalid")
	}

	return offer.ReconstructOffer(
		row.id, row.ownerID,
		title, pricing, window,
		pgconv.Int32PtrFromPgtype(row.quantity),
		pgconv.StringPtrFromPgtype(row.description),
		status,
		row.createdAt.Time, row.updatedAt.Time,
	), nil
}

func (r *OfferRepository) FindForPurchase(ctx context.Context, id uuid.UUID) (*shared.OfferPurchaseSnapshot, error) {
	const q = `
		SELECT o.id, o.user_id, o.title,
		       o.regular_price, o.offer_price,
		       o.starts_at, o.ends_at, o.redeem_by,
		       o.quantity, o.tickets_sold, o.status,
		       COALESCE(u.platform_fee_percent, 0)
		FROM offers o
		JOIN users u ON u.id = o.user_id
		WHERE o.id = $1
		FOR UPDATE OF o`

	var (
		snap         shared.OfferPurchaseSnapshot
		regularPrice pgtype.Numeric
		offerPrice   pgtype.Numeric
		startsAt     pgtype.Date
		endsAt       pgtype.Date
		redeemBy     pgtype.Date
		quantity     pgtype.Int4
		status       string
		feePct       pgtype.Numeric
	)
	err := r.db.QueryRow(ctx, q, id).Scan(
		&snap.ID, &snap.OwnerID, &snap.Title,
		&regularPrice, &offerPrice,
		&startsAt, &endsAt, &redeemBy,
		&quantity, &snap.TicketsSold, &status,
		&feePct,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock offer", err)
	}

	if snap.RegularPrice, err = pgconv.DecimalFromNumeric(regularPrice); err != nil {
		return nil, errs.Wrap(err, "failed to convert regular price")
	}
	if snap.OfferPrice, err = pgconv.DecimalFromNumeric(offerPrice); err != nil {
		return nil, errs.Wrap(err, "failed to convert offer price")
	}
	if snap.OwnerFeePct, err = pgconv.DecimalFromNumeric(feePct); err != nil {
		return nil, errs.Wrap(err, "failed to convert fee percent")
	}
	snap.StartsAt = startsAt.Time
	snap.EndsAt = endsAt.Time
	snap.RedeemBy = redeemBy.Time
	snap.Quantity = pgconv.Int32PtrFromPgtype(quantity)
	snap.Status = offer.Status(status)
	return &snap, nil
}

func (r *OfferRepository) RecordSale(ctx context.Context, id uuid.UUID, revenueCents int64) error {
	const q = `
		UPDATE offers
		SET purchases_count = purchases_count + 1,
		    tickets_sold = tickets_sold + 1,
		    revenue_cents = revenue_cents + $2,
		    updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id, revenueCents)
	if err != nil {
		return infra.WrapRepoErr("failed to record sale", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}
	return nil
}
