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

type OfferReadStore struct {
	db db.DBTX
}

func NewOfferReadStore(dbtx db.DBTX) *OfferReadStore {
	return &OfferReadStore{db: dbtx}
}

const offerViewColumns = `
	o.id, o.user_id, u.name, o.title, o.description,
	o.regular_price, o.offer_price,
	o.starts_at, o.ends_at, o.redeem_by,
	o.quantity, o.purchases_count, o.tickets_sold, o.status,
	o.created_at, o.updated_at`

func (s *OfferReadStore) FindVisible(ctx context.Context, now time.Time, search string, afterAt time.Time, afterID uuid.UUID, limit int32) ([]*queries.OfferListItem, error) {
	const q = `
		SELECT o.id, u.name, o.title,
		       o.regular_price, o.offer_price,
		       o.ends_at, o.created_at
		FROM offers o
		JOIN users u ON u.id = o.user_id
		WHERE o.status = 'available'
		  AND $1::date BETWEEN o.starts_at AND o.ends_at
		  AND (o.quantity IS NULL OR o.tickets_sold < o.quantity)
		  AND ($2::text = '' OR o.title ILIKE '%' || $2 || '%')
		  AND ($3::timestamptz = 'epoch'::timestamptz OR (o.created_at, o.id) < ($3, $4))
		ORDER BY o.created_at DESC, o.id DESC
		LIMIT $5`

	cursorAt := afterAt
	if cursorAt.IsZero() {
		cursorAt = time.Unix(0, 0).UTC()
	}
	rows, err := s.db.Query(ctx, q, now, search, cursorAt, afterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list visible offers", err)
	}
	defer rows.Close()

	var items []*queries.OfferListItem
	for rows.Next() {
		var (
			item         queries.OfferListItem
			regularPrice pgtype.Numeric
			offerPrice   pgtype.Numeric
			endsAt       pgtype.Date
			createdAt    pgtype.Timestamptz
		)
		if err := rows.Scan(
			&item.ID, &item.BusinessName, &item.Title,
			&regularPrice, &offerPrice, &endsAt, &createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan offer row", err)
		}
		if item.RegularPrice, err = pgconv.DecimalFromNumeric(regularPrice); err != nil {
			return nil, errs.Wrap(err, "failed to convert regular price")
		}
		if item.OfferPrice, err = pgconv.DecimalFromNumeric(offerPrice); err != nil {
			return nil, errs.Wrap(err, "failed to convert offer price")
		}
		item.EndsAt = endsAt.Time
		item.CreatedAt = createdAt.Time
		item.DiscountPercent = discountPercent(item.RegularPrice, item.OfferPrice)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read offer rows", err)
	}
	return items, nil
}

func (s *OfferReadStore) FindVisibleByID(ctx context.Context, id uuid.UUID, now time.Time) (*queries.OfferView, error) {
	q := `
		SELECT ` + offerViewColumns + `
		FROM offers o
		JOIN users u ON u.id = o.user_id
		WHERE o.id = $1
		  AND o.status = 'available'
		  AND $2::date BETWEEN o.starts_at AND o.ends_at
		  AND (o.quantity IS NULL OR o.tickets_sold < o.quantity)`

	return s.scanOfferView(s.db.QueryRow(ctx, q, id, now))
}

func (s *OfferReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OfferView, error) {
	q := `
		SELECT ` + offerViewColumns + `
		FROM offers o
		JOIN users u ON u.id = o.user_id
		WHERE o.id = $1`

	return s.scanOfferView(s.db.QueryRow(ctx, q, id))
}

func (s *OfferReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.OfferView, error) {
	q := `
		SELECT ` + offerViewColumns + `
		FROM offers o
		JOIN users u ON u.id = o.user_id
		WHERE o.user_id = $1
		ORDER BY o.created_at DESC, o.id DESC`

	rows, err := s.db.Query(ctx, q, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offers by owner", err)
	}
	defer rows.Close()

	var views []*queries.OfferView
	for rows.Next() {
		view, err := s.scanOfferView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read offer rows", err)
	}
	return views, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *OfferReadStore) scanOfferView(row rowScanner) (*queries.OfferView, error) {
	var (
		view         queries.OfferView
		description  pgtype.Text
		regularPrice pgtype.Numeric
		offerPrice   pgtype.Numeric
		startsAt     pgtype.Date
		endsAt       pgtype.Date
		redeemBy     pgtype.Date
		quantity     pgtype.Int4
		createdAt    pgtype.Timestamptz
		updatedAt    pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.BusinessID, &view.BusinessName, &view.Title, &description,
		&regularPrice, &offerPrice,
		&startsAt, &endsAt, &redeemBy,
		&quantity, &view.PurchasesCount, &view.TicketsSold, &view.Status,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find offer", err)
	}

	if view.RegularPrice, err = pgconv.DecimalFromNumeric(regularPrice); err != nil {
		return nil, errs.Wrap(err, "failed to convert regular price")
	}
	if view.OfferPrice, err = pgconv.DecimalFromNumeric(offerPrice); err != nil {
		return nil, errs.Wrap(err, "failed to convert offer price")
	}
	view.Description = pgconv.StringPtrFromPgtype(description)
	view.StartsAt = startsAt.Time
	view.EndsAt = endsAt.Time
	view.RedeemBy = redeemBy.Time
	view.Quantity = pgconv.Int32PtrFromPgtype(quantity)
	view.CreatedAt = createdAt.Time
	view.UpdatedAt = updatedAt.Time
	view.DiscountPercent = discountPercent(view.RegularPrice, view.OfferPrice)
	return &view, nil
}
