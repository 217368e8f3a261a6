package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"cuponera/internal/infra"
	"cuponera/internal/infra/db"
	"cuponera/internal/pkg/errs"
	"cuponera/internal/pkg/pgconv"
	"cuponera/internal/usecase/queries"
)

type ReportReadStore struct {
	db db.DBTX
}

func NewReportReadStore(dbtx db.DBTX) *ReportReadStore {
	return &ReportReadStore{db: dbtx}
}

// Businesses with no sales still appear with zeroed aggregates.
func (s *ReportReadStore) SalesByCompany(ctx context.Context) ([]*queries.CompanySalesRow, error) {
	const q = `
		SELECT u.id, u.name,
		       COUNT(c.id),
		       COALESCE(SUM(c.unit_price), 0),
		       COALESCE(SUM(c.platform_fee_amount), 0),
		       COALESCE(SUM(c.business_amount), 0)
		FROM users u
		LEFT JOIN offers o ON o.user_id = u.id
		LEFT JOIN coupons c ON c.offer_id = o.id
		WHERE u.role = 'business'
		GROUP BY u.id, u.name
		ORDER BY u.name, u.id`

	rows, err := s.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate company sales", err)
	}
	defer rows.Close()

	var report []*queries.CompanySalesRow
	for rows.Next() {
		row, err := scanCompanySalesRow(rows)
		if err != nil {
			return nil, err
		}
		report = append(report, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read report rows", err)
	}
	return report, nil
}

func (s *ReportReadStore) CompanySales(ctx context.Context, businessID uuid.UUID) (*queries.CompanySalesRow, error) {
	const q = `
		SELECT u.id, u.name,
		       COUNT(c.id),
		       COALESCE(SUM(c.unit_price), 0),
		       COALESCE(SUM(c.platform_fee_amount), 0),
		       COALESCE(SUM(c.business_amount), 0)
		FROM users u
		LEFT JOIN offers o ON o.user_id = u.id
		LEFT JOIN coupons c ON c.offer_id = o.id
		WHERE u.id = $1 AND u.role = 'business'
		GROUP BY u.id, u.name`

	return scanCompanySalesRow(s.db.QueryRow(ctx, q, businessID))
}

func (s *ReportReadStore) SalesByOffer(ctx context.Context, businessID uuid.UUID) ([]*queries.CompanyOfferRow, error) {
	const q = `
		SELECT o.id, o.title,
		       COUNT(c.id),
		       COALESCE(SUM(c.unit_price), 0),
		       COALESCE(SUM(c.platform_fee_amount), 0),
		       COALESCE(SUM(c.business_amount), 0)
		FROM offers o
		LEFT JOIN coupons c ON c.offer_id = o.id
		WHERE o.user_id = $1
		GROUP BY o.id, o.title
		ORDER BY o.created_at DESC, o.id DESC`

	rows, err := s.db.Query(ctx, q, businessID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate offer sales", err)
	}
	defer rows.Close()

	var report []*queries.CompanyOfferRow
	for rows.Next() {
		var (
			row      queries.CompanyOfferRow
			gross    pgtype.Numeric
			platform pgtype.Numeric
			business pgtype.Numeric
		)
		if err := rows.Scan(&row.OfferID, &row.Title, &row.CouponsSold, &gross, &platform, &business); err != nil {
			return nil, infra.WrapRepoErr("failed to scan offer sales row", err)
		}
		if row.GrossSales, err = pgconv.DecimalFromNumeric(gross); err != nil {
			return nil, errs.Wrap(err, "failed to convert gross sales")
		}
		if row.PlatformGain, err = pgconv.DecimalFromNumeric(platform); err != nil {
			return nil, errs.Wrap(err, "failed to convert platform gain")
		}
		if row.BusinessGain, err = pgconv.DecimalFromNumeric(business); err != nil {
			return nil, errs.Wrap(err, "failed to convert business gain")
		}
		report = append(report, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read offer sales rows", err)
	}
	return report, nil
}

func scanCompanySalesRow(row rowScanner) (*queries.CompanySalesRow, error) {
	var (
		out      queries.CompanySalesRow
		gross    pgtype.Numeric
		platform pgtype.Numeric
		business pgtype.Numeric
	)
	err := row.Scan(&out.BusinessID, &out.BusinessName, &out.CouponsSold, &gross, &platform, &business)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("business not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan company sales row", err)
	}

	if out.GrossSales, err = pgconv.DecimalFromNumeric(gross); err != nil {
		return nil, errs.Wrap(err, "failed to convert gross sales")
	}
	if out.PlatformGain, err = pgconv.DecimalFromNumeric(platform); err != nil {
		return nil, errs.Wrap(err, "failed to convert platform gain")
	}
	if out.BusinessGain, err = pgconv.DecimalFromNumeric(business); err != nil {
		return nil, errs.Wrap(err, "failed to convert business gain")
	}
	return &out, nil
}
