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

type BusinessRequestReadStore struct {
	db db.DBTX
}

func NewBusinessRequestReadStore(dbtx db.DBTX) *BusinessRequestReadStore {
	return &BusinessRequestReadStore{db: dbtx}
}

const businessRequestViewColumns = `
	r.id, r.user_id, u.name, u.email,
	r.company_name, r.nit, r.contact_email, r.contact_phone,
	r.address, r.description, r.platform_fee_percent,
	r.status, r.decided_by, r.decided_at, r.created_at`

func (s *BusinessRequestReadStore) FindAll(ctx context.Context, status *string) ([]*queries.BusinessRequestView, error) {
	q := `
		SELECT ` + businessRequestViewColumns + `
		FROM business_requests r
		JOIN users u ON u.id = r.user_id
		WHERE ($1::text IS NULL OR r.status = $1)
		ORDER BY r.created_at DESC, r.id DESC`

	return s.queryViews(ctx, q, status)
}

func (s *BusinessRequestReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.BusinessRequestView, error) {
	q := `
		SELECT ` + businessRequestViewColumns + `
		FROM business_requests r
		JOIN users u ON u.id = r.user_id
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC, r.id DESC`

	return s.queryViews(ctx, q, userID)
}

func (s *BusinessRequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BusinessRequestView, error) {
	q := `
		SELECT ` + businessRequestViewColumns + `
		FROM business_requests r
		JOIN users u ON u.id = r.user_id
		WHERE r.id = $1`

	return scanBusinessRequestView(s.db.QueryRow(ctx, q, id))
}

func (s *BusinessRequestReadStore) queryViews(ctx context.Context, q string, arg any) ([]*queries.BusinessRequestView, error) {
	rows, err := s.db.Query(ctx, q, arg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list business requests", err)
	}
	defer rows.Close()

	var views []*queries.BusinessRequestView
	for rows.Next() {
		view, err := scanBusinessRequestView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read business request rows", err)
	}
	return views, nil
}

func scanBusinessRequestView(row rowScanner) (*queries.BusinessRequestView, error) {
	var (
		view      queries.BusinessRequestView
		nit       pgtype.Text
		email     pgtype.Text
		phone     pgtype.Text
		address   pgtype.Text
		desc      pgtype.Text
		feePct    pgtype.Numeric
		decidedBy pgtype.UUID
		decidedAt pgtype.Timestamptz
		createdAt pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.UserID, &view.ApplicantName, &view.ApplicantEmail,
		&view.CompanyName, &nit, &email, &phone,
		&address, &desc, &feePct,
		&view.Status, &decidedBy, &decidedAt, &createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("business request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find business request", err)
	}

	if view.PlatformFeePercent, err = pgconv.DecimalFromNumeric(feePct); err != nil {
		return nil, errs.Wrap(err, "failed to convert fee percent")
	}
	view.NIT = pgconv.StringPtrFromPgtype(nit)
	view.ContactEmail = pgconv.StringPtrFromPgtype(email)
	view.ContactPhone = pgconv.StringPtrFromPgtype(phone)
	view.Address = pgconv.StringPtrFromPgtype(address)
	view.Description = pgconv.StringPtrFromPgtype(desc)
	view.DecidedBy = pgconv.UUIDPtrFromPgtype(decidedBy)
	view.DecidedAt = pgconv.TimePtrFromPgtype(decidedAt)
	view.CreatedAt = createdAt.Time
	return &view, nil
}
