package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"cuponera/internal/domain/businessrequest"
	"cuponera/internal/domain/user"
	"cuponera/internal/infra"
	"cuponera/internal/infra/db"
	"cuponera/internal/pkg/errs"
	"cuponera/internal/pkg/pgconv"
)

type BusinessRequestRepository struct {
	db db.DBTX
}

func NewBusinessRequestRepository(dbtx db.DBTX) *BusinessRequestRepository {
	return &BusinessRequestRepository{db: dbtx}
}

func (r *BusinessRequestRepository) Create(ctx context.Context, req *businessrequest.BusinessRequest) error {
	const q = `
		INSERT INTO business_requests (
			id, user_id, company_name, nit, contact_email, contact_phone,
			address, description, platform_fee_percent, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	company := req.Company()
	_, err := r.db.Exec(ctx, q,
		req.ID(), req.UserID(), company.Name, company.NIT, company.Email,
		company.Phone, company.Address, company.Description,
		req.FeePercent().Value().String(), req.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create business request", err)
	}
	return nil
}

func (r *BusinessRequestRepository) FindForDecision(ctx context.Context, id uuid.UUID) (*businessrequest.BusinessRequest, error) {
	const q = `
		SELECT id, user_id, status, company_name, nit, contact_email,
		       contact_phone, address, description, platform_fee_percent,
		       decided_by, decided_at, created_at, updated_at
		FROM business_requests
		WHERE id = $1
		FOR UPDATE`

	var (
		reqID       uuid.UUID
		userID      uuid.UUID
		status      string
		companyName string
		nit         pgtype.Text
		email       pgtype.Text
		phone       pgtype.Text
		address     pgtype.Text
		description pgtype.Text
		feePct      pgtype.Numeric
		decidedBy   pgtype.UUID
		decidedAt   pgtype.Timestamptz
		createdAt   pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, q, id).Scan(
		&reqID, &userID, &status, &companyName, &nit, &email,
		&phone, &address, &description, &feePct,
		&decidedBy, &decidedAt, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("business request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock business request", err)
	}

	company, err := businessrequest.NewCompany(
		companyName,
		pgconv.StringPtrFromPgtype(nit),
		pgconv.StringPtrFromPgtype(email),
		pgconv.StringPtrFromPgtype(phone),
		pgconv.StringPtrFromPgtype(address),
		pgconv.StringPtrFromPgtype(description),
	)
	if err != nil {
		return nil, errs.Wrap(err, "stored company data is invalid")
	}
	feeDec, err := pgconv.DecimalFromNumeric(feePct)
	if err != nil {
		return nil, errs.Wrap(err, "failed to convert fee percent")
	}
	fee, err := user.NewFeePercent(feeDec)
	if err != nil {
		return nil, errs.Wrap(err, "stored fee percent is invalid")
	}

	return businessrequest.ReconstructBusinessRequest(
		reqID, userID,
		businessrequest.Status(status),
		company, fee,
		pgconv.UUIDPtrFromPgtype(decidedBy),
		pgconv.TimePtrFromPgtype(decidedAt),
		createdAt.Time, updatedAt.Time,
	), nil
}

func (r *BusinessRequestRepository) SaveDecision(ctx context.Context, req *businessrequest.BusinessRequest) error {
	const q = `
		UPDATE business_requests SET
			status = $2, decided_by = $3, decided_at = $4, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q,
		req.ID(), req.Status().String(), req.DecidedBy(), req.DecidedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to save decision", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("business request not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BusinessRequestRepository) HasPending(ctx context.Context, userID uuid.UUID) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM business_requests
			WHERE user_id = $1 AND status = 'pending'
		)`

	var exists bool
	if err := r.db.QueryRow(ctx, q, userID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check pending request", err)
	}
	return exists, nil
}
