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

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (s *UserReadStore) FindAuthorizedByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const q = `SELECT id, email, role, is_active FROM users WHERE id = $1`

	var view queries.AuthorizedUserView
	err := s.db.QueryRow(ctx, q, id).Scan(&view.ID, &view.Email, &view.Role, &view.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &view, nil
}

func (s *UserReadStore) FindAccountByID(ctx context.Context, id uuid.UUID) (*queries.AccountView, error) {
	const q = `
		SELECT id, username, name, last_name, email, dui, date_of_birth,
		       role, platform_fee_percent, is_active, last_login, created_at
		FROM users
		WHERE id = $1`

	var (
		view        queries.AccountView
		username    pgtype.Text
		lastName    pgtype.Text
		dui         pgtype.Text
		dateOfBirth pgtype.Date
		feePct      pgtype.Numeric
		lastLogin   pgtype.Timestamptz
		createdAt   pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, q, id).Scan(
		&view.ID, &username, &view.Name, &lastName, &view.Email, &dui, &dateOfBirth,
		&view.Role, &feePct, &view.IsActive, &lastLogin, &createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find account", err)
	}

	view.Username = pgconv.StringPtrFromPgtype(username)
	view.LastName = pgconv.StringPtrFromPgtype(lastName)
	view.DUI = pgconv.StringPtrFromPgtype(dui)
	view.DateOfBirth = pgconv.DatePtrFromPgtype(dateOfBirth)
	view.LastLogin = pgconv.TimePtrFromPgtype(lastLogin)
	view.CreatedAt = createdAt.Time
	if view.PlatformFeePercent, err = pgconv.DecimalPtrFromNumeric(feePct); err != nil {
		return nil, errs.Wrap(err, "failed to convert fee percent")
	}
	return &view, nil
}

func (s *UserReadStore) FindAll(ctx context.Context, afterAt time.Time, afterID uuid.UUID, limit int32) ([]*queries.UserListItem, error) {
	const q = `
		SELECT id, name, email, role, is_active, created_at
		FROM users
		WHERE ($1::timestamptz = 'epoch'::timestamptz OR (created_at, id) < ($1, $2))
		ORDER BY created_at DESC, id DESC
		LIMIT $3`

	cursorAt := afterAt
	if cursorAt.IsZero() {
		cursorAt = time.Unix(0, 0).UTC()
	}
	rows, err := s.db.Query(ctx, q, cursorAt, afterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	var items []*queries.UserListItem
	for rows.Next() {
		var (
			item      queries.UserListItem
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&item.ID, &item.Name, &item.Email, &item.Role, &item.IsActive, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		item.CreatedAt = createdAt.Time
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read user rows", err)
	}
	return items, nil
}
