package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"cuponera/internal/domain/user"
	"cuponera/internal/infra"
	"cuponera/internal/infra/db"
	"cuponera/internal/pkg/errs"
	"cuponera/internal/pkg/pgconv"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	const q = `
		INSERT INTO users (
			id, username, name, last_name, email, dui, date_of_birth,
			password_hash, role, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, q,
		u.ID(), u.Username(), u.Name().Value(), u.LastName(),
		u.Email().Value(), u.DUI(), u.DateOfBirth(),
		u.PasswordHash(), u.Role().String(), u.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

const userColumns = `
	id, username, name, last_name, email, dui, date_of_birth,
	password_hash, role, platform_fee_percent, is_active, last_login,
	created_at, updated_at`

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRow(ctx, q, email.Value()))
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRow(ctx, q, id))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *UserRepository) scanUser(row rowScanner) (*user.User, error) {
	var (
		id           uuid.UUID
		username     pgtype.Text
		name         string
		lastName     pgtype.Text
		email        string
		dui          pgtype.Text
		dateOfBirth  pgtype.Date
		passwordHash string
		role         string
		feePct       pgtype.Numeric
		isActive     bool
		lastLogin    pgtype.Timestamptz
		createdAt    pgtype.Timestamptz
		updatedAt    pgtype.Timestamptz
	)
	err := row.Scan(
		&id, &username, &name, &lastName, &email, &dui, &dateOfBirth,
		&passwordHash, &role, &feePct, &isActive, &lastLogin,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}

	nameVO, err := user.NewName(name)
	if err != nil {
		return nil, errs.Wrap(err, "stored user name is invalid")
	}
	emailVO, err := user.NewEmail(email)
	if err != nil {
		return nil, errs.Wrap(err, "stored user email is invalid")
	}
	roleVO, err := user.NewRole(role)
	if err != nil {
		return nil, errs.Wrap(err, "stored user role is invalid")
	}
	fee, err := pgconv.DecimalPtrFromNumeric(feePct)
	if err != nil {
		return nil, errs.Wrap(err, "failed to convert fee percent")
	}

	return user.ReconstructUser(
		id,
		pgconv.StringPtrFromPgtype(username),
		nameVO,
		pgconv.StringPtrFromPgtype(lastName),
		emailVO,
		pgconv.StringPtrFromPgtype(dui),
		pgconv.DatePtrFromPgtype(dateOfBirth),
		passwordHash,
		roleVO,
		fee,
		isActive,
		pgconv.TimePtrFromPgtype(lastLogin),
		createdAt.Time, updatedAt.Time,
	), nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}

func (r *UserRepository) FindRoleForUpdate(ctx context.Context, id uuid.UUID) (user.Role, error) {
	var role string
	err := r.db.QueryRow(ctx,
		`SELECT role FROM users WHERE id = $1 FOR UPDATE`, id).Scan(&role)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to lock user", err)
	}
	return user.NewRole(role)
}

func (r *UserRepository) SetRole(ctx context.Context, id uuid.UUID, role user.Role) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET role = $2, updated_at = now() WHERE id = $1`,
		id, role.String())
	if err != nil {
		return infra.WrapRepoErr("failed to set role", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) SetPlatformFee(ctx context.Context, id uuid.UUID, fee decimal.Decimal) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET platform_fee_percent = $2, updated_at = now() WHERE id = $1`,
		id, fee.String())
	if err != nil {
		return infra.WrapRepoErr("failed to set platform fee", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) CountAdmins(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE role = 'admin'`).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count admins", err)
	}
	return count, nil
}

func (r *UserRepository) RecordRoleChange(ctx context.Context, userID, changedBy uuid.UUID, oldRole, newRole user.Role) error {
	const q = `
		INSERT INTO role_changes (user_id, changed_by, old_role, new_role)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, q, userID, changedBy, oldRole.String(), newRole.String())
	if err != nil {
		return infra.WrapRepoErr("failed to record role change", err)
	}
	return nil
}
