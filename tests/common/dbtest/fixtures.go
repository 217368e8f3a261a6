//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123", precomputed so fixtures stay fast.
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, role, is_active)
		 VALUES ($1, $2, $3, $4, $5, true)
		 ON CONFLICT (email) DO NOTHING`,
		userID, "Test User", email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err := db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

// CreateTestBusiness creates an approved business account with the given
// platform fee percentage.
func CreateTestBusiness(t *testing.T, db DBLike, email string, feePercent string) uuid.UUID {
	t.Helper()

	userID := CreateTestUser(t, db, email, "business")
	_, err := db.Exec(context.Background(),
		"UPDATE users SET platform_fee_percent = $1 WHERE id = $2", feePercent, userID)
	require.NoError(t, err)
	return userID
}

func CreateTestOffer(t *testing.T, db DBLike, ownerID uuid.UUID, title string) uuid.UUID {
	t.Helper()

	offerID := uuid.New()
	today := time.Now().UTC().Truncate(24 * time.Hour)
	_, err := db.Exec(context.Background(),
		`INSERT INTO offers (id, user_id, title, regular_price, offer_price,
		                     starts_at, ends_at, redeem_by, quantity, status)
		 VALUES ($1, $2, $3, 10.00, 6.00, $4, $5, $6, 50, 'available')`,
		offerID, ownerID, title,
		today.AddDate(0, 0, -1), today.AddDate(0, 0, 7), today.AddDate(0, 0, 30))
	require.NoError(t, err)
	return offerID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates all tables so each subtest starts from a clean slate.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})

	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
