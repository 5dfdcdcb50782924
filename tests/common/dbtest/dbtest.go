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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is the minimal surface test fixtures need, satisfied by both
// pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// bcrypt hash of "password123", precomputed so fixtures stay fast
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, first_name, last_name, email, password_hash, role, is_active) VALUES ($1, 'Test', 'User', $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestBrand(t *testing.T, db DBLike, name, email string) uuid.UUID {
	t.Helper()

	brandID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO brands (id, name, website, email, password_hash) VALUES ($1, $2, 'https://example.com', $3, $4) ON CONFLICT (email) DO NOTHING",
		brandID, name, email, testPasswordHash)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM brands WHERE email = $1", email).Scan(&brandID)
	}

	return brandID
}

func CreateTestDiscount(t *testing.T, db DBLike, brandID uuid.UUID, code string, quantity int32) uuid.UUID {
	t.Helper()

	discountID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO discounts (id, brand_id, code, description, quantity) VALUES ($1, $2, $3, 'e2e fixture', $4)",
		discountID, brandID, code, quantity)
	require.NoError(t, err)

	return discountID
}

func DisableDiscount(t *testing.T, db DBLike, discountID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE discounts SET enable = false WHERE id = $1", discountID)
	require.NoError(t, err)
}

func ClaimedCount(t *testing.T, db DBLike, discountID uuid.UUID) int32 {
	t.Helper()

	var count int32
	err := db.QueryRow(context.Background(), "SELECT claimed_count FROM discounts WHERE id = $1", discountID).Scan(&count)
	require.NoError(t, err)
	return count
}

func ClaimRows(t *testing.T, db DBLike, discountID uuid.UUID) int64 {
	t.Helper()

	var count int64
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM claims WHERE discount_id = $1", discountID).Scan(&count)
	require.NoError(t, err)
	return count
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables so each subtest starts from a clean slate
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
