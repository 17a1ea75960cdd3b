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

	"github.com/Technologic101/nextjs-dashboard/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// DefaultCustomerID is seeded by SeedReferenceData.
const DefaultCustomerID = "3958dc9e-712f-4377-85e9-fec4b6a6442a"

// DBLike is satisfied by both a pool and a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestUser(t *testing.T, db DBLike, name, email, plainPassword string) uuid.UUID {
	t.Helper()

	hasher, err := password.NewHasher(bcrypt.MinCost)
	require.NoError(t, err)
	hash, err := hasher.Hash(plainPassword)
	require.NoError(t, err)

	var userID uuid.UUID
	err = db.QueryRow(context.Background(),
		"INSERT INTO users (name, email, password) VALUES ($1, $2, $3) RETURNING id",
		name, email, hash).Scan(&userID)
	require.NoError(t, err)

	return userID
}

func CreateTestCustomer(t *testing.T, db DBLike, name, email string) uuid.UUID {
	t.Helper()

	var customerID uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO customers (name, email) VALUES ($1, $2) RETURNING id",
		name, email).Scan(&customerID)
	require.NoError(t, err)

	return customerID
}

func CreateTestInvoice(t *testing.T, db DBLike, customerID uuid.UUID, cents int32, status, date string) uuid.UUID {
	t.Helper()

	var invoiceID uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO invoices (customer_id, amount, status, date) VALUES ($1, $2, $3, $4::date) RETURNING id",
		customerID, cents, status, date).Scan(&invoiceID)
	require.NoError(t, err)

	return invoiceID
}

func CreateTestPayment(t *testing.T, db DBLike, invoiceID uuid.UUID, cents int32) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO payments (invoice_id, amount) VALUES ($1, $2)", invoiceID, cents)
	require.NoError(t, err)
}

func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table+" WHERE "+where, args...).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO customers (id, name, email, image_url) VALUES
		    ($1, 'Evil Rabbit', 'evil@rabbit.com', '/customers/evil-rabbit.png')
		ON CONFLICT (id) DO NOTHING;
	`, DefaultCustomerID)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'`)
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
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
