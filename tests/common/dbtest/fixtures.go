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

	"washbook/internal/pkg/password"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestPassword is the plaintext every seeded user logs in with.
const TestPassword = "password123"

var (
	hashOnce         sync.Once
	testPasswordHash string
)

func passwordHash() string {
	hashOnce.Do(func() {
		h, err := password.HashPassword(TestPassword)
		if err != nil {
			panic(err)
		}
		testPasswordHash = h
	})
	return testPasswordHash
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) int64 {
	t.Helper()

	ctx := context.Background()
	var userID int64
	err := db.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, role, is_active)
		 VALUES ($1, $2, $3, $4, true)
		 ON CONFLICT (email) DO UPDATE SET role = EXCLUDED.role
		 RETURNING id`,
		"Test User", email, passwordHash(), role).Scan(&userID)
	require.NoError(t, err)

	return userID
}

func CreateTestWasher(t *testing.T, db DBLike, firstName, lastName string) int64 {
	t.Helper()

	ctx := context.Background()
	var washerID int64
	err := db.QueryRow(ctx,
		`INSERT INTO washers (first_name, last_name, is_active)
		 VALUES ($1, $2, true) RETURNING id`,
		firstName, lastName).Scan(&washerID)
	require.NoError(t, err)

	return washerID
}

func CreateTestService(t *testing.T, db DBLike, name, vehicleType string, price int64) int64 {
	t.Helper()

	ctx := context.Background()
	var serviceID int64
	err := db.QueryRow(ctx,
		`INSERT INTO services (name, vehicle_type, price, is_active)
		 VALUES ($1, $2, $3, true) RETURNING id`,
		name, vehicleType, price).Scan(&serviceID)
	require.NoError(t, err)

	return serviceID
}

// RecordRow inserts a ledger row with an explicit date and time, bypassing
// the server-side stamp. Tests use it when ordering or date filters need
// rows on days other than "today".
type RecordRow struct {
	Date          string
	Time          string
	VehicleType   string
	Plate         string
	ServiceID     int64
	Cost          int64
	Percentage    int64
	WasherID      int64
	WasherName    string
	PaymentStatus string
	UserID        int64
}

func CreateTestRecord(t *testing.T, db DBLike, row RecordRow) int64 {
	t.Helper()

	ctx := context.Background()
	var recordID int64
	err := db.QueryRow(ctx,
		`INSERT INTO records (service_date, service_time, vehicle_type, plate,
		                      service_id, cost, percentage, washer_id, washer_name,
		                      payment_status, user_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`,
		row.Date, row.Time, row.VehicleType, row.Plate,
		row.ServiceID, row.Cost, row.Percentage, row.WasherID, row.WasherName,
		row.PaymentStatus, row.UserID).Scan(&recordID)
	require.NoError(t, err)

	return recordID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO users (name, email, password_hash, role, is_active)
		VALUES ('Secretaria', 'secretaria@lavadero.com', $1, 'secretario', true)
		ON CONFLICT (email) DO NOTHING;
	`, passwordHash())
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO services (name, description, vehicle_type, price, is_active)
		SELECT 'Lavado General', 'Lavado exterior e interior', 'car', 25000, true
		WHERE NOT EXISTS (SELECT 1 FROM services WHERE name = 'Lavado General');
	`)
	return err
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
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var tbl string
			if err := rows.Scan(&tbl); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, tbl)
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

	return SeedReferenceData(pool)
}
