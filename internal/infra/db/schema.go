package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the tables and indexes if they don't exist. Statements
// are idempotent so startup is safe against an already-initialized database.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			email VARCHAR(100) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			role VARCHAR(20) NOT NULL DEFAULT 'secretario',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			CONSTRAINT users_role_check CHECK (role IN ('admin', 'secretario'))
		)`,
		`CREATE TABLE IF NOT EXISTS washers (
			id BIGSERIAL PRIMARY KEY,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS services (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			description TEXT,
			vehicle_type VARCHAR(20) NOT NULL,
			price NUMERIC(10,2) NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			CONSTRAINT services_vehicle_type_check
				CHECK (vehicle_type IN ('car', 'motorcycle', 'pickup', 'truck'))
		)`,
		`CREATE TABLE IF NOT EXISTS records (
			id BIGSERIAL PRIMARY KEY,
			service_date DATE NOT NULL,
			service_time TIME NOT NULL,
			vehicle_type VARCHAR(20) NOT NULL,
			plate VARCHAR(20),
			service_id BIGINT NOT NULL REFERENCES services(id),
			cost NUMERIC(10,2) NOT NULL,
			percentage NUMERIC(5,2) NOT NULL,
			washer_id BIGINT NOT NULL REFERENCES washers(id),
			washer_name VARCHAR(200) NOT NULL,
			notes TEXT,
			payment_status VARCHAR(20) NOT NULL DEFAULT 'Pendiente',
			user_id BIGINT NOT NULL REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			CONSTRAINT records_vehicle_type_check
				CHECK (vehicle_type IN ('car', 'motorcycle', 'pickup', 'truck')),
			CONSTRAINT records_payment_status_check
				CHECK (payment_status IN ('Pendiente', 'Pagado'))
		)`,
		`CREATE INDEX IF NOT EXISTS idx_records_service_date ON records(service_date)`,
		`CREATE INDEX IF NOT EXISTS idx_records_date_payment ON records(service_date, payment_status)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
