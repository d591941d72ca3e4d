package writerepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"washbook/internal/domain/record"
	"washbook/internal/infra"
	"washbook/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

type RecordWriteRepo struct {
	pool *pgxpool.Pool
}

func NewRecordWriteRepo(pool *pgxpool.Pool) *RecordWriteRepo {
	return &RecordWriteRepo{pool: pool}
}

func (r *RecordWriteRepo) Insert(ctx context.Context, rec *record.Record) (int64, error) {
	date, err := pgconv.DateToPgtype(rec.Date())
	if err != nil {
		return 0, infra.WrapRepoErr("invalid record date", err)
	}
	timeOfDay, err := pgconv.TimeOfDayToPgtype(rec.TimeOfDay())
	if err != nil {
		return 0, infra.WrapRepoErr("invalid record time", err)
	}

	var id int64
	err = r.pool.QueryRow(ctx, `
		INSERT INTO records
			(service_date, service_time, vehicle_type, plate, service_id,
			 cost, percentage, washer_id, washer_name, notes, payment_status, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`,
		date, timeOfDay,
		rec.VehicleType().String(),
		pgconv.StringPtrToPgtype(rec.Plate()),
		rec.ServiceID(),
		pgconv.DecimalToNumeric(rec.Cost()),
		pgconv.DecimalToNumeric(rec.Percentage()),
		rec.WasherID(),
		rec.WasherName(),
		pgconv.StringPtrToPgtype(rec.Notes()),
		rec.PaymentStatus().String(),
		rec.UserID(),
	).Scan(&id)
	if err != nil {
		return 0, wrapWriteErr("failed to insert record", err)
	}
	return id, nil
}

// Update translates a Patch into one parameterized UPDATE touching only the
// provided fields. Cost and percentage are always present in a Patch, so the
// SET list is never empty.
func (r *RecordWriteRepo) Update(ctx context.Context, id int64, p record.Patch) error {
	sets := make([]string, 0, 9)
	args := make([]any, 0, 10)

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	add("cost", pgconv.DecimalToNumeric(p.Cost))
	add("percentage", pgconv.DecimalToNumeric(p.Percentage))

	if p.VehicleType != nil {
		add("vehicle_type", p.VehicleType.String())
	}
	if p.Plate != nil {
		add("plate", pgconv.StringPtrToPgtype(emptyToNil(*p.Plate)))
	}
	if p.ServiceID != nil {
		add("service_id", *p.ServiceID)
	}
	if p.WasherID != nil {
		add("washer_id", *p.WasherID)
	}
	if p.WasherName != nil {
		add("washer_name", *p.WasherName)
	}
	if p.Notes != nil {
		add("notes", pgconv.StringPtrToPgtype(emptyToNil(*p.Notes)))
	}
	if p.PaymentStatus != nil {
		add("payment_status", p.PaymentStatus.String())
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE records SET %s WHERE id = $%d",
		strings.Join(sets, ", "), len(args))

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return wrapWriteErr("failed to update record", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("record not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RecordWriteRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM records WHERE id = $1`, id)
	if err != nil {
		return wrapWriteErr("failed to delete record", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("record not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RecordWriteRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM records WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check record existence", err)
	}
	return exists, nil
}

// An empty string clears an optional column.
func emptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func wrapWriteErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		case pgUniqueViolation:
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		}
	}
	return infra.WrapRepoErr(msg, err)
}
