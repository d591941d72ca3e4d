package readstore

import (
	"context"
	"fmt"
	"strings"

	"washbook/internal/domain/closing"
	"washbook/internal/domain/record"
	"washbook/internal/infra"
	"washbook/internal/pkg/pgconv"
	"washbook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RecordReadStore struct {
	pool *pgxpool.Pool
}

func NewRecordReadStore(pool *pgxpool.Pool) *RecordReadStore {
	return &RecordReadStore{pool: pool}
}

// Search lists ledger rows newest-first, denormalized with the service name.
// LEFT JOIN keeps rows visible even if their service row disappears.
func (r *RecordReadStore) Search(ctx context.Context, filter queries.ListFilter, limit int32) ([]*queries.RecordListItem, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT r.id, r.service_date, r.service_time, r.vehicle_type, r.plate,
		       r.service_id, s.name AS service_name, r.cost, r.percentage,
		       r.washer_id, r.washer_name, r.notes, r.payment_status
		FROM records r
		LEFT JOIN services s ON r.service_id = s.id
		WHERE 1=1`)

	args := make([]any, 0, 4)

	if filter.HasDateRange() {
		from, err := pgconv.DateToPgtype(*filter.DateFrom)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid date range start", err)
		}
		to, err := pgconv.DateToPgtype(*filter.DateTo)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid date range end", err)
		}
		args = append(args, from)
		fmt.Fprintf(&sb, " AND r.service_date >= $%d", len(args))
		args = append(args, to)
		fmt.Fprintf(&sb, " AND r.service_date <= $%d", len(args))
	}

	if filter.Plate != nil && *filter.Plate != "" {
		args = append(args, "%"+*filter.Plate+"%")
		fmt.Fprintf(&sb, " AND r.plate ILIKE $%d", len(args))
	}

	args = append(args, limit)
	fmt.Fprintf(&sb, " ORDER BY r.service_date DESC, r.service_time DESC LIMIT $%d", len(args))

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search records", err)
	}
	defer rows.Close()

	var items []*queries.RecordListItem
	for rows.Next() {
		var (
			item        queries.RecordListItem
			date        pgtype.Date
			timeOfDay   pgtype.Time
			plate       pgtype.Text
			serviceName pgtype.Text
			cost        pgtype.Numeric
			percentage  pgtype.Numeric
			notes       pgtype.Text
		)
		if err := rows.Scan(
			&item.ID, &date, &timeOfDay, &item.VehicleType, &plate,
			&item.ServiceID, &serviceName, &cost, &percentage,
			&item.WasherID, &item.WasherName, &notes, &item.PaymentStatus,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan record row", err)
		}

		item.Date = pgconv.DateFromPgtype(date)
		item.Time = pgconv.TimeOfDayFromPgtype(timeOfDay)
		item.VehicleLabel = record.VehicleType(item.VehicleType).Label()
		item.Plate = pgconv.StringPtrFromPgtype(plate)
		item.ServiceName = pgconv.StringPtrFromPgtype(serviceName)
		item.Cost = pgconv.DecimalFromNumeric(cost)
		item.Percentage = pgconv.DecimalFromNumeric(percentage)
		item.Notes = pgconv.StringPtrFromPgtype(notes)

		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read record rows", err)
	}

	return items, nil
}

// LinesByDate fetches one business date's ledger slice for the aggregators.
func (r *RecordReadStore) LinesByDate(ctx context.Context, date string) ([]closing.Line, error) {
	day, err := pgconv.DateToPgtype(date)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid business date", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT washer_id, washer_name, cost, percentage, payment_status
		FROM records
		WHERE service_date = $1`, day)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load ledger lines", err)
	}
	defer rows.Close()

	var lines []closing.Line
	for rows.Next() {
		var (
			line       closing.Line
			cost       pgtype.Numeric
			percentage pgtype.Numeric
			status     string
		)
		if err := rows.Scan(&line.WasherID, &line.WasherName, &cost, &percentage, &status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan ledger line", err)
		}
		line.Cost = pgconv.DecimalFromNumeric(cost)
		line.Percentage = pgconv.DecimalFromNumeric(percentage)
		line.Status = record.PaymentStatus(status)
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read ledger lines", err)
	}

	return lines, nil
}
