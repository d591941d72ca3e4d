package readstore

import (
	"context"

	"washbook/internal/domain/washer"
	"washbook/internal/infra"
	"washbook/internal/pkg/pgconv"
	"washbook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type WasherReadStore struct {
	pool *pgxpool.Pool
}

func NewWasherReadStore(pool *pgxpool.Pool) *WasherReadStore {
	return &WasherReadStore{pool: pool}
}

func (r *WasherReadStore) FindActive(ctx context.Context) ([]*queries.WasherView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, first_name, last_name
		FROM washers
		WHERE is_active
		ORDER BY first_name ASC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active washers", err)
	}
	defer rows.Close()

	var views []*queries.WasherView
	for rows.Next() {
		var v queries.WasherView
		if err := rows.Scan(&v.ID, &v.FirstName, &v.LastName); err != nil {
			return nil, infra.WrapRepoErr("failed to scan washer row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read washer rows", err)
	}

	return views, nil
}

// FindByID resolves a washer regardless of the active flag: historical
// assignments outlive deactivation.
func (r *WasherReadStore) FindByID(ctx context.Context, id int64) (*washer.Washer, error) {
	var w washer.Washer
	err := r.pool.QueryRow(ctx, `
		SELECT id, first_name, last_name, is_active
		FROM washers
		WHERE id = $1`, id).
		Scan(&w.ID, &w.FirstName, &w.LastName, &w.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("washer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find washer by ID", err)
	}
	return &w, nil
}
