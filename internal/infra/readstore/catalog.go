package readstore

import (
	"context"

	"washbook/internal/domain/catalog"
	"washbook/internal/domain/record"
	"washbook/internal/infra"
	"washbook/internal/pkg/pgconv"
	"washbook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceReadStore struct {
	pool *pgxpool.Pool
}

func NewServiceReadStore(pool *pgxpool.Pool) *ServiceReadStore {
	return &ServiceReadStore{pool: pool}
}

// FindByID resolves a service regardless of the active flag so existing
// records can keep pointing at retired services.
func (r *ServiceReadStore) FindByID(ctx context.Context, id int64) (*catalog.Service, error) {
	var (
		svc         catalog.Service
		description pgtype.Text
		vehicleType string
		price       pgtype.Numeric
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, description, vehicle_type, price, is_active
		FROM services
		WHERE id = $1`, id).
		Scan(&svc.ID, &svc.Name, &description, &vehicleType, &price, &svc.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by ID", err)
	}
	if description.Valid {
		svc.Description = description.String
	}
	svc.VehicleType = record.VehicleType(vehicleType)
	svc.Price = pgconv.DecimalFromNumeric(price)
	return &svc, nil
}

func (r *ServiceReadStore) FindAll(ctx context.Context) ([]*queries.ServiceView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, description
		FROM services
		ORDER BY name ASC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()

	var views []*queries.ServiceView
	for rows.Next() {
		var (
			v           queries.ServiceView
			description pgtype.Text
		)
		if err := rows.Scan(&v.ID, &v.Name, &description); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service row", err)
		}
		v.Description = pgconv.StringPtrFromPgtype(description)
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read service rows", err)
	}

	return views, nil
}

func (r *ServiceReadStore) FindActiveByVehicleType(ctx context.Context, vehicleType record.VehicleType) ([]*queries.ServiceView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, description, price
		FROM services
		WHERE vehicle_type = $1 AND is_active
		ORDER BY price ASC`, vehicleType.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services by vehicle type", err)
	}
	defer rows.Close()

	var views []*queries.ServiceView
	for rows.Next() {
		var (
			v           queries.ServiceView
			description pgtype.Text
			price       pgtype.Numeric
		)
		if err := rows.Scan(&v.ID, &v.Name, &description, &price); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service row", err)
		}
		v.Description = pgconv.StringPtrFromPgtype(description)
		p := pgconv.DecimalFromNumeric(price)
		v.Price = &p
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read service rows", err)
	}

	return views, nil
}
