package queries

import (
	"context"

	"washbook/internal/domain/record"
	"washbook/internal/pkg/errs"
)

type ServiceQueries interface {
	List(ctx context.Context) ([]*ServiceView, error)
	ListByVehicleType(ctx context.Context, vehicleType string) ([]*ServiceView, error)
}

type ServiceViewRepo interface {
	FindAll(ctx context.Context) ([]*ServiceView, error)
	FindActiveByVehicleType(ctx context.Context, vehicleType record.VehicleType) ([]*ServiceView, error)
}

type serviceQueriesImpl struct {
	repo ServiceViewRepo
}

func NewServiceQueries(repo ServiceViewRepo) ServiceQueries {
	return &serviceQueriesImpl{repo: repo}
}

func (q *serviceQueriesImpl) List(ctx context.Context) ([]*ServiceView, error) {
	return q.repo.FindAll(ctx)
}

func (q *serviceQueriesImpl) ListByVehicleType(ctx context.Context, vehicleType string) ([]*ServiceView, error) {
	vt, err := record.NewVehicleType(vehicleType)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return q.repo.FindActiveByVehicleType(ctx, vt)
}
