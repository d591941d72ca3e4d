package commands

import (
	"context"

	"washbook/internal/domain/catalog"
	"washbook/internal/domain/record"
	"washbook/internal/domain/washer"
	"washbook/internal/infra"
	"washbook/internal/pkg/clock"
	"washbook/internal/pkg/errs"
	"washbook/internal/pkg/patch"

	"github.com/shopspring/decimal"
)

type CreateRecordParams struct {
	VehicleType   string
	Plate         *string
	ServiceID     int64
	Cost          decimal.Decimal
	Percentage    decimal.Decimal
	WasherID      int64
	Notes         *string
	PaymentStatus *string
	UserID        int64
}

type RecordCommands interface {
	Create(ctx context.Context, params CreateRecordParams) (int64, error)
	Update(ctx context.Context, id int64, p record.Patch) error
	Delete(ctx context.Context, id int64) error
}

// Write-side ports implemented by infra.
type RecordWriteRepo interface {
	Insert(ctx context.Context, rec *record.Record) (int64, error)
	Update(ctx context.Context, id int64, p record.Patch) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

type WasherReader interface {
	FindByID(ctx context.Context, id int64) (*washer.Washer, error)
}

type ServiceReader interface {
	FindByID(ctx context.Context, id int64) (*catalog.Service, error)
}

type recordCommandsImpl struct {
	repo      RecordWriteRepo
	washers   WasherReader
	services  ServiceReader
	shopClock *clock.ShopClock
}

func NewRecordCommands(repo RecordWriteRepo, washers WasherReader, services ServiceReader, shopClock *clock.ShopClock) RecordCommands {
	return &recordCommandsImpl{
		repo:      repo,
		washers:   washers,
		services:  services,
		shopClock: shopClock,
	}
}

func (c *recordCommandsImpl) Create(ctx context.Context, params CreateRecordParams) (int64, error) {
	vehicleType, err := record.NewVehicleType(params.VehicleType)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDomainValidation)
	}

	status, err := record.NewPaymentStatus(patch.Coalesce(params.PaymentStatus, record.PaymentPending.String()))
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDomainValidation)
	}

	// Snapshot the washer's full name at creation time.
	w, err := c.washers.FindByID(ctx, params.WasherID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, errs.Mark(err, errs.ErrWasherNotFound)
		}
		return 0, err
	}

	if _, err := c.services.FindByID(ctx, params.ServiceID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, errs.Mark(err, errs.ErrServiceNotFound)
		}
		return 0, err
	}

	date, timeOfDay := c.shopClock.Stamp()

	rec, err := record.NewRecord(
		date, timeOfDay,
		vehicleType,
		params.Plate,
		params.ServiceID,
		params.Cost, params.Percentage,
		params.WasherID,
		w.FullName(),
		params.Notes,
		status,
		params.UserID,
	)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDomainValidation)
	}

	id, err := c.repo.Insert(ctx, rec)
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return 0, errs.Mark(err, errs.ErrServiceNotFound)
		}
		return 0, err
	}
	return id, nil
}

func (c *recordCommandsImpl) Update(ctx context.Context, id int64, p record.Patch) error {
	if err := p.Validate(); err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	exists, err := c.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errs.ErrRecordNotFound
	}

	if p.ServiceID != nil {
		if _, err := c.services.FindByID(ctx, *p.ServiceID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrServiceNotFound)
			}
			return err
		}
	}

	// A new washer id re-resolves the snapshot name; a literal name set by
	// the caller survives only when no id is supplied.
	if p.WasherID != nil {
		w, err := c.washers.FindByID(ctx, *p.WasherID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrWasherNotFound)
			}
			return err
		}
		name := w.FullName()
		p.WasherName = &name
	}

	if err := c.repo.Update(ctx, id, p); err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return errs.Mark(err, errs.ErrServiceNotFound)
		}
		return err
	}
	return nil
}

func (c *recordCommandsImpl) Delete(ctx context.Context, id int64) error {
	exists, err := c.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errs.ErrRecordNotFound
	}
	return c.repo.Delete(ctx, id)
}
