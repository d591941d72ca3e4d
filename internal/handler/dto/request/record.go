package request

import (
	"washbook/internal/domain/record"

	"github.com/shopspring/decimal"
)

// Wire field names follow the established client contract (Spanish keys).
// Cost and percentage treat an explicit zero the same as an absent value;
// "required" alone cannot express that for decimal fields, so HasAmounts
// carries the rest of the check.

type CreateRecordRequest struct {
	VehicleType string          `json:"vehiculo" binding:"required"`
	Plate       *string         `json:"placa,omitempty"`
	ServiceID   int64           `json:"id_servicio" binding:"required"`
	Cost        decimal.Decimal `json:"costo" binding:"required"`
	Percentage  decimal.Decimal `json:"porcentaje" binding:"required"`
	WasherID    int64           `json:"id_lavador" binding:"required"`
	Notes       *string         `json:"observaciones,omitempty"`
	Payment     *string         `json:"pago,omitempty"`
}

func (r CreateRecordRequest) HasAmounts() bool {
	return !r.Cost.IsZero() && !r.Percentage.IsZero()
}

// UpdateRecordRequest is a partial update: cost and percentage are re-sent on
// every call, everything else only applies when present. "lavador" without
// "id_lavador" is the quick-rename path.
type UpdateRecordRequest struct {
	VehicleType *string         `json:"vehiculo,omitempty"`
	Plate       *string         `json:"placa,omitempty"`
	ServiceID   *int64          `json:"id_servicio,omitempty"`
	Cost        decimal.Decimal `json:"costo" binding:"required"`
	Percentage  decimal.Decimal `json:"porcentaje" binding:"required"`
	WasherID    *int64          `json:"id_lavador,omitempty"`
	WasherName  *string         `json:"lavador,omitempty"`
	Notes       *string         `json:"observaciones,omitempty"`
	Payment     *string         `json:"pago,omitempty"`
}

func (r UpdateRecordRequest) HasAmounts() bool {
	return !r.Cost.IsZero() && !r.Percentage.IsZero()
}

func (r UpdateRecordRequest) ToPatch() (record.Patch, error) {
	p := record.Patch{
		Plate:      r.Plate,
		ServiceID:  r.ServiceID,
		Cost:       r.Cost,
		Percentage: r.Percentage,
		WasherID:   r.WasherID,
		WasherName: r.WasherName,
		Notes:      r.Notes,
	}

	if r.VehicleType != nil {
		vt, err := record.NewVehicleType(*r.VehicleType)
		if err != nil {
			return record.Patch{}, err
		}
		p.VehicleType = &vt
	}

	if r.Payment != nil {
		status, err := record.NewPaymentStatus(*r.Payment)
		if err != nil {
			return record.Patch{}, err
		}
		p.PaymentStatus = &status
	}

	return p, nil
}
