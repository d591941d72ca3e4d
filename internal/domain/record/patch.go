package record

import "github.com/shopspring/decimal"

// Patch is the partial-update value object for a ledger entry. Cost and
// Percentage are re-sent on every update; the remaining fields only touch the
// row when non-nil. The persistence layer translates a Patch into a single
// parameterized UPDATE.
//
// WasherID and WasherName are two distinct paths to the snapshot name:
// setting WasherID re-resolves the name from reference data, while setting
// WasherName alone overwrites the snapshot directly without id validation.
// The literal path exists for the client's "rename without re-selecting"
// flow and can leave the name unrelated to the stored washer id; that
// inconsistency is accepted.
type Patch struct {
	VehicleType   *VehicleType
	Plate         *string
	ServiceID     *int64
	Cost          decimal.Decimal
	Percentage    decimal.Decimal
	WasherID      *int64
	WasherName    *string
	Notes         *string
	PaymentStatus *PaymentStatus
}

func (p Patch) Validate() error {
	if err := ValidateCost(p.Cost); err != nil {
		return err
	}
	if err := ValidatePercentage(p.Percentage); err != nil {
		return err
	}
	if p.VehicleType != nil && !p.VehicleType.IsValid() {
		return ErrInvalidVehicleType
	}
	if p.PaymentStatus != nil && !p.PaymentStatus.IsValid() {
		return ErrInvalidPaymentStatus
	}
	return nil
}
