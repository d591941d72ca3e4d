package record

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidVehicleType   = errors.New("invalid vehicle type")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrInvalidCost          = errors.New("cost must not be negative")
	ErrInvalidPercentage    = errors.New("percentage must be between 0 and 100")
)

var hundred = decimal.NewFromInt(100)

// Record is one wash-service transaction line in the ledger.
//
// WasherName is a point-in-time snapshot of the assigned washer's full name,
// not a live join; renaming or deactivating a washer later leaves past rows
// untouched. The commission owed is always derived from Cost and Percentage,
// never stored.
type Record struct {
	id            int64
	date          string // business date, YYYY-MM-DD in the shop zone
	timeOfDay     string // HH:MM:SS in the shop zone
	vehicleType   VehicleType
	plate         *string
	serviceID     int64
	cost          decimal.Decimal
	percentage    decimal.Decimal
	washerID      int64
	washerName    string
	notes         *string
	paymentStatus PaymentStatus
	userID        int64
}

func NewRecord(
	date, timeOfDay string,
	vehicleType VehicleType,
	plate *string,
	serviceID int64,
	cost, percentage decimal.Decimal,
	washerID int64,
	washerName string,
	notes *string,
	paymentStatus PaymentStatus,
	userID int64,
) (*Record, error) {
	if !vehicleType.IsValid() {
		return nil, ErrInvalidVehicleType
	}
	if !paymentStatus.IsValid() {
		return nil, ErrInvalidPaymentStatus
	}
	if err := ValidateCost(cost); err != nil {
		return nil, err
	}
	if err := ValidatePercentage(percentage); err != nil {
		return nil, err
	}
	return &Record{
		date:          date,
		timeOfDay:     timeOfDay,
		vehicleType:   vehicleType,
		plate:         plate,
		serviceID:     serviceID,
		cost:          cost,
		percentage:    percentage,
		washerID:      washerID,
		washerName:    washerName,
		notes:         notes,
		paymentStatus: paymentStatus,
		userID:        userID,
	}, nil
}

func ValidateCost(cost decimal.Decimal) error {
	if cost.IsNegative() {
		return ErrInvalidCost
	}
	return nil
}

func ValidatePercentage(percentage decimal.Decimal) error {
	if percentage.IsNegative() || percentage.GreaterThan(hundred) {
		return ErrInvalidPercentage
	}
	return nil
}

// Commission derives the amount owed to the washer: cost × percentage / 100.
func Commission(cost, percentage decimal.Decimal) decimal.Decimal {
	return cost.Mul(percentage).Div(hundred)
}

func (r *Record) ID() int64                    { return r.id }
func (r *Record) Date() string                 { return r.date }
func (r *Record) TimeOfDay() string            { return r.timeOfDay }
func (r *Record) VehicleType() VehicleType     { return r.vehicleType }
func (r *Record) Plate() *string               { return r.plate }
func (r *Record) ServiceID() int64             { return r.serviceID }
func (r *Record) Cost() decimal.Decimal        { return r.cost }
func (r *Record) Percentage() decimal.Decimal  { return r.percentage }
func (r *Record) WasherID() int64              { return r.washerID }
func (r *Record) WasherName() string           { return r.washerName }
func (r *Record) Notes() *string               { return r.notes }
func (r *Record) PaymentStatus() PaymentStatus { return r.paymentStatus }
func (r *Record) UserID() int64                { return r.userID }

// Commission returns the derived commission for this record.
func (r *Record) Commission() decimal.Decimal {
	return Commission(r.cost, r.percentage)
}
