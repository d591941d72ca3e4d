package queries

import (
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)

// RecordListItem is one denormalized listing row: the vehicle label is
// localized and the service name joined in, everything else comes straight
// from the ledger row.
type RecordListItem struct {
	ID            int64
	Date          string
	Time          string
	VehicleType   string
	VehicleLabel  string
	Plate         *string
	ServiceID     int64
	ServiceName   *string
	Cost          decimal.Decimal
	Percentage    decimal.Decimal
	WasherID      int64
	WasherName    string
	Notes         *string
	PaymentStatus string
}

type WasherView struct {
	ID        int64
	FirstName string
	LastName  string
}

type ServiceView struct {
	ID          int64
	Name        string
	Description *string
	Price       *decimal.Decimal
}

type AuthorizedUserView struct {
	ID       int64
	Name     string
	Email    string
	Role     string
	IsActive bool
}
