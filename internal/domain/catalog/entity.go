package catalog

import (
	"washbook/internal/domain/record"

	"github.com/shopspring/decimal"
)

// Service is a wash service priced for one vehicle type. The same logical
// wash exists as separate rows per vehicle type.
type Service struct {
	ID          int64
	Name        string
	Description string
	VehicleType record.VehicleType
	Price       decimal.Decimal
	IsActive    bool
}
