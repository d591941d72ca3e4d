//go:build unit || e2e

package builder

import (
	"washbook/internal/domain/closing"
	"washbook/internal/domain/record"
	reqdto "washbook/internal/handler/dto/request"
	"washbook/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type RecordBuilder struct {
	ID          int64
	Date        string
	Time        string
	VehicleType string
	Plate       *string
	ServiceID   int64
	ServiceName *string
	Cost        decimal.Decimal
	Percentage  decimal.Decimal
	WasherID    int64
	WasherName  string
	Notes       *string
	Payment     string
	UserID      int64
}

func NewRecordBuilder() *RecordBuilder {
	plate := "ABC123"
	serviceName := "Lavado General"
	return &RecordBuilder{
		ID:          1,
		Date:        "2026-03-10",
		Time:        "14:30:00",
		VehicleType: "car",
		Plate:       &plate,
		ServiceID:   1,
		ServiceName: &serviceName,
		Cost:        decimal.NewFromInt(25000),
		Percentage:  decimal.NewFromInt(40),
		WasherID:    1,
		WasherName:  "Juan Pérez",
		Notes:       nil,
		Payment:     "Pagado",
		UserID:      1,
	}
}

func (b *RecordBuilder) BuildDTO() reqdto.CreateRecordRequest {
	payment := b.Payment
	return reqdto.CreateRecordRequest{
		VehicleType: b.VehicleType,
		Plate:       b.Plate,
		ServiceID:   b.ServiceID,
		Cost:        b.Cost,
		Percentage:  b.Percentage,
		WasherID:    b.WasherID,
		Notes:       b.Notes,
		Payment:     &payment,
	}
}

func (b *RecordBuilder) BuildDomain() (*record.Record, error) {
	vt, err := record.NewVehicleType(b.VehicleType)
	if err != nil {
		return nil, err
	}
	status, err := record.NewPaymentStatus(b.Payment)
	if err != nil {
		return nil, err
	}
	return record.NewRecord(
		b.Date, b.Time,
		vt,
		b.Plate,
		b.ServiceID,
		b.Cost, b.Percentage,
		b.WasherID,
		b.WasherName,
		b.Notes,
		status,
		b.UserID,
	)
}

func (b *RecordBuilder) BuildReadModel() *queries.RecordListItem {
	vt, _ := record.NewVehicleType(b.VehicleType)
	return &queries.RecordListItem{
		ID:            b.ID,
		Date:          b.Date,
		Time:          b.Time,
		VehicleType:   b.VehicleType,
		VehicleLabel:  vt.Label(),
		Plate:         b.Plate,
		ServiceID:     b.ServiceID,
		ServiceName:   b.ServiceName,
		Cost:          b.Cost,
		Percentage:    b.Percentage,
		WasherID:      b.WasherID,
		WasherName:    b.WasherName,
		Notes:         b.Notes,
		PaymentStatus: b.Payment,
	}
}

func (b *RecordBuilder) BuildLine() closing.Line {
	status, _ := record.NewPaymentStatus(b.Payment)
	return closing.Line{
		WasherID:   b.WasherID,
		WasherName: b.WasherName,
		Cost:       b.Cost,
		Percentage: b.Percentage,
		Status:     status,
	}
}

func (b *RecordBuilder) WithID(id int64) *RecordBuilder {
	b.ID = id
	return b
}

func (b *RecordBuilder) WithVehicleType(vt string) *RecordBuilder {
	b.VehicleType = vt
	return b
}

func (b *RecordBuilder) WithCost(cost int64) *RecordBuilder {
	b.Cost = decimal.NewFromInt(cost)
	return b
}

func (b *RecordBuilder) WithPercentage(pct int64) *RecordBuilder {
	b.Percentage = decimal.NewFromInt(pct)
	return b
}

func (b *RecordBuilder) WithWasher(id int64, name string) *RecordBuilder {
	b.WasherID = id
	b.WasherName = name
	return b
}

func (b *RecordBuilder) AsPending() *RecordBuilder {
	b.Payment = "Pendiente"
	return b
}
