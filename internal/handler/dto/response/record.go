package response

import (
	"washbook/internal/usecase/queries"
)

type RecordItem struct {
	ID            int64   `json:"id"`
	Date          string  `json:"fecha"`
	Time          string  `json:"hora"`
	VehicleType   string  `json:"vehiculo"`
	VehicleLabel  string  `json:"vehiculo_nombre"`
	Plate         *string `json:"placa"`
	ServiceID     int64   `json:"id_servicio"`
	ServiceName   *string `json:"servicio_nombre"`
	Cost          float64 `json:"costo"`
	Percentage    float64 `json:"porcentaje"`
	WasherID      int64   `json:"id_lavador"`
	WasherName    string  `json:"lavador"`
	Notes         *string `json:"observaciones"`
	PaymentStatus string  `json:"pago"`
}

type RecordListResponse struct {
	Records []RecordItem `json:"registros"`
}

type CreateRecordResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func FromRecordListItems(items []*queries.RecordListItem) RecordListResponse {
	records := make([]RecordItem, len(items))
	for i, item := range items {
		records[i] = RecordItem{
			ID:            item.ID,
			Date:          item.Date,
			Time:          item.Time,
			VehicleType:   item.VehicleType,
			VehicleLabel:  item.VehicleLabel,
			Plate:         item.Plate,
			ServiceID:     item.ServiceID,
			ServiceName:   item.ServiceName,
			Cost:          item.Cost.InexactFloat64(),
			Percentage:    item.Percentage.InexactFloat64(),
			WasherID:      item.WasherID,
			WasherName:    item.WasherName,
			Notes:         item.Notes,
			PaymentStatus: item.PaymentStatus,
		}
	}
	return RecordListResponse{Records: records}
}
