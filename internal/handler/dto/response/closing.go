package response

import (
	"washbook/internal/domain/closing"
)

type CashClosingResponse struct {
	Date              string  `json:"fecha"`
	GrossIncome       float64 `json:"ingresos_totales"`
	CommissionsPaid   float64 `json:"comisiones_pagadas"`
	NetProfit         float64 `json:"ganancia_neta"`
	PaidCount         int     `json:"cantidad_servicios"`
	AveragePerService float64 `json:"promedio_por_servicio"`
	PendingCount      int     `json:"servicios_pendientes"`
	PendingAmount     float64 `json:"monto_pendiente"`
}

func FromSummary(s *closing.Summary) CashClosingResponse {
	return CashClosingResponse{
		Date:              s.Date,
		GrossIncome:       s.GrossIncome.InexactFloat64(),
		CommissionsPaid:   s.CommissionsPaid.InexactFloat64(),
		NetProfit:         s.NetProfit.InexactFloat64(),
		PaidCount:         s.PaidCount,
		AveragePerService: s.AveragePerService.InexactFloat64(),
		PendingCount:      s.PendingCount,
		PendingAmount:     s.PendingAmount.InexactFloat64(),
	}
}

type WasherCommissionItem struct {
	WasherID          int64   `json:"id_lavador"`
	Name              string  `json:"nombre"`
	ServiceCount      int     `json:"cantidad_servicios"`
	TotalBilled       float64 `json:"total_servicios"`
	TotalCommission   float64 `json:"total_comision"`
	AveragePercentage float64 `json:"porcentaje_promedio"`
}

type CommissionTotals struct {
	Services    int     `json:"servicios"`
	Commissions float64 `json:"comisiones"`
}

type CommissionsResponse struct {
	Date    string                 `json:"fecha"`
	Washers []WasherCommissionItem `json:"lavadores"`
	Totals  CommissionTotals       `json:"totales"`
}

func FromBreakdown(b *closing.Breakdown) CommissionsResponse {
	washers := make([]WasherCommissionItem, len(b.Washers))
	for i, w := range b.Washers {
		washers[i] = WasherCommissionItem{
			WasherID:          w.WasherID,
			Name:              w.WasherName,
			ServiceCount:      w.ServiceCount,
			TotalBilled:       w.TotalBilled.InexactFloat64(),
			TotalCommission:   w.TotalCommission.InexactFloat64(),
			AveragePercentage: w.AveragePercentage.InexactFloat64(),
		}
	}
	return CommissionsResponse{
		Date:    b.Date,
		Washers: washers,
		Totals: CommissionTotals{
			Services:    b.TotalServices,
			Commissions: b.TotalCommission.InexactFloat64(),
		},
	}
}
