package response

import (
	"washbook/internal/usecase/queries"
)

type ServiceItem struct {
	ID          int64    `json:"id"`
	Name        string   `json:"nombre"`
	Description *string  `json:"descripcion"`
	Price       *float64 `json:"precio,omitempty"`
}

type ServiceListResponse struct {
	Services []ServiceItem `json:"servicios"`
}

func FromServiceViews(views []*queries.ServiceView) ServiceListResponse {
	services := make([]ServiceItem, len(views))
	for i, v := range views {
		services[i] = ServiceItem{
			ID:          v.ID,
			Name:        v.Name,
			Description: v.Description,
		}
		if v.Price != nil {
			price := v.Price.InexactFloat64()
			services[i].Price = &price
		}
	}
	return ServiceListResponse{Services: services}
}
