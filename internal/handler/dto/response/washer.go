package response

import (
	"washbook/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type WasherItem struct {
	ID        int64  `json:"id"`
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
}

type WasherListResponse struct {
	Washers []WasherItem `json:"lavadores"`
}

func FromWasherViews(views []*queries.WasherView) WasherListResponse {
	washers := make([]WasherItem, len(views))
	for i, v := range views {
		_ = copier.Copy(&washers[i], v)
	}
	return WasherListResponse{Washers: washers}
}
