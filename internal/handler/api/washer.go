package api

import (
	"net/http"

	resdto "washbook/internal/handler/dto/response"
	"washbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type WasherHandler struct {
	washerQueries  queries.WasherQueries
	closingQueries queries.ClosingQueries
}

func NewWasherHandler(washerQueries queries.WasherQueries, closingQueries queries.ClosingQueries) *WasherHandler {
	return &WasherHandler{
		washerQueries:  washerQueries,
		closingQueries: closingQueries,
	}
}

// @Summary List active washers
// @Description List active washers ordered by first name
// @Tags washers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.WasherListResponse
// @Failure 401 {object} map[string]string
// @Router /washers [get]
func (h *WasherHandler) ListWashers(c *gin.Context) {
	views, err := h.washerQueries.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error interno del servidor",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromWasherViews(views))
}

// @Summary Commission breakdown
// @Description Per-washer commission totals for one business day
// @Tags washers
// @Produce json
// @Security BearerAuth
// @Param fecha query string false "Business day (YYYY-MM-DD), defaults to today"
// @Success 200 {object} resdto.CommissionsResponse
// @Failure 401 {object} map[string]string
// @Router /washers/comisiones [get]
func (h *WasherHandler) Commissions(c *gin.Context) {
	breakdown, err := h.closingQueries.Commissions(c.Request.Context(), queryParam(c, "fecha"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error interno del servidor",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBreakdown(breakdown))
}
