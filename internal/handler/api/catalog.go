package api

import (
	"errors"
	"net/http"

	resdto "washbook/internal/handler/dto/response"
	"washbook/internal/pkg/errs"
	"washbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	serviceQueries queries.ServiceQueries
}

func NewServiceHandler(serviceQueries queries.ServiceQueries) *ServiceHandler {
	return &ServiceHandler{serviceQueries: serviceQueries}
}

// @Summary List services
// @Description List the full service catalog ordered by name
// @Tags services
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ServiceListResponse
// @Failure 401 {object} map[string]string
// @Router /services [get]
func (h *ServiceHandler) ListServices(c *gin.Context) {
	views, err := h.serviceQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error interno del servidor",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromServiceViews(views))
}

// @Summary List services for a vehicle type
// @Description List active services priced for the given vehicle type
// @Tags services
// @Produce json
// @Security BearerAuth
// @Param tipo path string true "Vehicle type" Enums(car, motorcycle, pickup, truck)
// @Success 200 {object} resdto.ServiceListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /services/vehiculo/{tipo} [get]
func (h *ServiceHandler) ListServicesByVehicleType(c *gin.Context) {
	views, err := h.serviceQueries.ListByVehicleType(c.Request.Context(), c.Param("tipo"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Tipo de vehículo inválido",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Error interno del servidor",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromServiceViews(views))
}
