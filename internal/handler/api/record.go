package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "washbook/internal/handler/dto/request"
	resdto "washbook/internal/handler/dto/response"
	"washbook/internal/handler/middleware"
	"washbook/internal/pkg/errs"
	"washbook/internal/usecase/commands"
	"washbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RecordHandler struct {
	recordCommands commands.RecordCommands
	recordQueries  queries.RecordQueries
	closingQueries queries.ClosingQueries
}

func NewRecordHandler(
	recordCommands commands.RecordCommands,
	recordQueries queries.RecordQueries,
	closingQueries queries.ClosingQueries,
) *RecordHandler {
	return &RecordHandler{
		recordCommands: recordCommands,
		recordQueries:  recordQueries,
		closingQueries: closingQueries,
	}
}

// @Summary Create service record
// @Description Register a wash service; date and time are stamped server-side
// @Tags records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRecordRequest true "Record request"
// @Success 201 {object} resdto.CreateRecordResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /records [post]
func (h *RecordHandler) CreateRecord(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error interno del servidor",
		})
		return
	}

	var req reqdto.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.HasAmounts() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Faltan campos requeridos",
		})
		return
	}

	params := commands.CreateRecordParams{
		VehicleType:   req.VehicleType,
		Plate:         req.Plate,
		ServiceID:     req.ServiceID,
		Cost:          req.Cost,
		Percentage:    req.Percentage,
		WasherID:      req.WasherID,
		Notes:         req.Notes,
		PaymentStatus: req.Payment,
		UserID:        userID,
	}

	id, err := h.recordCommands.Create(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Datos del registro inválidos",
			})
		case errors.Is(err, errs.ErrWasherNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Lavador no encontrado",
			})
		case errors.Is(err, errs.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Servicio no encontrado",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Error interno del servidor",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateRecordResponse{
		Message: "Registro creado exitosamente",
		ID:      id,
	})
}

// @Summary List service records
// @Description List recent records, optionally narrowed by date range and plate
// @Tags records
// @Produce json
// @Security BearerAuth
// @Param fecha_inicio query string false "Range start (YYYY-MM-DD)"
// @Param fecha_fin query string false "Range end (YYYY-MM-DD)"
// @Param placa query string false "Partial plate match"
// @Success 200 {object} resdto.RecordListResponse
// @Failure 401 {object} map[string]string
// @Router /records [get]
func (h *RecordHandler) ListRecords(c *gin.Context) {
	filter := queries.ListFilter{
		DateFrom: queryParam(c, "fecha_inicio"),
		DateTo:   queryParam(c, "fecha_fin"),
		Plate:    queryParam(c, "placa"),
	}

	items, err := h.recordQueries.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error interno del servidor",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRecordListItems(items))
}

// @Summary Daily cash closing
// @Description Income, commission and profit totals for one business day
// @Tags records
// @Produce json
// @Security BearerAuth
// @Param fecha query string false "Business day (YYYY-MM-DD), defaults to today"
// @Success 200 {object} resdto.CashClosingResponse
// @Failure 401 {object} map[string]string
// @Router /records/cierre-caja [get]
func (h *RecordHandler) CashClosing(c *gin.Context) {
	summary, err := h.closingQueries.CashClosing(c.Request.Context(), queryParam(c, "fecha"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error interno del servidor",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSummary(summary))
}

// @Summary Update service record
// @Description Partially update a record; cost and percentage are always re-sent
// @Tags records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record ID"
// @Param request body reqdto.UpdateRecordRequest true "Update request"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /records/{id} [put]
func (h *RecordHandler) UpdateRecord(c *gin.Context) {
	id, err := recordID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "ID de registro inválido",
		})
		return
	}

	var req reqdto.UpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.HasAmounts() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Faltan campos requeridos",
		})
		return
	}

	p, err := req.ToPatch()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Datos del registro inválidos",
		})
		return
	}

	if err := h.recordCommands.Update(c.Request.Context(), id, p); err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Datos del registro inválidos",
			})
		case errors.Is(err, errs.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Registro no encontrado",
			})
		case errors.Is(err, errs.ErrWasherNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Lavador no encontrado",
			})
		case errors.Is(err, errs.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Servicio no encontrado",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Error interno del servidor",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Registro actualizado exitosamente"})
}

// @Summary Delete service record
// @Description Permanently delete a record
// @Tags records
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /records/{id} [delete]
func (h *RecordHandler) DeleteRecord(c *gin.Context) {
	id, err := recordID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "ID de registro inválido",
		})
		return
	}

	if err := h.recordCommands.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, errs.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Registro no encontrado",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Error interno del servidor",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Registro eliminado exitosamente"})
}

func recordID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func queryParam(c *gin.Context, name string) *string {
	if v, ok := c.GetQuery(name); ok && v != "" {
		return &v
	}
	return nil
}
