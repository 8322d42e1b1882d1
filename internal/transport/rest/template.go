package rest

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/domain"
)

// @Summary Crear plantilla de disponibilidad
// @Description Crea una regla semanal recurrente de disponibilidad para un profesional
// @Tags Plantillas
// @Accept json
// @Produce json
// @Param input body domain.CreateTemplateDTO true "Datos de la plantilla"
// @Success 201 {object} successResponseBody "ID de la plantilla creada"
// @Failure 400 {object} errorResponseBody "Error de validación"
// @Failure 401 {object} errorResponseBody "No autorizado"
// @Failure 409 {object} errorResponseBody "Solapa con otra plantilla del mismo servicio"
// @Security ApiKeyAuth
// @Router /templates [post]
func (h *Handler) createTemplate(c *gin.Context) {
	var req domain.CreateTemplateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("formato de datos inválido", zap.Error(err))
		badRequestResponse(c, "formato de datos inválido")
		return
	}

	id, err := h.services.Template.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Listar plantillas
// @Description Lista las plantillas de disponibilidad, con filtros opcionales
// @Tags Plantillas
// @Produce json
// @Param professional_id query int false "ID del profesional"
// @Param place_id query int false "ID de la sede"
// @Param active_on query string false "Solo plantillas vigentes en la fecha (YYYY-MM-DD)"
// @Success 200 {object} successResponseBody "Plantillas"
// @Failure 400 {object} errorResponseBody "Error de validación"
// @Router /templates [get]
func (h *Handler) getTemplates(c *gin.Context) {
	var filter domain.TemplateFilter

	if raw := c.Query("professional_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			badRequestResponse(c, "professional_id inválido")
			return
		}
		filter.ProfessionalID = &id
	}
	if raw := c.Query("place_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			badRequestResponse(c, "place_id inválido")
			return
		}
		filter.PlaceID = &id
	}
	if raw := c.Query("active_on"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			badRequestResponse(c, "formato de fecha inválido en active_on, se espera YYYY-MM-DD")
			return
		}
		filter.ActiveOn = &date
	}

	templates, err := h.services.Template.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	successResponse(c, 200, templates)
}

// @Summary Obtener plantilla
// @Tags Plantillas
// @Produce json
// @Param id path int true "ID de la plantilla"
// @Success 200 {object} successResponseBody "Plantilla"
// @Failure 404 {object} errorResponseBody "Plantilla no encontrada"
// @Router /templates/{id} [get]
func (h *Handler) getTemplateByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID inválido")
		return
	}

	template, err := h.services.Template.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	successResponse(c, 200, template)
}

// @Summary Eliminar plantilla
// @Description Elimina una fila de plantilla completa, con todas sus ocurrencias
// @Tags Plantillas
// @Produce json
// @Param id path int true "ID de la plantilla"
// @Success 200 {object} messageResponseType "Plantilla eliminada"
// @Failure 401 {object} errorResponseBody "No autorizado"
// @Failure 404 {object} errorResponseBody "Plantilla no encontrada"
// @Security ApiKeyAuth
// @Router /templates/{id} [delete]
func (h *Handler) deleteTemplate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID inválido")
		return
	}

	if err := h.services.Template.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	messageResponse(c, 200, "plantilla eliminada")
}

// @Summary Eliminar una ocurrencia
// @Description Elimina una única ocurrencia de una plantilla recurrente sin afectar al resto de la serie
// @Tags Plantillas
// @Produce json
// @Param id path int true "ID de la plantilla"
// @Param date path string true "Fecha de la ocurrencia (YYYY-MM-DD)"
// @Success 200 {object} messageResponseType "Ocurrencia eliminada"
// @Failure 400 {object} errorResponseBody "La plantilla no aplica en esa fecha"
// @Failure 401 {object} errorResponseBody "No autorizado"
// @Failure 404 {object} errorResponseBody "Plantilla no encontrada"
// @Security ApiKeyAuth
// @Router /templates/{id}/occurrences/{date} [delete]
func (h *Handler) deleteTemplateOccurrence(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID inválido")
		return
	}

	if err := h.services.Template.DeleteOccurrence(c.Request.Context(), id, c.Param("date")); err != nil {
		respondError(c, err)
		return
	}

	messageResponse(c, 200, "ocurrencia eliminada")
}

// @Summary Eliminar una serie
// @Description Elimina todas las plantillas del profesional que comparten día, horario y sede
// @Tags Plantillas
// @Accept json
// @Produce json
// @Param input body domain.DeleteSeriesDTO true "Identificación de la serie"
// @Success 200 {object} successResponseBody "Cantidad de plantillas eliminadas"
// @Failure 400 {object} errorResponseBody "Error de validación"
// @Failure 401 {object} errorResponseBody "No autorizado"
// @Failure 404 {object} errorResponseBody "La serie no existe"
// @Security ApiKeyAuth
// @Router /templates/delete-series [post]
func (h *Handler) deleteTemplateSeries(c *gin.Context) {
	var req domain.DeleteSeriesDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("formato de datos inválido", zap.Error(err))
		badRequestResponse(c, "formato de datos inválido")
		return
	}

	deleted, err := h.services.Template.DeleteSeries(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	successResponse(c, 200, gin.H{"deleted": deleted})
}
