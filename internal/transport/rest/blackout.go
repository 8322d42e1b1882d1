package rest

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/domain"
)

// @Summary Crear bloqueo
// @Description Registra un período absoluto en el que el profesional no atiende
// @Tags Bloqueos
// @Accept json
// @Produce json
// @Param input body domain.CreateBlackoutDTO true "Datos del bloqueo"
// @Success 201 {object} successResponseBody "ID del bloqueo creado"
// @Failure 400 {object} errorResponseBody "Error de validación"
// @Failure 401 {object} errorResponseBody "No autorizado"
// @Security ApiKeyAuth
// @Router /blackouts [post]
func (h *Handler) createBlackout(c *gin.Context) {
	var req domain.CreateBlackoutDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("formato de datos inválido", zap.Error(err))
		badRequestResponse(c, "formato de datos inválido")
		return
	}

	id, err := h.services.Blackout.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Listar bloqueos
// @Description Lista los bloqueos que solapan un rango de fechas
// @Tags Bloqueos
// @Produce json
// @Param professional_id query int false "ID del profesional"
// @Param from query string false "Inicio del rango (RFC 3339)"
// @Param to query string false "Fin del rango (RFC 3339)"
// @Success 200 {object} successResponseBody "Bloqueos"
// @Failure 400 {object} errorResponseBody "Error de validación"
// @Router /blackouts [get]
func (h *Handler) getBlackouts(c *gin.Context) {
	var filter domain.BlackoutFilter

	if raw := c.Query("professional_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			badRequestResponse(c, "professional_id inválido")
			return
		}
		filter.ProfessionalID = &id
	}
	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			badRequestResponse(c, "formato de fecha inválido en from, se espera RFC 3339")
			return
		}
		filter.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			badRequestResponse(c, "formato de fecha inválido en to, se espera RFC 3339")
			return
		}
		filter.To = &to
	}

	blackouts, err := h.services.Blackout.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	successResponse(c, 200, blackouts)
}

// @Summary Eliminar bloqueo
// @Tags Bloqueos
// @Produce json
// @Param id path int true "ID del bloqueo"
// @Success 200 {object} messageResponseType "Bloqueo eliminado"
// @Failure 401 {object} errorResponseBody "No autorizado"
// @Failure 404 {object} errorResponseBody "Bloqueo no encontrado"
// @Security ApiKeyAuth
// @Router /blackouts/{id} [delete]
func (h *Handler) deleteBlackout(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID inválido")
		return
	}

	if err := h.services.Blackout.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	messageResponse(c, 200, "bloqueo eliminado")
}
