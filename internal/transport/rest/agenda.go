package rest

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/domain"
)

// @Summary Agenda del día
// @Description Calcula los turnos de un profesional para una fecha, clasificados por ocupación
// @Tags Agenda
// @Produce json
// @Param professional_id query int true "ID del profesional"
// @Param place_id query int false "ID de la sede"
// @Param date query string true "Fecha (YYYY-MM-DD)"
// @Param express query bool false "Permite ver horarios pasados como disponibles"
// @Success 200 {object} successResponseBody "Turnos del día"
// @Failure 400 {object} errorResponseBody "Error de validación"
// @Failure 503 {object} errorResponseBody "Servicio no disponible"
// @Router /agenda/day [get]
func (h *Handler) getDayAgenda(c *gin.Context) {
	professionalID, err := strconv.ParseInt(c.Query("professional_id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "professional_id inválido")
		return
	}

	placeID, _ := strconv.ParseInt(c.DefaultQuery("place_id", "0"), 10, 64)
	express := c.DefaultQuery("express", "false") == "true"

	day, err := h.services.Agenda.GetDaySlots(c.Request.Context(), professionalID, placeID, c.Query("date"), express)
	if err != nil {
		respondError(c, err)
		return
	}

	successResponse(c, 200, day)
}

// @Summary Grilla semanal
// @Description Calcula la grilla de lunes a domingo para uno o más profesionales
// @Tags Agenda
// @Produce json
// @Param professional_ids query string true "IDs de profesionales separados por coma"
// @Param place_id query int false "ID de la sede"
// @Param date query string true "Cualquier fecha de la semana (YYYY-MM-DD)"
// @Param express query bool false "Permite ver horarios pasados como disponibles"
// @Success 200 {object} successResponseBody "Grilla semanal"
// @Failure 400 {object} errorResponseBody "Error de validación"
// @Failure 503 {object} errorResponseBody "Servicio no disponible"
// @Router /agenda/week [get]
func (h *Handler) getWeekAgenda(c *gin.Context) {
	professionalIDs, err := parseIDList(c.Query("professional_ids"))
	if err != nil {
		badRequestResponse(c, "professional_ids inválido, se espera una lista de IDs separados por coma")
		return
	}

	placeID, _ := strconv.ParseInt(c.DefaultQuery("place_id", "0"), 10, 64)
	express := c.DefaultQuery("express", "false") == "true"

	grid, err := h.services.Agenda.GetWeekGrid(c.Request.Context(), professionalIDs, placeID, c.Query("date"), express)
	if err != nil {
		respondError(c, err)
		return
	}

	successResponse(c, 200, grid)
}

// @Summary Clonar un día
// @Description Copia todas las plantillas activas de un día a otro del mismo profesional
// @Tags Agenda
// @Accept json
// @Produce json
// @Param input body domain.CloneDayDTO true "Día origen y destino"
// @Success 201 {object} successResponseBody "Cantidad de plantillas clonadas"
// @Failure 400 {object} errorResponseBody "Error de validación"
// @Failure 401 {object} errorResponseBody "No autorizado"
// @Failure 409 {object} errorResponseBody "El destino ya tiene plantillas en ese horario"
// @Security ApiKeyAuth
// @Router /agenda/clone-day [post]
func (h *Handler) cloneDay(c *gin.Context) {
	var req domain.CloneDayDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("formato de datos inválido", zap.Error(err))
		badRequestResponse(c, "formato de datos inválido")
		return
	}

	count, err := h.services.Agenda.CloneDay(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	createdResponse(c, gin.H{"cloned": count})
}

func parseIDList(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
