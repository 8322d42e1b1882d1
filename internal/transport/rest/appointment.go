package rest

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/domain"
)

// @Summary Crear cita
// @Description Registra una cita; rechaza con 409 si el horario ya está ocupado o bloqueado
// @Tags Citas
// @Accept json
// @Produce json
// @Param input body domain.CreateAppointmentDTO true "Datos de la cita"
// @Param express query bool false "Permite registrar citas en horarios ya pasados"
// @Success 201 {object} successResponseBody "ID de la cita creada"
// @Failure 400 {object} errorResponseBody "Error de validación"
// @Failure 401 {object} errorResponseBody "No autorizado"
// @Failure 409 {object} errorResponseBody "El horario ya está ocupado o bloqueado"
// @Security ApiKeyAuth
// @Router /appointments [post]
func (h *Handler) createAppointment(c *gin.Context) {
	var req domain.CreateAppointmentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("formato de datos inválido", zap.Error(err))
		badRequestResponse(c, "formato de datos inválido")
		return
	}

	express := c.DefaultQuery("express", "false") == "true"

	id, err := h.services.Appointment.Create(c.Request.Context(), req, express)
	if err != nil {
		respondError(c, err)
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Listar citas
// @Tags Citas
// @Produce json
// @Param professional_id query int false "ID del profesional"
// @Param date_from query string false "Desde la fecha (YYYY-MM-DD)"
// @Param date_to query string false "Hasta la fecha (YYYY-MM-DD)"
// @Param status query string false "Filtrar por estado"
// @Param exclude_status query string false "Excluir un estado"
// @Param limit query int false "Límite de resultados"
// @Param offset query int false "Desplazamiento"
// @Success 200 {object} successResponseBody "Citas"
// @Failure 400 {object} errorResponseBody "Error de validación"
// @Failure 401 {object} errorResponseBody "No autorizado"
// @Security ApiKeyAuth
// @Router /appointments [get]
func (h *Handler) getAppointments(c *gin.Context) {
	var filter domain.AppointmentFilter

	if raw := c.Query("professional_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			badRequestResponse(c, "professional_id inválido")
			return
		}
		filter.ProfessionalID = &id
	}
	if raw := c.Query("date_from"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			badRequestResponse(c, "formato de fecha inválido en date_from, se espera YYYY-MM-DD")
			return
		}
		filter.Date = &date
	}
	if raw := c.Query("date_to"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			badRequestResponse(c, "formato de fecha inválido en date_to, se espera YYYY-MM-DD")
			return
		}
		filter.DateTo = &date
	}
	if raw := c.Query("status"); raw != "" {
		status := domain.AppointmentStatus(raw)
		filter.Status = &status
	}
	if raw := c.Query("exclude_status"); raw != "" {
		status := domain.AppointmentStatus(raw)
		filter.ExcludeStatus = &status
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 0 {
		limit = 50
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	filter.Limit = limit
	filter.Offset = offset

	appointments, err := h.services.Appointment.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	successResponse(c, 200, appointments)
}

// @Summary Obtener cita
// @Tags Citas
// @Produce json
// @Param id path int true "ID de la cita"
// @Success 200 {object} successResponseBody "Cita"
// @Failure 401 {object} errorResponseBody "No autorizado"
// @Failure 404 {object} errorResponseBody "Cita no encontrada"
// @Security ApiKeyAuth
// @Router /appointments/{id} [get]
func (h *Handler) getAppointmentByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID inválido")
		return
	}

	appointment, err := h.services.Appointment.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	successResponse(c, 200, appointment)
}

// @Summary Actualizar estado de la cita
// @Description Cambia el estado de una cita. Los estados cancelada y rechazada liberan el turno
// @Tags Citas
// @Accept json
// @Produce json
// @Param id path int true "ID de la cita"
// @Param input body domain.UpdateAppointmentStatusDTO true "Nuevo estado"
// @Success 200 {object} messageResponseType "Estado actualizado"
// @Failure 400 {object} errorResponseBody "Error de validación"
// @Failure 401 {object} errorResponseBody "No autorizado"
// @Failure 404 {object} errorResponseBody "Cita no encontrada"
// @Security ApiKeyAuth
// @Router /appointments/{id}/status [put]
func (h *Handler) updateAppointmentStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID inválido")
		return
	}

	var req domain.UpdateAppointmentStatusDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("formato de datos inválido", zap.Error(err))
		badRequestResponse(c, "formato de datos inválido")
		return
	}

	if err := h.services.Appointment.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		respondError(c, err)
		return
	}

	messageResponse(c, 200, "estado actualizado")
}

// @Summary Cancelar cita
// @Description Marca la cita como cancelada y libera el turno
// @Tags Citas
// @Produce json
// @Param id path int true "ID de la cita"
// @Success 200 {object} messageResponseType "Cita cancelada"
// @Failure 401 {object} errorResponseBody "No autorizado"
// @Failure 404 {object} errorResponseBody "Cita no encontrada"
// @Security ApiKeyAuth
// @Router /appointments/{id} [delete]
func (h *Handler) cancelAppointment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID inválido")
		return
	}

	if err := h.services.Appointment.Cancel(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	messageResponse(c, 200, "cita cancelada")
}
