package rest

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/domain"
)

// @Summary Listar servicios
// @Description Lista el catálogo de servicios con su duración y buffer
// @Tags Catálogo
// @Produce json
// @Param active query bool false "Solo servicios activos"
// @Success 200 {object} successResponseBody "Servicios"
// @Router /services [get]
func (h *Handler) getServices(c *gin.Context) {
	activeOnly := c.DefaultQuery("active", "false") == "true"

	services, err := h.services.Catalog.ListServices(c.Request.Context(), activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}

	successResponse(c, 200, services)
}

// @Summary Listar profesionales
// @Tags Catálogo
// @Produce json
// @Param search query string false "Buscar por nombre o especialidad"
// @Success 200 {object} successResponseBody "Profesionales"
// @Router /professionals [get]
func (h *Handler) getProfessionals(c *gin.Context) {
	professionals, err := h.services.Catalog.ListProfessionals(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}

	successResponse(c, 200, professionals)
}

// @Summary Obtener profesional
// @Tags Catálogo
// @Produce json
// @Param id path int true "ID del profesional"
// @Success 200 {object} successResponseBody "Profesional"
// @Failure 404 {object} errorResponseBody "Profesional no encontrado"
// @Router /professionals/{id} [get]
func (h *Handler) getProfessionalByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID inválido")
		return
	}

	professional, err := h.services.Catalog.GetProfessional(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	successResponse(c, 200, professional)
}

// @Summary Crear profesional
// @Tags Catálogo
// @Accept json
// @Produce json
// @Param input body domain.CreateProfessionalDTO true "Datos del profesional"
// @Success 201 {object} successResponseBody "ID del profesional creado"
// @Failure 400 {object} errorResponseBody "Error de validación"
// @Failure 401 {object} errorResponseBody "No autorizado"
// @Security ApiKeyAuth
// @Router /professionals [post]
func (h *Handler) createProfessional(c *gin.Context) {
	var req domain.CreateProfessionalDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("formato de datos inválido", zap.Error(err))
		badRequestResponse(c, "formato de datos inválido")
		return
	}

	id, err := h.services.Catalog.CreateProfessional(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Actualizar profesional
// @Tags Catálogo
// @Accept json
// @Produce json
// @Param id path int true "ID del profesional"
// @Param input body domain.UpdateProfessionalDTO true "Campos a actualizar"
// @Success 200 {object} messageResponseType "Profesional actualizado"
// @Failure 400 {object} errorResponseBody "Error de validación"
// @Failure 401 {object} errorResponseBody "No autorizado"
// @Failure 404 {object} errorResponseBody "Profesional no encontrado"
// @Security ApiKeyAuth
// @Router /professionals/{id} [put]
func (h *Handler) updateProfessional(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID inválido")
		return
	}

	var req domain.UpdateProfessionalDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("formato de datos inválido", zap.Error(err))
		badRequestResponse(c, "formato de datos inválido")
		return
	}

	if err := h.services.Catalog.UpdateProfessional(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}

	messageResponse(c, 200, "profesional actualizado")
}

// @Summary Listar sedes
// @Tags Catálogo
// @Produce json
// @Success 200 {object} successResponseBody "Sedes"
// @Router /places [get]
func (h *Handler) getPlaces(c *gin.Context) {
	places, err := h.services.Catalog.ListPlaces(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	successResponse(c, 200, places)
}
