package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/EdwinAndresGpmez/TimeTrack-sub000/config"
	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/service"
)

type Handler struct {
	services *service.Services
	logger   *zap.Logger
	config   *config.Config
}

func NewHandler(services *service.Services, logger *zap.Logger, config *config.Config) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		config:   config,
	}
}

// InitRoutes registra la API. Las lecturas de agenda y catálogo son públicas
// para que la grilla pueda renderizar sin sesión; toda escritura exige token.
func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.loggerMiddleware())
	router.Use(h.metricsMiddleware())
	router.Use(h.errorMiddleware())
	router.Use(h.corsMiddleware())

	api := router.Group("/api/v1")
	{
		agenda := api.Group("/agenda")
		{
			agenda.GET("/day", h.getDayAgenda)
			agenda.GET("/week", h.getWeekAgenda)
			agenda.POST("/clone-day", h.authMiddleware(), h.cloneDay)
		}

		templates := api.Group("/templates")
		{
			templates.GET("/", h.getTemplates)
			templates.GET("/:id", h.getTemplateByID)

			auth := templates.Group("/")
			auth.Use(h.authMiddleware())
			{
				auth.POST("/", h.createTemplate)
				auth.DELETE("/:id", h.deleteTemplate)
				auth.DELETE("/:id/occurrences/:date", h.deleteTemplateOccurrence)
				auth.POST("/delete-series", h.deleteTemplateSeries)
			}
		}

		blackouts := api.Group("/blackouts")
		{
			blackouts.GET("/", h.getBlackouts)

			auth := blackouts.Group("/")
			auth.Use(h.authMiddleware())
			{
				auth.POST("/", h.createBlackout)
				auth.DELETE("/:id", h.deleteBlackout)
			}
		}

		appointments := api.Group("/appointments")
		appointments.Use(h.authMiddleware())
		{
			appointments.POST("/", h.createAppointment)
			appointments.GET("/", h.getAppointments)
			appointments.GET("/:id", h.getAppointmentByID)
			appointments.PUT("/:id/status", h.updateAppointmentStatus)
			appointments.DELETE("/:id", h.cancelAppointment)
		}

		services := api.Group("/services")
		{
			services.GET("/", h.getServices)
		}

		professionals := api.Group("/professionals")
		{
			professionals.GET("/", h.getProfessionals)
			professionals.GET("/:id", h.getProfessionalByID)

			auth := professionals.Group("/")
			auth.Use(h.authMiddleware())
			{
				auth.POST("/", h.createProfessional)
				auth.PUT("/:id", h.updateProfessional)
			}
		}

		places := api.Group("/places")
		{
			places.GET("/", h.getPlaces)
		}
	}
}
