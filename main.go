package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/EdwinAndresGpmez/TimeTrack-sub000/config"
	_ "github.com/EdwinAndresGpmez/TimeTrack-sub000/docs"
	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/cache"
	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/repository"
	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/service"
	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/transport/rest"
	"github.com/EdwinAndresGpmez/TimeTrack-sub000/pkg/database"
	"github.com/EdwinAndresGpmez/TimeTrack-sub000/pkg/logger"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title TimeTrack API
// @version 1.0
// @description API de agenda y disponibilidad para citas médicas

// @contact.name Soporte TimeTrack
// @contact.email soporte@timetrack.local

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.NewLogger(cfg.Environment, cfg.Name)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := database.NewPostgresDB(cfg.Postgres)
	if err != nil {
		log.Fatal("no se pudo conectar a la base de datos", zap.Error(err))
	}
	defer db.Close()

	ctx := context.Background()
	if err := database.RunMigrations(ctx, db, cfg.Postgres.MigrationsDir, log); err != nil {
		log.Fatal("error al ejecutar las migraciones", zap.Error(err))
	}

	var agendaCache cache.AgendaCache
	if cfg.Redis.Addr != "" {
		redisCache, err := cache.NewRedisCache(cfg.Redis, log)
		if err != nil {
			log.Fatal("no se pudo conectar a redis", zap.Error(err))
		}
		agendaCache = redisCache
		log.Info("caché de agenda habilitada", zap.String("addr", cfg.Redis.Addr))
	} else {
		agendaCache = cache.NewNoopCache()
		log.Warn("redis no configurado, la agenda se calcula en cada petición")
	}

	repos := repository.NewRepositories(db)

	services := service.NewServices(service.Deps{
		Repos:  repos,
		Logger: log,
		Config: cfg,
		Cache:  agendaCache,
	})

	handler := rest.NewHandler(services, log, cfg)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	handler.InitRoutes(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": cfg.Version})
	})

	srv := &http.Server{
		Addr:           ":" + cfg.HTTP.Port,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderMB << 20,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("error al iniciar el servidor", zap.Error(err))
		}
	}()

	log.Info("servidor iniciado", zap.String("addr", srv.Addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("apagando el servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("error al detener el servidor", zap.Error(err))
	}

	log.Info("servidor detenido correctamente")
}
