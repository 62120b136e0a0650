package routes

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/carwash-scheduler/internal/audit"
	"github.com/BruksfildServices01/carwash-scheduler/internal/config"
	"github.com/BruksfildServices01/carwash-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/carwash-scheduler/internal/domain/preferences"
	"github.com/BruksfildServices01/carwash-scheduler/internal/handlers"
	"github.com/BruksfildServices01/carwash-scheduler/internal/infra/cache"
	"github.com/BruksfildServices01/carwash-scheduler/internal/infra/imaging"
	infraRepo "github.com/BruksfildServices01/carwash-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/carwash-scheduler/internal/infra/storage"
	"github.com/BruksfildServices01/carwash-scheduler/internal/middleware"
	"github.com/BruksfildServices01/carwash-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/carwash-scheduler/internal/usecase/appointment"
	ucCatalog "github.com/BruksfildServices01/carwash-scheduler/internal/usecase/catalog"
)

// Deps are the long-lived collaborators built by the serve command.
// Redis is optional.
type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Log    zerolog.Logger
	Redis  *redis.Client
	Audit  *audit.Dispatcher
}

func RegisterRoutes(r *gin.Engine, deps Deps) error {
	cfg := deps.Config

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.Logger(deps.Log),
		middleware.Recovery(deps.Log),
		middleware.CORSMiddleware(cfg.AllowedOrigins()),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// INFRA
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(deps.DB)
	washTypeRepo := infraRepo.NewWashTypeGormRepository(deps.DB)
	userRepo := infraRepo.NewUserGormRepository(deps.DB)
	clientRepo := infraRepo.NewClientGormRepository(deps.DB)
	auditRepo := infraRepo.NewAuditLogGormRepository(deps.DB)

	var catalogCache catalog.Cache
	if deps.Redis != nil {
		catalogCache = cache.NewWashTypeRedisCache(deps.Redis, cfg.CatalogCacheTTL)
	}

	var images catalog.ImageStore
	if cfg.S3Enabled() {
		s3cfg := storage.S3Config{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			PublicURL: cfg.S3PublicURL,
		}
		images = storage.NewS3ImageStore(storage.NewS3Client(s3cfg), s3cfg)
	}

	var prefsStore preferences.Store = infraRepo.NewSettingGormStore(deps.DB)
	if cfg.PreferencesBackend == "redis" {
		if deps.Redis == nil {
			return fmt.Errorf("preferences backend redis needs REDIS_URL")
		}
		prefsStore = cache.NewRedisKV(deps.Redis)
	}

	weekStart, err := cfg.FirstWeekday()
	if err != nil {
		return err
	}

	settings := ucAppointment.Settings{
		Hours:       cfg.BusinessHours(),
		AutoConfirm: cfg.AutoConfirm,
		WeekStart:   weekStart,
		Clock:       timezone.NewClock(cfg.Timezone),
	}

	// ======================================================
	// USE CASES / HANDLERS
	// ======================================================
	catalogSvc := ucCatalog.NewService(
		washTypeRepo,
		catalogCache,
		images,
		imaging.NewWebPEncoder(),
		deps.Audit,
		deps.Log,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		appointmentRepo,
		catalogSvc,
		deps.Audit,
		settings,
	)

	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	meHandler := handlers.NewMeHandler(userRepo)
	preferencesHandler := handlers.NewPreferencesHandler(prefsStore)
	washTypeHandler := handlers.NewWashTypeHandler(catalogSvc)
	clientHandler := handlers.NewClientHandler(clientRepo)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditRepo)
	publicHandler := handlers.NewPublicHandler(catalogSvc, appointmentHandler)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/wash-types", publicHandler.ListWashTypes)
			publicAPI.GET("/availability", publicHandler.Availability)
			publicAPI.POST("/appointments", publicHandler.CreateAppointment)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg.JWTSecret))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/me/preferences", preferencesHandler.Get)
			secured.PUT("/me/preferences", preferencesHandler.Update)

			secured.GET("/business-hours", appointmentHandler.BusinessHours)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/availability", appointmentHandler.Availability)
			secured.GET("/appointments/calendar", appointmentHandler.Calendar)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)
			secured.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
			secured.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)

			// ------------------------------
			// CATALOG / CLIENTS
			// ------------------------------
			secured.GET("/wash-types", washTypeHandler.List)
			secured.POST("/wash-types", washTypeHandler.Create)
			secured.PATCH("/wash-types/:id", washTypeHandler.Update)
			secured.DELETE("/wash-types/:id", washTypeHandler.Delete)
			secured.POST("/wash-types/:id/image", washTypeHandler.UploadImage)

			secured.GET("/clients", clientHandler.List)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}

	return nil
}
