package router

import (
	"time"

	"osadash/internal/config"
	"osadash/internal/handler"
	"osadash/internal/middleware"
	"osadash/internal/repository"
	"osadash/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	medicionRepo := repository.NewMedicionRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	usuarioRepo := repository.NewUsuarioRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	importSvc := service.NewImportService(medicionRepo)
	kpiSvc := service.NewKpiService(medicionRepo)
	medicionSvc := service.NewMedicionService(medicionRepo)
	storeSvc := service.NewStoreService(storeRepo)
	authSvc := service.NewAuthService(cfg)
	usuarioSvc := service.NewUsuarioService(usuarioRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	importH := handler.NewImportHandler(importSvc)
	kpiH := handler.NewKpiHandler(kpiSvc)
	medicionesH := handler.NewMedicionesHandler(medicionSvc)
	storesH := handler.NewStoresHandler(storeSvc)
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(usuarioSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db))

	api := r.Group("/api")
	{
		api.POST("/login", middleware.LoginRateLimiter(), authH.Login)

		api.POST("/import/excel", importH.ImportarExcel)
		api.GET("/kpis", kpiH.Obtener)
		api.GET("/measurements", medicionesH.Listar)

		stores := api.Group("/stores")
		{
			stores.GET("", storesH.Listar)
			stores.POST("", storesH.Crear)
			stores.GET("/:id", storesH.ObtenerPorID)
			stores.PUT("/:id", storesH.Actualizar)
			stores.DELETE("/:id", storesH.Eliminar)
		}

		usuarios := api.Group("/users")
		{
			usuarios.GET("", usuariosH.Listar)
			usuarios.POST("", usuariosH.Crear)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
