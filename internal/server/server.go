package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"catalog-api/internal/config"
	"catalog-api/internal/handlers"
	"catalog-api/internal/middlewares"
	"catalog-api/internal/repositories"
	"catalog-api/internal/routes"
	"catalog-api/internal/services"
)

func NewServer(cfg *config.Config, pool *pgxpool.Pool, log *zap.Logger) *http.Server {
	return &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      NewRouter(cfg, pool, log),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// NewRouter wires repositories, services and handlers onto a gin engine.
func NewRouter(cfg *config.Config, pool *pgxpool.Pool, log *zap.Logger) *gin.Engine {
	// Dependency injection
	tx := repositories.NewTransactor(pool)
	companyRepo := repositories.NewCompanyRepository(pool)
	categoryRepo := repositories.NewCategoryRepository(pool)
	productRepo := repositories.NewProductRepository(pool)
	warrantyRepo := repositories.NewWarrantyRepository(pool)
	linkRepo := repositories.NewProductCategoryRepository(pool)

	companyService := services.NewCompanyService(tx, companyRepo, log)
	categoryService := services.NewCategoryService(tx, categoryRepo, log)
	productService := services.NewProductService(tx, productRepo, linkRepo, log)
	warrantyService := services.NewWarrantyService(tx, warrantyRepo, log)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middlewares.RequestID,
		middlewares.AccessLog(log),
		cors.New(corsConfig(cfg.CORS)),
	)

	routes.RegisterRoutes(router, routes.Handlers{
		Health:   handlers.NewHealthHandler(pool, log),
		Company:  handlers.NewCompanyHandler(companyService, log),
		Category: handlers.NewCategoryHandler(categoryService, log),
		Product:  handlers.NewProductHandler(productService, log),
		Warranty: handlers.NewWarrantyHandler(warrantyService, log),
	})

	return router
}

func corsConfig(cfg config.CORSConfig) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middlewares.RequestIDHeader},
		ExposeHeaders: []string{middlewares.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 0 || (len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.AllowedOrigins
	}
	return c
}
