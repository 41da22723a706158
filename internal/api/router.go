package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/learnhub/learnhub-api/docs"
	"github.com/learnhub/learnhub-api/internal/api/handler"
	"github.com/learnhub/learnhub-api/internal/api/middleware"
	"github.com/learnhub/learnhub-api/internal/core/ports"
	"github.com/learnhub/learnhub-api/internal/core/service"
	mongorepo "github.com/learnhub/learnhub-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/learnhub/learnhub-api/internal/infrastructure/db/redis"
	"github.com/learnhub/learnhub-api/internal/pkg/config"
	"github.com/learnhub/learnhub-api/internal/pkg/credentials"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, audit ports.AuditRecorder, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.IsProduction())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("learnhub"))
	e.Use(middleware.RateLimit(redisinfra.NewLimiter(rdb, cfg.RateLimit.Window()), cfg.RateLimit.Requests))

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(db)
	courseRepo := mongorepo.NewCourseRepository(db)
	productRepo := mongorepo.NewProductRepository(db)

	hasher := credentials.NewHasher(cfg.AuthSecret)
	authService := service.NewAuthService(userRepo, hasher, audit, log)
	userService := service.NewUserService(userRepo, audit, log)
	courseService := service.NewCourseService(courseRepo, audit, log)
	productService := service.NewProductService(productRepo, audit, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	courseHandler := handler.NewCourseHandler(courseService)
	productHandler := handler.NewProductHandler(productService)

	authenticate := middleware.Authenticate(userRepo)
	requireOwner := middleware.RequireOwner(cfg.AppOwnerID)
	requireAdmin := middleware.RequireAdmin()
	requireCourseOwnerOrAdmin := middleware.RequireCourseOwnerOrAdmin(courseRepo, cfg.AppOwnerID)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authenticate)

	// --- User routes ---
	e.GET("/users/:id", userHandler.Get)

	users := e.Group("/users", authenticate)
	users.GET("", userHandler.List)
	users.PATCH("/:id", userHandler.UpdateUsername, requireOwner)
	users.DELETE("/:id", userHandler.Delete, requireOwner)
	users.POST("/:id/admin", userHandler.Promote, requireAdmin)

	// --- Course routes (all behind a session, writes owner-or-admin) ---
	courses := e.Group("/courses", authenticate)
	courses.GET("", courseHandler.List)
	courses.GET("/tags/lookup", courseHandler.ByTags)
	courses.GET("/:id", courseHandler.Get)
	courses.GET("/:id/lessons", courseHandler.Lessons)
	courses.GET("/:id/resources", courseHandler.Resources)
	courses.GET("/:id/tags", courseHandler.Tags)
	courses.POST("", courseHandler.Create)

	courses.PUT("/:id", courseHandler.Update, requireCourseOwnerOrAdmin)
	courses.DELETE("/:id", courseHandler.Delete, requireCourseOwnerOrAdmin)
	courses.POST("/:id/lessons", courseHandler.AddLesson, requireCourseOwnerOrAdmin)
	courses.PUT("/:id/lessons/:lessonId", courseHandler.UpdateLesson, requireCourseOwnerOrAdmin)
	courses.DELETE("/:id/lessons/:lessonId", courseHandler.RemoveLesson, requireCourseOwnerOrAdmin)
	courses.POST("/:id/resources", courseHandler.AddResource, requireCourseOwnerOrAdmin)
	courses.PUT("/:id/resources/:resourceId", courseHandler.UpdateResource, requireCourseOwnerOrAdmin)
	courses.DELETE("/:id/resources/:resourceId", courseHandler.RemoveResource, requireCourseOwnerOrAdmin)
	courses.POST("/:id/tags", courseHandler.AddTag, requireCourseOwnerOrAdmin)
	courses.DELETE("/:id/tags/:tagId", courseHandler.RemoveTag, requireCourseOwnerOrAdmin)

	// --- Product routes (reads public, writes admin only) ---
	e.GET("/products", productHandler.List)
	e.GET("/products/recent", productHandler.Recent)
	e.GET("/products/recent/:store", productHandler.RecentByStore)
	e.GET("/products/search/:search", productHandler.Search)
	e.GET("/products/store/:store", productHandler.ByStore)
	e.GET("/products/:id", productHandler.Get)
	e.GET("/products/:id/prices", productHandler.PriceHistory)

	products := e.Group("/products", authenticate, requireAdmin)
	products.POST("", productHandler.Create)
	products.PATCH("/:id", productHandler.Update)
	products.DELETE("/:id", productHandler.Delete)
	products.PATCH("/:id/add-price", productHandler.AddPrice)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
