// @title Feauage Back-office API
// @version 1.0
// @description Reporting dashboard and sales targets for the Feauage admin panel
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/devifai-2026/feauage-backend-sub001/config"
	"github.com/devifai-2026/feauage-backend-sub001/controllers/cms/dashboard_controller"
	"github.com/devifai-2026/feauage-backend-sub001/controllers/cms/target_controller"
	_ "github.com/devifai-2026/feauage-backend-sub001/docs"
	"github.com/devifai-2026/feauage-backend-sub001/middleware"
	"github.com/devifai-2026/feauage-backend-sub001/models"
	"github.com/devifai-2026/feauage-backend-sub001/routes/cms_routes"
	"github.com/devifai-2026/feauage-backend-sub001/services"
	"github.com/devifai-2026/feauage-backend-sub001/services/reporting"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	cfg := config.Load()
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to stores
	config.InitDB()
	defer config.CloseDB()
	config.ConnectMongo()
	defer config.CloseMongo()
	config.ConnectRedis()
	defer config.CloseRedis()

	if err := config.DB.AutoMigrate(&models.User{}, &models.Target{}, &models.ActivityLog{}); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}
	log.Println("✅ Schema migrated")

	// ✅ Initialize JWT Service for Admin Auth
	if cfg.JWTSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(cfg.JWTSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	services.InitAdminAuthService(config.DB)
	log.Println("✅ JWT Service initialized")

	services.InitActivityLogWorker(
		services.NewGormActivityLogRepository(config.DB),
		cfg.ActivityLogBufferSize, cfg.ActivityLogBatchSize, cfg.ActivityLogFlushInterval,
	)
	defer services.ShutdownActivityLogWorker()

	// Reporting
	reporting.InitPrometheusMetrics()
	agg := reporting.NewAggregator(
		reporting.NewPgOrderReader(config.Pool),
		reporting.NewGormUserReader(config.DB),
		reporting.NewMongoSessionReader(config.Mongo.Collection(config.CollectionAnalyticsEvents)),
	)
	targets := reporting.NewTargetService(reporting.NewGormTargetStore(config.DB), agg)
	dashboard := reporting.NewDashboardService(agg, targets)
	dashboard_controller.Init(dashboard, targets)
	target_controller.Init(targets)

	corsCfg := cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))
	router.Use(middleware.PrometheusMiddleware())

	api := router.Group("/api/v1")
	api.Use(middleware.DefaultRateLimiter())

	cms_routes.SetupAuthRoutes(api)

	admin := api.Group("")
	admin.Use(middleware.AdminAuthMiddleware())
	admin.Use(middleware.ActivityLoggingMiddleware(middleware.GormResourceFetcher(config.DB)))
	cms_routes.SetupDashboardRoutes(admin)
	cms_routes.SetupTargetRoutes(admin)
	log.Println("✅ Admin routes registered")

	router.GET("/healthz", healthHandler(map[string]pingFunc{
		"postgres": config.Pool.Ping,
		"mongo":    func(ctx context.Context) error { return config.MongoClient.Ping(ctx, nil) },
		"redis":    func(ctx context.Context) error { return config.RedisClient.Ping(ctx).Err() },
	}))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server is running on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("⚠️ Server forced to shutdown: %v", err)
	}
}
