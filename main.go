// @title Alexika Outdoor API
// @version 1.0
// @description Storefront and admin panel API for the Alexika outdoor equipment shop
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

//go:generate swag init -g main.go -o docs

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/PalomoDev/alexika-es-sub001/config"
	_ "github.com/PalomoDev/alexika-es-sub001/docs"
	"github.com/PalomoDev/alexika-es-sub001/metrics"
	"github.com/PalomoDev/alexika-es-sub001/middleware"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/routes/cms_routes"
	"github.com/PalomoDev/alexika-es-sub001/routes/ecommerce_routes"
	"github.com/PalomoDev/alexika-es-sub001/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

func main() {
	config.Load()
	config.InitLogger()
	defer config.SyncLogger()

	// Connect to DB
	config.InitDB()
	if err := models.AutoMigrate(config.DB); err != nil {
		config.Log.Fatal("❌ Migration failed", zap.Error(err))
	}
	// Redis connection (optional)
	config.ConnectRedis()

	services.InitImageStore()
	config.InitGoogleOAuth()

	// ✅ Order expiration: one timer per pending order, plus a sweep for
	// anything a restart or a missed timer left behind.
	expirer := services.NewOrderExpirer(config.App.OrderTimeout, nil)
	services.InitOrderExpirer(expirer)
	{
		ctx, cancel := config.WithCustomTimeout(30 * time.Second)
		n, err := expirer.Restore(ctx)
		cancel()
		if err != nil {
			config.Log.Error("❌ Failed to restore order timers", zap.Error(err))
		} else {
			config.Log.Info("✅ Order timers restored", zap.Int("pending", n))
		}
	}
	if err := expirer.Start(config.App.ExpirySweep); err != nil {
		config.Log.Fatal("❌ Failed to start order sweep", zap.Error(err))
	}

	housekeeping := cron.New()
	if _, err := housekeeping.AddFunc("@hourly", func() {
		ctx, cancel := config.WithTimeout()
		defer cancel()
		n, err := services.CleanupExpiredAdminSessions(ctx)
		if err != nil {
			config.Log.Error("admin session cleanup failed", zap.Error(err))
			return
		}
		config.Log.Info("admin sessions cleaned up", zap.Int64("removed", n))
	}); err != nil {
		config.Log.Fatal("❌ Failed to schedule session cleanup", zap.Error(err))
	}
	housekeeping.Start()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(), metrics.Middleware())

	// ✅ CORS for the storefront and the admin panel, exposing the download headers
	router.Use(cors.New(cors.Config{
		AllowOrigins:     config.App.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"},
	}))

	api := router.Group("/api/v1")
	cms_routes.SetupAdminRoutes(api)
	ecommerce_routes.SetupStorefrontRoutes(api)
	ecommerce_routes.SetupAuthRoutes(api)
	ecommerce_routes.SetupUserRoutes(api)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", metrics.Handler())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              ":" + config.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		config.Log.Info("🚀 Server is running", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.Log.Fatal("❌ Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	config.Log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		config.Log.Error("Server forced to shut down", zap.Error(err))
	}

	<-housekeeping.Stop().Done()
	expirer.Stop()
	config.CloseRedis()
	config.CloseDB()
}
