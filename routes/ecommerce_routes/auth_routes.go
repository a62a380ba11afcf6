package ecommerce_routes

import (
	"time"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/controllers/ecommerce/auth_controller"
	"github.com/PalomoDev/alexika-es-sub001/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up all customer authentication routes
func SetupAuthRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		limited := auth.Group("")
		limited.Use(middleware.RateLimiter(10, time.Minute))
		limited.POST("/register", auth_controller.Register)
		limited.POST("/login", auth_controller.Login)

		auth.POST("/logout", auth_controller.Logout)
		auth.GET("/me", middleware.AuthMiddleware(), auth_controller.GetMe)

		if config.GoogleEnabled() {
			auth.GET("/google/login", auth_controller.GoogleLogin)
			auth.GET("/google/callback", auth_controller.GoogleCallback)
		}
	}
}
