package cms_routes

import (
	"time"

	admin_controller "github.com/PalomoDev/alexika-es-sub001/controllers/cms/admin_controller"
	admin_auth "github.com/PalomoDev/alexika-es-sub001/controllers/cms/admin_controller/auth"
	"github.com/PalomoDev/alexika-es-sub001/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes mounts the admin panel API under /admin.
func SetupAdminRoutes(rg *gin.RouterGroup) {
	// ════════════════════════════════════════════════════════════
	// Base Admin Group
	// ════════════════════════════════════════════════════════════

	admin := rg.Group("/admin")
	admin.Use(middleware.RateLimiter(300, time.Minute))

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════

	admin.POST("/login", middleware.RateLimiter(10, time.Minute), admin_auth.AdminLogin)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth + Activity Logging on writes)
	// ════════════════════════════════════════════════════════════

	protected := admin.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		// Auth
		protected.POST("/logout", admin_auth.AdminLogout)
		protected.GET("/me", admin_auth.GetAdminMe)

		// Activity logs
		protected.GET("/activity-logs", admin_controller.GetActivityLogs)

		// Stats
		protected.GET("/stats", admin_controller.GetDashboardStats)
		protected.GET("/stats/top-products", admin_controller.GetTopProducts)
		protected.GET("/stats/monthly-revenue", admin_controller.GetMonthlyRevenue)

		SetupBrandRoutes(protected)
		SetupCategoryRoutes(protected)
		SetupProductRoutes(protected)
		SetupArticleRoutes(protected)
		SetupOrderRoutes(protected)
	}

	// ════════════════════════════════════════════════════════════
	// Super Admin Only Routes
	// ════════════════════════════════════════════════════════════

	superAdmin := admin.Group("")
	superAdmin.Use(
		middleware.AdminAuthMiddleware(),
		middleware.RequireSuperAdminMiddleware(),
		middleware.ActivityLoggingMiddleware(),
	)
	{
		superAdmin.GET("/admins", admin_controller.GetAdmins)
		superAdmin.PATCH("/admins/:id/status", admin_controller.UpdateAdminStatus)
	}
}
