package routes

import (
	"github.com/Himanagi/Calorie-tracker-app/controllers"
	"github.com/Himanagi/Calorie-tracker-app/middlewares"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.MonitorMiddleware())
	r.Use(middlewares.RateLimitMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.POST("/onboarding", controllers.CompleteOnboarding)
	}

	entries := r.Group("/entries")
	entries.Use(middlewares.AuthMiddleware())
	{
		entries.POST("/food", controllers.LogFood)
		entries.POST("/workout", controllers.LogWorkout)
		entries.POST("/water", controllers.LogWater)
		entries.GET("", controllers.ListEntries)
		entries.DELETE("/:id", controllers.DeleteEntry)
	}

	protected := r.Group("/")
	protected.Use(middlewares.AuthMiddleware())
	{
		protected.GET("/dashboard", controllers.GetDashboard)
		protected.GET("/stats/daily", controllers.GetDailyStats)
		protected.GET("/foods/search", controllers.SearchFoods)
		protected.GET("/foods/:fdcId", controllers.GetFoodDetails)
		protected.POST("/dev/backfill-dates", controllers.BackfillEntryDates)
	}

	return r
}
