package api

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/trip-metrics-backend-go/internal/config"
	"github.com/jengzang/trip-metrics-backend-go/internal/handler"
	"github.com/jengzang/trip-metrics-backend-go/internal/metrics"
	"github.com/jengzang/trip-metrics-backend-go/internal/middleware"
	"github.com/jengzang/trip-metrics-backend-go/internal/models"
	"github.com/jengzang/trip-metrics-backend-go/internal/repository"
	"github.com/jengzang/trip-metrics-backend-go/internal/service"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, db *sql.DB, collector *metrics.Collector) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		status, code := "ok", http.StatusOK
		if err := db.PingContext(c.Request.Context()); err != nil {
			status, code = "database unavailable", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":  status,
			"message": "Trip Metrics API is running",
		})
	})
	r.GET("/metrics", gin.WrapH(collector.Handler()))

	defaults := models.UnitPreference{
		MetricUnits:    cfg.MetricUnits,
		MetricDistance: cfg.MetricDistance,
	}
	tripService := service.NewTripService(
		repository.NewTripRepository(db),
		repository.NewSettingsRepository(db, defaults),
		collector,
	)
	tripHandler := handler.NewTripHandler(tripService)
	settingsHandler := handler.NewSettingsHandler(tripService)

	// API 路由组
	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(middleware.NewRateLimiter(cfg.RateLimit, cfg.RateLimitWindow)))
	if cfg.AuthEnabled {
		api.Use(middleware.JWTAuth(cfg.JWTSecret))
	}
	{
		// 行程
		trips := api.Group("/trips")
		{
			trips.GET("", tripHandler.GetTrips)
			trips.POST("", tripHandler.CreateTrip)
			trips.GET("/:id", tripHandler.GetTripByID)
			trips.DELETE("/:id", tripHandler.DeleteTrip)
			trips.GET("/:id/metrics", tripHandler.GetTripMetrics)
		}

		// 单位设置
		settings := api.Group("/settings")
		{
			settings.GET("/units", settingsHandler.GetUnits)
			settings.PUT("/units", settingsHandler.UpdateUnits)
		}
	}

	return r
}
