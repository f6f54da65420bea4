package main

import (
	"log"

	"github.com/jengzang/trip-metrics-backend-go/internal/api"
	"github.com/jengzang/trip-metrics-backend-go/internal/config"
	"github.com/jengzang/trip-metrics-backend-go/internal/database"
	"github.com/jengzang/trip-metrics-backend-go/internal/metrics"
)

func main() {
	// 加载配置
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration:", err)
	}

	// 初始化数据库（含迁移）
	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	// 初始化路由
	router := api.SetupRouter(cfg, database.GetDB(), metrics.NewCollector())

	// 启动服务器
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
