package main

import (
	"log"

	"github.com/colorwalk/colorwalk-backend-go/internal/api"
	"github.com/colorwalk/colorwalk-backend-go/internal/config"
	"github.com/colorwalk/colorwalk-backend-go/internal/database"
	"github.com/colorwalk/colorwalk-backend-go/internal/handler"
	"github.com/colorwalk/colorwalk-backend-go/internal/repository"
	"github.com/colorwalk/colorwalk-backend-go/internal/service"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化数据库
	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	db := database.GetDB()
	if err := database.NewMigrationManager(db).RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// 仓库与服务
	userRepo := repository.NewUserRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	colorRepo := repository.NewColorRepository(db)

	handlers := api.Handlers{
		Auth:    handler.NewAuthHandler(service.NewAuthService(userRepo, cfg.JWTSecret)),
		Photo:   handler.NewPhotoHandler(service.NewPhotoService(photoRepo)),
		Color:   handler.NewColorHandler(service.NewColorService(colorRepo)),
		Ranking: handler.NewRankingHandler(service.NewRankingService(photoRepo, cfg.WalkGapMinutes)),
	}

	// 初始化路由
	router := api.SetupRouter(cfg, handlers)

	// 启动服务器
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
