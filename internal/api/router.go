package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/colorwalk/colorwalk-backend-go/internal/config"
	"github.com/colorwalk/colorwalk-backend-go/internal/handler"
	"github.com/colorwalk/colorwalk-backend-go/internal/middleware"
)

// Handlers groups everything the router wires up
type Handlers struct {
	Auth    *handler.AuthHandler
	Photo   *handler.PhotoHandler
	Color   *handler.ColorHandler
	Ranking *handler.RankingHandler
}

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(120, time.Minute))

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
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "ColorWalk API is running",
		})
	})

	auth := middleware.Auth(cfg.JWTSecret)

	api := r.Group("/api/v1")
	{
		api.POST("/auth/register", h.Auth.Register)
		api.POST("/auth/login", h.Auth.Login)

		// 照片相关接口
		api.GET("/gallery", h.Photo.Gallery)
		api.POST("/photos", auth, h.Photo.CreatePhoto)
		api.POST("/photos/:id/like", h.Photo.Like)
		api.GET("/me/photos", auth, h.Photo.MyPhotos)

		// 今日颜色
		api.GET("/color", auth, h.Color.ColorOfDay)
		api.GET("/colors", h.Color.Colors)

		// 散步排行榜
		api.GET("/ranking", h.Ranking.Leaderboard)
	}

	return r
}
