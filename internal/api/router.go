package api

import (
	"net/http"

	"lapor-jalan/internal/auth"
	"lapor-jalan/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}

func SetupRouter(cfg *config.Config, rdb *redis.Client) *gin.Engine {
	r := gin.Default()
	r.Use(corsMiddleware())

	// Uploaded photos are served straight from disk
	r.Static("/uploads", cfg.Uploads.Dir)

	group := r.Group("/api")
	{
		group.GET("", healthHandler)

		// Auth
		group.POST("/auth/register", RegisterHandler())
		group.POST("/auth/login", LoginHandler(cfg, rdb))
		group.POST("/auth/logout", auth.AuthMiddleware(cfg, rdb, false), LogoutHandler(rdb))
		group.GET("/auth/me", auth.AuthMiddleware(cfg, rdb, false), MeHandler())

		// Reports: any authenticated user may submit and browse,
		// triage and deletion are admin only
		group.POST("/reports", auth.AuthMiddleware(cfg, rdb, false), CreateReportHandler(cfg))
		group.GET("/reports", auth.AuthMiddleware(cfg, rdb, false), ListReportsHandler(cfg))
		group.PATCH("/reports/:id/status", auth.AuthMiddleware(cfg, rdb, true), UpdateStatusHandler())
		group.DELETE("/reports/:id", auth.AuthMiddleware(cfg, rdb, true), DeleteReportHandler())

		// Admin: user management (role promotion happens here)
		group.GET("/users", auth.AuthMiddleware(cfg, rdb, true), ListUsersHandler())
		group.PUT("/users/:id", auth.AuthMiddleware(cfg, rdb, true), UpdateUserByIdHandler())
		group.GET("/users/online", auth.AuthMiddleware(cfg, rdb, true), OnlineUserCountHandler(rdb))
	}
	return r
}
