package main

import (
	"log"
	"path/filepath"

	"ByThePowerOfMemory/internal/config"
	"ByThePowerOfMemory/internal/handler"
	"ByThePowerOfMemory/internal/logger"
	"ByThePowerOfMemory/internal/middleware"
	"ByThePowerOfMemory/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	zl, err := logger.New(logger.Config{Path: cfg.LogPath, Debug: cfg.Debug})
	if err != nil {
		log.Fatal("main(): Failed to build logger: ", err)
	}
	defer zl.Sync()

	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		zl.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	store := storage.NewScoreStore(db)
	h := handler.New(store, zl)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	router.Use(cors.New(corsConfig))

	writeLimit := middleware.RateLimitByIP()
	api := router.Group("/api")
	{
		api.POST("/submit_score", writeLimit, h.SubmitScore)
		api.GET("/scoreboard", h.GetScoreboard)
		api.GET("/stats", h.GetStats)
		api.POST("/log", writeLimit, h.WriteLog)
	}
	router.GET("/healthz", h.Healthz)

	// SPA: assets under /static, index.html for everything else so
	// client-side routes resolve
	router.Static("/static", cfg.StaticDir)
	indexPath := filepath.Join(cfg.StaticDir, "index.html")
	router.NoRoute(func(c *gin.Context) {
		c.File(indexPath)
	})

	zl.Info("listening", zap.String("port", cfg.Port))
	log.Fatal(router.Run(":" + cfg.Port))
}
