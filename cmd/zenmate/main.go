package main

import (
	"fmt"
	"log"

	"github.com/GuptaSigma/ZenMate-AI/internal/config"
	"github.com/GuptaSigma/ZenMate-AI/internal/emotion"
	"github.com/GuptaSigma/ZenMate-AI/internal/handler"
	"github.com/GuptaSigma/ZenMate-AI/internal/middleware"
	"github.com/GuptaSigma/ZenMate-AI/internal/service"
	"github.com/GuptaSigma/ZenMate-AI/internal/store"
	"github.com/GuptaSigma/ZenMate-AI/pkg/logger"
	"github.com/GuptaSigma/ZenMate-AI/pkg/redis"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 加载配置
	cfg, err := config.LoadConfig("configs/zenmate.yaml")
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 初始化日志
	zapLogger, err := logger.NewLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("zenmate 服务启动中...")

	// 初始化存储
	var dataStore store.Store
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewRedisClient(cfg.Redis)
		if err != nil {
			zapLogger.Fatal("连接 Redis 失败", zap.Error(err))
		}
		dataStore = store.NewRedisStore(redisClient, zapLogger)
	} else {
		zapLogger.Warn("Redis 未启用，使用内存存储（数据不持久化）")
		dataStore = store.NewMemoryStore()
	}

	// 初始化服务
	chooser := service.NewChooser()
	polarity := emotion.NewAnalyzer(zapLogger)
	sessionService := service.NewSessionService(dataStore, zapLogger)
	aiService := service.NewAIService(dataStore, polarity, chooser, cfg.Engine.HistoryLimit, zapLogger)
	suggestionService := service.NewSuggestionService(dataStore, chooser, zapLogger)

	// 初始化处理器
	chatHandler := handler.NewChatHandler(aiService, suggestionService, sessionService, cfg.Engine.SuggestionLimit, zapLogger)
	apiHandler := handler.NewAPIHandler(sessionService, suggestionService, dataStore, cfg.Server.Name, zapLogger)
	wsHandler := handler.NewWebSocketHandler(sessionService, aiService, suggestionService, cfg.Engine.SuggestionLimit, zapLogger)

	// 初始化路由
	r := gin.Default()
	r.Use(middleware.CORS())

	// HTTP API
	r.POST("/api/session", apiHandler.CreateSession)
	r.POST("/api/chat", chatHandler.Chat)
	r.GET("/api/history", apiHandler.History)
	r.GET("/api/suggestions", apiHandler.Suggestions)
	r.GET("/api/resources", apiHandler.Resources)
	r.GET("/api/health", apiHandler.Health)

	// WebSocket 端点
	r.GET("/ws/chat", wsHandler.HandleWebSocket)

	// 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	zapLogger.Info("zenmate 服务启动成功", zap.Int("port", cfg.Server.Port))

	if err := r.Run(addr); err != nil {
		zapLogger.Fatal("服务启动失败", zap.Error(err))
	}
}
