package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"catalogbot/internal/config"
	"catalogbot/internal/handler"
	"catalogbot/internal/logger"
	"catalogbot/internal/model"
	"catalogbot/internal/repository"
	"catalogbot/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zl.Sync()

	zl.Infow("catalog chatbot API starting",
		"version", Version, "build_time", BuildTime, "git_commit", GitCommit)

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database connection
	repo, err := repository.NewCatalogRepository(
		cfg.GetPostgreSQLDSN(),
		cfg.PostgreSQL.MaxConnections,
		cfg.PostgreSQL.MaxIdleConnections,
	)
	if err != nil {
		zl.Fatalw("failed to connect to database", "error", err)
	}
	defer repo.Close()
	zl.Infow("connected to PostgreSQL database", "database", cfg.PostgreSQL.Database)

	// Initialize LLM client
	llm := service.NewLLMClient(&cfg.LLM, zl)
	if cfg.LLM.Enabled {
		zl.Infow("LLM client initialized",
			"api_base", cfg.LLM.APIBase, "chat_model", cfg.LLM.ChatModel)
	} else {
		zl.Warnw("LLM is disabled - set LLM_API_KEY to enable classification and generation")
	}

	// Initialize services
	scorer := service.NewSimilarityOracle(llm, zl)
	classifier := service.NewClassifier(scorer, model.DefaultScenarios(), zl)
	extractor := service.NewExtractor(llm, zl)
	fallback := service.NewFallbackChat(llm, zl)
	router := service.NewRouter(classifier, extractor, repo, fallback, cfg.Chat.ConfidenceThreshold, zl)

	// Initialize handlers
	chatHandler := handler.NewChatHandler(router)

	// Setup Gin router
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(handler.RequestLogger(zl))

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	engine.Use(cors.New(corsConfig))

	// API routes
	api := engine.Group("/api")
	{
		api.POST("/chat", chatHandler.Chat)
		api.POST("/chat/stream", chatHandler.ChatStream)
		api.GET("/health", chatHandler.Health)
	}

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	zl.Infow("starting server", "addr", addr)

	go func() {
		if err := engine.Run(addr); err != nil {
			zl.Fatalw("failed to start server", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Infow("shutting down server")
}
