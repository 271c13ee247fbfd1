package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pickmyschool/internal/config"
	"pickmyschool/internal/handler"
	"pickmyschool/internal/logger"
	"pickmyschool/internal/model"
	"pickmyschool/internal/repository"
	"pickmyschool/internal/service"
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

	zlog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zlog.Sync()

	zlog.Info("starting pickmyschool",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("git_commit", GitCommit))

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database connection
	repo, err := repository.NewPostgresRepository(
		cfg.GetPostgreSQLDSN(),
		cfg.PostgreSQL.MaxConnections,
		cfg.PostgreSQL.MaxIdleConnections,
	)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	defer repo.Close()
	zlog.Info("connected to PostgreSQL")

	// Initialize conversation store
	redisClient, err := repository.NewRedisClient(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		zlog.Fatal("failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	conversations := repository.NewConversationStore(redisClient)
	zlog.Info("connected to Redis", zap.String("addr", cfg.Redis.Address))

	// Initialize services
	extractor := service.NewCriteriaExtractor()
	composer := service.NewResponseComposer()
	chatService := service.NewChatService(repo, conversations, extractor, composer, cfg.Search.PageSize, zlog)
	recommender := service.NewRecommender(repo, nil, zlog)
	schoolService := service.NewSchoolService(repo, cfg.Search.PageSize)

	// Initialize handlers
	chatHandler := handler.NewChatHandler(chatService)
	recommendationHandler := handler.NewRecommendationHandler(recommender, cfg.Recommend.DefaultLimit, cfg.Recommend.MaxLimit)
	schoolHandler := handler.NewSchoolHandler(schoolService)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "pickmyschool",
			"version": Version,
		})
	})

	// API routes
	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/chat", handler.OptionalAuth(repo), chatHandler.Chat)
		apiV1.GET("/chat/history", handler.RequireAuth(repo), chatHandler.History)

		apiV1.GET("/schools", schoolHandler.Search)
		apiV1.GET("/schools/:id", schoolHandler.GetSchool)
		apiV1.GET("/recommendations",
			handler.RequireAuth(repo),
			handler.RequireRole(model.RoleStudent),
			recommendationHandler.Recommendations)

		apiV1.POST("/enquiries",
			handler.RequireAuth(repo),
			handler.RequireRole(model.RoleStudent),
			schoolHandler.SubmitEnquiry)
	}

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	zlog.Info("starting server", zap.String("addr", addr))

	go func() {
		if err := router.Run(addr); err != nil {
			zlog.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server")
}
