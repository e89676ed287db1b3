package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/gridhire/gridhire/config"
	"github.com/gridhire/gridhire/internal/api/handlers"
	"github.com/gridhire/gridhire/internal/api/middleware"
	"github.com/gridhire/gridhire/internal/api/routes"
	"github.com/gridhire/gridhire/internal/cache"
	"github.com/gridhire/gridhire/internal/evaluator"
	"github.com/gridhire/gridhire/internal/interview"
	"github.com/gridhire/gridhire/internal/logger"
	"github.com/gridhire/gridhire/internal/metrics"
	"github.com/gridhire/gridhire/internal/providers/llm"
	"github.com/gridhire/gridhire/internal/questions"
	mongorepo "github.com/gridhire/gridhire/internal/repositories/mongo"
	"github.com/gridhire/gridhire/internal/services"
	"github.com/gridhire/gridhire/internal/utils"
)

func newLLMProvider(ctx context.Context) (llm.Provider, error) {
	switch os.Getenv("LLM_PROVIDER") {
	case "", "openai":
		return llm.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_MODEL"))
	case "vertex":
		return llm.NewVertexGemini(ctx, os.Getenv("GCP_PROJECT_ID"), os.Getenv("GCP_LOCATION"), os.Getenv("GEMINI_MODEL"))
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", os.Getenv("LLM_PROVIDER"))
	}
}

func main() {
	_ = godotenv.Load()

	applog := logger.New()

	// Init MongoDB
	if err := config.InitMongo(); err != nil {
		log.Fatalf("MongoDB init error: %v", err)
	}
	fmt.Println("MongoDB connected")

	if err := config.EnsureMongoIndexes(); err != nil {
		applog.WithError(err).Warn("mongo index setup failed")
	}

	// Init Redis
	if err := config.InitRedis(); err != nil {
		log.Fatalf("Redis init error: %v", err)
	}
	fmt.Println("Redis connected")

	ctx := context.Background()

	provider, err := newLLMProvider(ctx)
	if err != nil {
		log.Fatalf("LLM provider init error: %v", err)
	}
	defer provider.Close()
	llmClient := llm.WithMetrics(provider)

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	adminUser := os.Getenv("ADMIN_USERNAME")
	if adminUser == "" {
		adminUser = "admin"
	}
	adminPass := os.Getenv("ADMIN_PASSWORD")
	if adminPass == "" {
		adminPass = "password"
	}
	passHash, err := utils.HashPassword(adminPass)
	if err != nil {
		log.Fatalf("admin password hash error: %v", err)
	}

	db := config.MongoDatabase()
	transcripts := mongorepo.NewTranscriptRepo(db)
	reports := mongorepo.NewReportRepo(db)
	store := cache.NewRedisCache(config.RedisClient)

	registry := interview.NewRegistry()
	metrics.RegisterSessionGauge(func() float64 { return float64(registry.Len()) })

	interviewSvc := services.NewInterviewService(
		registry,
		questions.NewGenerator(llmClient, applog),
		evaluator.New(llmClient, applog),
		transcripts,
		reports,
		store,
		applog,
	)
	adminSvc := services.NewAdminService(services.AdminCredentials{
		Username:     adminUser,
		PasswordHash: passHash,
		JWTSecret:    []byte(jwtSecret),
	}, reports, store, applog)

	// Start Gin server
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(applog))

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AddAllowHeaders("Authorization")
	r.Use(cors.New(corsCfg))

	routes.RegisterRoutes(r, routes.Deps{
		Interview: handlers.NewInterviewHandler(interviewSvc),
		Admin:     handlers.NewAdminHandler(adminSvc),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
