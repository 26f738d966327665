package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"career-match/internal/catalog"
	"career-match/internal/config"
	"career-match/internal/db"
	apihttp "career-match/internal/http"
	"career-match/internal/logger"
	"career-match/internal/metrics"
	"career-match/internal/questionnaire"
	"career-match/internal/repository"
	"career-match/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, err := logger.New(cfg.LogJSON, cfg.LogDebug)
	if err != nil {
		log.Fatalf("creating a logger: %v", err)
	}
	defer logger.Sync()

	metrics.Init()

	cat, err := catalog.Open(cfg.CatalogPath)
	if err != nil {
		logger.Fatal("load career catalog", zap.Error(err))
	}
	engine, err := service.NewMatchEngine(cat, cfg.MatchWeights(), cfg.MatchThreshold)
	if err != nil {
		logger.Fatal("match engine config", zap.Error(err))
	}
	bank := questionnaire.New()

	var assessments repository.AssessmentRepository = repository.NewMemoryAssessmentRepository()
	if cfg.DatabaseURL != "" {
		pool, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		if err := repository.RunMigrations(pool, logger); err != nil {
			logger.Fatal("db migrations", zap.Error(err))
		}
		assessments = repository.NewPgAssessmentRepository(pool, bank)
	} else {
		logger.Warn("DATABASE_URL not configured, assessments are kept in memory")
	}

	var (
		cache       service.ResultCache
		limiter     service.SubmissionLimiter
		redisClient *redis.Client
	)
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			cache = service.NewRedisResultCache(redisClient)
			limiter = service.NewRedisSubmissionLimiter(redisClient, cfg.SubmissionWindow, cfg.SubmissionMax)
		}
		cancel()
	}
	if cache == nil {
		cache = service.NewMemoryResultCache()
	}
	if limiter == nil {
		limiter = service.NewMemorySubmissionLimiter(cfg.SubmissionWindow, cfg.SubmissionMax)
	}

	tokens := service.NewTokenService(cfg.JWTSecret, 0)
	if !tokens.Enabled() {
		logger.Warn("jwt secret not configured, assessments endpoints are anonymous")
	}

	assessmentSvc := service.NewAssessmentService(logger, bank, engine, assessments, cache, service.AssessmentOptions{
		TopN:     cfg.TopN,
		CacheTTL: cfg.CacheTTL,
	})

	router := apihttp.NewRouter(logger, tokens,
		apihttp.NewAssessmentHandler(logger, assessmentSvc, limiter),
		apihttp.NewCareerHandler(logger, cat),
		apihttp.NewQuestionHandler(logger, bank),
	)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server",
		zap.String("port", cfg.HTTPPort),
		zap.Int("careers", cat.Len()),
		zap.Int("questions", bank.Len()),
	)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
