// Package main runs the daily trivia HTTP server with graceful shutdown.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aura-trivia/backend/config"
	"github.com/aura-trivia/backend/internal/middleware"
	"github.com/aura-trivia/backend/internal/provider"
	"github.com/aura-trivia/backend/internal/quiz"
	"github.com/aura-trivia/backend/pkg/response"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	if cfg.Provider.APIKey == "" {
		logger.Warn("PROVIDER_API_KEY is empty; question refreshes will fail until it is set")
	}

	providerClient := provider.NewClient(provider.Config{
		APIURL:    cfg.Provider.APIURL,
		APIKey:    cfg.Provider.APIKey,
		Model:     cfg.Provider.Model,
		Timeout:   cfg.Provider.Timeout(),
		BatchSize: cfg.Provider.BatchSize,
		Topic:     cfg.Provider.Topic,
	}, logger)

	cache := quiz.NewCache(providerClient, cfg.Quiz.TTL(), logger, time.Now)
	quizHandler := quiz.NewHandler(cache, cfg.Quiz.SampleSize, logger, time.Now)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))

	// Health
	router.GET("/health", func(c *gin.Context) { response.OK(c, gin.H{"status": "ok"}) })

	// Landing page
	router.StaticFile("/", filepath.Join(cfg.Server.StaticDir, "index.html"))

	// Quiz API (public, read-only)
	api := router.Group("/api")
	{
		api.GET("/quiz", quizHandler.GetQuiz)
		api.GET("/answer-key", quizHandler.GetAnswerKey)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}
