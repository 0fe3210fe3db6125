package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m04kA/SMC-SalonWeb/internal/api"
	"github.com/m04kA/SMC-SalonWeb/internal/api/middleware"
	"github.com/m04kA/SMC-SalonWeb/internal/config"
	"github.com/m04kA/SMC-SalonWeb/internal/session"
	"github.com/m04kA/SMC-SalonWeb/pkg/logger"
	"github.com/m04kA/SMC-SalonWeb/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting salon-web...")
	log.Info("Configuration loaded (api=%s, timeout=%ds)", cfg.API.BaseURL, cfg.API.Timeout)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Реестр браузерных сессий: у каждой свой клиент API и хранилище состояния
	sessionTTL := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	sessions := session.NewManager(session.Options{
		APIBaseURL: cfg.API.BaseURL,
		APITimeout: time.Duration(cfg.API.Timeout) * time.Second,
		TTL:        sessionTTL,
	}, metricsCollector, log)

	deps := api.Deps{
		Sessions: sessions,
		Cookie: middleware.CookieOptions{
			Name:   cfg.Session.CookieName,
			Secure: cfg.Session.Secure,
			TTL:    sessionTTL,
		},
		Clock:  time.Now,
		Logger: log,
	}

	if cfg.Metrics.Enabled {
		deps.Metrics = metricsCollector
		deps.MetricsPath = cfg.Metrics.Path
		deps.MetricsHTTP = metricsCollector.Handler()
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	if cfg.RateLimit.Enabled {
		limiter, err := middleware.NewRateLimiter(middleware.RateLimitOptions{
			RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
			Burst:             cfg.RateLimit.Burst,
			TrustedProxies:    cfg.RateLimit.TrustedProxies,
			IdleTTL:           time.Duration(cfg.RateLimit.IdleMinutes) * time.Minute,
		}, log)
		if err != nil {
			log.Fatal("Failed to initialize rate limiter: %v", err)
		}
		deps.RateLimiter = limiter
		log.Info("Rate limit enabled: %d req/min, burst %d, trusted proxies %v",
			cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, cfg.RateLimit.TrustedProxies)
	}

	r := api.NewRouter(deps)

	// Чистка простаивающих сессий и лимитеров
	sweepInterval := time.Duration(cfg.Session.SweepSeconds) * time.Second
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	go sessions.Run(sweepCtx, sweepInterval)
	if deps.RateLimiter != nil {
		go deps.RateLimiter.Run(sweepCtx, sweepInterval)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	stopSweep()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully (sessions dropped: %d)", sessions.Count())
}
