package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/collabrec/internal/config"
	dbRedis "github.com/kailas-cloud/collabrec/internal/db/redis"
	logpkg "github.com/kailas-cloud/collabrec/internal/logger"
	"github.com/kailas-cloud/collabrec/internal/metrics"
	apprepo "github.com/kailas-cloud/collabrec/internal/repository/application"
	projectrepo "github.com/kailas-cloud/collabrec/internal/repository/project"
	userrepo "github.com/kailas-cloud/collabrec/internal/repository/user"
	chiTransport "github.com/kailas-cloud/collabrec/internal/transport/chi"
	"github.com/kailas-cloud/collabrec/internal/usecase/corpus"
	healthuc "github.com/kailas-cloud/collabrec/internal/usecase/health"
	"github.com/kailas-cloud/collabrec/internal/usecase/recommend"
	"github.com/kailas-cloud/collabrec/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting collabrec API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("db_addrs", cfg.Database.Addrs),
		zap.Bool("jwt_auth", cfg.Auth.JWTSecret != ""),
	)

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
		DB:       cfg.Database.DB,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	m := metrics.NewRecommendation()
	if err := m.Register(prometheus.DefaultRegisterer); err != nil {
		logger.Fatal("Failed to register metrics", zap.Error(err))
	}
	httpMetrics := metrics.NewHTTP()
	if err := httpMetrics.Register(prometheus.DefaultRegisterer); err != nil {
		logger.Fatal("Failed to register HTTP metrics", zap.Error(err))
	}

	prefix := cfg.Storage.KeyPrefix
	projects := projectrepo.New(store, prefix, m.SkippedRecords)
	users := userrepo.New(store, prefix, m.SkippedRecords)
	apps := apprepo.New(store, prefix, m.SkippedRecords)

	rc := cfg.Recommendation
	holder := corpus.NewHolder()
	refresher := corpus.NewRefresher(
		corpus.NewLoader(projects, users, apps),
		holder,
		corpus.RefresherConfig{
			Interval:         rc.RefreshInterval(),
			RebuildTimeout:   time.Duration(rc.RebuildTimeoutSec) * time.Second,
			FailureThreshold: rc.BreakerFailures,
			BreakerTimeout:   time.Duration(rc.BreakerTimeoutSec) * time.Second,
			RetryInterval:    time.Duration(rc.InitialRetrySec) * time.Second,
		},
		m, logger.Named("corpus"),
	)
	go refresher.Run(ctx)

	recommendSvc := recommend.New(holder, users, projects, recommend.Config{
		TechStackWeight: rc.TechStackWeight,
		KeywordWeight:   rc.KeywordWeight,
	}, m)
	healthSvc := healthuc.New(store, holder)

	server := chiTransport.NewServer(recommendSvc, refresher, holder, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.CORS(cfg.CORS.AllowedOrigins))
	r.Use(chiTransport.AuthMiddleware(cfg.Auth.JWTSecret, cfg.Auth.Issuer))
	r.Use(httpMetrics.Middleware())
	server.Routes(r, chiTransport.RateLimit(cfg.RateLimit.RequestsPerMinute))

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.String("path", r.URL.Path),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(chiTransport.ErrorResponse{
						Code:    chiTransport.ErrorResponseCodeInternalError,
						Message: "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line, one per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
