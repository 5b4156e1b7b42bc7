package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"jobport/internal/app"
	"jobport/internal/config"
	"jobport/internal/database"
	apphttp "jobport/internal/http"
	"jobport/internal/http/handlers"
	"jobport/internal/http/metrics"
	httpmw "jobport/internal/http/middleware"
	"jobport/internal/http/response"
	"jobport/internal/mail"
	"jobport/internal/observability"
	"jobport/internal/repository/postgres"
	"jobport/internal/security"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLogger()
	db := database.NewPostgres(database.PostgresConfig{
		DSN:             cfg.PostgresDSN,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxIdle:     cfg.DBConnMaxIdle,
		ConnMaxLifetime: cfg.DBConnMaxLife,
	})
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	jobRepo := postgres.NewJobRepository(db)
	applicationRepo := postgres.NewApplicationRepository(db)
	companyRepo := postgres.NewCompanyRepository(db)
	resetTokenRepo := postgres.NewResetTokenRepository(db)
	notificationRepo := postgres.NewNotificationRepository(db)
	analyticsRepo := postgres.NewAnalyticsRepository(db)

	jwtProvider := security.NewJWTProvider(cfg.JWTSecret)

	var mailer mail.Mailer
	if cfg.SMTPAddr != "" {
		mailer = mail.NewSMTPMailer(cfg.SMTPAddr, cfg.SMTPFrom, cfg.SMTPUsername, cfg.SMTPPassword)
	} else {
		mailer = mail.NewLogMailer()
	}

	var limiter httpmw.Limiter
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		limiter = httpmw.NewRedisLimiter(redis.NewClient(opts))
	} else {
		limiter = httpmw.NewRateLimiter()
	}

	notificationService := app.NewNotificationService(notificationRepo, logger)
	authService := app.NewAuthService(userRepo, resetTokenRepo, analyticsRepo, jwtProvider, mailer, logger, cfg.AccessTokenTTL, cfg.ResetTokenTTL)
	jobService := app.NewJobService(jobRepo, analyticsRepo)
	applicationService := app.NewApplicationService(applicationRepo, jobRepo, notificationService, analyticsRepo)
	companyService := app.NewCompanyService(companyRepo, userRepo, analyticsRepo)
	statsService := app.NewStatsService(userRepo, jobRepo, applicationRepo)

	authHandler := handlers.NewAuthHandler(authService, limiter)
	jobHandler := handlers.NewJobHandler(jobService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	companyHandler := handlers.NewCompanyHandler(companyService)
	statsHandler := handlers.NewStatsHandler(statsService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	authMiddleware := httpmw.NewAuthMiddleware(jwtProvider)

	collector := metrics.NewCollector()
	response.SetErrorCollector(collector)

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		AuthHandler:         authHandler,
		JobHandler:          jobHandler,
		ApplicationHandler:  applicationHandler,
		CompanyHandler:      companyHandler,
		StatsHandler:        statsHandler,
		NotificationHandler: notificationHandler,
		MetricsHandler:      handlers.NewMetricsHandler(collector),
		AuthMiddleware:      authMiddleware,
		Metrics:             collector,
		RequestTimeout:      cfg.RequestTimeout,
	})
	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	cleanupDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-cleanupDone:
				return
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				if err := resetTokenRepo.DeleteExpired(ctx, time.Now().UTC()); err != nil {
					logger.Error("failed to prune expired reset tokens: " + err.Error())
				}
				cancel()
			}
		}
	}()

	go func() {
		logger.Info("API started on :" + cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	close(cleanupDone)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
