package main

import (
	"log"
	"net/http"

	_ "jobboard/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"jobboard/internal/auth"
	"jobboard/internal/cache"
	"jobboard/internal/config"
	"jobboard/internal/db"
	"jobboard/internal/handler"
	"jobboard/internal/model"
	"jobboard/internal/repository"
	"jobboard/internal/router"
	"jobboard/internal/service"
)

// @title Job Board API
// @version 1.0
// @description Job board API with role-based access control, application workflow and admin reporting.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Employer{},
		&model.Job{},
		&model.Candidate{},
		&model.Resume{},
		&model.Application{},
		&model.Notification{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	employerRepo := repository.NewEmployerRepository(gormDB)
	jobRepo := repository.NewJobRepository(gormDB)
	candidateRepo := repository.NewCandidateRepository(gormDB)
	resumeRepo := repository.NewResumeRepository(gormDB)
	applicationRepo := repository.NewApplicationRepository(gormDB)
	notificationRepo := repository.NewNotificationRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	jobService := service.NewJobService(jobRepo, cacheClient)
	employerService := service.NewEmployerService(employerRepo)
	candidateService := service.NewCandidateService(candidateRepo)
	applicationService := service.NewApplicationService(applicationRepo, jobRepo, candidateRepo, resumeRepo, userRepo, notificationRepo)
	defer applicationService.Close()
	notificationService := service.NewNotificationService(notificationRepo)
	reportService := service.NewReportService(jobRepo, applicationRepo, candidateRepo, employerRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	jobHandler := handler.NewJobHandler(jobService)
	applicationHandler := handler.NewApplicationHandler(applicationService)
	candidateHandler := handler.NewCandidateHandler(candidateService)
	employerHandler := handler.NewEmployerHandler(employerService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	adminHandler := handler.NewAdminHandler(reportService)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		userRepo,
		authHandler,
		jobHandler,
		applicationHandler,
		candidateHandler,
		employerHandler,
		notificationHandler,
		adminHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
