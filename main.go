package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"nutriplan/api"
	"nutriplan/config"
	"nutriplan/database"
	"nutriplan/middleware"
	"nutriplan/repository"
	"nutriplan/services"
)

func main() {
	// Load application configuration
	config.LoadConfig()
	cfg := config.AppConfig

	db, err := database.Init(cfg.Database.DSN)
	if err != nil {
		log.Fatalf("FATAL: [Main] Failed to initialize database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("FATAL: [Main] Failed to auto-migrate database: %v", err)
	}

	// Initialize Repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	planRepo := repository.NewMealPlanRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	newsRepo := repository.NewNewsRepository(db)
	log.Println("INFO: [Main] Repositories initialized.")

	// Initialize Services
	authService := services.NewAuthService(userRepo, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	profileService := services.NewProfileService(profileRepo)
	mealPlanService := services.NewMealPlanService(planRepo, profileRepo)
	taskService := services.NewTaskService(taskRepo)
	newsService := services.NewNewsService(newsRepo, cfg.News.DefaultLimit)
	progressService := services.NewProgressService(progressRepo, planRepo, taskRepo)
	log.Println("INFO: [Main] Services initialized.")

	if cfg.News.SeedOnStart {
		if n, err := newsService.SeedIfEmpty(context.Background()); err != nil {
			log.Printf("WARN: [Main] Failed to seed health news: %v", err)
		} else if n > 0 {
			log.Printf("INFO: [Main] Seeded %d health news articles.", n)
		}
	}

	if cfg.Scheduler.PlanRefreshCron != "" {
		loc, err := time.LoadLocation(cfg.Scheduler.Timezone)
		if err != nil {
			log.Printf("WARN: [Main] Unknown scheduler timezone '%s', using UTC: %v", cfg.Scheduler.Timezone, err)
			loc = time.UTC
		}
		scheduler := services.NewSchedulerService(loc)
		if _, err := scheduler.SchedulePlanRefresh(cfg.Scheduler.PlanRefreshCron, mealPlanService); err != nil {
			log.Fatalf("FATAL: [Main] Failed to schedule meal plan refresh: %v", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	} else {
		log.Println("INFO: [Main] Meal plan refresh job disabled.")
	}

	apiHandler := api.NewAPIHandler(authService, profileService, mealPlanService, taskService, newsService, progressService)

	// Create Gin engine
	r := gin.Default()
	r.SetTrustedProxies(nil)

	// Register middlewares
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Cors(cfg.Cors.AllowedOrigin))
	log.Println("INFO: [Main] Middlewares registered.")

	api.RegisterRoutes(r, apiHandler, middleware.Auth(cfg.Auth.JWTSecret))
	log.Println("INFO: [Main] Routes registered.")

	serverPort := ":" + cfg.Server.Port
	if cfg.Server.Port == "" {
		log.Println("WARN: [Main] Server port not configured, using default :8080.")
		serverPort = ":8080"
	}
	log.Printf("INFO: [Main] Starting server on port %s", serverPort)
	if err := r.Run(serverPort); err != nil {
		log.Fatalf("FATAL: [Main] Server failed to start: %v", err)
	}
}
