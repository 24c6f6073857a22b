package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/spf13/afero"
	"github.com/yukikurage/internship-management-api/internal/config"
	"github.com/yukikurage/internship-management-api/internal/constants"
	"github.com/yukikurage/internship-management-api/internal/database"
	"github.com/yukikurage/internship-management-api/internal/handlers"
	"github.com/yukikurage/internship-management-api/internal/logger"
	"github.com/yukikurage/internship-management-api/internal/middleware"
	"github.com/yukikurage/internship-management-api/internal/repository"
	"github.com/yukikurage/internship-management-api/internal/services"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run migrations
	if err := database.Migrate(db, zlog); err != nil {
		zlog.Fatal("failed to run migrations", zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	encadreurRepo := repository.NewEncadreurRepository(db)
	internRepo := repository.NewInternRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// AI suggestions are optional
	var suggester services.TaskSuggester
	if cfg.OpenAIAPIKey != "" {
		suggester = services.NewAIService(cfg.OpenAIAPIKey)
	} else {
		zlog.Info("OPENAI_API_KEY not set, task suggestions disabled")
	}

	// Services
	activityService := services.NewActivityService(repository.NewActivityRepository(db), zlog)
	userService := services.NewUserService(userRepo, encadreurRepo, internRepo, afero.NewOsFs(), cfg.Upload, zlog)
	projectService := services.NewProjectService(projectRepo, encadreurRepo, internRepo, activityService, zlog)
	taskService := services.NewTaskService(taskRepo, projectRepo, activityService, suggester, zlog)
	authService := services.NewAuthService(userRepo, activityService, zlog)

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(zlog))

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // username (empty for default user)
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret),
	)
	if err != nil {
		zlog.Fatal("failed to create Redis store", zap.String("addr", redisAddr), zap.Error(err))
	}
	isProduction := cfg.GinMode == gin.ReleaseMode
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Uploaded avatars and CVs
	r.Static("/uploads", cfg.Upload.Root)

	handlers.RegisterRoutes(r, handlers.Set{
		Auth:     handlers.NewAuthHandler(authService, userService, zlog),
		Users:    handlers.NewUserHandler(userService, zlog),
		Projects: handlers.NewProjectHandler(projectService, zlog),
		Tasks:    handlers.NewTaskHandler(taskService, zlog),
		Activity: handlers.NewActivityHandler(activityService, zlog),
	})

	// Start server
	zlog.Info("server starting", zap.String("addr", cfg.HTTPAddr))
	if err := r.Run(cfg.HTTPAddr); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}
