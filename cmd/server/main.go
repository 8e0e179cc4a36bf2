package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/taskboard/taskboard-api/internal/config"
	"github.com/taskboard/taskboard-api/internal/database"
	"github.com/taskboard/taskboard-api/internal/handlers"
	"github.com/taskboard/taskboard-api/internal/middleware"
	"github.com/taskboard/taskboard-api/internal/policy"
	"github.com/taskboard/taskboard-api/internal/repository"
	"github.com/taskboard/taskboard-api/internal/services"
)

func main() {
	logger := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", "taskboard-api").
		Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := database.Connect(cfg); err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := database.Migrate(); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}

	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	logRepo := repository.NewActivityLogRepository(db)

	pol := policy.New(boardRepo)

	tokenService, err := services.NewTokenService(cfg.JWTSecret)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialise token service")
	}
	authService := services.NewAuthService(userRepo, cfg.AllowAdminRegistration)
	userService := services.NewUserService(userRepo, pol)
	boardService := services.NewBoardService(boardRepo)
	taskService := services.NewTaskService(taskRepo, logRepo, pol, logger)
	suggestionService := services.NewSuggestionService(cfg.OpenAIAPIKey)

	authHandler := handlers.NewAuthHandler(authService, tokenService)
	userHandler := handlers.NewUserHandler(userService)
	boardHandler := handlers.NewBoardHandler(boardService)
	taskHandler := handlers.NewTaskHandler(taskService, suggestionService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Metrics())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	requireAuth := middleware.RequireAuth(tokenService, userRepo)
	requireAdmin := middleware.RequireAdmin(pol)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		protected := api.Group("")
		protected.Use(requireAuth)
		{
			protected.GET("/me", authHandler.Me)

			users := protected.Group("/users")
			users.Use(requireAdmin)
			{
				users.GET("", userHandler.ListUsers)
				users.POST("", userHandler.CreateUser)
				users.DELETE("/:id", userHandler.DeleteUser)
			}

			boards := protected.Group("/boards")
			{
				boards.GET("", boardHandler.ListBoards)
				boards.POST("", requireAdmin, boardHandler.CreateBoard)
				boards.PUT("/:id", requireAdmin, boardHandler.RenameBoard)
				boards.DELETE("/:id", requireAdmin, boardHandler.DeleteBoard)
				boards.PUT("/:id/members", requireAdmin, boardHandler.ReplaceMembers)

				boards.POST("/:id/tasks", taskHandler.CreateTask)
				boards.GET("/:id/tasks", taskHandler.ListTasks)
			}

			tasks := protected.Group("/tasks")
			{
				tasks.PUT("/:taskId", taskHandler.UpdateTask)
				tasks.DELETE("/:taskId", requireAdmin, taskHandler.DeleteTask)
				tasks.POST("/suggest-title", taskHandler.SuggestTitle)
			}
		}
	}

	logger.Info().Str("addr", cfg.HTTPAddress()).Msg("server starting")
	if err := r.Run(cfg.HTTPAddress()); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
