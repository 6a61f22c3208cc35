package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"

	"github.com/dshalev/teamtask/internal/config"
	"github.com/dshalev/teamtask/internal/constants"
	"github.com/dshalev/teamtask/internal/database"
	"github.com/dshalev/teamtask/internal/handlers"
	"github.com/dshalev/teamtask/internal/middleware"
	"github.com/dshalev/teamtask/internal/repository"
	"github.com/dshalev/teamtask/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()
	r.LoadHTMLGlob("web/templates/*.html")

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // username (empty for default user)
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	profileService := services.NewProfileService(userRepo, teamRepo)
	taskService := services.NewTaskService(taskRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(profileService)
	homeHandler := handlers.NewHomeHandler(taskService)
	taskHandler := handlers.NewTaskHandler(taskService)

	// Public routes
	r.GET("/", middleware.ResolveUser(userRepo), homeHandler.Home)
	r.GET("/register", authHandler.ShowRegister)
	r.POST("/register", authHandler.Register)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)

	// Session routes
	authed := r.Group("", middleware.RequireAuth(userRepo))
	{
		authed.GET("/logout", authHandler.Logout)

		profile := authed.Group("/profile")
		{
			profile.GET("", profileHandler.Detail)
			profile.GET("/setup", profileHandler.ShowSetup)
			profile.POST("/setup", profileHandler.Setup)
			profile.GET("/edit", profileHandler.ShowEdit)
			profile.POST("/edit", profileHandler.Edit)
		}

		// The task area additionally requires a completed profile
		tasks := authed.Group("/tasks", middleware.RequireTeam())
		{
			tasks.GET("", taskHandler.List)
			tasks.GET("/create", taskHandler.ShowCreate)
			tasks.POST("/create", taskHandler.Create)
			tasks.GET("/:id", taskHandler.Detail)
			tasks.GET("/:id/edit", taskHandler.ShowEdit)
			tasks.POST("/:id/edit", taskHandler.Edit)
			tasks.GET("/:id/status", taskHandler.ShowStatus)
			tasks.POST("/:id/status", taskHandler.UpdateStatus)
			tasks.GET("/:id/associate", taskHandler.Associate)
			tasks.GET("/:id/delete", taskHandler.ShowDelete)
			tasks.POST("/:id/delete", taskHandler.Delete)
		}
	}

	// Start server
	log.Printf("Server starting on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
