package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	appsvc "jobconnect/internal/app"
	"jobconnect/internal/bootstrap"
	"jobconnect/internal/cache"
	"jobconnect/internal/platform/rabbitmq"
	"jobconnect/internal/repository"
	"jobconnect/internal/transport/http/handler"
	"jobconnect/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), cors.Default(), middleware.ProcessTime())

	// Uploaded documents and profile images live under the media root and
	// are referenced by relative path in the database.
	router.Static(app.Config.Media.URLPrefix, app.Config.Media.Root)

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/healthz", healthHandler.Check)

	userRepo := repository.NewUserRepository(app.MySQL)
	categoryRepo := repository.NewJobCategoryRepository(app.MySQL)
	jobRepo := repository.NewJobRepository(app.MySQL)

	tokenCache := cache.NewTokenCache(
		app.Redis,
		time.Duration(app.Config.Redis.TokenTTLSeconds)*time.Second,
	)
	eventPublisher := rabbitmq.NewEventPublisher(app.MQConn, app.Config.RabbitMQ.EventQueue)

	authService := appsvc.NewAuthService(userRepo, tokenCache)
	jobService := appsvc.NewJobService(jobRepo, categoryRepo, eventPublisher)
	categoryService := appsvc.NewCategoryService(categoryRepo)
	userService := appsvc.NewUserService(userRepo)

	media := handler.Media{
		BaseURL:   app.Config.App.PublicBaseURL,
		URLPrefix: app.Config.Media.URLPrefix,
	}

	authHandler := handler.NewAuthHandler(authService)
	jobHandler := handler.NewJobHandler(jobService, media)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	userHandler := handler.NewUserHandler(userService, jobService, media)

	requireAuth := middleware.BearerAuth(authService)

	v1 := router.Group("/api/v1")
	v1.POST("/token", authHandler.IssueToken)
	v1.PATCH("/token", requireAuth, authHandler.RefreshToken)

	v1.GET("/jobs", jobHandler.List)
	v1.GET("/job/:id", jobHandler.Details)
	v1.POST("/job", requireAuth, jobHandler.Create)
	v1.PATCH("/job", requireAuth, jobHandler.Update)
	v1.DELETE("/job/:id", requireAuth, jobHandler.Delete)
	v1.GET("/job/appliers/:id", requireAuth, jobHandler.Appliers)

	v1.GET("/categories", categoryHandler.List)
	v1.GET("/category/:id", categoryHandler.Details)

	v1.GET("/company/:id", userHandler.Company)

	userGroup := v1.Group("/user")
	userGroup.Use(requireAuth)
	userGroup.GET("/details", userHandler.CurrentUser)
	userGroup.POST("/apply/:id", userHandler.Apply)
	userGroup.DELETE("/apply/:id", userHandler.Unapply)
	userGroup.GET("/applied", userHandler.Applied)

	return router
}
