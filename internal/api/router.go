package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/inkwell/publishing-api/docs"
	"github.com/inkwell/publishing-api/internal/api/handler"
	"github.com/inkwell/publishing-api/internal/api/middleware"
	"github.com/inkwell/publishing-api/internal/core/auth"
	"github.com/inkwell/publishing-api/internal/core/ports"
	"github.com/inkwell/publishing-api/internal/core/service"
	mongodb "github.com/inkwell/publishing-api/internal/infrastructure/db/mongo"
	redisdb "github.com/inkwell/publishing-api/internal/infrastructure/db/redis"
	"github.com/inkwell/publishing-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	activity ports.ActivityRecorder,
	chatClient ports.ChatClient,
	cfg *config.Config,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("publishing"))

	// --- Dependencies ---
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	chatRepo := mongodb.NewChatHistoryRepository(db)
	postCache := redisdb.NewPostCache(rdb)

	userService := service.NewUserService(userRepo, tokens, activity, log)
	postService := service.NewPostService(postRepo, commentRepo, postCache, activity, log)
	commentService := service.NewCommentService(commentRepo, postRepo, activity, log)
	chatService := service.NewChatService(chatClient, chatRepo, log)

	userHandler := handler.NewUserHandler(userService)
	postHandler := handler.NewPostHandler(postService)
	commentHandler := handler.NewCommentHandler(commentService)
	chatHandler := handler.NewChatHandler(chatService)

	authRequired := middleware.Auth(tokens)

	// --- API routes ---
	api := e.Group("/api")

	api.POST("/users/register", userHandler.Register)
	api.POST("/users/login", userHandler.Login)
	api.GET("/users/:id", userHandler.GetProfile)
	api.PATCH("/users/:id", userHandler.UpdateProfile, authRequired)

	api.POST("/posts", postHandler.Create, authRequired)
	api.GET("/posts", postHandler.List)
	api.GET("/posts/:id", postHandler.Get)
	api.PATCH("/posts/:id", postHandler.Update, authRequired)
	api.DELETE("/posts/:id", postHandler.Delete, authRequired)

	api.POST("/posts/:id/comments", commentHandler.Create, authRequired)
	api.GET("/posts/:id/comments", commentHandler.ListForPost)
	api.DELETE("/comments/:id", commentHandler.Delete, authRequired)

	api.POST("/chat/ask", chatHandler.Ask)
	api.GET("/chat/history", chatHandler.History)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Observability / docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
