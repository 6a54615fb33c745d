package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/stackit/community-api/internal/api/handler"
	"github.com/stackit/community-api/internal/api/middleware"
	"github.com/stackit/community-api/internal/auth"
	"github.com/stackit/community-api/internal/core/ports"
	"github.com/stackit/community-api/internal/core/service"
	"github.com/stackit/community-api/internal/infrastructure/db/postgres"
	redisdb "github.com/stackit/community-api/internal/infrastructure/db/redis"
	"github.com/stackit/community-api/internal/infrastructure/queue"
)

// RouterDeps carries the external resources the router wires together.
// Redis is optional; when nil the question cache is disabled and listing
// always hits Postgres.
type RouterDeps struct {
	Pool    *pgxpool.Pool
	Redis   *goredis.Client
	Codec   *auth.Codec
	Workers int
	Logger  zerolog.Logger
}

// NewRouter builds the Echo instance with all routes registered, and the
// notification dispatcher backing async fan-out. The caller owns starting
// the dispatcher and the server.
func NewRouter(deps RouterDeps) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("stackit"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Repositories ---
	userRepo := postgres.NewUserRepository(deps.Pool)
	questionRepo := postgres.NewQuestionRepository(deps.Pool)
	answerRepo := postgres.NewAnswerRepository(deps.Pool)
	notificationRepo := postgres.NewNotificationRepository(deps.Pool)

	var cache ports.QuestionCache
	if deps.Redis != nil {
		cache = redisdb.NewQuestionCache(deps.Redis, deps.Logger)
	}

	// --- Services ---
	notificationService := service.NewNotificationService(notificationRepo, deps.Logger)
	dispatcher := queue.NewDispatcher(deps.Workers, notificationService, deps.Logger)

	authService := service.NewAuthService(userRepo, deps.Codec)
	questionService := service.NewQuestionService(questionRepo, cache, deps.Logger)
	answerService := service.NewAnswerService(answerRepo, questionRepo, userRepo, dispatcher, cache, deps.Logger)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	questionHandler := handler.NewQuestionHandler(questionService)
	answerHandler := handler.NewAnswerHandler(answerService)
	voteHandler := handler.NewVoteHandler(answerService)
	notificationHandler := handler.NewNotificationHandler(notificationService)

	authRequired := middleware.Auth(deps.Codec)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Questions ---
	e.GET("/questions", questionHandler.List)
	e.POST("/questions", questionHandler.Create, authRequired)
	e.PUT("/questions", questionHandler.Update, authRequired)
	e.DELETE("/questions", questionHandler.Delete, authRequired)

	// --- Answers ---
	e.GET("/answers", answerHandler.List, authRequired)
	e.POST("/answers", answerHandler.Create, authRequired)
	e.PUT("/answers", answerHandler.Update, authRequired)
	e.DELETE("/answers", answerHandler.Delete, authRequired)

	// --- Votes ---
	e.POST("/votes", voteHandler.Cast, authRequired)

	// --- Notifications ---
	e.GET("/notifications", notificationHandler.List, authRequired)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Pool, deps.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, dispatcher
}
