package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stemsi/quizmaster-backend/internal/config"
	"github.com/stemsi/quizmaster-backend/internal/handler"
	"github.com/stemsi/quizmaster-backend/internal/middleware"
	"github.com/stemsi/quizmaster-backend/internal/response"
)

// listCacheSeconds is how long clients may reuse read-only list responses.
const listCacheSeconds = 5

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Quiz    *handler.QuizHandler
	Session *handler.SessionHandler
	Attempt *handler.AttemptHandler
	Stats   *handler.StatsHandler
	System  *handler.SystemHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	handlers *Handlers,
	uploadLimiter *middleware.RateLimiter,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// Multipart parts beyond this are spooled to disk by net/http.
	router.MaxMultipartMemory = cfg.MaxUploadBytes

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "Retry-After"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	router.Use(middleware.Brotli())

	router.GET("/health", handlers.System.Health)

	api := router.Group("/api/v1")

	// ─── 1. Quizzes ────────────────────────────────────────────────────
	quizzes := api.Group("/quizzes")
	{
		quizzes.POST("", uploadLimiter.Middleware(), handlers.Quiz.UploadQuiz)
		quizzes.POST("/preview", uploadLimiter.Middleware(), handlers.Quiz.PreviewQuiz)
		quizzes.GET("", middleware.CacheControl(listCacheSeconds), handlers.Quiz.ListQuizzes)
		quizzes.GET("/:quiz_id", handlers.Quiz.GetQuiz)
		quizzes.DELETE("/:quiz_id", handlers.Quiz.DeleteQuiz)

		// ─── 2. Sessions & Attempts per quiz ───────────────────────────
		quizzes.POST("/:quiz_id/sessions", middleware.NoStore(), handlers.Session.PrepareSession)
		quizzes.POST("/:quiz_id/attempts", handlers.Attempt.SubmitAttempt)
		quizzes.GET("/:quiz_id/attempts", handlers.Attempt.ListQuizAttempts)
	}

	// ─── 3. Session Handoff ────────────────────────────────────────────
	api.GET("/sessions/:session_id", middleware.NoStore(), handlers.Session.TakeSession)

	// ─── 4. Attempt History ────────────────────────────────────────────
	attempts := api.Group("/attempts")
	{
		attempts.GET("", handlers.Attempt.ListRecentAttempts)
		attempts.GET("/:attempt_id", handlers.Attempt.GetAttempt)
		attempts.GET("/:attempt_id/retry", handlers.Attempt.RetryAttempt)
	}

	// ─── 5. Stats & System ─────────────────────────────────────────────
	api.GET("/stats", handlers.Stats.GetStats)
	api.GET("/system/metrics", middleware.NoStore(), handlers.System.Metrics)

	return router
}
