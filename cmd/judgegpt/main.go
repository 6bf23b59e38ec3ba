package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"judgegpt/internal/database"
	"judgegpt/internal/handlers"
	"judgegpt/internal/repository"
	"judgegpt/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	// 1. Initialize our external connections
	database.InitDatabases()

	// 2. Initialize repos, services, and handlers
	articleRepo := repository.NewArticleRepository(database.DB)
	responseRepo := repository.NewResponseRepository(database.DB)
	sessionCacheRepo := repository.NewSessionCacheRepository(database.RedisClient)
	lastResponseRepo := repository.NewLastResponseRepository(database.RedisClient)

	quizService := service.NewQuizService(articleRepo, sessionCacheRepo)
	answerService := service.NewAnswerService(articleRepo, responseRepo, lastResponseRepo, sessionCacheRepo)

	quizHandlers := handlers.NewQuizHandlers(quizService, answerService)

	// 3. Create a new Fiber instance
	app := fiber.New(fiber.Config{
		AppName: "JudgeGPT_v1",
	})

	// 4. Middleware for better observability
	app.Use(logger.New())  // Logs every request to console
	app.Use(recover.New()) // Prevents the app from crashing on panics

	// 4.1 Simple middleware to track app-side latency
	app.Use(func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		duration := time.Since(start).Microseconds()
		c.Response().Header.Set("X-App-Latency-US", fmt.Sprintf("%d", duration))
		return err
	})

	// 5. Route Definitions
	// Per-user rate limiting keyed by the userUid query param (or IP fallback)
	api := app.Group("/api/quiz")
	api.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return handlers.RateLimitKeyByUser(c)
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	}))
	api.Get("/", quizHandlers.HandleGetQuiz)
	api.Post("/", quizHandlers.HandlePostQuiz)

	// 6. Start the server
	addr := ":3001"
	if v := os.Getenv("QUIZ_ADDR"); v != "" {
		addr = v
	}
	log.Fatal(app.Listen(addr))
}
