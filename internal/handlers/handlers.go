package handlers

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"

	"judgegpt/internal/models"
)

// ArticleFetcher is the collaborator that assembles a user's quiz articles.
type ArticleFetcher interface {
	FetchArticlesForUser(userUID string) ([]models.Article, error)
}

// ResponseStore is the collaborator that records a user's answer. A nil
// result with no error means the response was not stored.
type ResponseStore interface {
	StoreUserResponse(resp models.UserResponse) (*bool, error)
}

// QuizHandlers contains HTTP handlers for the quiz endpoints.
type QuizHandlers struct {
	fetcher ArticleFetcher
	store   ResponseStore
}

// NewQuizHandlers creates a new quiz handlers instance.
func NewQuizHandlers(fetcher ArticleFetcher, store ResponseStore) *QuizHandlers {
	return &QuizHandlers{
		fetcher: fetcher,
		store:   store,
	}
}

// HandleGetQuiz handles GET /api/quiz
// Query params: userUid (required), locale (required)
func (h *QuizHandlers) HandleGetQuiz(c *fiber.Ctx) error {
	userUID := c.Query("userUid")
	if userUID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "User ID is required",
		})
	}

	locale := c.Query("locale")
	if locale == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Locale is required",
		})
	}

	// locale is validated but not forwarded; the article pool is shared
	// across locales for now
	articles, err := h.fetcher.FetchArticlesForUser(userUID)
	if err != nil {
		log.Printf("Error fetching quiz articles for user %s: %v", userUID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal Server Error",
		})
	}
	if len(articles) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Quiz questions not found",
		})
	}

	return c.JSON(articles)
}

// answerRequest holds the POST body fields untyped so each one can be
// checked in order with a field-specific message.
type answerRequest struct {
	ArticleUID           any `json:"articleUid"`
	UserRespondedIsHuman any `json:"userRespondedIsHuman"`
	UserRespondedIsFake  any `json:"userRespondedIsFake"`
	TimeToRespond        any `json:"timeToRespond"`
}

// HandlePostQuiz handles POST /api/quiz
// Query params: userUid (required); JSON body carries the answer fields.
func (h *QuizHandlers) HandlePostQuiz(c *fiber.Ctx) error {
	userUID := c.Query("userUid")
	if userUID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "User ID is required",
		})
	}

	// A literal JSON null unmarshals cleanly but carries no body; treat it
	// like any other unparseable payload.
	var req *answerRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil || req == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	// First failure wins; each field gets its own message
	if req.ArticleUID == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Article ID is required",
		})
	}
	articleUID, ok := req.ArticleUID.(string)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid article ID",
		})
	}
	respondedIsHuman, ok := req.UserRespondedIsHuman.(bool)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid human or AI answer",
		})
	}
	respondedIsFake, ok := req.UserRespondedIsFake.(bool)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid real or fake answer",
		})
	}
	timeToRespond, ok := req.TimeToRespond.(float64)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid time to respond",
		})
	}

	isCorrect, err := h.store.StoreUserResponse(models.UserResponse{
		UserUID:              userUID,
		ArticleUID:           articleUID,
		UserRespondedIsHuman: respondedIsHuman,
		UserRespondedIsFake:  respondedIsFake,
		TimeToRespond:        timeToRespond,
	})
	if err != nil {
		log.Printf("Error storing response for user %s, article %s: %v", userUID, articleUID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal Server Error",
		})
	}
	if isCorrect == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User response not stored",
		})
	}

	return c.JSON(fiber.Map{
		"isCorrect": *isCorrect,
	})
}
