package service

import (
	"log"

	"judgegpt/internal/models"
)

// articleGetter supplies an article's ground truth by uid.
type articleGetter interface {
	GetArticleByUID(uid string) (*models.StoredArticle, error)
}

// responseInserter persists one answer row.
type responseInserter interface {
	InsertResponse(resp models.UserResponse, isCorrect bool) (string, error)
}

// lastResponseStore tracks the last answered article per user for the
// duplicate-submit guard.
type lastResponseStore interface {
	GetLastAnsweredArticleUID(userUID string) (string, bool, error)
	SetLastAnsweredArticleUID(userUID string, articleUID string) error
}

// AnswerService is the response-storing collaborator: it validates a
// submission against the article's ground truth and records it.
type AnswerService struct {
	articles     articleGetter
	responses    responseInserter
	lastResponse lastResponseStore
	cache        sessionCache
}

// NewAnswerService creates a new answer service.
func NewAnswerService(
	articles articleGetter,
	responses responseInserter,
	lastResponse lastResponseStore,
	cache sessionCache,
) *AnswerService {
	return &AnswerService{
		articles:     articles,
		responses:    responses,
		lastResponse: lastResponse,
		cache:        cache,
	}
}

// StoreUserResponse records one answer. The returned pointer carries
// correctness when the response was stored; nil means not stored (unknown
// article or duplicate submit), which the handler maps to 404.
func (s *AnswerService) StoreUserResponse(resp models.UserResponse) (*bool, error) {
	// Duplicate: same article as last answered — ignore without processing.
	// On a Redis error we continue and process.
	if lastUID, found, err := s.lastResponse.GetLastAnsweredArticleUID(resp.UserUID); err == nil && found && lastUID == resp.ArticleUID {
		return nil, nil
	}

	article, err := s.articles.GetArticleByUID(resp.ArticleUID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, nil
	}

	isCorrect := EvaluateResponse(*article, resp)

	if _, err := s.responses.InsertResponse(resp, isCorrect); err != nil {
		return nil, err
	}

	if err := s.lastResponse.SetLastAnsweredArticleUID(resp.UserUID, resp.ArticleUID); err != nil {
		log.Printf("Failed to set last answered article in Redis for %s: %v", resp.UserUID, err)
	}

	// Drop the cached session so the next fetch excludes the answered
	// article (non-blocking, don't fail if Redis is down)
	go func() {
		if err := s.cache.Invalidate(resp.UserUID); err != nil {
			log.Printf("Failed to invalidate session cache for %s: %v", resp.UserUID, err)
		}
	}()

	return &isCorrect, nil
}

// EvaluateResponse reports whether both judgments match the article's ground
// truth.
func EvaluateResponse(article models.StoredArticle, resp models.UserResponse) bool {
	return resp.UserRespondedIsHuman == article.IsHuman && resp.UserRespondedIsFake == article.IsFake
}
