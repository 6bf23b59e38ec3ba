package service

import (
	"log"

	"judgegpt/internal/models"
)

// articleLister supplies the unanswered-article query backing a quiz run.
type articleLister interface {
	GetUnansweredArticlesForUser(userUID string, limit int) ([]models.Article, error)
}

// sessionCache caches the article set served to a user.
type sessionCache interface {
	Get(userUID string) ([]models.Article, error)
	Set(userUID string, articles []models.Article) error
	Invalidate(userUID string) error
}

// QuizService is the article-fetching collaborator: it assembles the set of
// quiz articles served to a user.
type QuizService struct {
	articles articleLister
	cache    sessionCache
}

// NewQuizService creates a new quiz service.
func NewQuizService(articles articleLister, cache sessionCache) *QuizService {
	return &QuizService{
		articles: articles,
		cache:    cache,
	}
}

// FetchArticlesForUser returns the articles for the user's current quiz run.
// A cached session wins so repeated fetches stay stable; on a miss the
// database supplies up to MaxArticlesPerSession unanswered articles and the
// result is cached. An empty result maps to not-found at the handler.
func (s *QuizService) FetchArticlesForUser(userUID string) ([]models.Article, error) {
	cached, err := s.cache.Get(userUID)
	if err != nil {
		// Redis being down must not take the quiz down; fall through to the DB
		log.Printf("Session cache read failed for user %s: %v", userUID, err)
	}
	if len(cached) > 0 {
		return cached, nil
	}

	articles, err := s.articles.GetUnansweredArticlesForUser(userUID, models.MaxArticlesPerSession)
	if err != nil {
		return nil, err
	}
	if len(articles) == 0 {
		return nil, nil
	}

	if err := s.cache.Set(userUID, articles); err != nil {
		log.Printf("Session cache write failed for user %s: %v", userUID, err)
	}

	return articles, nil
}
