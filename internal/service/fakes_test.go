package service

import (
	"sync"

	"judgegpt/internal/models"
)

// fakeArticleLister counts calls so tests can prove the DB was bypassed.
type fakeArticleLister struct {
	articles []models.Article
	err      error
	calls    int
}

func (f *fakeArticleLister) GetUnansweredArticlesForUser(userUID string, limit int) ([]models.Article, error) {
	f.calls++
	return f.articles, f.err
}

// fakeSessionCache is mutex-guarded because Invalidate runs on a goroutine.
type fakeSessionCache struct {
	mu          sync.Mutex
	cached      []models.Article
	getErr      error
	stored      []models.Article
	invalidated chan string
}

func newFakeSessionCache() *fakeSessionCache {
	return &fakeSessionCache{invalidated: make(chan string, 1)}
}

func (f *fakeSessionCache) Get(userUID string) ([]models.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cached, f.getErr
}

func (f *fakeSessionCache) Set(userUID string, articles []models.Article) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stored = articles
	return nil
}

func (f *fakeSessionCache) Invalidate(userUID string) error {
	f.invalidated <- userUID
	return nil
}

type fakeArticleGetter struct {
	article *models.StoredArticle
	err     error
}

func (f *fakeArticleGetter) GetArticleByUID(uid string) (*models.StoredArticle, error) {
	return f.article, f.err
}

type fakeResponseInserter struct {
	inserted    []models.UserResponse
	correctness []bool
	err         error
}

func (f *fakeResponseInserter) InsertResponse(resp models.UserResponse, isCorrect bool) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.inserted = append(f.inserted, resp)
	f.correctness = append(f.correctness, isCorrect)
	return "resp-1", nil
}

type fakeLastResponseStore struct {
	last    string
	found   bool
	getErr  error
	setUser string
	setUID  string
}

func (f *fakeLastResponseStore) GetLastAnsweredArticleUID(userUID string) (string, bool, error) {
	return f.last, f.found, f.getErr
}

func (f *fakeLastResponseStore) SetLastAnsweredArticleUID(userUID string, articleUID string) error {
	f.setUser = userUID
	f.setUID = articleUID
	return nil
}
