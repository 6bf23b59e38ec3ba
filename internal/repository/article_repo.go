package repository

import (
	"database/sql"

	"judgegpt/internal/models"
)

// ArticleRepository handles DB access for quiz articles.
type ArticleRepository struct {
	db *sql.DB
}

// NewArticleRepository creates a new article repository.
func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// GetArticleByUID returns an article with its ground truth columns, or nil
// if no such article exists.
func (r *ArticleRepository) GetArticleByUID(uid string) (*models.StoredArticle, error) {
	var a models.StoredArticle
	query := `SELECT uid, headline, content, locale, is_human, is_fake FROM articles WHERE uid = ?`
	err := r.db.QueryRow(query, uid).Scan(&a.UID, &a.Headline, &a.Content, &a.Locale, &a.IsHuman, &a.IsFake)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetUnansweredArticlesForUser returns up to limit articles the user has not
// responded to yet, oldest first so every user works through the pool in the
// same order.
func (r *ArticleRepository) GetUnansweredArticlesForUser(userUID string, limit int) ([]models.Article, error) {
	if limit <= 0 || limit > models.MaxArticlesPerSession {
		limit = models.MaxArticlesPerSession
	}

	query := `SELECT a.uid, a.headline, a.content
	          FROM articles a
	          WHERE NOT EXISTS (SELECT 1 FROM user_responses ur WHERE ur.user_uid = ? AND ur.article_uid = a.uid)
	          ORDER BY a.created_at ASC
	          LIMIT ?`

	rows, err := r.db.Query(query, userUID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []models.Article
	for rows.Next() {
		var a models.Article
		if err := rows.Scan(&a.UID, &a.Headline, &a.Content); err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}

	return articles, rows.Err()
}
