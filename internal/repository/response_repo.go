package repository

import (
	"database/sql"

	"github.com/google/uuid"

	"judgegpt/internal/models"
)

// ResponseRepository handles DB access for user responses.
type ResponseRepository struct {
	db *sql.DB
}

// NewResponseRepository creates a new response repository.
func NewResponseRepository(db *sql.DB) *ResponseRepository {
	return &ResponseRepository{db: db}
}

// InsertResponse stores one answer row and returns its generated uid.
func (r *ResponseRepository) InsertResponse(resp models.UserResponse, isCorrect bool) (string, error) {
	uid := uuid.NewString()
	query := `INSERT INTO user_responses
	          (uid, user_uid, article_uid, responded_is_human, responded_is_fake, time_to_respond_ms, is_correct, created_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, NOW())`
	_, err := r.db.Exec(query, uid, resp.UserUID, resp.ArticleUID,
		resp.UserRespondedIsHuman, resp.UserRespondedIsFake, resp.TimeToRespond, isCorrect)
	if err != nil {
		return "", err
	}
	return uid, nil
}
