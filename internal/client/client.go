package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"judgegpt/internal/models"
)

// Client calls the quiz API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the given server base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// errorBody is the JSON error envelope every non-200 response carries.
type errorBody struct {
	Error string `json:"error"`
}

// FetchQuiz retrieves the article set for a user and locale.
func (c *Client) FetchQuiz(ctx context.Context, userUID, locale string) ([]models.Article, error) {
	q := url.Values{}
	q.Set("userUid", userUID)
	q.Set("locale", locale)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/quiz?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var articles []models.Article
	if err := json.NewDecoder(resp.Body).Decode(&articles); err != nil {
		return nil, fmt.Errorf("decode quiz response: %w", err)
	}
	return articles, nil
}

// SubmitResponse posts one answer and returns whether it was correct.
func (c *Client) SubmitResponse(ctx context.Context, response models.UserResponse) (bool, error) {
	body, err := json.Marshal(response)
	if err != nil {
		return false, err
	}

	q := url.Values{}
	q.Set("userUid", response.UserUID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/quiz?"+q.Encode(), bytes.NewReader(body))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, apiError(resp)
	}

	var result struct {
		IsCorrect bool `json:"isCorrect"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, fmt.Errorf("decode answer response: %w", err)
	}
	return result.IsCorrect, nil
}

// apiError extracts the error message from a non-200 response.
func apiError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)
	var body errorBody
	if err := json.Unmarshal(data, &body); err == nil && body.Error != "" {
		return fmt.Errorf("quiz api: %s (status %d)", body.Error, resp.StatusCode)
	}
	return fmt.Errorf("quiz api: unexpected status %d", resp.StatusCode)
}
