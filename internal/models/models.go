package models

// MaxArticlesPerSession bounds how many articles one quiz run contains.
// The fetch query and the view's progress indicator both use it.
const MaxArticlesPerSession = 10

// Article is a single piece of content shown in the quiz. Content may hold
// HTML-entity-encoded text; it is decoded at render time, never in storage.
type Article struct {
	UID      string `json:"uid"`
	Headline string `json:"headline"`
	Content  string `json:"content"`
}

// StoredArticle is the server-side row backing an Article. The ground truth
// columns are never serialized to clients.
type StoredArticle struct {
	Article
	Locale  string
	IsHuman bool
	IsFake  bool
}

// QuizSession is the ordered set of articles assigned to a user for one quiz
// run, with a pointer to the current article. The caller owns it: the view
// reads it but never advances the index.
type QuizSession struct {
	Articles            []Article
	CurrentArticleIndex int
}

// Current returns the article the session points at.
func (s QuizSession) Current() Article {
	return s.Articles[s.CurrentArticleIndex]
}

// Done reports whether the session has run past its last article.
func (s QuizSession) Done() bool {
	return s.CurrentArticleIndex >= len(s.Articles)
}

// UserResponse is the recorded answer for one article: both binary judgments
// plus response latency in milliseconds.
type UserResponse struct {
	UserUID              string  `json:"userUid"`
	ArticleUID           string  `json:"articleUid"`
	UserRespondedIsHuman bool    `json:"userRespondedIsHuman"`
	UserRespondedIsFake  bool    `json:"userRespondedIsFake"`
	TimeToRespond        float64 `json:"timeToRespond"`
}
