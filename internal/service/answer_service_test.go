package service

import (
	"errors"
	"testing"
	"time"

	"judgegpt/internal/models"
)

func storedArticle() *models.StoredArticle {
	return &models.StoredArticle{
		Article: models.Article{UID: "a1", Headline: "One", Content: "first"},
		IsHuman: false,
		IsFake:  true,
	}
}

func matchingResponse() models.UserResponse {
	return models.UserResponse{
		UserUID:              "u1",
		ArticleUID:           "a1",
		UserRespondedIsHuman: false,
		UserRespondedIsFake:  true,
		TimeToRespond:        250,
	}
}

// TestStoreUserResponseDuplicateNotStored verifies a repeat submit of the
// last answered article is dropped without touching the database.
func TestStoreUserResponseDuplicateNotStored(t *testing.T) {
	inserter := &fakeResponseInserter{}
	svc := NewAnswerService(
		&fakeArticleGetter{article: storedArticle()},
		inserter,
		&fakeLastResponseStore{last: "a1", found: true},
		newFakeSessionCache(),
	)

	result, err := svc.StoreUserResponse(matchingResponse())
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	if result != nil {
		t.Fatalf("expected nil result for duplicate, got %v", *result)
	}
	if len(inserter.inserted) != 0 {
		t.Fatal("expected no insert for duplicate")
	}
}

// TestStoreUserResponseUnknownArticleNotStored verifies an unknown
// articleUid yields nil with no insert and no guard write.
func TestStoreUserResponseUnknownArticleNotStored(t *testing.T) {
	inserter := &fakeResponseInserter{}
	guard := &fakeLastResponseStore{}
	svc := NewAnswerService(&fakeArticleGetter{}, inserter, guard, newFakeSessionCache())

	result, err := svc.StoreUserResponse(matchingResponse())
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	if result != nil {
		t.Fatalf("expected nil result for unknown article, got %v", *result)
	}
	if len(inserter.inserted) != 0 || guard.setUID != "" {
		t.Fatal("expected no insert and no guard write for unknown article")
	}
}

// TestStoreUserResponseStoresAndSetsGuard verifies the stored path returns
// correctness, records the row, and arms the duplicate guard.
func TestStoreUserResponseStoresAndSetsGuard(t *testing.T) {
	inserter := &fakeResponseInserter{}
	guard := &fakeLastResponseStore{}
	cache := newFakeSessionCache()
	svc := NewAnswerService(&fakeArticleGetter{article: storedArticle()}, inserter, guard, cache)

	result, err := svc.StoreUserResponse(matchingResponse())
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	if result == nil || !*result {
		t.Fatalf("expected stored correct result, got %v", result)
	}
	if len(inserter.inserted) != 1 || !inserter.correctness[0] {
		t.Fatalf("expected one correct insert, got %+v", inserter.correctness)
	}
	if guard.setUser != "u1" || guard.setUID != "a1" {
		t.Fatalf("expected guard armed for u1/a1, got %s/%s", guard.setUser, guard.setUID)
	}

	select {
	case user := <-cache.invalidated:
		if user != "u1" {
			t.Fatalf("expected session invalidation for u1, got %s", user)
		}
	case <-time.After(time.Second):
		t.Fatal("expected session cache invalidation")
	}
}

// TestStoreUserResponseIncorrect verifies a mismatched judgment stores as
// incorrect rather than being rejected.
func TestStoreUserResponseIncorrect(t *testing.T) {
	inserter := &fakeResponseInserter{}
	svc := NewAnswerService(&fakeArticleGetter{article: storedArticle()}, inserter,
		&fakeLastResponseStore{}, newFakeSessionCache())

	resp := matchingResponse()
	resp.UserRespondedIsHuman = true

	result, err := svc.StoreUserResponse(resp)
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	if result == nil || *result {
		t.Fatalf("expected stored incorrect result, got %v", result)
	}
	if len(inserter.correctness) != 1 || inserter.correctness[0] {
		t.Fatalf("expected incorrect insert, got %+v", inserter.correctness)
	}
}

// TestStoreUserResponseGuardErrorStillProcesses verifies a guard read
// failure degrades to processing the submission.
func TestStoreUserResponseGuardErrorStillProcesses(t *testing.T) {
	inserter := &fakeResponseInserter{}
	svc := NewAnswerService(&fakeArticleGetter{article: storedArticle()}, inserter,
		&fakeLastResponseStore{last: "a1", found: true, getErr: errors.New("redis gone")},
		newFakeSessionCache())

	result, err := svc.StoreUserResponse(matchingResponse())
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	if result == nil {
		t.Fatal("expected submission to be processed despite guard error")
	}
	if len(inserter.inserted) != 1 {
		t.Fatal("expected insert despite guard error")
	}
}

// TestStoreUserResponseInsertErrorPropagates verifies database failures
// reach the handler for the 500 path.
func TestStoreUserResponseInsertErrorPropagates(t *testing.T) {
	svc := NewAnswerService(&fakeArticleGetter{article: storedArticle()},
		&fakeResponseInserter{err: errors.New("db gone")},
		&fakeLastResponseStore{}, newFakeSessionCache())

	if _, err := svc.StoreUserResponse(matchingResponse()); err == nil {
		t.Fatal("expected insert error to propagate")
	}
}

// TestEvaluateResponse verifies correctness requires both judgments to match
// the article's ground truth.
func TestEvaluateResponse(t *testing.T) {
	article := models.StoredArticle{
		Article: models.Article{UID: "a1"},
		IsHuman: false,
		IsFake:  true,
	}

	cases := []struct {
		name    string
		isHuman bool
		isFake  bool
		want    bool
	}{
		{"both match", false, true, true},
		{"human judgment wrong", true, true, false},
		{"fake judgment wrong", false, false, false},
		{"both wrong", true, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := models.UserResponse{
				ArticleUID:           "a1",
				UserRespondedIsHuman: tc.isHuman,
				UserRespondedIsFake:  tc.isFake,
			}
			if got := EvaluateResponse(article, resp); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
