package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"creatorscore/internal/domain"
	"creatorscore/internal/http/handlers"
	"creatorscore/internal/http/httpapi"
	"creatorscore/internal/scoring"
)

type fakeScorer struct {
	report   *domain.ProfileScore
	category *domain.CategoryScore
	err      error

	lastProfileID string
	lastCategory  domain.Category
	lastOpts      int
}

func (f *fakeScorer) ComputeProfileScore(ctx context.Context, profileID string, opts ...scoring.Option) (*domain.ProfileScore, error) {
	f.lastProfileID = profileID
	f.lastOpts = len(opts)
	return f.report, f.err
}

func (f *fakeScorer) ComputeCategory(ctx context.Context, profileID string, cat domain.Category, opts ...scoring.Option) (*domain.CategoryScore, error) {
	f.lastProfileID = profileID
	f.lastCategory = cat
	return f.category, f.err
}

func newTestRouter(scorer handlers.Scorer) http.Handler {
	app := handlers.NewApp(scorer, zerolog.Nop())
	return httpapi.NewRouter(app, httpapi.Options{})
}

func TestProfileScoreOK(t *testing.T) {
	scorer := &fakeScorer{report: &domain.ProfileScore{
		ProfileID:  "p1",
		Score:      72.5,
		Grade:      "Good",
		ComputedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}}
	h := newTestRouter(scorer)

	req := httptest.NewRequest("GET", "/v1/profiles/p1/score", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if scorer.lastProfileID != "p1" {
		t.Fatalf("profile id = %q, want p1", scorer.lastProfileID)
	}
	var body domain.ProfileScore
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Score != 72.5 || body.Grade != "Good" {
		t.Fatalf("body = %+v", body)
	}
}

func TestProfileScoreNotFound(t *testing.T) {
	scorer := &fakeScorer{err: domain.ErrNotFound}
	h := newTestRouter(scorer)

	req := httptest.NewRequest("GET", "/v1/profiles/nope/score", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Error.Code != "not_found" {
		t.Fatalf("error code = %q, want not_found", body.Error.Code)
	}
}

func TestProfileScoreInternalError(t *testing.T) {
	scorer := &fakeScorer{err: errors.New("pool exhausted")}
	h := newTestRouter(scorer)

	req := httptest.NewRequest("GET", "/v1/profiles/p1/score", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestCategoryScoreOK(t *testing.T) {
	scorer := &fakeScorer{category: &domain.CategoryScore{
		Category: domain.CategoryGrowthMomentum,
		Score:    81.42,
	}}
	h := newTestRouter(scorer)

	req := httptest.NewRequest("GET", "/v1/profiles/p1/score/categories/growth_momentum", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if scorer.lastCategory != domain.CategoryGrowthMomentum {
		t.Fatalf("category = %q, want growth_momentum", scorer.lastCategory)
	}
}

func TestCategoryScoreUnknownCategory(t *testing.T) {
	scorer := &fakeScorer{}
	h := newTestRouter(scorer)

	req := httptest.NewRequest("GET", "/v1/profiles/p1/score/categories/vibes", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if scorer.lastCategory != "" {
		t.Fatal("engine should not be reached for an unknown category")
	}
}

func TestMarketHeaderBecomesEngineOption(t *testing.T) {
	scorer := &fakeScorer{report: &domain.ProfileScore{ProfileID: "p1"}}
	h := newTestRouter(scorer)

	req := httptest.NewRequest("GET", "/v1/profiles/p1/score", nil)
	req.Header.Set("X-Country-Code", "SG")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if scorer.lastOpts != 1 {
		t.Fatalf("engine options = %d, want 1 for a detected market", scorer.lastOpts)
	}
}

func TestHealthz(t *testing.T) {
	h := newTestRouter(&fakeScorer{})

	req := httptest.NewRequest("GET", "/v1/healthz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
