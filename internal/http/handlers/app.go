package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"creatorscore/internal/domain"
	"creatorscore/internal/scoring"
)

// Scorer is the engine surface the HTTP layer depends on.
type Scorer interface {
	ComputeProfileScore(ctx context.Context, profileID string, opts ...scoring.Option) (*domain.ProfileScore, error)
	ComputeCategory(ctx context.Context, profileID string, cat domain.Category, opts ...scoring.Option) (*domain.CategoryScore, error)
}

type App struct {
	Scores Scorer
	Log    zerolog.Logger
}

func NewApp(scores Scorer, log zerolog.Logger) *App {
	return &App{Scores: scores, Log: log}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}
