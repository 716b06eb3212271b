package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"creatorscore/internal/domain"
	"creatorscore/internal/middleware"
	"creatorscore/internal/scoring"
)

// ProfileScore computes the full six-category report for one profile.
func (a *App) ProfileScore(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	report, err := a.Scores.ComputeProfileScore(r.Context(), id, a.marketOpts(r)...)
	if err != nil {
		a.scoreError(w, r, id, err)
		return
	}
	a.json(w, http.StatusOK, report)
}

// CategoryScore computes a single category. Diagnostic entry point.
func (a *App) CategoryScore(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	cat, err := domain.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		a.error(w, http.StatusNotFound, "unknown_category", "unknown score category")
		return
	}

	score, err := a.Scores.ComputeCategory(r.Context(), id, cat, a.marketOpts(r)...)
	if err != nil {
		a.scoreError(w, r, id, err)
		return
	}
	a.json(w, http.StatusOK, score)
}

// marketOpts turns the caller's detected market into an engine option so
// profiles without a configured target country are scored against it.
func (a *App) marketOpts(r *http.Request) []scoring.Option {
	if country := middleware.MarketFromContext(r.Context()); country != "" {
		return []scoring.Option{scoring.WithTargetCountry(country)}
	}
	return nil
}

func (a *App) scoreError(w http.ResponseWriter, r *http.Request, id string, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		a.error(w, http.StatusNotFound, "not_found", "profile not found")
		return
	}
	if errors.Is(err, domain.ErrUnknownCategory) {
		a.error(w, http.StatusNotFound, "unknown_category", "unknown score category")
		return
	}
	a.Log.Error().Err(err).Str("profile_id", id).Msg("score computation failed")
	a.error(w, http.StatusInternalServerError, "internal", "failed to compute score")
}
