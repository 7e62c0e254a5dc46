package server

import (
	"encoding/json"
	"net/http"

	"highscore-server/internal/domain"

	"github.com/rs/zerolog"
)

type submitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type scoreView struct {
	Initials  string `json:"initials"`
	Score     int64  `json:"score"`
	Timestamp string `json:"timestamp"`
}

type scoresResponse struct {
	Success bool        `json:"success"`
	Scores  []scoreView `json:"scores"`
}

type rawScoreView struct {
	Initials  string `json:"initials"`
	Score     int64  `json:"score"`
	Timestamp int64  `json:"timestamp"`
}

type rawErrorResponse struct {
	Error string `json:"error"`
}

func toScoreViews(entries []domain.LeaderboardEntry) []scoreView {
	views := make([]scoreView, len(entries))
	for i, e := range entries {
		views[i] = scoreView{Initials: e.Initials, Score: e.Score, Timestamp: e.DisplayTimestamp}
	}
	return views
}

func toRawViews(entries []domain.RawLeaderboardEntry) []rawScoreView {
	views := make([]rawScoreView, len(entries))
	for i, e := range entries {
		views[i] = rawScoreView{Initials: e.Initials, Score: e.Score, Timestamp: e.SubmittedAt}
	}
	return views
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("failed to write response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	writeJSON(w, r, domain.StatusOf(err), submitResponse{Success: false, Error: domain.PublicMessage(err)})
}
