package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"highscore-server/internal/config"
	"highscore-server/internal/constants"
	"highscore-server/internal/domain"
	"highscore-server/internal/middleware"
	"highscore-server/internal/service"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

type HighscoreServer struct {
	submissions *service.SubmissionService
	leaderboard *service.LeaderboardService
	logger      zerolog.Logger
}

func NewHighscoreServer(submissions *service.SubmissionService, leaderboard *service.LeaderboardService, logger zerolog.Logger) *HighscoreServer {
	return &HighscoreServer{submissions: submissions, leaderboard: leaderboard, logger: logger}
}

// Handler wires routes, CORS and request ids.
func (s *HighscoreServer) Handler(cfg *config.Config) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /submit_high_score", s.SubmitHighScore)
	mux.HandleFunc("POST /get_high_scores", s.GetHighScores)
	mux.HandleFunc("GET /get_top_10_scores", s.GetTop10)
	mux.HandleFunc("GET /api/top_100", s.GetTop100Raw)
	mux.HandleFunc("GET /healthz", s.Health)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})

	return middleware.RequestID(s.logger)(c.Handler(mux))
}

// submitRequest keeps raw values so type mismatches are reported as
// validation failures rather than decode errors.
type submitRequest struct {
	Initials  json.RawMessage `json:"initials"`
	Score     json.RawMessage `json:"score"`
	UniqueID  json.RawMessage `json:"uniqueid"`
	Timestamp json.RawMessage `json:"timestamp"`
	Hash      json.RawMessage `json:"hash"`
}

type playerScoresRequest struct {
	UniqueID string `json:"uniqueid"`
	Limit    int    `json:"limit"`
	Offset   int    `json:"offset"`
}

func (s *HighscoreServer) SubmitHighScore(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var req submitRequest
	if !decodeBody(w, r, &req) {
		return
	}
	logger.Debug().
		RawJSON("initials", orNull(req.Initials)).
		RawJSON("score", orNull(req.Score)).
		RawJSON("uniqueid", orNull(req.UniqueID)).
		RawJSON("timestamp", orNull(req.Timestamp)).
		Msg("received payload")

	sub, err := req.toSubmission()
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err := s.submissions.Submit(r.Context(), sub); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, submitResponse{Success: true, Message: "High score submitted successfully"})
}

func (s *HighscoreServer) GetHighScores(w http.ResponseWriter, r *http.Request) {
	var req playerScoresRequest
	if !decodeBody(w, r, &req) {
		return
	}
	zerolog.Ctx(r.Context()).Debug().Str("uniqueid", req.UniqueID).Msg("received player scores request")

	entries, err := s.leaderboard.ScoresForPlayer(r.Context(), req.UniqueID, domain.Page{Limit: req.Limit, Offset: req.Offset})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, scoresResponse{Success: true, Scores: toScoreViews(entries)})
}

func (s *HighscoreServer) GetTop10(w http.ResponseWriter, r *http.Request) {
	entries, err := s.leaderboard.Top10(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, scoresResponse{Success: true, Scores: toScoreViews(entries)})
}

// GetTop100Raw answers a bare array, unlike the other read endpoints.
func (s *HighscoreServer) GetTop100Raw(w http.ResponseWriter, r *http.Request) {
	entries, err := s.leaderboard.Top100Raw(r.Context())
	if err != nil {
		writeJSON(w, r, http.StatusInternalServerError, rawErrorResponse{Error: "Error retrieving high scores."})
		return
	}

	writeJSON(w, r, http.StatusOK, toRawViews(entries))
}

func (s *HighscoreServer) Health(w http.ResponseWriter, r *http.Request) {
	if err := s.leaderboard.Healthy(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, submitResponse{Success: true})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, constants.MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, r, domain.Validation("Invalid JSON body"))
		return false
	}
	return true
}

func (req submitRequest) toSubmission() (domain.Submission, error) {
	initials, ok := jsonString(req.Initials)
	if !ok {
		return domain.Submission{}, domain.Validation("Invalid or missing 'initials'")
	}
	score, ok := jsonInteger(req.Score)
	if !ok {
		return domain.Submission{}, domain.Validation("Invalid or missing 'score'")
	}
	uniqueID, ok := jsonString(req.UniqueID)
	if !ok {
		return domain.Submission{}, domain.Validation("Invalid or missing 'uniqueid'")
	}
	ts, ok := jsonString(req.Timestamp)
	if !ok {
		return domain.Submission{}, domain.Validation("Invalid or missing 'timestamp'")
	}
	hash, ok := jsonString(req.Hash)
	if !ok {
		return domain.Submission{}, domain.Validation("Invalid or missing 'hash'")
	}

	return domain.Submission{
		Initials:      initials,
		Score:         score,
		PlayerID:      uniqueID,
		TimestampText: ts,
		Digest:        hash,
	}, nil
}

// jsonString accepts a JSON string that is not blank. The value is returned
// untrimmed because the digest covers it byte for byte.
func jsonString(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, strings.TrimSpace(s) != ""
}

// jsonInteger accepts only integer literals; 1.5 and 1e3 are rejected.
func jsonInteger(raw json.RawMessage) (int64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0, false
	}
	n, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func orNull(raw json.RawMessage) []byte {
	if len(raw) == 0 {
		return []byte("null")
	}
	return raw
}
