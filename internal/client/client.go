// Package client is the trusted-game-client side of the score protocol. It
// signs submissions with the shared secret and reads leaderboards.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"highscore-server/internal/constants"
	"highscore-server/internal/integrity"

	"github.com/valyala/fasthttp"
	"golang.org/x/sync/errgroup"
)

// TimestampLayout produces the six-component text the server parses.
const TimestampLayout = "02/01/2006 15:04:05"

type Client struct {
	baseURL  string
	secret   []byte
	strategy integrity.Strategy
	client   *fasthttp.Client
}

type Options struct {
	BaseURL  string
	Secret   string
	Strategy integrity.Strategy
	Timeout  time.Duration
}

func New(opts Options) *Client {
	strategy := opts.Strategy
	if strategy == nil {
		strategy = integrity.LegacySHA1{}
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = constants.ClientTimeout
	}
	return &Client{
		baseURL:  strings.TrimRight(opts.BaseURL, "/"),
		secret:   []byte(opts.Secret),
		strategy: strategy,
		client: &fasthttp.Client{
			MaxConnsPerHost:     constants.ClientParallel * 4,
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

type Score struct {
	Initials  string
	Score     int64
	PlayerID  string
	Timestamp string
}

// NewScore stamps a score with t formatted the way the server expects.
func NewScore(initials string, score int64, playerID string, t time.Time) Score {
	return Score{Initials: initials, Score: score, PlayerID: playerID, Timestamp: t.Format(TimestampLayout)}
}

type submitPayload struct {
	Initials  string `json:"initials"`
	Score     int64  `json:"score"`
	UniqueID  string `json:"uniqueid"`
	Timestamp string `json:"timestamp"`
	Hash      string `json:"hash"`
}

type SubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

type ScoreEntry struct {
	Initials  string `json:"initials"`
	Score     int64  `json:"score"`
	Timestamp string `json:"timestamp"`
}

type ScoresResponse struct {
	Success bool         `json:"success"`
	Scores  []ScoreEntry `json:"scores"`
	Error   string       `json:"error"`
}

type RawEntry struct {
	Initials  string `json:"initials"`
	Score     int64  `json:"score"`
	Timestamp int64  `json:"timestamp"`
}

// APIError is returned for any non-200 answer.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %d: %s", e.Status, e.Message)
}

func (c *Client) Sign(s Score) (string, error) {
	return integrity.Sign(c.strategy, c.secret, integrity.Fields{
		Initials:  s.Initials,
		Score:     s.Score,
		PlayerID:  s.PlayerID,
		Timestamp: s.Timestamp,
	})
}

func (c *Client) Submit(ctx context.Context, s Score) (*SubmitResponse, error) {
	hash, err := c.Sign(s)
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(submitPayload{
		Initials:  s.Initials,
		Score:     s.Score,
		UniqueID:  s.PlayerID,
		Timestamp: s.Timestamp,
		Hash:      hash,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode submission: %w", err)
	}
	return doRequest[SubmitResponse](ctx, c, fasthttp.MethodPost, "/submit_high_score", body)
}

// SubmitBatch uploads scores concurrently and stops at the first failure.
func (c *Client) SubmitBatch(ctx context.Context, scores []Score) error {
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(constants.ClientParallel)

	for _, s := range scores {
		s := s
		g.Go(func() error {
			if _, err := c.Submit(gCtx, s); err != nil {
				return fmt.Errorf("failed to submit score for %s: %w", s.PlayerID, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func (c *Client) PlayerScores(ctx context.Context, playerID string) ([]ScoreEntry, error) {
	body, err := json.Marshal(map[string]string{"uniqueid": playerID})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	resp, err := doRequest[ScoresResponse](ctx, c, fasthttp.MethodPost, "/get_high_scores", body)
	if err != nil {
		return nil, err
	}
	return resp.Scores, nil
}

func (c *Client) Top10(ctx context.Context) ([]ScoreEntry, error) {
	resp, err := doRequest[ScoresResponse](ctx, c, fasthttp.MethodGet, "/get_top_10_scores", nil)
	if err != nil {
		return nil, err
	}
	return resp.Scores, nil
}

func (c *Client) Top100(ctx context.Context) ([]RawEntry, error) {
	resp, err := doRequest[[]RawEntry](ctx, c, fasthttp.MethodGet, "/api/top_100", nil)
	if err != nil {
		return nil, err
	}
	return *resp, nil
}

func doRequest[T any](ctx context.Context, client *Client, method, path string, body []byte) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(client.baseURL + path)
	req.Header.SetMethod(method)
	if body != nil {
		req.Header.SetContentType("application/json")
		req.SetBody(body)
	}

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, err
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		var failure struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(resp.Body(), &failure)
		return nil, &APIError{Status: resp.StatusCode(), Message: failure.Error}
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}
